package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	declinedMsg     = "Signature declined, nothing was sent"
	agentDownMsg    = "Signing agent is not reachable. Start it, unlock it and try again"
	timedOutMsg     = "Effect unknown, check the submission status before retrying"
	failedMsg       = "The transaction was included but the contract rejected it"
	confirmedMsg    = "Transaction confirmed"
	stillPendingMsg = "Transaction broadcast, confirmation not observed yet"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}
