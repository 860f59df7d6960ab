package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"crowdbridge/internal/core"
	"crowdbridge/internal/evidence"
	"crowdbridge/internal/http/handler/middleware"
	"crowdbridge/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	OpenSession     = "POST /bridge/session"
	GetRole         = "GET /bridge/session/{address}"
	GetAgent        = "GET /bridge/agent"
	ConnectAgent    = "POST /bridge/agent"
	CreateProject   = "POST /bridge/projects"
	GetProjectCount = "GET /bridge/projects/count"
	Invest          = "POST /bridge/invest"
	SubmitEvidence  = "POST /bridge/evidence"
	Fingerprint     = "POST /bridge/fingerprint"
	VerifyMilestone = "POST /bridge/verify"
	GetRaised       = "GET /bridge/projects/{id}/raised"
	GetContribution = "GET /bridge/projects/{id}/investors/{address}"
	GetMilestones   = "GET /bridge/projects/{id}/milestones"
	GetSubmission   = "GET /bridge/submissions/{hash}"
)

const maxArtifactBytes = 32 << 20

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type BridgeHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	bridge           BridgeService
}

func NewBridgeHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, bridgeService BridgeService) *BridgeHandler {
	return &BridgeHandler{
		logs:             logger,
		requestValidator: requestValidator,
		bridge:           bridgeService,
	}
}

func (h *BridgeHandler) HandleOpenSession(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.SessionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not open session", err, OpenSession, requestId)
		return
	}

	session, err := h.bridge.OpenSession(r.Context(), req.Role)
	if err != nil {
		h.fail(w, "Could not open session", err, OpenSession, requestId)
		return
	}

	h.logs.Infow("session opened",
		"address", session.Address,
		"role", session.Role,
		"handler", OpenSession,
		"request_id", requestId)

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleGetRole(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		h.badRequest(w, "Request failed", fmt.Errorf("invalid address %q", address), GetRole, requestId)
		return
	}

	role, err := h.bridge.Role(r.Context(), common.HexToAddress(address))
	if err != nil {
		h.fail(w, "Could not read role", err, GetRole, requestId)
		return
	}

	h.respond(w, map[string]any{
		"address": common.HexToAddress(address).Hex(),
		"role":    role,
	}, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleGetAgent(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	info := h.bridge.Agent(r.Context())
	resp := Response{Data: info}
	if !info.Available {
		resp.Message = agentDownMsg
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleConnectAgent(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	address, err := h.bridge.ConnectAgent(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrUserDeclined) {
			h.respond(w, Response{
				Message: "Access declined",
				Data:    map[string]string{"status": "declined"},
			}, http.StatusOK, requestId)
			return
		}
		h.fail(w, "Could not connect to the signing agent", err, ConnectAgent, requestId)
		return
	}

	h.respond(w, core.AgentInfo{Available: true, Address: address.Hex()}, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	owner, ok := h.sessionAddress(w, r, CreateProject)
	if !ok {
		return
	}

	var req payload.ProjectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not create project", err, CreateProject, requestId)
		return
	}

	result, err := h.bridge.CreateProject(r.Context(), owner, req.ToPlan())
	h.respondSubmission(w, result.Submission, result, err, CreateProject, requestId)
}

func (h *BridgeHandler) HandleInvest(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	investor, ok := h.sessionAddress(w, r, Invest)
	if !ok {
		return
	}

	var req payload.InvestRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not invest", err, Invest, requestId)
		return
	}

	result, err := h.bridge.Invest(r.Context(), investor, req.Amount)
	h.respondSubmission(w, result, result, err, Invest, requestId)
}

func (h *BridgeHandler) HandleSubmitEvidence(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	owner, ok := h.sessionAddress(w, r, SubmitEvidence)
	if !ok {
		return
	}

	var req payload.EvidenceRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not submit evidence", err, SubmitEvidence, requestId)
		return
	}

	fp, err := evidence.ParseFingerprint(req.Fingerprint)
	if err != nil {
		h.badRequest(w, "Could not submit evidence", err, SubmitEvidence, requestId)
		return
	}

	result, err := h.bridge.SubmitEvidence(r.Context(), owner, req.ProjectID, req.MilestoneIndex, fp)
	h.respondSubmission(w, result, result, err, SubmitEvidence, requestId)
}

func (h *BridgeHandler) HandleFingerprint(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	body := http.MaxBytesReader(w, r.Body, maxArtifactBytes)
	defer body.Close()

	fp, err := evidence.Compute(body)
	if err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		h.respond(w, Response{
			Message: "Could not fingerprint artifact",
			Error:   err.Error(),
		}, code, requestId)
		h.logs.Errorw("failed to fingerprint artifact", "error", err, "handler", Fingerprint, "request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"fingerprint": fp.Hex()}, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleVerifyMilestone(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	verifier, ok := h.sessionAddress(w, r, VerifyMilestone)
	if !ok {
		return
	}

	var req payload.VerifyRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not verify milestone", err, VerifyMilestone, requestId)
		return
	}

	result, err := h.bridge.VerifyMilestone(r.Context(), verifier, req.ProjectID, req.MilestoneIndex, *req.Approved)
	h.respondSubmission(w, result, result, err, VerifyMilestone, requestId)
}

func (h *BridgeHandler) HandleGetProjectCount(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	count := h.bridge.ProjectCount(r.Context())
	h.respond(w, map[string]any{"count": count}, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleGetRaised(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	projectID, err := parseProjectID(r)
	if err != nil {
		h.badRequest(w, "Request failed", err, GetRaised, requestId)
		return
	}

	raised := h.bridge.GetProjectRaised(r.Context(), projectID)
	h.respond(w, map[string]any{"projectId": projectID, "raised": raised}, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleGetContribution(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	projectID, err := parseProjectID(r)
	if err != nil {
		h.badRequest(w, "Request failed", err, GetContribution, requestId)
		return
	}

	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		h.badRequest(w, "Request failed", fmt.Errorf("invalid investor address %q", address), GetContribution, requestId)
		return
	}
	investor := common.HexToAddress(address)

	amount := h.bridge.GetInvestorContribution(r.Context(), investor, projectID)
	h.respond(w, map[string]any{
		"projectId": projectID,
		"investor":  investor.Hex(),
		"amount":    amount,
	}, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleGetMilestones(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	projectID, err := parseProjectID(r)
	if err != nil {
		h.badRequest(w, "Request failed", err, GetMilestones, requestId)
		return
	}

	milestones, err := h.bridge.Milestones(r.Context(), projectID)
	if err != nil {
		h.fail(w, "Could not list milestones", err, GetMilestones, requestId)
		return
	}

	resp := map[string][]core.MilestoneView{
		"milestones": milestones,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *BridgeHandler) HandleGetSubmission(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	hash := r.PathValue("hash")
	if !txHashRegex.MatchString(hash) {
		h.badRequest(w, "Request failed", fmt.Errorf("invalid transaction hash %q", hash), GetSubmission, requestId)
		return
	}

	result, err := h.bridge.CheckSubmission(r.Context(), hash)
	if err != nil && result.Hash == "" {
		h.fail(w, "Could not check submission", err, GetSubmission, requestId)
		return
	}
	if err != nil {
		h.logs.Warnw("submission status refresh failed", "error", err, "hash", hash, "request_id", requestId)
	}

	h.respondSubmission(w, result, result, nil, GetSubmission, requestId)
}

// respondSubmission reports the outcome of a submitted transaction. data is
// the body sent when the flow produced a result.
func (h *BridgeHandler) respondSubmission(w http.ResponseWriter, result core.SubmissionResult, data any, err error, handler, requestId string) {
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUserDeclined):
			h.logs.Infow("user declined to sign", "handler", handler, "request_id", requestId)
			h.respond(w, Response{
				Message: declinedMsg,
				Data:    map[string]string{"status": "declined"},
			}, http.StatusOK, requestId)
		case result.Hash != "":
			h.logs.Warnw("stopped waiting for confirmation",
				"error", err,
				"hash", result.Hash,
				"handler", handler,
				"request_id", requestId)
			h.respond(w, Response{Message: stillPendingMsg, Data: data}, http.StatusAccepted, requestId)
		default:
			h.fail(w, "Transaction not submitted", err, handler, requestId)
		}
		return
	}

	code, msg := http.StatusOK, confirmedMsg
	switch result.Status {
	case core.StatusTimedOut:
		code, msg = http.StatusAccepted, timedOutMsg
	case core.StatusPending:
		code, msg = http.StatusAccepted, stillPendingMsg
	case core.StatusFailed:
		code, msg = http.StatusUnprocessableEntity, failedMsg
	}

	h.logs.Infow("submission outcome",
		"hash", result.Hash,
		"status", result.Status,
		"polls", result.Polls,
		"handler", handler,
		"request_id", requestId)

	h.respond(w, Response{Message: msg, Data: data}, code, requestId)
}

func (h *BridgeHandler) sessionAddress(w http.ResponseWriter, r *http.Request, handler string) (common.Address, bool) {
	session, ok := middleware.SessionFrom(r.Context())
	if !ok || !common.IsHexAddress(session.Address) {
		requestId := middleware.RequestIDFrom(r.Context())
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "a session is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("request without session", "handler", handler, "request_id", requestId)
		return common.Address{}, false
	}
	return common.HexToAddress(session.Address), true
}

func (h *BridgeHandler) badRequest(w http.ResponseWriter, msg string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: msg,
		Error:   fmt.Errorf("invalid request: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *BridgeHandler) fail(w http.ResponseWriter, msg string, err error, handler, requestId string) {
	code, detail := errorStatus(err)
	if code == http.StatusServiceUnavailable && errors.Is(err, core.ErrAgentUnavailable) {
		msg = agentDownMsg
	}

	h.respond(w, Response{
		Message: msg,
		Error:   detail,
	}, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

// errorStatus maps a flow error to its HTTP status and the detail shown to
// the caller. Unexpected errors are not echoed back.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrAgentUnavailable),
		errors.Is(err, core.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidPlan),
		errors.Is(err, core.ErrInvalidFingerprint),
		errors.Is(err, core.ErrInvalidCallShape),
		errors.Is(err, core.ErrInvalidRole),
		errors.Is(err, core.ErrAccountNotFound):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrNotProjectOwner):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, core.ErrProjectNotFound),
		errors.Is(err, core.ErrMilestoneNotFound),
		errors.Is(err, core.ErrSubmissionNotFound),
		errors.Is(err, core.ErrRoleNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrInvalidTransition),
		errors.Is(err, core.ErrEnvelopeExpired):
		return http.StatusConflict, err.Error()
	case errors.Is(err, core.ErrSimulationFailed):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, core.ErrSignerMismatch),
		errors.Is(err, core.ErrBroadcastFailed):
		return http.StatusBadGateway, err.Error()
	}
	return http.StatusInternalServerError, "unexpected error occurred"
}

func parseProjectID(r *http.Request) (uint32, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid project id %q", r.PathValue("id"))
	}
	return uint32(id), nil
}

func (h *BridgeHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
