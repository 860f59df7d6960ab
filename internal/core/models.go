package core

import (
	"fmt"
	"math/big"
	"time"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/milestone"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type Role string

const (
	RoleInvestor     Role = "investor"
	RoleEntrepreneur Role = "entrepreneur"
	RoleVerifier     Role = "verifier"
)

func ParseRole(s string) (Role, error) {
	switch role := Role(s); role {
	case RoleInvestor, RoleEntrepreneur, RoleVerifier:
		return role, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// FeePolicy is the fee bid attached to every envelope. It is a fixed base fee
// with no congestion adjustment.
type FeePolicy struct {
	BaseFee *big.Int
}

type Settings struct {
	Fee              FeePolicy
	TxTimeout        time.Duration
	PollInterval     time.Duration
	MaxPollAttempts  int
	DefaultProjectID uint32
	SessionHours     int
}

func DefaultSettings() Settings {
	return Settings{
		Fee:              FeePolicy{BaseFee: big.NewInt(1_000_000_000)},
		TxTimeout:        300 * time.Second,
		PollInterval:     time.Second,
		MaxPollAttempts:  20,
		DefaultProjectID: 1,
		SessionHours:     24,
	}
}

// Envelope is an unsigned transaction for exactly one contract operation.
type Envelope struct {
	Source     common.Address
	Nonce      uint64
	Operations []contract.Operation
	Fee        *big.Int
	ValidUntil time.Time
}

type PreparedEnvelope struct {
	Envelope
	ChainID *big.Int
	Gas     uint64
	Tx      *types.Transaction
}

type SignedEnvelope struct {
	Source     common.Address
	ValidUntil time.Time
	Tx         *types.Transaction
}

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusSuccess  SubmissionStatus = "success"
	StatusFailed   SubmissionStatus = "failed"
	StatusTimedOut SubmissionStatus = "timed_out"
)

func (s SubmissionStatus) Terminal() bool {
	return s != StatusPending
}

// SubmissionResult is what the tracker last observed for a broadcast
// transaction. TimedOut means the effect is unknown, not that it failed.
type SubmissionResult struct {
	Hash   string           `json:"hash"`
	Status SubmissionStatus `json:"status"`
	Polls  int              `json:"polls"`
	// Logs emitted by a settled transaction.
	Logs []*types.Log `json:"-"`
}

type ProjectResult struct {
	ProjectID  uint32           `json:"projectId"`
	Submission SubmissionResult `json:"submission"`
}

type MilestoneView struct {
	ProjectID   uint32           `json:"projectId"`
	Index       uint32           `json:"index"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Amount      float64          `json:"amount"`
	Deadline    time.Time        `json:"deadline"`
	Status      milestone.Status `json:"status"`
	Fingerprint string           `json:"fingerprint,omitempty"`
}

type AgentInfo struct {
	Available bool   `json:"available"`
	Address   string `json:"address,omitempty"`
}

type Session struct {
	Address string `json:"address"`
	Role    Role   `json:"role"`
	Token   string `json:"token"`
}
