package core

import (
	"errors"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/evidence"
	"crowdbridge/internal/ledger"
	"crowdbridge/internal/milestone"
	"crowdbridge/internal/repository"
	"crowdbridge/internal/signer"
	"crowdbridge/internal/units"
)

// Errors returned by the bridge. Lower layers keep their own sentinels; the
// ones re-exported here are the same values so errors.Is works across layers.
var (
	ErrInvalidAmount      = units.ErrInvalidAmount
	ErrInvalidCallShape   = contract.ErrInvalidCallShape
	ErrInvalidPlan        = milestone.ErrInvalidPlan
	ErrInvalidTransition  = milestone.ErrInvalidTransition
	ErrUserDeclined       = signer.ErrUserDeclined
	ErrAgentUnavailable   = signer.ErrAgentUnavailable
	ErrAccountNotFound    = ledger.ErrAccountNotFound
	ErrLedgerUnavailable  = ledger.ErrNodeUnavailable
	ErrProjectNotFound    = repository.ErrProjectNotFound
	ErrMilestoneNotFound  = repository.ErrMilestoneNotFound
	ErrSubmissionNotFound = repository.ErrSubmissionNotFound
	ErrRoleNotFound       = repository.ErrPreferenceNotFound
	ErrInvalidFingerprint = evidence.ErrInvalidFingerprint

	ErrSimulationFailed error = errors.New("simulation failed")
	ErrBroadcastFailed  error = errors.New("broadcast failed")
	ErrEnvelopeExpired  error = errors.New("envelope expired")
	ErrSignerMismatch   error = errors.New("signed transaction does not match the envelope")
	ErrInvalidRole      error = errors.New("invalid role")
	ErrNotProjectOwner  error = errors.New("not the project owner")
)
