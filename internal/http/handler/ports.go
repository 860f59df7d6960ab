package handler

import (
	"context"
	"net/http"

	"crowdbridge/internal/core"
	"crowdbridge/internal/evidence"
	"crowdbridge/internal/milestone"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BridgeService . BridgeService
type BridgeService interface {
	OpenSession(ctx context.Context, role string) (core.Session, error)
	Role(ctx context.Context, address common.Address) (core.Role, error)
	Agent(ctx context.Context) core.AgentInfo
	ConnectAgent(ctx context.Context) (common.Address, error)
	CreateProject(ctx context.Context, owner common.Address, plan milestone.Plan) (core.ProjectResult, error)
	Invest(ctx context.Context, investor common.Address, amount float64) (core.SubmissionResult, error)
	SubmitEvidence(ctx context.Context, owner common.Address, projectID, index uint32, fp evidence.Fingerprint) (core.SubmissionResult, error)
	VerifyMilestone(ctx context.Context, verifier common.Address, projectID, index uint32, approved bool) (core.SubmissionResult, error)
	GetProjectRaised(ctx context.Context, projectID uint32) float64
	GetInvestorContribution(ctx context.Context, investor common.Address, projectID uint32) float64
	ProjectCount(ctx context.Context) uint32
	Milestones(ctx context.Context, projectID uint32) ([]core.MilestoneView, error)
	CheckSubmission(ctx context.Context, hash string) (core.SubmissionResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
