package core

import (
	"context"
	"math/big"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/ledger"
	"crowdbridge/internal/milestone"
	"crowdbridge/internal/repository"
	tokenIssuer "crowdbridge/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Account(ctx context.Context, address common.Address) (ledger.Account, error)
	Simulate(ctx context.Context, from common.Address, op contract.Operation) ([]byte, error)
	EstimateGas(ctx context.Context, from common.Address, op contract.Operation, gasPrice *big.Int) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Broadcast(ctx context.Context, tx *types.Transaction) (ledger.Receipt, error)
	TransactionStatus(ctx context.Context, hash common.Hash) (ledger.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name SigningAgent . SigningAgent
type SigningAgent interface {
	Available(ctx context.Context) bool
	Address() (common.Address, bool)
	RequestAccess(ctx context.Context) (common.Address, error)
	SignTransaction(ctx context.Context, from common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveSubmission(ctx context.Context, submission repository.Submission) error
	GetSubmission(ctx context.Context, hash string) (repository.Submission, error)
	UpdateSubmission(ctx context.Context, submission repository.Submission) error
	SaveProject(ctx context.Context, project repository.Project, milestones []repository.Milestone) error
	GetProject(ctx context.Context, id uint32) (repository.Project, error)
	GetMilestone(ctx context.Context, projectID, index uint32) (repository.Milestone, error)
	ListMilestones(ctx context.Context, projectID uint32) ([]repository.Milestone, error)
	UpdateMilestoneStatus(ctx context.Context, projectID, index uint32, status string) error
	SaveEvidence(ctx context.Context, evidence repository.Evidence) error
	GetRole(ctx context.Context, address string) (string, error)
	SaveRole(ctx context.Context, address string, role string) error
}

//counterfeiter:generate -o fake -fake-name ProjectionCache . ProjectionCache
type ProjectionCache interface {
	GetStatus(ctx context.Context, projectID, index uint32) (milestone.Status, bool, error)
	SetStatus(ctx context.Context, projectID, index uint32, status milestone.Status) error
	Invalidate(ctx context.Context, projectID, index uint32) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	ObserveSubmission(method string, status string, polls int)
	ReadModelFailure(query string)
}
