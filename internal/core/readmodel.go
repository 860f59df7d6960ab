package core

import (
	"context"
	"fmt"
	"math/big"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/units"

	"github.com/ethereum/go-ethereum/common"
)

// anonymous is the source of read-only simulations. Nothing it sends is signed.
var anonymous = common.Address{}

// GetProjectRaised returns the total invested in a project. Any failure is
// logged and reported as zero.
func (b *Bridge) GetProjectRaised(ctx context.Context, projectID uint32) float64 {
	amount, err := b.readAmount(ctx, contract.GetProject, projectID)
	if err != nil {
		b.logs.Warnw("read project raised", "projectId", projectID, "error", err)
		b.recorder.ReadModelFailure(string(contract.GetProject))
		return 0
	}
	return units.ToDisplayUnits(amount)
}

// GetInvestorContribution returns what investor has put into a project. Any
// failure is logged and reported as zero.
func (b *Bridge) GetInvestorContribution(ctx context.Context, investor common.Address, projectID uint32) float64 {
	amount, err := b.readAmount(ctx, contract.GetInvestorAmount, projectID, investor)
	if err != nil {
		b.logs.Warnw("read investor contribution", "projectId", projectID, "investor", investor.Hex(), "error", err)
		b.recorder.ReadModelFailure(string(contract.GetInvestorAmount))
		return 0
	}
	return units.ToDisplayUnits(amount)
}

func (b *Bridge) readAmount(ctx context.Context, method contract.Method, args ...any) (*big.Int, error) {
	op, err := b.builder.BuildCall(method, args...)
	if err != nil {
		return nil, err
	}

	out, err := b.ledger.Simulate(ctx, anonymous, op)
	if err != nil {
		return nil, fmt.Errorf("simulate %s: %w", method, err)
	}

	amount, err := b.builder.DecodeAmount(method, out)
	if err != nil {
		return nil, err
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("%s returned negative amount %s", method, amount)
	}
	return amount, nil
}

// ProjectCount returns how many projects the contract holds. Any failure is
// logged and reported as zero.
func (b *Bridge) ProjectCount(ctx context.Context) uint32 {
	count, err := b.readCount(ctx)
	if err != nil {
		b.logs.Warnw("read project count", "error", err)
		b.recorder.ReadModelFailure(string(contract.GetProjectCount))
		return 0
	}
	return count
}

func (b *Bridge) readCount(ctx context.Context) (uint32, error) {
	op, err := b.builder.BuildCall(contract.GetProjectCount)
	if err != nil {
		return 0, err
	}

	out, err := b.ledger.Simulate(ctx, anonymous, op)
	if err != nil {
		return 0, fmt.Errorf("simulate %s: %w", contract.GetProjectCount, err)
	}

	return b.builder.DecodeCount(out)
}
