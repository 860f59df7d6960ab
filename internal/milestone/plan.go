package milestone

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"crowdbridge/internal/units"
)

var ErrInvalidPlan error = errors.New("invalid project plan")

type Draft struct {
	Title       string
	Description string
	Amount      float64
	Deadline    time.Time
}

// Plan is a project as an entrepreneur fills it in, in display units.
type Plan struct {
	Title       string
	Description string
	Goal        float64
	Milestones  []Draft
}

// LedgerPlan holds the create_project arguments derived from a valid Plan.
type LedgerPlan struct {
	Goal      *big.Int
	Amounts   []*big.Int
	Deadlines []uint64
}

// Validate converts p into ledger units and checks that the milestones fit
// inside the goal. Sums are compared after conversion so the check agrees
// with what the contract will see.
func (p Plan) Validate() (LedgerPlan, error) {
	goal, err := units.ToLedgerUnits(p.Goal)
	if err != nil {
		return LedgerPlan{}, fmt.Errorf("%w: goal: %w", ErrInvalidPlan, err)
	}
	if goal.Sign() == 0 {
		return LedgerPlan{}, fmt.Errorf("%w: goal must be positive", ErrInvalidPlan)
	}
	if len(p.Milestones) == 0 {
		return LedgerPlan{}, fmt.Errorf("%w: at least one milestone is required", ErrInvalidPlan)
	}

	plan := LedgerPlan{
		Goal:      goal,
		Amounts:   make([]*big.Int, 0, len(p.Milestones)),
		Deadlines: make([]uint64, 0, len(p.Milestones)),
	}

	total := new(big.Int)
	for i, m := range p.Milestones {
		amount, err := units.ToLedgerUnits(m.Amount)
		if err != nil {
			return LedgerPlan{}, fmt.Errorf("%w: milestone %d: %w", ErrInvalidPlan, i, err)
		}
		if amount.Sign() == 0 {
			return LedgerPlan{}, fmt.Errorf("%w: milestone %d: amount must be positive", ErrInvalidPlan, i)
		}
		if m.Deadline.IsZero() || m.Deadline.Unix() <= 0 {
			return LedgerPlan{}, fmt.Errorf("%w: milestone %d: deadline is required", ErrInvalidPlan, i)
		}

		total.Add(total, amount)
		plan.Amounts = append(plan.Amounts, amount)
		plan.Deadlines = append(plan.Deadlines, uint64(m.Deadline.Unix()))
	}

	if total.Cmp(goal) > 0 {
		return LedgerPlan{}, fmt.Errorf("%w: milestones total %s exceeds goal %s",
			ErrInvalidPlan, units.FormatDisplay(total), units.FormatDisplay(goal))
	}

	return plan, nil
}
