package payload

import (
	"time"

	"crowdbridge/internal/milestone"

	"github.com/jellydator/validation"
)

type MilestoneRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Deadline    time.Time `json:"deadline"`
}

func (m MilestoneRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&m.Amount, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&m.Deadline, validation.Required),
	)
}

type ProjectRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Goal        float64            `json:"goal"`
	Milestones  []MilestoneRequest `json:"milestones"`
}

func (p *ProjectRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Goal, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&p.Milestones, validation.Required),
	)
}

func (p ProjectRequest) ToPlan() milestone.Plan {
	drafts := make([]milestone.Draft, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		drafts = append(drafts, milestone.Draft{
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
			Deadline:    m.Deadline,
		})
	}
	return milestone.Plan{
		Title:       p.Title,
		Description: p.Description,
		Goal:        p.Goal,
		Milestones:  drafts,
	}
}
