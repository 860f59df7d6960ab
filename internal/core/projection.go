package core

import (
	"context"
	"fmt"
	"math/big"

	"crowdbridge/internal/milestone"
	"crowdbridge/internal/repository"
	"crowdbridge/internal/units"
)

// Milestones lists the projected status of every milestone of a project.
func (b *Bridge) Milestones(ctx context.Context, projectID uint32) ([]MilestoneView, error) {
	if _, err := b.repo.GetProject(ctx, projectID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	rows, err := b.repo.ListMilestones(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	views := make([]MilestoneView, 0, len(rows))
	for _, m := range rows {
		status, err := b.projected(ctx, m)
		if err != nil {
			return nil, err
		}

		view := MilestoneView{
			ProjectID:   m.ProjectID,
			Index:       m.MilestoneIndex,
			Title:       m.Title,
			Description: m.Description,
			Deadline:    m.Deadline,
			Status:      status,
		}
		if amount, ok := new(big.Int).SetString(m.Amount, 10); ok {
			view.Amount = units.ToDisplayUnits(amount)
		}
		if m.Fingerprint != nil {
			view.Fingerprint = *m.Fingerprint
		}
		views = append(views, view)
	}

	return views, nil
}

// milestoneStatus reads through the projection cache into the repository.
func (b *Bridge) milestoneStatus(ctx context.Context, projectID, index uint32) (milestone.Status, error) {
	status, ok, err := b.cache.GetStatus(ctx, projectID, index)
	if err != nil {
		b.logs.Warnw("read milestone projection", "projectId", projectID, "index", index, "error", err)
	} else if ok {
		return status, nil
	}

	m, err := b.repo.GetMilestone(ctx, projectID, index)
	if err != nil {
		return "", fmt.Errorf("get milestone: %w", err)
	}
	return b.fill(ctx, m)
}

func (b *Bridge) projected(ctx context.Context, m repository.Milestone) (milestone.Status, error) {
	status, ok, err := b.cache.GetStatus(ctx, m.ProjectID, m.MilestoneIndex)
	if err != nil {
		b.logs.Warnw("read milestone projection", "projectId", m.ProjectID, "index", m.MilestoneIndex, "error", err)
	} else if ok {
		return status, nil
	}
	return b.fill(ctx, m)
}

func (b *Bridge) fill(ctx context.Context, m repository.Milestone) (milestone.Status, error) {
	status, err := milestone.ParseStatus(m.Status)
	if err != nil {
		return "", fmt.Errorf("milestone %d of project %d: %w", m.MilestoneIndex, m.ProjectID, err)
	}

	if err := b.cache.SetStatus(ctx, m.ProjectID, m.MilestoneIndex, status); err != nil {
		b.logs.Warnw("fill milestone projection", "projectId", m.ProjectID, "index", m.MilestoneIndex, "error", err)
	}
	return status, nil
}

// advanceMilestone applies e to the stored milestone after a confirmed
// transaction and drops the cached projection for it.
func (b *Bridge) advanceMilestone(ctx context.Context, projectID, index uint32, e milestone.Event) error {
	defer func() {
		if err := b.cache.Invalidate(ctx, projectID, index); err != nil {
			b.logs.Warnw("invalidate milestone projection", "projectId", projectID, "index", index, "error", err)
		}
	}()

	m, err := b.repo.GetMilestone(ctx, projectID, index)
	if err != nil {
		return fmt.Errorf("get milestone: %w", err)
	}

	current, err := milestone.ParseStatus(m.Status)
	if err != nil {
		return err
	}

	next, err := milestone.Transition(current, e)
	if err != nil {
		return err
	}

	if err := b.repo.UpdateMilestoneStatus(ctx, projectID, index, string(next)); err != nil {
		return fmt.Errorf("update milestone status: %w", err)
	}

	b.logs.Infow("milestone advanced", "projectId", projectID, "index", index, "from", current, "to", next)
	return nil
}
