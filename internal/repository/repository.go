package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"crowdbridge/internal/db"
)

var (
	ErrSubmissionNotFound error = errors.New("submission not found")
	ErrProjectNotFound    error = errors.New("project not found")
	ErrMilestoneNotFound  error = errors.New("milestone not found")
	ErrPreferenceNotFound error = errors.New("role preference not found")
)

type BridgeRepository struct {
	db Storage
}

func NewBridgeRepository(db Storage) *BridgeRepository {
	return &BridgeRepository{
		db: db,
	}
}

func (r *BridgeRepository) MigrateTables() error {
	err := r.db.MigrateTable(&Submission{}, &Project{}, &Milestone{}, &Evidence{}, &Preference{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *BridgeRepository) SaveSubmission(ctx context.Context, submission Submission) error {
	if err := r.db.Insert(ctx, &submission); err != nil {
		return fmt.Errorf("save submission %s: %w", submission.Hash, err)
	}
	return nil
}

func (r *BridgeRepository) GetSubmission(ctx context.Context, hash string) (Submission, error) {
	var submission Submission

	err := r.db.GetOneBy(ctx, "hash", hash, &submission)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Submission{}, ErrSubmissionNotFound
		}
		return Submission{}, fmt.Errorf("get submission by hash: %w", err)
	}

	return submission, nil
}

// UpdateSubmission writes the settled status of a stored submission along with
// the project it created, if any.
func (r *BridgeRepository) UpdateSubmission(ctx context.Context, submission Submission) error {
	err := r.db.UpdateWhere(ctx, &Submission{},
		map[string]any{"hash": submission.Hash},
		map[string]any{
			"status":     submission.Status,
			"polls":      submission.Polls,
			"project_id": submission.ProjectID,
		})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("update submission status: %w", err)
	}
	return nil
}

// SaveProject stores a project confirmed on the ledger together with its milestones.
func (r *BridgeRepository) SaveProject(ctx context.Context, project Project, milestones []Milestone) error {
	err := r.db.Upsert(ctx, &project, []string{"id"}, []string{"owner", "title", "description", "goal"})
	if err != nil {
		return fmt.Errorf("save project %d: %w", project.ID, err)
	}

	if len(milestones) == 0 {
		return nil
	}

	err = r.db.Upsert(ctx, &milestones,
		[]string{"project_id", "milestone_index"},
		[]string{"title", "description", "amount", "deadline", "status", "updated_at"})
	if err != nil {
		return fmt.Errorf("save milestones of project %d: %w", project.ID, err)
	}

	return nil
}

func (r *BridgeRepository) GetProject(ctx context.Context, id uint32) (Project, error) {
	var project Project

	err := r.db.GetOneBy(ctx, "id", id, &project)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, fmt.Errorf("get project by id: %w", err)
	}

	return project, nil
}

func (r *BridgeRepository) GetMilestone(ctx context.Context, projectID, index uint32) (Milestone, error) {
	var m Milestone

	err := r.db.GetWhere(ctx, map[string]any{"project_id": projectID, "milestone_index": index}, &m)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Milestone{}, ErrMilestoneNotFound
		}
		return Milestone{}, fmt.Errorf("get milestone: %w", err)
	}

	return m, nil
}

// ListMilestones returns the milestones of a project ordered by index.
func (r *BridgeRepository) ListMilestones(ctx context.Context, projectID uint32) ([]Milestone, error) {
	milestones := []Milestone{}

	err := r.db.GetAllBy(ctx, "project_id", []uint32{projectID}, &milestones)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	slices.SortFunc(milestones, func(a, b Milestone) int {
		return int(a.MilestoneIndex) - int(b.MilestoneIndex)
	})
	return milestones, nil
}

func (r *BridgeRepository) UpdateMilestoneStatus(ctx context.Context, projectID, index uint32, status string) error {
	err := r.db.UpdateWhere(ctx, &Milestone{},
		map[string]any{"project_id": projectID, "milestone_index": index},
		map[string]any{"status": status})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("update milestone status: %w", err)
	}
	return nil
}

// SaveEvidence records the fingerprint committed for a milestone and mirrors it
// onto the milestone row.
func (r *BridgeRepository) SaveEvidence(ctx context.Context, evidence Evidence) error {
	err := r.db.Upsert(ctx, &evidence,
		[]string{"project_id", "milestone_index"},
		[]string{"fingerprint", "submitter", "tx_hash", "submitted_at"})
	if err != nil {
		return fmt.Errorf("save evidence: %w", err)
	}

	err = r.db.UpdateWhere(ctx, &Milestone{},
		map[string]any{"project_id": evidence.ProjectID, "milestone_index": evidence.MilestoneIndex},
		map[string]any{"fingerprint": evidence.Fingerprint})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("attach evidence to milestone: %w", err)
	}

	return nil
}

func (r *BridgeRepository) GetRole(ctx context.Context, address string) (string, error) {
	var pref Preference

	err := r.db.GetOneBy(ctx, "address", address, &pref)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrPreferenceNotFound
		}
		return "", fmt.Errorf("get role preference: %w", err)
	}

	return pref.Role, nil
}

func (r *BridgeRepository) SaveRole(ctx context.Context, address string, role string) error {
	pref := Preference{
		Address: address,
		Role:    role,
	}

	err := r.db.Upsert(ctx, &pref, []string{"address"}, []string{"role", "updated_at"})
	if err != nil {
		return fmt.Errorf("save role preference: %w", err)
	}
	return nil
}
