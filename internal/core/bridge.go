package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/evidence"
	"crowdbridge/internal/milestone"
	"crowdbridge/internal/repository"
	"crowdbridge/internal/signer"
	"crowdbridge/internal/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bridge drives user intents through assembly, signing, submission and
// confirmation, and keeps the local milestone projection in step with what the
// ledger confirmed.
type Bridge struct {
	logs      *zap.SugaredLogger
	settings  Settings
	builder   *contract.Builder
	ledger    Ledger
	agent     SigningAgent
	repo      Repository
	cache     ProjectionCache
	jwtIssuer JWTIssuer
	recorder  Recorder

	assembler *Assembler
	gateway   *SigningGateway
	tracker   *Tracker
}

func NewBridge(
	logger *zap.SugaredLogger,
	settings Settings,
	builder *contract.Builder,
	l Ledger,
	agent SigningAgent,
	repo Repository,
	cache ProjectionCache,
	jwt JWTIssuer,
	recorder Recorder,
) *Bridge {
	return &Bridge{
		logs:      logger,
		settings:  settings,
		builder:   builder,
		ledger:    l,
		agent:     agent,
		repo:      repo,
		cache:     cache,
		jwtIssuer: jwt,
		recorder:  recorder,
		assembler: NewAssembler(logger, l),
		gateway:   NewSigningGateway(logger, agent),
		tracker:   NewTracker(logger, l, settings.PollInterval, settings.MaxPollAttempts),
	}
}

type projectPayload struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Goal        string             `json:"goal"`
	Milestones  []milestonePayload `json:"milestones"`
}

type milestonePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Deadline    int64  `json:"deadline"`
}

// CreateProject validates plan, submits it and, once confirmed, stores the
// project under the id the contract reported in its ProjectCreated event.
func (b *Bridge) CreateProject(ctx context.Context, owner common.Address, plan milestone.Plan) (ProjectResult, error) {
	lp, err := plan.Validate()
	if err != nil {
		b.logs.Infow("project plan rejected", "owner", owner.Hex(), "error", err)
		return ProjectResult{}, err
	}

	op, err := b.builder.BuildCall(contract.CreateProject, owner, lp.Goal, lp.Amounts, lp.Deadlines)
	if err != nil {
		return ProjectResult{}, fmt.Errorf("build call: %w", err)
	}

	payload := projectPayload{
		Title:       plan.Title,
		Description: plan.Description,
		Goal:        lp.Goal.String(),
		Milestones:  make([]milestonePayload, 0, len(plan.Milestones)),
	}
	for i, m := range plan.Milestones {
		payload.Milestones = append(payload.Milestones, milestonePayload{
			Title:       m.Title,
			Description: m.Description,
			Amount:      lp.Amounts[i].String(),
			Deadline:    int64(lp.Deadlines[i]),
		})
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ProjectResult{}, fmt.Errorf("encode project payload: %w", err)
	}

	result, rec, err := b.execute(ctx, owner, op, repository.Submission{Payload: string(raw)})
	return ProjectResult{
		ProjectID:  rec.ProjectID,
		Submission: result,
	}, err
}

func (b *Bridge) Invest(ctx context.Context, investor common.Address, amount float64) (SubmissionResult, error) {
	ledgerAmount, err := units.ToLedgerUnits(amount)
	if err != nil {
		b.logs.Infow("investment amount rejected", "investor", investor.Hex(), "error", err)
		return SubmissionResult{}, err
	}
	if ledgerAmount.Sign() == 0 {
		return SubmissionResult{}, fmt.Errorf("%w: investment must be positive", ErrInvalidAmount)
	}

	op, err := b.builder.BuildCall(contract.Invest, investor, ledgerAmount)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("build call: %w", err)
	}

	result, _, err := b.execute(ctx, investor, op, repository.Submission{ProjectID: b.settings.DefaultProjectID})
	return result, err
}

// SubmitEvidence commits fp for a pending milestone of a project owned by owner.
func (b *Bridge) SubmitEvidence(ctx context.Context, owner common.Address, projectID, index uint32, fp evidence.Fingerprint) (SubmissionResult, error) {
	if fp.IsZero() {
		return SubmissionResult{}, fmt.Errorf("%w: empty fingerprint", ErrInvalidFingerprint)
	}

	project, err := b.repo.GetProject(ctx, projectID)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("get project: %w", err)
	}
	if project.Owner != owner.Hex() {
		return SubmissionResult{}, fmt.Errorf("%w: project %d", ErrNotProjectOwner, projectID)
	}

	status, err := b.milestoneStatus(ctx, projectID, index)
	if err != nil {
		return SubmissionResult{}, err
	}
	if err := milestone.CanSubmitEvidence(status); err != nil {
		b.logs.Infow("evidence refused", "projectId", projectID, "index", index, "status", status)
		return SubmissionResult{}, err
	}

	op, err := b.builder.BuildCall(contract.SubmitEvidence, projectID, index, [32]byte(fp))
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("build call: %w", err)
	}

	fingerprint := fp.Hex()
	result, _, err := b.execute(ctx, owner, op, repository.Submission{
		ProjectID:      projectID,
		MilestoneIndex: &index,
		Fingerprint:    &fingerprint,
	})
	return result, err
}

// VerifyMilestone records a verifier's decision on a milestone awaiting review.
func (b *Bridge) VerifyMilestone(ctx context.Context, verifier common.Address, projectID, index uint32, approved bool) (SubmissionResult, error) {
	if _, err := b.repo.GetProject(ctx, projectID); err != nil {
		return SubmissionResult{}, fmt.Errorf("get project: %w", err)
	}

	status, err := b.milestoneStatus(ctx, projectID, index)
	if err != nil {
		return SubmissionResult{}, err
	}
	if err := milestone.CanVerify(status); err != nil {
		b.logs.Infow("verification refused", "projectId", projectID, "index", index, "status", status)
		return SubmissionResult{}, err
	}

	op, err := b.builder.BuildCall(contract.VerifyMilestone, projectID, index, approved)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("build call: %w", err)
	}

	result, _, err := b.execute(ctx, verifier, op, repository.Submission{
		ProjectID:      projectID,
		MilestoneIndex: &index,
		Approved:       &approved,
	})
	return result, err
}

// CheckSubmission looks up a stored submission again. One that timed out and
// has since succeeded gets the effects it missed; nothing is rebroadcast.
func (b *Bridge) CheckSubmission(ctx context.Context, hash string) (SubmissionResult, error) {
	txHash := common.HexToHash(hash)

	rec, err := b.repo.GetSubmission(ctx, txHash.Hex())
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("get submission: %w", err)
	}

	stored := SubmissionResult{
		Hash:   rec.Hash,
		Status: SubmissionStatus(rec.Status),
		Polls:  rec.Polls,
	}
	if stored.Status == StatusSuccess || stored.Status == StatusFailed {
		return stored, nil
	}

	receipt, err := b.ledger.TransactionStatus(ctx, txHash)
	if err != nil {
		return stored, fmt.Errorf("get transaction status: %w", err)
	}

	observed := statusOf(receipt.Status)
	if !observed.Terminal() {
		return stored, nil
	}

	if observed == StatusSuccess {
		if err := b.applyEffects(ctx, &rec, receipt.Logs); err != nil {
			b.logs.Errorw("apply deferred effects", "hash", rec.Hash, "method", rec.Method, "error", err)
		}
	}

	rec.Status = string(observed)
	if err := b.repo.UpdateSubmission(ctx, rec); err != nil {
		return stored, fmt.Errorf("update submission: %w", err)
	}

	b.logs.Infow("submission settled late", "hash", rec.Hash, "method", rec.Method, "status", observed)

	stored.Status = observed
	return stored, nil
}

// Agent reports whether a signing agent is reachable and which account it has
// granted, without prompting the user.
func (b *Bridge) Agent(ctx context.Context) AgentInfo {
	info := AgentInfo{
		Available: b.agent.Available(ctx),
	}
	if address, ok := b.agent.Address(); ok {
		info.Address = address.Hex()
	}
	return info
}

// ConnectAgent asks the user, through the agent, to grant an account.
func (b *Bridge) ConnectAgent(ctx context.Context) (common.Address, error) {
	address, err := b.agent.RequestAccess(ctx)
	if err != nil {
		if errors.Is(err, signer.ErrNoAccount) {
			return common.Address{}, fmt.Errorf("%w: %w", ErrAgentUnavailable, err)
		}
		return common.Address{}, err
	}
	return address, nil
}

// execute runs one operation through the pipeline in order: assemble, prepare,
// sign, submit. Whatever was broadcast is persisted, even when ctx was
// cancelled while waiting for confirmation.
func (b *Bridge) execute(ctx context.Context, source common.Address, op contract.Operation, rec repository.Submission) (SubmissionResult, repository.Submission, error) {
	env, err := b.assembler.Assemble(ctx, source, []contract.Operation{op}, b.settings.Fee, b.settings.TxTimeout)
	if err != nil {
		return SubmissionResult{}, rec, fmt.Errorf("assemble %s: %w", op.Method, err)
	}

	prepared, err := b.assembler.Prepare(ctx, env)
	if err != nil {
		return SubmissionResult{}, rec, fmt.Errorf("prepare %s: %w", op.Method, err)
	}

	signed, err := b.gateway.RequestSignature(ctx, prepared)
	if err != nil {
		return SubmissionResult{}, rec, fmt.Errorf("sign %s: %w", op.Method, err)
	}

	result, err := b.tracker.Submit(ctx, signed)
	if result.Hash == "" {
		return result, rec, fmt.Errorf("submit %s: %w", op.Method, err)
	}

	b.recorder.ObserveSubmission(string(op.Method), string(result.Status), result.Polls)

	persistCtx := context.WithoutCancel(ctx)

	rec.ID = uuid.NewString()
	rec.Hash = result.Hash
	rec.Method = string(op.Method)
	rec.Source = source.Hex()
	rec.Status = string(result.Status)
	rec.Polls = result.Polls

	if result.Status == StatusSuccess {
		if effErr := b.applyEffects(persistCtx, &rec, result.Logs); effErr != nil {
			b.logs.Errorw("apply confirmed effects", "hash", rec.Hash, "method", rec.Method, "error", effErr)
		}
	}

	if saveErr := b.repo.SaveSubmission(persistCtx, rec); saveErr != nil {
		b.logs.Errorw("save submission", "hash", rec.Hash, "error", saveErr)
	}

	b.logs.Infow("submission finished",
		"hash", result.Hash,
		"method", op.Method,
		"status", result.Status,
		"polls", result.Polls)

	if err != nil {
		return result, rec, fmt.Errorf("track %s: %w", op.Method, err)
	}
	return result, rec, nil
}

// applyEffects mirrors a confirmed submission into the local projection. logs
// are the ones its receipt carried.
func (b *Bridge) applyEffects(ctx context.Context, rec *repository.Submission, logs []*types.Log) error {
	switch contract.Method(rec.Method) {
	case contract.CreateProject:
		return b.recordProject(ctx, rec, logs)
	case contract.SubmitEvidence:
		if rec.MilestoneIndex == nil || rec.Fingerprint == nil {
			return errors.New("evidence submission without milestone or fingerprint")
		}
		err := b.repo.SaveEvidence(ctx, repository.Evidence{
			ProjectID:      rec.ProjectID,
			MilestoneIndex: *rec.MilestoneIndex,
			Fingerprint:    *rec.Fingerprint,
			Submitter:      rec.Source,
			TxHash:         rec.Hash,
			SubmittedAt:    TimeNow().UTC(),
		})
		if err != nil {
			return fmt.Errorf("save evidence: %w", err)
		}
		return b.advanceMilestone(ctx, rec.ProjectID, *rec.MilestoneIndex, milestone.EventEvidenceAccepted)
	case contract.VerifyMilestone:
		if rec.MilestoneIndex == nil || rec.Approved == nil {
			return errors.New("verification without milestone or decision")
		}
		return b.advanceMilestone(ctx, rec.ProjectID, *rec.MilestoneIndex, milestone.Verdict(*rec.Approved))
	}
	return nil
}

// recordProject stores a confirmed project under the id the transaction's own
// ProjectCreated event carries. Other creations may land in between, so the
// id is never inferred from contract state read afterwards.
func (b *Bridge) recordProject(ctx context.Context, rec *repository.Submission, logs []*types.Log) error {
	var payload projectPayload
	if err := json.Unmarshal([]byte(rec.Payload), &payload); err != nil {
		return fmt.Errorf("decode project payload: %w", err)
	}

	id, owner, err := b.builder.ProjectCreated(logs)
	if err != nil {
		return fmt.Errorf("read created project: %w", err)
	}
	if owner.Hex() != rec.Source {
		return fmt.Errorf("project %d was created for %s, not %s", id, owner.Hex(), rec.Source)
	}

	project := repository.Project{
		ID:          id,
		Owner:       rec.Source,
		Title:       payload.Title,
		Description: payload.Description,
		Goal:        payload.Goal,
	}

	milestones := make([]repository.Milestone, 0, len(payload.Milestones))
	for i, m := range payload.Milestones {
		milestones = append(milestones, repository.Milestone{
			ProjectID:      id,
			MilestoneIndex: uint32(i),
			Title:          m.Title,
			Description:    m.Description,
			Amount:         m.Amount,
			Deadline:       time.Unix(m.Deadline, 0).UTC(),
			Status:         string(milestone.StatusPending),
		})
	}

	if err := b.repo.SaveProject(ctx, project, milestones); err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	rec.ProjectID = id
	b.logs.Infow("project recorded", "projectId", id, "owner", rec.Source, "milestones", len(milestones))
	return nil
}
