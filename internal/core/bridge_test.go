package core_test

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/core"
	"crowdbridge/internal/core/fake"
	"crowdbridge/internal/evidence"
	"crowdbridge/internal/ledger"
	"crowdbridge/internal/milestone"
	"crowdbridge/internal/repository"
	"crowdbridge/internal/signer"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Bridge", func() {
	var (
		bridge       *core.Bridge
		settings     core.Settings
		builder      *contract.Builder
		fakeLedger   *fake.Ledger
		fakeAgent    *fake.SigningAgent
		fakeRepo     *fake.Repository
		fakeCache    *fake.ProjectionCache
		fakeJWT      *fake.JWTIssuer
		fakeRecorder *fake.Recorder
		key          *ecdsa.PrivateKey
		source       common.Address
		ctx          context.Context
	)

	BeforeEach(func() {
		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		source = crypto.PubkeyToAddress(key.PublicKey)

		builder, err = contract.NewBuilder(common.HexToAddress("0x00000000000000000000000000000000000b1d9e"))
		Expect(err).NotTo(HaveOccurred())

		fakeLedger = new(fake.Ledger)
		fakeLedger.AccountReturns(ledger.Account{Address: source, Nonce: 4}, nil)
		fakeLedger.EstimateGasReturns(60000, nil)
		fakeLedger.ChainIDReturns(big.NewInt(1337), nil)
		fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxSuccess}, nil)

		fakeAgent = new(fake.SigningAgent)
		fakeAgent.SignTransactionCalls(func(_ context.Context, _ common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
			return types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
		})

		fakeRepo = new(fake.Repository)
		fakeCache = new(fake.ProjectionCache)
		fakeJWT = new(fake.JWTIssuer)
		fakeRecorder = new(fake.Recorder)

		settings = core.DefaultSettings()
		settings.PollInterval = time.Millisecond
		ctx = context.Background()
	})

	JustBeforeEach(func() {
		bridge = core.NewBridge(
			zap.NewNop().Sugar(),
			settings,
			builder,
			fakeLedger,
			fakeAgent,
			fakeRepo,
			fakeCache,
			fakeJWT,
			fakeRecorder)
	})

	Describe("Invest", func() {
		It("submits the investment in ledger units and records it", func() {
			result, err := bridge.Invest(ctx, source, 12.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusSuccess))
			Expect(result.Polls).To(Equal(0))
			Expect(result.Hash).NotTo(BeEmpty())

			_, _, op := fakeLedger.SimulateArgsForCall(0)
			Expect(op.Method).To(Equal(contract.Invest))
			Expect(op.Args[0]).To(Equal(source))
			Expect(op.Args[1]).To(Equal(big.NewInt(125_000_000)))

			Expect(fakeRepo.SaveSubmissionCallCount()).To(Equal(1))
			_, rec := fakeRepo.SaveSubmissionArgsForCall(0)
			Expect(rec.Hash).To(Equal(result.Hash))
			Expect(rec.Method).To(Equal("invest"))
			Expect(rec.Source).To(Equal(source.Hex()))
			Expect(rec.ProjectID).To(Equal(uint32(1)))
			Expect(rec.Status).To(Equal("success"))
			Expect(rec.ID).NotTo(BeEmpty())

			Expect(fakeRecorder.ObserveSubmissionCallCount()).To(Equal(1))
			method, status, polls := fakeRecorder.ObserveSubmissionArgsForCall(0)
			Expect(method).To(Equal("invest"))
			Expect(status).To(Equal("success"))
			Expect(polls).To(Equal(0))
		})

		It("rejects negative amounts before touching the ledger", func() {
			_, err := bridge.Invest(ctx, source, -1)
			Expect(err).To(MatchError(core.ErrInvalidAmount))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
		})

		It("rejects an amount the contract cannot hold before touching the ledger", func() {
			_, err := bridge.Invest(ctx, source, 1e40)
			Expect(err).To(MatchError(core.ErrInvalidAmount))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
			Expect(fakeLedger.SimulateCallCount()).To(Equal(0))
		})

		It("rejects a zero investment", func() {
			_, err := bridge.Invest(ctx, source, 0)
			Expect(err).To(MatchError(core.ErrInvalidAmount))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
		})

		When("the simulation reverts", func() {
			BeforeEach(func() {
				fakeLedger.SimulateReturns(nil, fmt.Errorf("%w: Project not active", ledger.ErrExecutionReverted))
			})

			It("never asks for a signature", func() {
				_, err := bridge.Invest(ctx, source, 10)
				Expect(err).To(MatchError(core.ErrSimulationFailed))
				Expect(err.Error()).To(ContainSubstring("Project not active"))
				Expect(fakeAgent.SignTransactionCallCount()).To(Equal(0))
				Expect(fakeRepo.SaveSubmissionCallCount()).To(Equal(0))
			})
		})

		When("the user declines to sign", func() {
			BeforeEach(func() {
				fakeAgent.SignTransactionReturns(nil, signer.ErrUserDeclined)
			})

			It("broadcasts nothing", func() {
				_, err := bridge.Invest(ctx, source, 10)
				Expect(err).To(MatchError(core.ErrUserDeclined))
				Expect(fakeLedger.BroadcastCallCount()).To(Equal(0))
				Expect(fakeRepo.SaveSubmissionCallCount()).To(Equal(0))
				Expect(fakeRecorder.ObserveSubmissionCallCount()).To(Equal(0))
			})
		})

		When("the transaction stays pending", func() {
			BeforeEach(func() {
				fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
				fakeLedger.TransactionStatusReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
			})

			It("records the submission as timed out", func() {
				result, err := bridge.Invest(ctx, source, 10)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusTimedOut))
				Expect(result.Polls).To(Equal(20))

				_, rec := fakeRepo.SaveSubmissionArgsForCall(0)
				Expect(rec.Status).To(Equal("timed_out"))
				Expect(rec.Polls).To(Equal(20))
			})
		})

		When("the caller gives up while waiting", func() {
			var cancel context.CancelFunc

			BeforeEach(func() {
				ctx, cancel = context.WithCancel(context.Background())
				DeferCleanup(cancel)

				fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
				fakeLedger.TransactionStatusCalls(func(context.Context, common.Hash) (ledger.Receipt, error) {
					cancel()
					return ledger.Receipt{Status: ledger.TxPending}, nil
				})
			})

			It("still records what was broadcast", func() {
				result, err := bridge.Invest(ctx, source, 10)
				Expect(err).To(MatchError(context.Canceled))
				Expect(result.Hash).NotTo(BeEmpty())
				Expect(result.Status).To(Equal(core.StatusPending))

				Expect(fakeRepo.SaveSubmissionCallCount()).To(Equal(1))
				saveCtx, rec := fakeRepo.SaveSubmissionArgsForCall(0)
				Expect(saveCtx.Err()).NotTo(HaveOccurred())
				Expect(rec.Status).To(Equal("pending"))
			})
		})
	})

	Describe("CreateProject", func() {
		var plan milestone.Plan

		BeforeEach(func() {
			deadline := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
			plan = milestone.Plan{
				Title:       "Solar roof",
				Description: "Panels for the community hall",
				Goal:        1000,
				Milestones: []milestone.Draft{
					{Title: "Design", Amount: 400, Deadline: deadline},
					{Title: "Install", Amount: 600, Deadline: deadline.AddDate(0, 2, 0)},
				},
			}

			created, err := builder.ProjectCreatedLog(3, source)
			Expect(err).NotTo(HaveOccurred())
			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxSuccess, Logs: []*types.Log{created}}, nil)
		})

		It("stores the confirmed project under the id the contract assigned", func() {
			result, err := bridge.CreateProject(ctx, source, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ProjectID).To(Equal(uint32(3)))
			Expect(result.Submission.Status).To(Equal(core.StatusSuccess))

			Expect(fakeRepo.SaveProjectCallCount()).To(Equal(1))
			_, project, milestones := fakeRepo.SaveProjectArgsForCall(0)
			Expect(project.ID).To(Equal(uint32(3)))
			Expect(project.Owner).To(Equal(source.Hex()))
			Expect(project.Title).To(Equal("Solar roof"))
			Expect(project.Goal).To(Equal("10000000000"))
			Expect(milestones).To(HaveLen(2))
			Expect(milestones[1].MilestoneIndex).To(Equal(uint32(1)))
			Expect(milestones[1].Amount).To(Equal("6000000000"))
			Expect(milestones[1].Status).To(Equal(string(milestone.StatusPending)))
			Expect(milestones[0].Deadline).To(BeTemporally("==", plan.Milestones[0].Deadline))

			_, rec := fakeRepo.SaveSubmissionArgsForCall(0)
			Expect(rec.ProjectID).To(Equal(uint32(3)))
			Expect(rec.Method).To(Equal("create_project"))
		})

		When("another project lands before the creation is recorded", func() {
			BeforeEach(func() {
				fakeLedger.SimulateCalls(func(_ context.Context, _ common.Address, op contract.Operation) ([]byte, error) {
					if op.Method == contract.GetProjectCount {
						return builder.EncodeResult(contract.GetProjectCount, uint32(4))
					}
					return nil, nil
				})
			})

			It("keeps the id from its own receipt", func() {
				result, err := bridge.CreateProject(ctx, source, plan)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ProjectID).To(Equal(uint32(3)))

				_, project, _ := fakeRepo.SaveProjectArgsForCall(0)
				Expect(project.ID).To(Equal(uint32(3)))

				for i := 0; i < fakeLedger.SimulateCallCount(); i++ {
					_, _, op := fakeLedger.SimulateArgsForCall(i)
					Expect(op.Method).NotTo(Equal(contract.GetProjectCount))
				}
			})
		})

		When("the receipt credits the project to someone else", func() {
			BeforeEach(func() {
				created, err := builder.ProjectCreatedLog(3, common.HexToAddress("0x9999999999999999999999999999999999999999"))
				Expect(err).NotTo(HaveOccurred())
				fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxSuccess, Logs: []*types.Log{created}}, nil)
			})

			It("does not store the project", func() {
				result, err := bridge.CreateProject(ctx, source, plan)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Submission.Status).To(Equal(core.StatusSuccess))
				Expect(result.ProjectID).To(BeZero())
				Expect(fakeRepo.SaveProjectCallCount()).To(Equal(0))
				Expect(fakeRepo.SaveSubmissionCallCount()).To(Equal(1))
			})
		})

		When("the receipt carries no creation event", func() {
			BeforeEach(func() {
				fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxSuccess}, nil)
			})

			It("does not guess an id", func() {
				result, err := bridge.CreateProject(ctx, source, plan)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ProjectID).To(BeZero())
				Expect(fakeRepo.SaveProjectCallCount()).To(Equal(0))
			})
		})

		It("rejects a goal the contract cannot hold before any ledger call", func() {
			plan.Goal = 1e40

			_, err := bridge.CreateProject(ctx, source, plan)
			Expect(err).To(MatchError(core.ErrInvalidAmount))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
		})

		It("blocks milestones that exceed the goal before any ledger call", func() {
			plan.Milestones = []milestone.Draft{
				{Title: "One", Amount: 300, Deadline: time.Now().Add(time.Hour)},
				{Title: "Two", Amount: 400, Deadline: time.Now().Add(time.Hour)},
				{Title: "Three", Amount: 400, Deadline: time.Now().Add(time.Hour)},
			}

			_, err := bridge.CreateProject(ctx, source, plan)
			Expect(err).To(MatchError(core.ErrInvalidPlan))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
			Expect(fakeAgent.SignTransactionCallCount()).To(Equal(0))
		})

		When("the project is not confirmed", func() {
			BeforeEach(func() {
				fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxFailed}, nil)
			})

			It("does not store the project", func() {
				result, err := bridge.CreateProject(ctx, source, plan)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Submission.Status).To(Equal(core.StatusFailed))
				Expect(result.ProjectID).To(BeZero())
				Expect(fakeRepo.SaveProjectCallCount()).To(Equal(0))

				_, rec := fakeRepo.SaveSubmissionArgsForCall(0)
				Expect(rec.Payload).To(ContainSubstring("Solar roof"))
			})
		})
	})

	Describe("SubmitEvidence", func() {
		var fp evidence.Fingerprint

		BeforeEach(func() {
			fp = evidence.FromBytes([]byte("site survey report"))
			fakeRepo.GetProjectReturns(repository.Project{ID: 1, Owner: source.Hex()}, nil)
			fakeRepo.GetMilestoneReturns(repository.Milestone{ProjectID: 1, MilestoneIndex: 0, Status: "pending"}, nil)
		})

		It("commits the fingerprint and moves the milestone to review", func() {
			result, err := bridge.SubmitEvidence(ctx, source, 1, 0, fp)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusSuccess))

			_, _, op := fakeLedger.SimulateArgsForCall(0)
			Expect(op.Method).To(Equal(contract.SubmitEvidence))
			Expect(op.Args[2]).To(Equal([32]byte(fp)))

			Expect(fakeRepo.SaveEvidenceCallCount()).To(Equal(1))
			_, ev := fakeRepo.SaveEvidenceArgsForCall(0)
			Expect(ev.Fingerprint).To(Equal(fp.Hex()))
			Expect(ev.TxHash).To(Equal(result.Hash))

			Expect(fakeRepo.UpdateMilestoneStatusCallCount()).To(Equal(1))
			_, projectID, index, status := fakeRepo.UpdateMilestoneStatusArgsForCall(0)
			Expect(projectID).To(Equal(uint32(1)))
			Expect(index).To(Equal(uint32(0)))
			Expect(status).To(Equal("evidence_submitted"))
			Expect(fakeCache.InvalidateCallCount()).To(Equal(1))
		})

		It("uses the cached projection when present", func() {
			fakeCache.GetStatusReturns(milestone.StatusVerified, true, nil)

			_, err := bridge.SubmitEvidence(ctx, source, 1, 0, fp)
			Expect(err).To(MatchError(core.ErrInvalidTransition))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
			Expect(fakeLedger.BroadcastCallCount()).To(Equal(0))
		})

		It("fills the cache on a miss", func() {
			_, err := bridge.SubmitEvidence(ctx, source, 1, 0, fp)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeCache.SetStatusCallCount()).To(Equal(1))
			_, _, _, status := fakeCache.SetStatusArgsForCall(0)
			Expect(status).To(Equal(milestone.StatusPending))
		})

		It("refuses projects owned by someone else", func() {
			fakeRepo.GetProjectReturns(repository.Project{ID: 1, Owner: common.HexToAddress("0x99").Hex()}, nil)

			_, err := bridge.SubmitEvidence(ctx, source, 1, 0, fp)
			Expect(err).To(MatchError(core.ErrNotProjectOwner))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
		})

		It("refuses an empty fingerprint", func() {
			_, err := bridge.SubmitEvidence(ctx, source, 1, 0, evidence.Fingerprint{})
			Expect(err).To(MatchError(core.ErrInvalidFingerprint))
			Expect(fakeRepo.GetProjectCallCount()).To(Equal(0))
		})

		It("reports unknown milestones", func() {
			fakeRepo.GetMilestoneReturns(repository.Milestone{}, repository.ErrMilestoneNotFound)

			_, err := bridge.SubmitEvidence(ctx, source, 1, 7, fp)
			Expect(err).To(MatchError(core.ErrMilestoneNotFound))
		})
	})

	Describe("VerifyMilestone", func() {
		BeforeEach(func() {
			fakeRepo.GetProjectReturns(repository.Project{ID: 1}, nil)
			fakeCache.GetStatusReturns(milestone.StatusEvidenceSubmitted, true, nil)
			fakeRepo.GetMilestoneReturns(repository.Milestone{ProjectID: 1, MilestoneIndex: 0, Status: "evidence_submitted"}, nil)
		})

		It("marks an approved milestone verified", func() {
			_, err := bridge.VerifyMilestone(ctx, source, 1, 0, true)
			Expect(err).NotTo(HaveOccurred())

			_, _, op := fakeLedger.SimulateArgsForCall(0)
			Expect(op.Method).To(Equal(contract.VerifyMilestone))
			Expect(op.Args[2]).To(Equal(true))

			_, _, _, status := fakeRepo.UpdateMilestoneStatusArgsForCall(0)
			Expect(status).To(Equal("verified"))
		})

		It("marks a refused milestone rejected", func() {
			_, err := bridge.VerifyMilestone(ctx, source, 1, 0, false)
			Expect(err).NotTo(HaveOccurred())

			_, _, _, status := fakeRepo.UpdateMilestoneStatusArgsForCall(0)
			Expect(status).To(Equal("rejected"))
		})

		It("refuses milestones that have no evidence yet", func() {
			fakeCache.GetStatusReturns(milestone.StatusPending, true, nil)

			_, err := bridge.VerifyMilestone(ctx, source, 1, 0, true)
			Expect(err).To(MatchError(core.ErrInvalidTransition))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
		})

		It("leaves the projection alone when the transaction fails", func() {
			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxFailed}, nil)

			result, err := bridge.VerifyMilestone(ctx, source, 1, 0, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusFailed))
			Expect(fakeRepo.UpdateMilestoneStatusCallCount()).To(Equal(0))
		})
	})

	Describe("CheckSubmission", func() {
		var (
			hash  string
			index uint32
			yes   bool
		)

		BeforeEach(func() {
			hash = common.HexToHash("0xabc1").Hex()
			index = 0
			yes = true
			fakeRepo.GetSubmissionReturns(repository.Submission{
				Hash:           hash,
				Method:         "verify_milestone",
				ProjectID:      1,
				MilestoneIndex: &index,
				Approved:       &yes,
				Status:         "timed_out",
				Polls:          20,
			}, nil)
			fakeRepo.GetMilestoneReturns(repository.Milestone{ProjectID: 1, Status: "evidence_submitted"}, nil)
		})

		It("settles a timed out submission that has since succeeded", func() {
			fakeLedger.TransactionStatusReturns(ledger.Receipt{Status: ledger.TxSuccess}, nil)

			result, err := bridge.CheckSubmission(ctx, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusSuccess))
			Expect(fakeLedger.BroadcastCallCount()).To(Equal(0))

			_, updated := fakeRepo.UpdateSubmissionArgsForCall(0)
			Expect(updated.Hash).To(Equal(hash))
			Expect(updated.Status).To(Equal("success"))
			Expect(updated.Polls).To(Equal(20))

			_, _, _, milestoneStatus := fakeRepo.UpdateMilestoneStatusArgsForCall(0)
			Expect(milestoneStatus).To(Equal("verified"))
		})

		It("stores a late project under the id its receipt reports", func() {
			fakeRepo.GetSubmissionReturns(repository.Submission{
				Hash:    hash,
				Method:  "create_project",
				Source:  source.Hex(),
				Payload: `{"title":"Well","goal":"10000000000","milestones":[{"title":"Dig","amount":"10000000000","deadline":1900000000}]}`,
				Status:  "timed_out",
				Polls:   20,
			}, nil)
			created, err := builder.ProjectCreatedLog(7, source)
			Expect(err).NotTo(HaveOccurred())
			fakeLedger.TransactionStatusReturns(ledger.Receipt{Status: ledger.TxSuccess, Logs: []*types.Log{created}}, nil)

			result, err := bridge.CheckSubmission(ctx, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusSuccess))
			Expect(fakeLedger.SimulateCallCount()).To(Equal(0))

			_, project, milestones := fakeRepo.SaveProjectArgsForCall(0)
			Expect(project.ID).To(Equal(uint32(7)))
			Expect(project.Owner).To(Equal(source.Hex()))
			Expect(milestones).To(HaveLen(1))
			Expect(milestones[0].ProjectID).To(Equal(uint32(7)))

			_, updated := fakeRepo.UpdateSubmissionArgsForCall(0)
			Expect(updated.ProjectID).To(Equal(uint32(7)))
			Expect(updated.Status).To(Equal("success"))
		})

		It("keeps the stored status while the ledger has no answer", func() {
			fakeLedger.TransactionStatusReturns(ledger.Receipt{Status: ledger.TxPending}, nil)

			result, err := bridge.CheckSubmission(ctx, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusTimedOut))
			Expect(fakeRepo.UpdateSubmissionCallCount()).To(Equal(0))
		})

		It("does not ask the ledger about settled submissions", func() {
			fakeRepo.GetSubmissionReturns(repository.Submission{Hash: hash, Status: "failed", Polls: 2}, nil)

			result, err := bridge.CheckSubmission(ctx, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusFailed))
			Expect(result.Polls).To(Equal(2))
			Expect(fakeLedger.TransactionStatusCallCount()).To(Equal(0))
		})

		It("reports unknown submissions", func() {
			fakeRepo.GetSubmissionReturns(repository.Submission{}, repository.ErrSubmissionNotFound)

			_, err := bridge.CheckSubmission(ctx, hash)
			Expect(err).To(MatchError(core.ErrSubmissionNotFound))
		})
	})

	Describe("read model", func() {
		It("returns the raised total in display units", func() {
			fakeLedger.SimulateCalls(func(_ context.Context, from common.Address, op contract.Operation) ([]byte, error) {
				Expect(op.Method).To(Equal(contract.GetProject))
				Expect(from).To(Equal(common.Address{}))
				return builder.EncodeResult(contract.GetProject, big.NewInt(25_000_000))
			})

			Expect(bridge.GetProjectRaised(ctx, 1)).To(Equal(2.5))
			Expect(fakeRecorder.ReadModelFailureCallCount()).To(Equal(0))
		})

		It("returns an investor's contribution", func() {
			fakeLedger.SimulateCalls(func(_ context.Context, _ common.Address, op contract.Operation) ([]byte, error) {
				Expect(op.Args).To(Equal([]any{uint32(1), source}))
				return builder.EncodeResult(contract.GetInvestorAmount, big.NewInt(100_000_000))
			})

			Expect(bridge.GetInvestorContribution(ctx, source, 1)).To(Equal(10.0))
		})

		It("reports zero and counts the failure when the query fails", func() {
			fakeLedger.SimulateReturns(nil, ledger.ErrNodeUnavailable)

			Expect(bridge.GetProjectRaised(ctx, 1)).To(Equal(0.0))
			Expect(fakeRecorder.ReadModelFailureCallCount()).To(Equal(1))
			Expect(fakeRecorder.ReadModelFailureArgsForCall(0)).To(Equal("get_project"))
		})

		It("returns the project count", func() {
			fakeLedger.SimulateCalls(func(_ context.Context, _ common.Address, op contract.Operation) ([]byte, error) {
				Expect(op.Method).To(Equal(contract.GetProjectCount))
				return builder.EncodeResult(contract.GetProjectCount, uint32(6))
			})

			Expect(bridge.ProjectCount(ctx)).To(Equal(uint32(6)))
		})

		It("reports no projects and counts the failure when the count cannot be read", func() {
			fakeLedger.SimulateReturns(nil, ledger.ErrNodeUnavailable)

			Expect(bridge.ProjectCount(ctx)).To(BeZero())
			Expect(fakeRecorder.ReadModelFailureArgsForCall(0)).To(Equal("get_project_count"))
		})

		It("lists the projected milestones", func() {
			fakeRepo.GetProjectReturns(repository.Project{ID: 1}, nil)
			fakeRepo.ListMilestonesReturns([]repository.Milestone{
				{ProjectID: 1, MilestoneIndex: 0, Title: "Design", Amount: "4000000000", Status: "verified"},
				{ProjectID: 1, MilestoneIndex: 1, Title: "Install", Amount: "6000000000", Status: "pending"},
			}, nil)
			fakeCache.GetStatusReturnsOnCall(1, milestone.StatusEvidenceSubmitted, true, nil)

			views, err := bridge.Milestones(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(2))
			Expect(views[0].Status).To(Equal(milestone.StatusVerified))
			Expect(views[0].Amount).To(Equal(400.0))
			Expect(views[1].Status).To(Equal(milestone.StatusEvidenceSubmitted))
		})

		It("reports unknown projects", func() {
			fakeRepo.GetProjectReturns(repository.Project{}, repository.ErrProjectNotFound)

			_, err := bridge.Milestones(ctx, 42)
			Expect(err).To(MatchError(core.ErrProjectNotFound))
		})
	})

	Describe("Agent", func() {
		It("reports availability and the granted account", func() {
			fakeAgent.AvailableReturns(true)
			fakeAgent.AddressReturns(source, true)

			info := bridge.Agent(ctx)
			Expect(info.Available).To(BeTrue())
			Expect(info.Address).To(Equal(source.Hex()))
			Expect(fakeAgent.RequestAccessCallCount()).To(Equal(0))
		})

		It("treats an agent without accounts as unavailable", func() {
			fakeAgent.RequestAccessReturns(common.Address{}, signer.ErrNoAccount)

			_, err := bridge.ConnectAgent(ctx)
			Expect(err).To(MatchError(core.ErrAgentUnavailable))
		})
	})
})
