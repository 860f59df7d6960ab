package core_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"crowdbridge/internal/core"
	"crowdbridge/internal/core/fake"
	"crowdbridge/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracker", func() {
	var (
		tracker    *core.Tracker
		fakeLedger *fake.Ledger
		ctx        context.Context
		envelope   core.SignedEnvelope
		result     core.SubmissionResult
		err        error
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		ctx = context.Background()
		to := common.HexToAddress("0x00000000000000000000000000000000000b1d9e")
		envelope = core.SignedEnvelope{
			Source:     common.HexToAddress("0x2222222222222222222222222222222222222222"),
			ValidUntil: time.Now().Add(time.Minute),
			Tx: types.NewTx(&types.LegacyTx{
				Nonce:    1,
				GasPrice: big.NewInt(1),
				Gas:      21000,
				To:       &to,
				Value:    new(big.Int),
			}),
		}
		tracker = core.NewTracker(zap.NewNop().Sugar(), fakeLedger, time.Millisecond, 20)
	})

	JustBeforeEach(func() {
		result, err = tracker.Submit(ctx, envelope)
	})

	When("the first status is already terminal", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxSuccess}, nil)
		})

		It("returns without polling", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusSuccess))
			Expect(result.Polls).To(Equal(0))
			Expect(result.Hash).To(Equal(envelope.Tx.Hash().Hex()))
			Expect(fakeLedger.BroadcastCallCount()).To(Equal(1))
			Expect(fakeLedger.TransactionStatusCallCount()).To(Equal(0))
		})
	})

	When("the transaction fails on the ledger", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
			fakeLedger.TransactionStatusReturnsOnCall(0, ledger.Receipt{Status: ledger.TxPending}, nil)
			fakeLedger.TransactionStatusReturnsOnCall(1, ledger.Receipt{Status: ledger.TxFailed}, nil)
		})

		It("stops at the first terminal status", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusFailed))
			Expect(result.Polls).To(Equal(2))
			_, hash := fakeLedger.TransactionStatusArgsForCall(1)
			Expect(hash).To(Equal(envelope.Tx.Hash()))
		})
	})

	When("the transaction succeeds after a poll", func() {
		var emitted []*types.Log

		BeforeEach(func() {
			emitted = []*types.Log{{Data: []byte{0x03}}}
			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
			fakeLedger.TransactionStatusReturns(ledger.Receipt{Status: ledger.TxSuccess, Logs: emitted}, nil)
		})

		It("keeps the logs of the settled transaction", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusSuccess))
			Expect(result.Polls).To(Equal(1))
			Expect(result.Logs).To(Equal(emitted))
		})
	})

	When("the transaction never settles", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
			fakeLedger.TransactionStatusReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
		})

		It("reports a timeout after the last allowed poll", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusTimedOut))
			Expect(result.Polls).To(Equal(20))
			Expect(fakeLedger.TransactionStatusCallCount()).To(Equal(20))
			Expect(fakeLedger.BroadcastCallCount()).To(Equal(1))
		})
	})

	When("status polls fail", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
			fakeLedger.TransactionStatusReturns(ledger.Receipt{}, errors.New("node unreachable"))
			fakeLedger.TransactionStatusReturnsOnCall(2, ledger.Receipt{Status: ledger.TxSuccess}, nil)
		})

		It("counts them as attempts and keeps polling", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(core.StatusSuccess))
			Expect(result.Polls).To(Equal(3))
		})
	})

	When("the context is cancelled while waiting", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(context.Background())
			DeferCleanup(cancel)

			fakeLedger.BroadcastReturns(ledger.Receipt{Status: ledger.TxPending}, nil)
			fakeLedger.TransactionStatusCalls(func(_ context.Context, h common.Hash) (ledger.Receipt, error) {
				if fakeLedger.TransactionStatusCallCount() == 3 {
					cancel()
				}
				return ledger.Receipt{Hash: h.Hex(), Status: ledger.TxPending}, nil
			})
		})

		It("returns the last observed result with the cancellation", func() {
			Expect(err).To(MatchError(context.Canceled))
			Expect(result.Status).To(Equal(core.StatusPending))
			Expect(result.Polls).To(Equal(3))
			Expect(result.Hash).To(Equal(envelope.Tx.Hash().Hex()))
			Expect(fakeLedger.TransactionStatusCallCount()).To(Equal(3))
		})
	})

	When("the broadcast is refused", func() {
		BeforeEach(func() {
			fakeLedger.BroadcastReturns(ledger.Receipt{}, ledger.ErrBroadcastRejected)
		})

		It("returns a broadcast failure without a hash", func() {
			Expect(err).To(MatchError(core.ErrBroadcastFailed))
			Expect(err).To(MatchError(ledger.ErrBroadcastRejected))
			Expect(result.Hash).To(BeEmpty())
			Expect(fakeLedger.TransactionStatusCallCount()).To(Equal(0))
		})
	})

	When("the envelope has expired", func() {
		BeforeEach(func() {
			envelope.ValidUntil = time.Now().Add(-time.Second)
		})

		It("refuses to broadcast", func() {
			Expect(err).To(MatchError(core.ErrEnvelopeExpired))
			Expect(fakeLedger.BroadcastCallCount()).To(Equal(0))
		})
	})
})
