package core_test

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/core"
	"crowdbridge/internal/core/fake"
	"crowdbridge/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Assembler", func() {
	var (
		assembler  *core.Assembler
		fakeLedger *fake.Ledger
		builder    *contract.Builder
		ctx        context.Context
		source     common.Address
		op         contract.Operation
		fee        core.FeePolicy
	)

	BeforeEach(func() {
		var err error
		builder, err = contract.NewBuilder(common.HexToAddress("0x00000000000000000000000000000000000b1d9e"))
		Expect(err).NotTo(HaveOccurred())

		source = common.HexToAddress("0x2222222222222222222222222222222222222222")
		op, err = builder.BuildCall(contract.Invest, source, big.NewInt(50_000_000))
		Expect(err).NotTo(HaveOccurred())

		fakeLedger = new(fake.Ledger)
		fakeLedger.AccountReturns(ledger.Account{Address: source, Nonce: 9}, nil)
		fakeLedger.EstimateGasReturns(48000, nil)
		fakeLedger.ChainIDReturns(big.NewInt(1337), nil)

		ctx = context.Background()
		fee = core.FeePolicy{BaseFee: big.NewInt(2_000_000_000)}
		assembler = core.NewAssembler(zap.NewNop().Sugar(), fakeLedger)
	})

	Describe("Assemble", func() {
		It("reads the current sequence of the source", func() {
			env, err := assembler.Assemble(ctx, source, []contract.Operation{op}, fee, time.Minute)
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Nonce).To(Equal(uint64(9)))
			Expect(env.Source).To(Equal(source))
			Expect(env.Fee).To(Equal(big.NewInt(2_000_000_000)))
			Expect(env.ValidUntil).To(BeTemporally("~", time.Now().Add(time.Minute), time.Second))
		})

		It("reads the sequence again for every envelope", func() {
			fakeLedger.AccountReturnsOnCall(1, ledger.Account{Address: source, Nonce: 10}, nil)

			first, err := assembler.Assemble(ctx, source, []contract.Operation{op}, fee, time.Minute)
			Expect(err).NotTo(HaveOccurred())
			second, err := assembler.Assemble(ctx, source, []contract.Operation{op}, fee, time.Minute)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeLedger.AccountCallCount()).To(Equal(2))
			Expect(first.Nonce).To(Equal(uint64(9)))
			Expect(second.Nonce).To(Equal(uint64(10)))
		})

		It("rejects more than one operation", func() {
			_, err := assembler.Assemble(ctx, source, []contract.Operation{op, op}, fee, time.Minute)
			Expect(err).To(MatchError(core.ErrInvalidCallShape))
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
		})

		It("rejects read-only operations", func() {
			read, err := builder.BuildCall(contract.GetProjectCount)
			Expect(err).NotTo(HaveOccurred())

			_, err = assembler.Assemble(ctx, source, []contract.Operation{read}, fee, time.Minute)
			Expect(err).To(MatchError(core.ErrInvalidCallShape))
		})

		It("rejects a fee policy without a base fee", func() {
			_, err := assembler.Assemble(ctx, source, []contract.Operation{op}, core.FeePolicy{}, time.Minute)
			Expect(err).To(HaveOccurred())
			Expect(fakeLedger.AccountCallCount()).To(Equal(0))
		})

		It("reports unknown source accounts", func() {
			fakeLedger.AccountReturns(ledger.Account{}, fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, source.Hex()))

			_, err := assembler.Assemble(ctx, source, []contract.Operation{op}, fee, time.Minute)
			Expect(err).To(MatchError(core.ErrAccountNotFound))
		})
	})

	Describe("Prepare", func() {
		var env core.Envelope

		BeforeEach(func() {
			env = core.Envelope{
				Source:     source,
				Nonce:      9,
				Operations: []contract.Operation{op},
				Fee:        big.NewInt(2_000_000_000),
				ValidUntil: time.Now().Add(time.Minute),
			}
		})

		It("builds the transaction to sign", func() {
			prepared, err := assembler.Prepare(ctx, env)
			Expect(err).NotTo(HaveOccurred())
			Expect(prepared.Gas).To(Equal(uint64(48000)))
			Expect(prepared.ChainID).To(Equal(big.NewInt(1337)))
			Expect(prepared.Tx.Nonce()).To(Equal(uint64(9)))
			Expect(prepared.Tx.Gas()).To(Equal(uint64(48000)))
			Expect(prepared.Tx.GasPrice()).To(Equal(big.NewInt(2_000_000_000)))
			Expect(*prepared.Tx.To()).To(Equal(builder.Address()))
			Expect(prepared.Tx.Data()).To(Equal(op.Data))
			Expect(prepared.Tx.Value().Sign()).To(Equal(0))

			_, from, simulated := fakeLedger.SimulateArgsForCall(0)
			Expect(from).To(Equal(source))
			Expect(simulated.Method).To(Equal(contract.Invest))
		})

		It("surfaces the contract's reason for a reverted simulation", func() {
			fakeLedger.SimulateReturns(nil, fmt.Errorf("%w: Project not active", ledger.ErrExecutionReverted))

			_, err := assembler.Prepare(ctx, env)
			Expect(err).To(MatchError(core.ErrSimulationFailed))
			Expect(err.Error()).To(ContainSubstring("Project not active"))
			Expect(fakeLedger.EstimateGasCallCount()).To(Equal(0))
		})

		It("does not treat node failures as reverts", func() {
			fakeLedger.SimulateReturns(nil, fmt.Errorf("%w: dial tcp", ledger.ErrNodeUnavailable))

			_, err := assembler.Prepare(ctx, env)
			Expect(err).To(MatchError(core.ErrLedgerUnavailable))
			Expect(err).NotTo(MatchError(core.ErrSimulationFailed))
		})

		It("refuses an expired envelope", func() {
			env.ValidUntil = time.Now().Add(-time.Second)

			_, err := assembler.Prepare(ctx, env)
			Expect(err).To(MatchError(core.ErrEnvelopeExpired))
			Expect(fakeLedger.SimulateCallCount()).To(Equal(0))
		})
	})
})
