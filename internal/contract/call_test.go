package contract_test

import (
	"math/big"

	"crowdbridge/internal/contract"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	var (
		builder  *contract.Builder
		address  common.Address
		investor common.Address
	)

	BeforeEach(func() {
		var err error
		address = common.HexToAddress("0x00000000000000000000000000000000000b1d9e")
		investor = common.HexToAddress("0x1111111111111111111111111111111111111111")
		builder, err = contract.NewBuilder(address)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("BuildCall", func() {
		var (
			method contract.Method
			args   []any
			op     contract.Operation
			err    error
		)

		JustBeforeEach(func() {
			op, err = builder.BuildCall(method, args...)
		})

		When("invest is called with an address and an amount", func() {
			BeforeEach(func() {
				method = contract.Invest
				args = []any{investor, big.NewInt(100_000_000)}
			})

			It("encodes the call against the contract", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(op.Contract).To(Equal(address))
				Expect(op.Method).To(Equal(contract.Invest))
				Expect(op.Args).To(Equal(args))
				// 4 byte selector + 2 words
				Expect(op.Data).To(HaveLen(4 + 2*32))
			})
		})

		When("create_project is called with its full schema", func() {
			BeforeEach(func() {
				method = contract.CreateProject
				args = []any{
					investor,
					big.NewInt(1000),
					[]*big.Int{big.NewInt(300), big.NewInt(400)},
					[]uint64{1_900_000_000, 1_900_086_400},
				}
			})

			It("encodes the call", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(op.Data).NotTo(BeEmpty())
			})
		})

		When("submit_evidence is given a 32 byte fingerprint", func() {
			BeforeEach(func() {
				method = contract.SubmitEvidence
				args = []any{uint32(1), uint32(0), [32]byte{0xaa}}
			})

			It("encodes the call", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(op.Data).To(HaveLen(4 + 3*32))
			})
		})

		When("verify_milestone is called", func() {
			BeforeEach(func() {
				method = contract.VerifyMilestone
				args = []any{uint32(1), uint32(0), true}
			})

			It("encodes the call", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(op.Method.ReadOnly()).To(BeFalse())
			})
		})

		When("the method is not part of the contract", func() {
			BeforeEach(func() {
				method = contract.Method("withdraw")
				args = nil
			})

			It("fails with an invalid call shape", func() {
				Expect(err).To(MatchError(contract.ErrInvalidCallShape))
			})
		})

		When("the arity does not match", func() {
			BeforeEach(func() {
				method = contract.Invest
				args = []any{investor}
			})

			It("fails with an invalid call shape", func() {
				Expect(err).To(MatchError(contract.ErrInvalidCallShape))
				Expect(err.Error()).To(ContainSubstring("takes 2 arguments, got 1"))
			})
		})

		When("an argument has the wrong type", func() {
			BeforeEach(func() {
				method = contract.VerifyMilestone
				args = []any{1, uint32(0), true}
			})

			It("fails with an invalid call shape", func() {
				Expect(err).To(MatchError(contract.ErrInvalidCallShape))
				Expect(err.Error()).To(ContainSubstring("projectId"))
			})
		})

		When("an amount does not fit int128", func() {
			BeforeEach(func() {
				method = contract.Invest
				tooLarge, _ := new(big.Int).SetString("100000000000000000000000000000000000000000000000", 10)
				args = []any{investor, tooLarge}
			})

			It("fails with an invalid call shape", func() {
				Expect(err).To(MatchError(contract.ErrInvalidCallShape))
				Expect(err.Error()).To(ContainSubstring("out of range"))
			})
		})

		When("a milestone amount does not fit int128", func() {
			BeforeEach(func() {
				method = contract.CreateProject
				args = []any{
					investor,
					big.NewInt(1000),
					[]*big.Int{big.NewInt(300), new(big.Int).Lsh(big.NewInt(1), 127)},
					[]uint64{1_900_000_000, 1_900_086_400},
				}
			})

			It("fails with an invalid call shape", func() {
				Expect(err).To(MatchError(contract.ErrInvalidCallShape))
				Expect(err.Error()).To(ContainSubstring("milestoneAmounts"))
			})
		})

		When("an amount is exactly the int128 maximum", func() {
			BeforeEach(func() {
				method = contract.Invest
				largest := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
				args = []any{investor, largest}
			})

			It("encodes the call", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("an amount is nil", func() {
			BeforeEach(func() {
				method = contract.Invest
				var amount *big.Int
				args = []any{investor, amount}
			})

			It("fails with an invalid call shape", func() {
				Expect(err).To(MatchError(contract.ErrInvalidCallShape))
			})
		})
	})

	Describe("decoding read-only results", func() {
		It("decodes amounts", func() {
			data, err := builder.EncodeResult(contract.GetProject, big.NewInt(42))
			Expect(err).NotTo(HaveOccurred())

			amount, err := builder.DecodeAmount(contract.GetProject, data)
			Expect(err).NotTo(HaveOccurred())
			Expect(amount.Int64()).To(Equal(int64(42)))
		})

		It("decodes the project count", func() {
			data, err := builder.EncodeResult(contract.GetProjectCount, uint32(7))
			Expect(err).NotTo(HaveOccurred())

			count, err := builder.DecodeCount(data)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(uint32(7)))
		})

		It("refuses to decode an amount from a mutating method", func() {
			_, err := builder.DecodeAmount(contract.Invest, nil)
			Expect(err).To(MatchError(contract.ErrInvalidCallShape))
		})

		It("fails on truncated data", func() {
			_, err := builder.DecodeAmount(contract.GetInvestorAmount, []byte{0x01})
			Expect(err).To(HaveOccurred())
		})

		It("marks read-only methods", func() {
			Expect(contract.GetProject.ReadOnly()).To(BeTrue())
			Expect(contract.GetInvestorAmount.ReadOnly()).To(BeTrue())
			Expect(contract.GetProjectCount.ReadOnly()).To(BeTrue())
		})
	})

	Describe("ProjectCreated", func() {
		var owner common.Address

		BeforeEach(func() {
			owner = common.HexToAddress("0x2222222222222222222222222222222222222222")
		})

		It("reads the id and owner from the contract's event", func() {
			created, err := builder.ProjectCreatedLog(5, owner)
			Expect(err).NotTo(HaveOccurred())
			unrelated := &types.Log{Address: address, Topics: []common.Hash{common.HexToHash("0x01")}}

			id, got, err := builder.ProjectCreated([]*types.Log{unrelated, created})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(uint32(5)))
			Expect(got).To(Equal(owner))
		})

		It("ignores the same event emitted by another contract", func() {
			created, err := builder.ProjectCreatedLog(5, owner)
			Expect(err).NotTo(HaveOccurred())
			created.Address = investor

			_, _, err = builder.ProjectCreated([]*types.Log{created})
			Expect(err).To(MatchError(contract.ErrEventNotFound))
		})

		It("fails when the receipt carries no such event", func() {
			_, _, err := builder.ProjectCreated(nil)
			Expect(err).To(MatchError(contract.ErrEventNotFound))
		})

		It("fails on malformed event data", func() {
			created, err := builder.ProjectCreatedLog(5, owner)
			Expect(err).NotTo(HaveOccurred())
			created.Data = created.Data[:10]

			_, _, err = builder.ProjectCreated([]*types.Log{created})
			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(contract.ErrEventNotFound))
		})
	})
})
