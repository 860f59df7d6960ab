package core_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"crowdbridge/internal/core"
	"crowdbridge/internal/core/fake"
	"crowdbridge/internal/signer"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SigningGateway", func() {
	var (
		gateway   *core.SigningGateway
		fakeAgent *fake.SigningAgent
		key       *ecdsa.PrivateKey
		ctx       context.Context
		prepared  core.PreparedEnvelope
		signed    core.SignedEnvelope
		err       error
	)

	signWith := func(k *ecdsa.PrivateKey) func(context.Context, common.Address, *types.Transaction, *big.Int) (*types.Transaction, error) {
		return func(_ context.Context, _ common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
			return types.SignTx(tx, types.LatestSignerForChainID(chainID), k)
		}
	}

	BeforeEach(func() {
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		to := common.HexToAddress("0x00000000000000000000000000000000000b1d9e")
		prepared = core.PreparedEnvelope{
			Envelope: core.Envelope{
				Source:     crypto.PubkeyToAddress(key.PublicKey),
				Nonce:      3,
				Fee:        big.NewInt(1_000_000_000),
				ValidUntil: time.Now().Add(time.Minute),
			},
			ChainID: big.NewInt(1337),
			Gas:     60000,
			Tx: types.NewTx(&types.LegacyTx{
				Nonce:    3,
				GasPrice: big.NewInt(1_000_000_000),
				Gas:      60000,
				To:       &to,
				Value:    new(big.Int),
				Data:     []byte{0xde, 0xad},
			}),
		}

		fakeAgent = new(fake.SigningAgent)
		fakeAgent.SignTransactionCalls(signWith(key))
		ctx = context.Background()
		gateway = core.NewSigningGateway(zap.NewNop().Sugar(), fakeAgent)
	})

	JustBeforeEach(func() {
		signed, err = gateway.RequestSignature(ctx, prepared)
	})

	When("the agent signs the envelope", func() {
		It("returns the signed transaction", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(signed.Source).To(Equal(prepared.Source))
			Expect(signed.Tx.Nonce()).To(Equal(uint64(3)))

			_, from, tx, chainID := fakeAgent.SignTransactionArgsForCall(0)
			Expect(from).To(Equal(prepared.Source))
			Expect(tx).To(Equal(prepared.Tx))
			Expect(chainID).To(Equal(big.NewInt(1337)))
		})
	})

	When("the user declines", func() {
		BeforeEach(func() {
			fakeAgent.SignTransactionReturns(nil, signer.ErrUserDeclined)
		})

		It("returns ErrUserDeclined", func() {
			Expect(err).To(MatchError(core.ErrUserDeclined))
		})
	})

	When("the agent is unreachable", func() {
		BeforeEach(func() {
			fakeAgent.SignTransactionReturns(nil, errors.Join(signer.ErrAgentUnavailable, errors.New("connection refused")))
		})

		It("returns ErrAgentUnavailable", func() {
			Expect(err).To(MatchError(core.ErrAgentUnavailable))
		})
	})

	When("the agent answers without a transaction", func() {
		BeforeEach(func() {
			fakeAgent.SignTransactionReturns(nil, nil)
		})

		It("treats the agent as unavailable", func() {
			Expect(err).To(MatchError(core.ErrAgentUnavailable))
			Expect(signed.Tx).To(BeNil())
		})
	})

	When("another account signs", func() {
		BeforeEach(func() {
			other, genErr := crypto.GenerateKey()
			Expect(genErr).NotTo(HaveOccurred())
			fakeAgent.SignTransactionCalls(signWith(other))
		})

		It("rejects the signature", func() {
			Expect(err).To(MatchError(core.ErrSignerMismatch))
		})
	})

	When("the agent changes the transaction", func() {
		BeforeEach(func() {
			fakeAgent.SignTransactionCalls(func(_ context.Context, _ common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
				altered := types.NewTx(&types.LegacyTx{
					Nonce:    tx.Nonce(),
					GasPrice: tx.GasPrice(),
					Gas:      tx.Gas(),
					To:       tx.To(),
					Value:    big.NewInt(1),
					Data:     tx.Data(),
				})
				return types.SignTx(altered, types.LatestSignerForChainID(chainID), key)
			})
		})

		It("rejects the signature", func() {
			Expect(err).To(MatchError(core.ErrSignerMismatch))
		})
	})

	When("the envelope has expired", func() {
		BeforeEach(func() {
			prepared.ValidUntil = time.Now().Add(-time.Second)
		})

		It("never reaches the agent", func() {
			Expect(err).To(MatchError(core.ErrEnvelopeExpired))
			Expect(fakeAgent.SignTransactionCallCount()).To(Equal(0))
		})
	})
})
