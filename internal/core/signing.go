package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"crowdbridge/internal/signer"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// SigningGateway hands prepared envelopes to the user's signing agent. It never
// sees key material, only the signed result.
type SigningGateway struct {
	logs  *zap.SugaredLogger
	agent SigningAgent
}

func NewSigningGateway(logger *zap.SugaredLogger, agent SigningAgent) *SigningGateway {
	return &SigningGateway{
		logs:  logger,
		agent: agent,
	}
}

// RequestSignature asks the agent to sign p on p's chain and checks that what
// comes back is p, signed by p's source.
func (g *SigningGateway) RequestSignature(ctx context.Context, p PreparedEnvelope) (SignedEnvelope, error) {
	if !TimeNow().Before(p.ValidUntil) {
		return SignedEnvelope{}, ErrEnvelopeExpired
	}

	signed, err := g.agent.SignTransaction(ctx, p.Source, p.Tx, p.ChainID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserDeclined):
			g.logs.Infow("signature declined", "source", p.Source.Hex(), "nonce", p.Nonce)
			return SignedEnvelope{}, ErrUserDeclined
		case errors.Is(err, signer.ErrNoAccount):
			return SignedEnvelope{}, fmt.Errorf("%w: %w", ErrAgentUnavailable, err)
		}
		return SignedEnvelope{}, fmt.Errorf("request signature: %w", err)
	}
	if signed == nil {
		return SignedEnvelope{}, fmt.Errorf("%w: agent returned no transaction", ErrAgentUnavailable)
	}

	sender, err := types.Sender(types.LatestSignerForChainID(p.ChainID), signed)
	if err != nil {
		return SignedEnvelope{}, fmt.Errorf("%w: recover sender: %w", ErrSignerMismatch, err)
	}
	if sender != p.Source {
		return SignedEnvelope{}, fmt.Errorf("%w: signed by %s, expected %s", ErrSignerMismatch, sender.Hex(), p.Source.Hex())
	}
	if !sameCall(p.Tx, signed) {
		return SignedEnvelope{}, fmt.Errorf("%w: agent altered the transaction", ErrSignerMismatch)
	}

	return SignedEnvelope{
		Source:     p.Source,
		ValidUntil: p.ValidUntil,
		Tx:         signed,
	}, nil
}

func sameCall(want, got *types.Transaction) bool {
	if want.Nonce() != got.Nonce() || want.Gas() != got.Gas() {
		return false
	}
	if want.GasPrice().Cmp(got.GasPrice()) != 0 || want.Value().Cmp(got.Value()) != 0 {
		return false
	}
	if (want.To() == nil) != (got.To() == nil) || (want.To() != nil && *want.To() != *got.To()) {
		return false
	}
	return bytes.Equal(want.Data(), got.Data())
}
