package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"crowdbridge/internal/contract"
	"crowdbridge/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var TimeNow = time.Now

// Assembler turns a contract operation into an envelope the signing agent can sign.
type Assembler struct {
	logs   *zap.SugaredLogger
	ledger Ledger
}

func NewAssembler(logger *zap.SugaredLogger, l Ledger) *Assembler {
	return &Assembler{
		logs:   logger,
		ledger: l,
	}
}

// Assemble reads the current sequence number of source and wraps ops into an
// envelope valid for timeout. Every call reads the sequence afresh, so two
// envelopes for the same intent are never interchangeable.
func (a *Assembler) Assemble(ctx context.Context, source common.Address, ops []contract.Operation, fee FeePolicy, timeout time.Duration) (Envelope, error) {
	if len(ops) != 1 {
		return Envelope{}, fmt.Errorf("%w: an envelope carries exactly one operation, got %d", ErrInvalidCallShape, len(ops))
	}
	if ops[0].Method.ReadOnly() {
		return Envelope{}, fmt.Errorf("%w: %s does not change state", ErrInvalidCallShape, ops[0].Method)
	}
	if fee.BaseFee == nil || fee.BaseFee.Sign() <= 0 {
		return Envelope{}, errors.New("fee policy has no base fee")
	}
	if timeout <= 0 {
		return Envelope{}, fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	account, err := a.ledger.Account(ctx, source)
	if err != nil {
		return Envelope{}, fmt.Errorf("look up source account: %w", err)
	}

	return Envelope{
		Source:     source,
		Nonce:      account.Nonce,
		Operations: ops,
		Fee:        new(big.Int).Set(fee.BaseFee),
		ValidUntil: TimeNow().Add(timeout),
	}, nil
}

// Prepare simulates the envelope against current ledger state and resolves the
// gas it needs. A call the contract would reject fails here with the
// contract's reason, before the user is ever asked to sign.
func (a *Assembler) Prepare(ctx context.Context, env Envelope) (PreparedEnvelope, error) {
	if len(env.Operations) != 1 {
		return PreparedEnvelope{}, fmt.Errorf("%w: an envelope carries exactly one operation, got %d", ErrInvalidCallShape, len(env.Operations))
	}
	if !TimeNow().Before(env.ValidUntil) {
		return PreparedEnvelope{}, ErrEnvelopeExpired
	}

	op := env.Operations[0]

	if _, err := a.ledger.Simulate(ctx, env.Source, op); err != nil {
		return PreparedEnvelope{}, simulationError(op.Method, err)
	}

	gas, err := a.ledger.EstimateGas(ctx, env.Source, op, env.Fee)
	if err != nil {
		return PreparedEnvelope{}, simulationError(op.Method, err)
	}

	chainID, err := a.ledger.ChainID(ctx)
	if err != nil {
		return PreparedEnvelope{}, fmt.Errorf("get chain id: %w", err)
	}

	to := op.Contract
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    env.Nonce,
		GasPrice: env.Fee,
		Gas:      gas,
		To:       &to,
		Value:    new(big.Int),
		Data:     op.Data,
	})

	a.logs.Infow("envelope prepared",
		"method", op.Method,
		"source", env.Source.Hex(),
		"nonce", env.Nonce,
		"gas", gas)

	return PreparedEnvelope{
		Envelope: env,
		ChainID:  chainID,
		Gas:      gas,
		Tx:       tx,
	}, nil
}

func simulationError(method contract.Method, err error) error {
	if errors.Is(err, ledger.ErrExecutionReverted) {
		return fmt.Errorf("%w: %s: %w", ErrSimulationFailed, method, err)
	}
	return fmt.Errorf("simulate %s: %w", method, err)
}
