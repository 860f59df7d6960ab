package core

import (
	"context"
	"fmt"
	"time"

	"crowdbridge/internal/ledger"

	"go.uber.org/zap"
)

// Tracker broadcasts a signed envelope once and follows it until it settles.
type Tracker struct {
	logs        *zap.SugaredLogger
	ledger      Ledger
	interval    time.Duration
	maxAttempts int
}

func NewTracker(logger *zap.SugaredLogger, l Ledger, interval time.Duration, maxAttempts int) *Tracker {
	return &Tracker{
		logs:        logger,
		ledger:      l,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Submit broadcasts s exactly once. A terminal first status is returned without
// polling; otherwise the status is polled every interval up to maxAttempts
// times and a transaction still pending after that is reported as timed out.
//
// Cancelling ctx stops the polling and returns the last observed result along
// with ctx.Err(). Nothing is done about the broadcast itself.
func (t *Tracker) Submit(ctx context.Context, s SignedEnvelope) (SubmissionResult, error) {
	if !TimeNow().Before(s.ValidUntil) {
		return SubmissionResult{}, ErrEnvelopeExpired
	}

	receipt, err := t.ledger.Broadcast(ctx, s.Tx)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("%w: %w", ErrBroadcastFailed, err)
	}

	result := SubmissionResult{
		Hash:   s.Tx.Hash().Hex(),
		Status: statusOf(receipt.Status),
	}
	if result.Status.Terminal() {
		result.Logs = receipt.Logs
		return result, nil
	}

	t.logs.Infow("transaction broadcast, waiting for confirmation", "hash", result.Hash)

	for result.Polls < t.maxAttempts {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		timer := time.NewTimer(t.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		result.Polls++
		receipt, err := t.ledger.TransactionStatus(ctx, s.Tx.Hash())
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			t.logs.Warnw("transaction status poll failed", "hash", result.Hash, "attempt", result.Polls, "error", err)
			continue
		}

		result.Status = statusOf(receipt.Status)
		if result.Status.Terminal() {
			result.Logs = receipt.Logs
			return result, nil
		}
	}

	t.logs.Infow("transaction still pending after last poll", "hash", result.Hash, "polls", result.Polls)
	result.Status = StatusTimedOut
	return result, nil
}

func statusOf(s ledger.TxStatus) SubmissionStatus {
	switch s {
	case ledger.TxSuccess:
		return StatusSuccess
	case ledger.TxFailed:
		return StatusFailed
	}
	return StatusPending
}
