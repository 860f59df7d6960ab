package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"crowdbridge/internal/contract"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/time/rate"
)

var (
	ErrAccountNotFound   error = errors.New("account not found")
	ErrExecutionReverted error = errors.New("execution reverted")
	ErrBroadcastRejected error = errors.New("broadcast rejected")
	ErrNodeUnavailable   error = errors.New("ledger node unavailable")
)

// NodeService talks to the ledger node on behalf of the transaction pipeline.
type NodeService struct {
	client  EthClient
	limiter *rate.Limiter
}

func NewNodeService(ethClient EthClient, limiter *rate.Limiter) *NodeService {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &NodeService{
		client:  ethClient,
		limiter: limiter,
	}
}

// Account returns the sequence state of address. An address that has never
// been funded or used is reported as ErrAccountNotFound.
func (s *NodeService) Account(ctx context.Context, address common.Address) (Account, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Account{}, err
	}

	nonce, err := s.client.PendingNonceAt(ctx, address)
	if err != nil {
		return Account{}, fmt.Errorf("%w: get nonce of %s: %w", ErrNodeUnavailable, address.Hex(), err)
	}

	balance, err := s.client.BalanceAt(ctx, address, nil)
	if err != nil {
		return Account{}, fmt.Errorf("%w: get balance of %s: %w", ErrNodeUnavailable, address.Hex(), err)
	}

	if nonce == 0 && (balance == nil || balance.Sign() == 0) {
		return Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, address.Hex())
	}

	return Account{
		Address: address,
		Nonce:   nonce,
		Balance: balance,
	}, nil
}

// Simulate executes op against the latest state without broadcasting anything.
func (s *NodeService) Simulate(ctx context.Context, from common.Address, op contract.Operation) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	out, err := s.client.CallContract(ctx, callMsg(from, op, nil), nil)
	if err != nil {
		return nil, classify(fmt.Sprintf("simulate %s", op.Method), err)
	}
	return out, nil
}

// EstimateGas resolves the resources op needs when sent from the given account.
func (s *NodeService) EstimateGas(ctx context.Context, from common.Address, op contract.Operation, gasPrice *big.Int) (uint64, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	gas, err := s.client.EstimateGas(ctx, callMsg(from, op, gasPrice))
	if err != nil {
		return 0, classify(fmt.Sprintf("estimate gas for %s", op.Method), err)
	}
	return gas, nil
}

func (s *NodeService) ChainID(ctx context.Context) (*big.Int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get chain id: %w", ErrNodeUnavailable, err)
	}
	return chainID, nil
}

// Broadcast sends a signed transaction once and reports the status observed
// right after. It never retries.
func (s *NodeService) Broadcast(ctx context.Context, tx *types.Transaction) (Receipt, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Receipt{}, err
	}

	if err := s.client.SendTransaction(ctx, tx); err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return Receipt{}, fmt.Errorf("%w: %s", ErrBroadcastRejected, rpcErr.Error())
		}
		return Receipt{}, fmt.Errorf("%w: send transaction: %w", ErrNodeUnavailable, err)
	}

	receipt, err := s.TransactionStatus(ctx, tx.Hash())
	if err != nil {
		// the broadcast went through, only the first status read failed
		return Receipt{Hash: tx.Hash().Hex(), Status: TxPending}, nil
	}
	return receipt, nil
}

// TransactionStatus looks a transaction up by hash. Transactions without a
// receipt yet are pending.
func (s *NodeService) TransactionStatus(ctx context.Context, hash common.Hash) (Receipt, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return Receipt{}, err
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return Receipt{Hash: hash.Hex(), Status: TxPending}, nil
		}
		return Receipt{}, fmt.Errorf("%w: get receipt %s: %w", ErrNodeUnavailable, hash.Hex(), err)
	}

	status := TxFailed
	if receipt.Status == types.ReceiptStatusSuccessful {
		status = TxSuccess
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return Receipt{
		Hash:        hash.Hex(),
		Status:      status,
		BlockNumber: blockNumber,
		Logs:        receipt.Logs,
	}, nil
}

func callMsg(from common.Address, op contract.Operation, gasPrice *big.Int) ethereum.CallMsg {
	to := op.Contract
	return ethereum.CallMsg{
		From:     from,
		To:       &to,
		GasPrice: gasPrice,
		Data:     op.Data,
	}
}

// classify separates contract reverts, which carry a diagnostic for the user,
// from node failures.
func classify(action string, err error) error {
	if reason, ok := revertReason(err); ok {
		return fmt.Errorf("%w: %s", ErrExecutionReverted, reason)
	}
	return fmt.Errorf("%w: %s: %w", ErrNodeUnavailable, action, err)
}

func revertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if data, decErr := hexutil.Decode(hexData); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return reason, true
				}
			}
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "execution reverted") {
		return strings.TrimSpace(strings.TrimPrefix(msg, "execution reverted:")), true
	}
	return "", false
}
