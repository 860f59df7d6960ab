// Package signer talks to the external signing agent. The agent holds the keys
// and asks its user to approve every signature; this package never sees key
// material.
package signer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrUserDeclined     error = errors.New("user declined")
	ErrAgentUnavailable error = errors.New("signing agent unavailable")
	ErrNoAccount        error = errors.New("signing agent exposes no account")
)

const (
	methodVersion         = "account_version"
	methodList            = "account_list"
	methodSignTransaction = "account_signTransaction"
)

type Agent struct {
	client RPCClient

	mu      sync.RWMutex
	address common.Address
	granted bool
}

func NewAgent(client RPCClient) *Agent {
	return &Agent{
		client: client,
	}
}

// Available checks that the agent answers. It never prompts the user.
func (a *Agent) Available(ctx context.Context) bool {
	var version string
	return a.client.CallContext(ctx, &version, methodVersion) == nil
}

// Address returns the account granted by the last successful RequestAccess.
func (a *Agent) Address() (common.Address, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.address, a.granted
}

// RequestAccess asks the agent for the accounts it is willing to expose and
// remembers the first one.
func (a *Agent) RequestAccess(ctx context.Context) (common.Address, error) {
	var accounts []common.Address
	if err := a.client.CallContext(ctx, &accounts, methodList); err != nil {
		return common.Address{}, classify("list accounts", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, ErrNoAccount
	}

	a.mu.Lock()
	a.address = accounts[0]
	a.granted = true
	a.mu.Unlock()

	return accounts[0], nil
}

type sendTxArgs struct {
	From     common.MixedcaseAddress  `json:"from"`
	To       *common.MixedcaseAddress `json:"to"`
	Gas      hexutil.Uint64           `json:"gas"`
	GasPrice *hexutil.Big             `json:"gasPrice"`
	Value    hexutil.Big              `json:"value"`
	Nonce    hexutil.Uint64           `json:"nonce"`
	Data     *hexutil.Bytes           `json:"data"`
	ChainID  *hexutil.Big             `json:"chainId,omitempty"`
}

type signTransactionResult struct {
	Raw hexutil.Bytes `json:"raw"`
}

// SignTransaction asks the agent to sign tx as from on the given chain. The
// call blocks while the user decides.
func (a *Agent) SignTransaction(ctx context.Context, from common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	args := sendTxArgs{
		From:     common.NewMixedcaseAddress(from),
		Gas:      hexutil.Uint64(tx.Gas()),
		GasPrice: (*hexutil.Big)(tx.GasPrice()),
		Nonce:    hexutil.Uint64(tx.Nonce()),
		ChainID:  (*hexutil.Big)(chainID),
	}
	if tx.To() != nil {
		to := common.NewMixedcaseAddress(*tx.To())
		args.To = &to
	}
	if tx.Value() != nil {
		args.Value = hexutil.Big(*tx.Value())
	}
	data := hexutil.Bytes(tx.Data())
	args.Data = &data

	var result signTransactionResult
	if err := a.client.CallContext(ctx, &result, methodSignTransaction, args); err != nil {
		return nil, classify("sign transaction", err)
	}

	signed := new(types.Transaction)
	if err := signed.UnmarshalBinary(result.Raw); err != nil {
		return nil, fmt.Errorf("%w: decode signed transaction: %w", ErrAgentUnavailable, err)
	}
	return signed, nil
}

// classify separates the user's refusal from everything else that can go wrong
// between us and the agent.
func classify(action string, err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && strings.Contains(strings.ToLower(rpcErr.Error()), "denied") {
		return fmt.Errorf("%w: %s", ErrUserDeclined, action)
	}
	return fmt.Errorf("%w: %s: %w", ErrAgentUnavailable, action, err)
}
