package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type TxStatus string

const (
	TxPending TxStatus = "pending"
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
)

type Account struct {
	Address common.Address
	Nonce   uint64
	Balance *big.Int
}

type Receipt struct {
	Hash        string
	Status      TxStatus
	BlockNumber uint64
	Logs        []*types.Log
}
