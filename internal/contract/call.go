// Package contract builds calls against the crowdfunding contract and decodes
// the results of its read-only methods.
package contract

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrInvalidCallShape error = errors.New("invalid call shape")
	ErrEventNotFound    error = errors.New("event not found")
)

const projectCreated = "ProjectCreated"

type Method string

const (
	CreateProject     Method = "create_project"
	Invest            Method = "invest"
	SubmitEvidence    Method = "submit_evidence"
	VerifyMilestone   Method = "verify_milestone"
	GetProject        Method = "get_project"
	GetInvestorAmount Method = "get_investor_amount"
	GetProjectCount   Method = "get_project_count"
)

// ReadOnly reports whether the method only reads contract state.
func (m Method) ReadOnly() bool {
	switch m {
	case GetProject, GetInvestorAmount, GetProjectCount:
		return true
	}
	return false
}

// Operation is a single intended invocation of the contract.
type Operation struct {
	Contract common.Address
	Method   Method
	Args     []any
	Data     []byte
}

type Builder struct {
	address common.Address
	abi     abi.ABI
}

func NewBuilder(address common.Address) (*Builder, error) {
	parsed, err := abi.JSON(strings.NewReader(bridgeABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	return &Builder{
		address: address,
		abi:     parsed,
	}, nil
}

// Address returns the contract every built operation targets.
func (b *Builder) Address() common.Address {
	return b.address
}

// BuildCall checks args against the method's argument schema and encodes the call.
// Any mismatch in method, arity or argument type is an ErrInvalidCallShape.
func (b *Builder) BuildCall(method Method, args ...any) (Operation, error) {
	m, ok := b.abi.Methods[string(method)]
	if !ok {
		return Operation{}, fmt.Errorf("%w: unknown method %q", ErrInvalidCallShape, method)
	}

	if len(args) != len(m.Inputs) {
		return Operation{}, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidCallShape, method, len(m.Inputs), len(args))
	}

	for i, input := range m.Inputs {
		want := input.Type.GetType()
		got := reflect.TypeOf(args[i])
		if got != want {
			return Operation{}, fmt.Errorf("%w: %s argument %d (%s) must be %s, got %v", ErrInvalidCallShape, method, i, input.Name, want, got)
		}
		if n, ok := args[i].(*big.Int); ok && n == nil {
			return Operation{}, fmt.Errorf("%w: %s argument %d (%s) is nil", ErrInvalidCallShape, method, i, input.Name)
		}
		if !fits(input.Type, args[i]) {
			return Operation{}, fmt.Errorf("%w: %s argument %d (%s) is out of range for %s", ErrInvalidCallShape, method, i, input.Name, input.Type)
		}
	}

	data, err := b.abi.Pack(string(method), args...)
	if err != nil {
		return Operation{}, fmt.Errorf("%w: pack %s: %w", ErrInvalidCallShape, method, err)
	}

	return Operation{
		Contract: b.address,
		Method:   method,
		Args:     args,
		Data:     data,
	}, nil
}

// fits reports whether an integer argument, or every element of an integer
// slice, lies within the range of t. The abi packer itself does not check.
func fits(t abi.Type, v any) bool {
	switch n := v.(type) {
	case *big.Int:
		return inRange(t, n)
	case []*big.Int:
		if t.Elem == nil {
			return true
		}
		for _, e := range n {
			if e == nil || !inRange(*t.Elem, e) {
				return false
			}
		}
	}
	return true
}

func inRange(t abi.Type, n *big.Int) bool {
	switch t.T {
	case abi.IntTy:
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		return n.Cmp(new(big.Int).Neg(limit)) >= 0 && n.Cmp(limit) < 0
	case abi.UintTy:
		return n.Sign() >= 0 && n.BitLen() <= t.Size
	}
	return true
}

// DecodeAmount decodes the int128 returned by get_project or get_investor_amount.
func (b *Builder) DecodeAmount(method Method, data []byte) (*big.Int, error) {
	if method != GetProject && method != GetInvestorAmount {
		return nil, fmt.Errorf("%w: %s does not return an amount", ErrInvalidCallShape, method)
	}

	values, err := b.abi.Unpack(string(method), data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unpack %s: expected 1 value, got %d", method, len(values))
	}

	amount, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack %s: unexpected type %T", method, values[0])
	}
	return amount, nil
}

// DecodeCount decodes the uint32 returned by get_project_count.
func (b *Builder) DecodeCount(data []byte) (uint32, error) {
	values, err := b.abi.Unpack(string(GetProjectCount), data)
	if err != nil {
		return 0, fmt.Errorf("unpack %s: %w", GetProjectCount, err)
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("unpack %s: expected 1 value, got %d", GetProjectCount, len(values))
	}

	count, ok := values[0].(uint32)
	if !ok {
		return 0, fmt.Errorf("unpack %s: unexpected type %T", GetProjectCount, values[0])
	}
	return count, nil
}

// ProjectCreated finds the ProjectCreated event the contract emitted among logs
// and returns the project id it assigned together with the recorded owner.
func (b *Builder) ProjectCreated(logs []*types.Log) (uint32, common.Address, error) {
	event := b.abi.Events[projectCreated]

	for _, l := range logs {
		if l == nil || l.Address != b.address || len(l.Topics) == 0 || l.Topics[0] != event.ID {
			continue
		}

		values, err := event.Inputs.Unpack(l.Data)
		if err != nil {
			return 0, common.Address{}, fmt.Errorf("unpack %s: %w", projectCreated, err)
		}
		if len(values) != 2 {
			return 0, common.Address{}, fmt.Errorf("unpack %s: expected 2 values, got %d", projectCreated, len(values))
		}

		id, ok := values[0].(uint32)
		if !ok {
			return 0, common.Address{}, fmt.Errorf("unpack %s: unexpected id type %T", projectCreated, values[0])
		}
		owner, ok := values[1].(common.Address)
		if !ok {
			return 0, common.Address{}, fmt.Errorf("unpack %s: unexpected owner type %T", projectCreated, values[1])
		}
		return id, owner, nil
	}

	return 0, common.Address{}, fmt.Errorf("%w: %s", ErrEventNotFound, projectCreated)
}

// ProjectCreatedLog builds the log the contract emits when it creates a project.
func (b *Builder) ProjectCreatedLog(id uint32, owner common.Address) (*types.Log, error) {
	event := b.abi.Events[projectCreated]

	data, err := event.Inputs.Pack(id, owner)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", projectCreated, err)
	}

	return &types.Log{
		Address: b.address,
		Topics:  []common.Hash{event.ID},
		Data:    data,
	}, nil
}

// EncodeResult packs values the way the contract returns them from method.
func (b *Builder) EncodeResult(method Method, values ...any) ([]byte, error) {
	m, ok := b.abi.Methods[string(method)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidCallShape, method)
	}
	return m.Outputs.Pack(values...)
}
