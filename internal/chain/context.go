/*

Read-only access to on-chain contracts. The Context is the single handle the
aggregation engine and every adapter share: it resolves {address, ABI} pairs
to callable read-only contracts and carries the caller's account address.
It performs no writes and no signing.

*/

package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ErrTransport marks any failed on-chain read: network trouble, a contract
// revert, or a malformed response.
var ErrTransport = errors.New("on-chain read failed")

// Backend is the read-only subset of an Ethereum client the Context needs.
// *ethclient.Client satisfies it; tests substitute a fake.
type Backend = bind.ContractCaller

// Context is the read-only chain handle passed to every adapter.
type Context struct {
	backend Backend
	account common.Address
}

// NewContext wraps an existing backend and caller account.
func NewContext(backend Backend, account common.Address) *Context {
	return &Context{backend: backend, account: account}
}

// Dial connects to an Ethereum JSON-RPC endpoint and validates the caller's
// account address.
func Dial(ctx context.Context, rpcURL, account string) (*Context, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("invalid account address: %s", account)
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	return NewContext(client, common.HexToAddress(account)), nil
}

// Account returns the caller's account address.
func (c *Context) Account() common.Address {
	return c.account
}

// Contract resolves an address and JSON ABI to a read-only contract handle.
func (c *Context) Contract(address, abiJSON string) (*Contract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address: %s", address)
	}

	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI for %s: %w", address, err)
	}

	addr := common.HexToAddress(address)
	return &Contract{
		address: addr,
		bound:   bind.NewBoundContract(addr, parsed, c.backend, nil, nil),
	}, nil
}

// Contract is a read-only handle to a deployed contract.
type Contract struct {
	address common.Address
	bound   *bind.BoundContract
}

// Address returns the contract's address.
func (k *Contract) Address() common.Address {
	return k.address
}

// Uint256 calls a view method returning a single uint256.
func (k *Contract) Uint256(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	var out []interface{}
	if err := k.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %w", ErrTransport, method, k.address.Hex(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s on %s returned no value", ErrTransport, method, k.address.Hex())
	}
	value, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s returned unexpected type %T", ErrTransport, method, k.address.Hex(), out[0])
	}
	return value, nil
}
