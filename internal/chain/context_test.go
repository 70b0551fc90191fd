package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

const counterABI = `[
	{"name":"count","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`

const counterAddr = "0x00000000000000000000000000000000000000C0"

// staticBackend returns the same payload for every call, or errors.
type staticBackend struct {
	payload []byte
	err     error
}

func (s *staticBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{1}, nil
}

func (s *staticBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func TestDialRejectsInvalidAccount(t *testing.T) {
	if _, err := Dial(context.Background(), "http://127.0.0.1:8545", "not-an-address"); err == nil {
		t.Error("expected error for malformed account address")
	}
}

func TestContractValidation(t *testing.T) {
	app := NewContext(&staticBackend{}, common.Address{})

	if _, err := app.Contract("0x1234", counterABI); err == nil {
		t.Error("expected error for malformed contract address")
	}
	if _, err := app.Contract(counterAddr, "{not json"); err == nil {
		t.Error("expected error for malformed ABI")
	}
}

func TestUint256(t *testing.T) {
	payload, err := hex.DecodeString(fmt.Sprintf("%064x", 42))
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}
	app := NewContext(&staticBackend{payload: payload}, common.Address{})

	contract, err := app.Contract(counterAddr, counterABI)
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}

	value, err := contract.Uint256(context.Background(), "count")
	if err != nil {
		t.Fatalf("Uint256: %v", err)
	}
	if value.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("value = %v, want 42", value)
	}
}

func TestUint256WrapsTransportFailure(t *testing.T) {
	app := NewContext(&staticBackend{err: errors.New("connection refused")}, common.Address{})

	contract, err := app.Contract(counterAddr, counterABI)
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}

	if _, err := contract.Uint256(context.Background(), "count"); !errors.Is(err, ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
}

func TestUint256RejectsNonIntegerReturn(t *testing.T) {
	// owner() decodes to common.Address, not *big.Int.
	payload := common.LeftPadBytes(common.HexToAddress(counterAddr).Bytes(), 32)
	app := NewContext(&staticBackend{payload: payload}, common.Address{})

	contract, err := app.Contract(counterAddr, counterABI)
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}

	if _, err := contract.Uint256(context.Background(), "owner"); !errors.Is(err, ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
}
