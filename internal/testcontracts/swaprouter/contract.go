package swaprouter

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	rateKey      = 'r'
	payoutBpsKey = 'p'

	precision = 1_000_000_000_000_000_000
	bps       = 10_000
)

// SetRate configures the GAS to NMB quote served by GetExpectedRate and used
// by Convert.
func SetRate(rate int) {
	storage.Put(storage.GetContext(), rateKey, rate)
}

// SetPayoutBps makes Convert pay out only the given fraction of the quoted
// amount, to simulate slippage.
func SetPayoutBps(value int) {
	storage.Put(storage.GetContext(), payoutBpsKey, value)
}

func GetExpectedRate(src, dest interop.Hash160, amount int) int {
	data := storage.Get(storage.GetReadOnlyContext(), rateKey)
	if data == nil {
		return 0
	}
	return data.(int)
}

// Convert pays the caller dest tokens for the src amount it already
// transferred here and returns the paid amount. Only GAS to NMB direction is
// supported, dest tokens must have been minted to the router beforehand.
func Convert(src, dest interop.Hash160, amount int) int {
	ctx := storage.GetContext()
	rate := storage.Get(ctx, rateKey)
	if rate == nil {
		panic("rate not set")
	}

	out := amount * rate.(int) / precision
	payoutBps := storage.Get(ctx, payoutBpsKey)
	if payoutBps != nil {
		out = out * payoutBps.(int) / bps
	}

	caller := runtime.GetCallingScriptHash()
	self := runtime.GetExecutingScriptHash()
	if !contract.Call(dest, "transfer", contract.All, self, caller, out, nil).(bool) {
		panic("router out of dest tokens")
	}
	return out
}

// OnNEP17Payment accepts anything, the router trades whatever it is sent.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
}
