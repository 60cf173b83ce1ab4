package nmb

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	balancePrefix = 'b'
	supplyKey     = 's'
	failBurnKey   = 'F'
)

func Symbol() string {
	return "NMB"
}

func Decimals() int {
	return 8
}

func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), []byte{supplyKey})
}

func BalanceOf(account interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), balanceKey(account))
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if amount < 0 {
		panic("negative amount")
	}
	if !runtime.CheckWitness(from) && !from.Equals(runtime.GetCallingScriptHash()) {
		return false
	}

	ctx := storage.GetContext()
	fromBalance := getInt(ctx, balanceKey(from))
	if fromBalance < amount {
		return false
	}

	storage.Put(ctx, balanceKey(from), fromBalance-amount)
	storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)

	runtime.Notify("Transfer", from, to, amount)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
	return true
}

// Mint credits tokens out of thin air, which is all a test fixture needs.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)
	storage.Put(ctx, []byte{supplyKey}, getInt(ctx, []byte{supplyKey})+amount)
	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
}

// Burn destroys tokens of the calling contract. SetBurnFails switches it to
// reporting failure instead.
func Burn(amount int) bool {
	ctx := storage.GetContext()
	if storage.Get(ctx, []byte{failBurnKey}) != nil {
		return false
	}

	caller := runtime.GetCallingScriptHash()
	balance := getInt(ctx, balanceKey(caller))
	if balance < amount {
		return false
	}

	storage.Put(ctx, balanceKey(caller), balance-amount)
	storage.Put(ctx, []byte{supplyKey}, getInt(ctx, []byte{supplyKey})-amount)
	runtime.Notify("Transfer", caller, interop.Hash160(nil), amount)
	return true
}

func SetBurnFails(fails bool) {
	ctx := storage.GetContext()
	if fails {
		storage.Put(ctx, []byte{failBurnKey}, true)
	} else {
		storage.Delete(ctx, []byte{failBurnKey})
	}
}

func getInt(ctx storage.Context, key []byte) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}
	return data.(int)
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}
