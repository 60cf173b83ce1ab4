package unpayable

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// OnNEP17Payment rejects every incoming token, so any payout routed here
// fails.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	runtime.Log("unpayable wallet")
	util.Abort()
}
