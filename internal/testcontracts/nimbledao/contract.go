package nimbledao

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	rewardKey = 'r'
	rebateKey = 'b'
	epochKey  = 'e'
	expiryKey = 'x'

	pctPrefix  = 'p'
	burnPrefix = 'B'
)

// SetBRRData stores the split to be served, without any validation so that
// the consumer's own checks can be exercised.
func SetBRRData(rewardBps, rebateBps, epoch, expiry int) {
	ctx := storage.GetContext()
	storage.Put(ctx, rewardKey, rewardBps)
	storage.Put(ctx, rebateKey, rebateBps)
	storage.Put(ctx, epochKey, epoch)
	storage.Put(ctx, expiryKey, expiry)
}

func GetBRRData() []int {
	ctx := storage.GetReadOnlyContext()
	return []int{
		getInt(ctx, rewardKey),
		getInt(ctx, rebateKey),
		getInt(ctx, epochKey),
		getInt(ctx, expiryKey),
	}
}

func SetStakerPercentage(staker interop.Hash160, epoch, percentage int) {
	storage.Put(storage.GetContext(), pctKey(staker, epoch), percentage)
}

func GetStakerPercentage(staker interop.Hash160, epoch int) int {
	return getInt(storage.GetReadOnlyContext(), pctKey(staker, epoch))
}

func SetShouldBurn(epoch int, should bool) {
	ctx := storage.GetContext()
	if should {
		storage.Put(ctx, burnKey(epoch), true)
	} else {
		storage.Delete(ctx, burnKey(epoch))
	}
}

func ShouldBurnEpochReward(epoch int) bool {
	return storage.Get(storage.GetReadOnlyContext(), burnKey(epoch)) != nil
}

func getInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}
	return data.(int)
}

func pctKey(staker interop.Hash160, epoch int) []byte {
	var raw any = epoch
	return append(append([]byte{pctPrefix}, staker...), raw.([]byte)...)
}

func burnKey(epoch int) []byte {
	var raw any = epoch
	return append([]byte{burnPrefix}, raw.([]byte)...)
}
