package feehandler_test

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	// 5 NMB per GAS in fixed-point precision.
	gasToNmbRate = int64(5) * precision
	// 0.2 GAS per NMB, the sanity quote matching gasToNmbRate exactly.
	nmbToGasSanity = precision / 5
)

func setupBurn(t *testing.T, f *feeHandlerFixture, gasToBurn int64) {
	f.router.Invoke(t, stackitem.Null{}, "setRate", gasToNmbRate)
	f.sanity.Invoke(t, stackitem.Null{}, "setRate", nmbToGasSanity)
	f.setBurnConfig(t, f.sanityHash, gasToBurn)
	f.nmb.Invoke(t, stackitem.Null{}, "mint", f.routerHash, int64(1_000_000_000_000))
}

func TestBurnNmb(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	setupBurn(t, f, 1_000_000_000)
	f.topUp(t, 1_000_000)

	h := f.handler.Invoke(t, 5_000_000, "burnNmb")

	ev := f.eventItems(t, h, "NmbBurned")
	require.EqualValues(t, 5_000_000, itemInt(t, ev[0]))
	require.EqualValues(t, 1_000_000, itemInt(t, ev[1]))

	// Received NMB was destroyed, not parked.
	stack, err := f.nmb.TestInvoke(t, "balanceOf", f.handlerHash)
	require.NoError(t, err)
	require.EqualValues(t, 0, stack.Pop().BigInt().Int64())

	require.EqualValues(t, 0, f.gasBalance(t, f.handlerHash))

	f.handler.InvokeFail(t, "no gas to burn", "burnNmb")
}

func TestBurnNmb_SparesPayoutReserve(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, farExpiry)
	setupBurn(t, f, 1_000_000_000)

	w := f.e.NewAccount(t).ScriptHash()
	f.handleFee(t, []util.Uint160{w}, []int{10_000}, util.Uint160{}, 0, 1_000_000)

	// 500k is reserved for rewards and rebates, only the rest burns.
	f.handler.Invoke(t, 2_500_000, "burnNmb")
	require.EqualValues(t, 500_000, f.intValue(t, "totalPayoutBalance"))
	require.EqualValues(t, 500_000, f.gasBalance(t, f.handlerHash))

	// Reserved balances stay claimable after the burn.
	f.handler.Invoke(t, 199_999, "claimReserveRebate", w)
}

func TestBurnNmb_CappedByGasToBurn(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	setupBurn(t, f, 1_000_000)
	f.topUp(t, 10_000_000)

	h := f.handler.Invoke(t, 5_000_000, "burnNmb")
	ev := f.eventItems(t, h, "NmbBurned")
	require.EqualValues(t, 1_000_000, itemInt(t, ev[1]))
	require.EqualValues(t, 9_000_000, f.gasBalance(t, f.handlerHash))
}

func TestBurnNmb_RateLimited(t *testing.T) {
	f := newFeeHandlerFixture(t, 10)
	setupBurn(t, f, 1_000_000_000)
	f.topUp(t, 1_000_000)

	f.handler.Invoke(t, 5_000_000, "burnNmb")
	f.handler.InvokeFail(t, "wait more blocks to burn", "burnNmb")

	for i := 0; i < 10; i++ {
		f.e.AddNewBlock(t)
	}
	f.topUp(t, 1_000_000)
	f.handler.Invoke(t, 5_000_000, "burnNmb")
}

func TestBurnNmb_OnlyNonContract(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	setupBurn(t, f, 1_000_000_000)
	f.topUp(t, 1_000_000)

	ctr := neotest.CompileFile(t, f.e.CommitteeHash, reclaimerPath, path.Join(reclaimerPath, "config.yml"))
	f.e.DeployContract(t, ctr, nil)
	caller := f.e.CommitteeInvoker(ctr.Hash)

	caller.InvokeFail(t, "only non-contract", "callNoArgs", f.handlerHash, "burnNmb")
}

func TestBurnNmb_SanityDeviationBound(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	setupBurn(t, f, 1_000_000_000)
	f.topUp(t, 1_000_000)

	// Exactly 90% of the sanity-implied rate is still acceptable.
	boundary := gasToNmbRate / 10 * 9
	f.router.Invoke(t, stackitem.Null{}, "setRate", boundary)
	f.handler.Invoke(t, 4_500_000, "burnNmb")

	f.topUp(t, 1_000_000)
	f.router.Invoke(t, stackitem.Null{}, "setRate", boundary-1)
	f.handler.InvokeFail(t, "network gas to nmb rate too low", "burnNmb")
}

func TestBurnNmb_SanityGuards(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.topUp(t, 1_000_000)
	f.router.Invoke(t, stackitem.Null{}, "setRate", gasToNmbRate)

	// No oracle configured at all.
	f.handler.InvokeFail(t, "no sanity rate contract", "burnNmb")

	// Zero oracle address blocks burning explicitly.
	f.setBurnConfig(t, util.Uint160{}, 1_000_000_000)
	f.handler.InvokeFail(t, "sanity rate is 0x0, burning is blocked", "burnNmb")

	f.setBurnConfig(t, f.sanityHash, 1_000_000_000)
	f.handler.InvokeFail(t, "sanity rate is 0", "burnNmb")

	maxRate := new(big.Int).Mul(big.NewInt(precision), big.NewInt(1_000_000))
	f.sanity.Invoke(t, stackitem.Null{}, "setRate", new(big.Int).Add(maxRate, big.NewInt(1)))
	f.handler.InvokeFail(t, "sanity rate out of bounds", "burnNmb")
}

func TestBurnNmb_ExchangeRateGuards(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	setupBurn(t, f, 1_000_000_000)
	f.topUp(t, 1_000_000)

	f.router.Invoke(t, stackitem.Null{}, "setRate", 0)
	f.handler.InvokeFail(t, "gasToNmb rate is 0", "burnNmb")

	maxRate := new(big.Int).Mul(big.NewInt(precision), big.NewInt(1_000_000))
	f.router.Invoke(t, stackitem.Null{}, "setRate", new(big.Int).Add(maxRate, big.NewInt(1)))
	f.handler.InvokeFail(t, "gasToNmb rate out of bounds", "burnNmb")
}

func TestBurnNmb_ConversionSlippage(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	setupBurn(t, f, 1_000_000_000)
	f.topUp(t, 1_000_000)

	f.router.Invoke(t, stackitem.Null{}, "setPayoutBps", 8000)
	f.handler.InvokeFail(t, "conversion returned too little nmb", "burnNmb")

	f.router.Invoke(t, stackitem.Null{}, "setPayoutBps", 9000)
	f.handler.Invoke(t, 4_500_000, "burnNmb")
}

func TestBurnNmb_BurnFailureRollsBack(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	setupBurn(t, f, 1_000_000_000)
	f.topUp(t, 1_000_000)

	f.nmb.Invoke(t, stackitem.Null{}, "setBurnFails", true)
	f.handler.InvokeFail(t, "nmb burn failed", "burnNmb")

	// The GAS sent to the router came back with the rollback.
	require.EqualValues(t, 1_000_000, f.gasBalance(t, f.handlerHash))

	f.nmb.Invoke(t, stackitem.Null{}, "setBurnFails", false)
	f.handler.Invoke(t, 5_000_000, "burnNmb")
}

func TestMakeEpochRewardBurnable(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, farExpiry)
	f.handleFee(t, nil, nil, util.Uint160{}, 0, 1_000_000)
	require.EqualValues(t, 500_000, f.intValue(t, "rewardsPerEpoch", 1))

	f.handler.InvokeFail(t, "should not burn reward", "makeEpochRewardBurnable", 1)

	f.dao.Invoke(t, stackitem.Null{}, "setShouldBurn", 1, true)
	h := f.handler.Invoke(t, stackitem.Null{}, "makeEpochRewardBurnable", 1)

	ev := f.eventItems(t, h, "RewardsRemovedToBurn")
	require.EqualValues(t, 1, itemInt(t, ev[0]))
	require.EqualValues(t, 500_000, itemInt(t, ev[1]))

	require.EqualValues(t, 0, f.intValue(t, "rewardsPerEpoch", 1))
	require.EqualValues(t, 0, f.intValue(t, "totalPayoutBalance"))

	f.handler.InvokeFail(t, "reward is 0", "makeEpochRewardBurnable", 1)
}

func TestMakeEpochRewardBurnable_LaterFeesBurn(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, farExpiry)
	f.handleFee(t, nil, nil, util.Uint160{}, 0, 1_000_000)

	f.dao.Invoke(t, stackitem.Null{}, "setShouldBurn", 1, true)
	f.handler.Invoke(t, stackitem.Null{}, "makeEpochRewardBurnable", 1)

	// Rewards accrued for a burnt epoch go straight to the burn budget.
	h := f.handleFee(t, nil, nil, util.Uint160{}, 0, 1_000_000)
	ev := f.eventItems(t, h, "FeeDistributed")
	require.EqualValues(t, 0, itemInt(t, ev[2]))
	require.EqualValues(t, 1_000_000, itemInt(t, ev[6]))
	require.EqualValues(t, 0, f.intValue(t, "rewardsPerEpoch", 1))
	require.EqualValues(t, 0, f.intValue(t, "totalPayoutBalance"))

	// A past burnt epoch pays no staker rewards.
	staker := f.e.NewAccount(t).ScriptHash()
	f.dao.Invoke(t, stackitem.Null{}, "setStakerPercentage", staker, 1, precision/2)
	f.handler.Invoke(t, 0, "claimStakerReward", staker, 1)
}

func TestMakeEpochRewardBurnable_DaoNotSet(t *testing.T) {
	f := newFeeHandlerFixtureNoDao(t, 1)
	f.handler.InvokeFail(t, "nimbleDao not set", "makeEpochRewardBurnable", 1)
}
