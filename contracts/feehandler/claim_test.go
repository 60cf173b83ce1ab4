package feehandler_test

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestClaimReserveRebate(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, farExpiry)

	w := f.e.NewAccount(t).ScriptHash()
	platform := f.e.NewAccount(t).ScriptHash()
	f.handleFee(t, []util.Uint160{w}, []int{10_000}, platform, 50_000, 1_000_000)

	before := f.gasBalance(t, w)
	h := f.handler.Invoke(t, 199_999, "claimReserveRebate", w)
	require.EqualValues(t, before+199_999, f.gasBalance(t, w))

	// One token stays behind as the dust floor.
	require.EqualValues(t, 1, f.intValue(t, "rebatePerWallet", w))
	require.EqualValues(t, 350_001, f.intValue(t, "totalPayoutBalance"))

	ev := f.eventItems(t, h, "RebatePaid")
	require.Equal(t, w, itemHash(t, ev[0]))
	require.EqualValues(t, 199_999, itemInt(t, ev[1]))

	f.handler.InvokeFail(t, "no rebate to claim", "claimReserveRebate", w)

	// The floor token joins the next accrual.
	f.handleFee(t, []util.Uint160{w}, []int{10_000}, platform, 0, 1_000_000)
	require.EqualValues(t, 200_001, f.intValue(t, "rebatePerWallet", w))
	f.handler.Invoke(t, 200_000, "claimReserveRebate", w)
}

func TestClaimReserveRebate_NothingAccrued(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)

	w := f.e.NewAccount(t).ScriptHash()
	f.handler.InvokeFail(t, "no rebate to claim", "claimReserveRebate", w)
}

func TestClaimPlatformFee(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, farExpiry)

	platform := f.e.NewAccount(t).ScriptHash()
	f.handleFee(t, nil, nil, platform, 50_000, 1_000_000)

	before := f.gasBalance(t, platform)
	h := f.handler.Invoke(t, 49_999, "claimPlatformFee", platform)
	require.EqualValues(t, before+49_999, f.gasBalance(t, platform))
	require.EqualValues(t, 1, f.intValue(t, "feePerPlatformWallet", platform))

	ev := f.eventItems(t, h, "PlatformFeePaid")
	require.Equal(t, platform, itemHash(t, ev[0]))
	require.EqualValues(t, 49_999, itemInt(t, ev[1]))

	f.handler.InvokeFail(t, "no fee to claim", "claimPlatformFee", platform)
}

func TestClaimPlatformFee_UnpayableWallet(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, farExpiry)

	ctr := neotest.CompileFile(t, f.e.CommitteeHash, unpayablePath, path.Join(unpayablePath, "config.yml"))
	f.e.DeployContract(t, ctr, nil)

	f.handleFee(t, nil, nil, ctr.Hash, 50_000, 1_000_000)

	// The receiver rejects GAS, the claim must roll back whole.
	f.handler.InvokeFail(t, "ABORT", "claimPlatformFee", ctr.Hash)
	require.EqualValues(t, 50_000, f.intValue(t, "feePerPlatformWallet", ctr.Hash))
}

func TestClaimStakerReward(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, expired)

	staker := f.e.NewAccount(t).ScriptHash()
	f.handleFee(t, nil, nil, util.Uint160{}, 0, 1_000_000)
	require.EqualValues(t, 500_000, f.intValue(t, "rewardsPerEpoch", 1))

	// Epoch 1 is still current, nothing to claim yet.
	f.dao.Invoke(t, stackitem.Null{}, "setStakerPercentage", staker, 1, precision/4)
	f.handler.Invoke(t, 0, "claimStakerReward", staker, 1)
	require.EqualValues(t, 0, f.intValue(t, "rewardsPaidPerEpoch", 1))

	f.setBRR(t, 3000, 2000, 2, expired)
	before := f.gasBalance(t, staker)
	h := f.handler.Invoke(t, 125_000, "claimStakerReward", staker, 1)
	require.EqualValues(t, before+125_000, f.gasBalance(t, staker))
	require.EqualValues(t, 125_000, f.intValue(t, "rewardsPaidPerEpoch", 1))
	require.EqualValues(t, 375_000, f.intValue(t, "totalPayoutBalance"))

	stack, err := f.handler.TestInvoke(t, "hasClaimedReward", staker, 1)
	require.NoError(t, err)
	require.True(t, stack.Pop().Bool())

	ev := f.eventItems(t, h, "RewardPaid")
	require.Equal(t, staker, itemHash(t, ev[0]))
	require.EqualValues(t, 1, itemInt(t, ev[1]))
	require.EqualValues(t, 125_000, itemInt(t, ev[2]))

	// Repeated claim is a no-op, not an error.
	h = f.handler.Invoke(t, 0, "claimStakerReward", staker, 1)
	require.Equal(t, 0, f.countEvents(t, h, "RewardPaid"))
}

func TestClaimStakerReward_ZeroShare(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 2, expired)

	idle := f.e.NewAccount(t).ScriptHash()
	f.handler.Invoke(t, 0, "claimStakerReward", idle, 1)

	stack, err := f.handler.TestInvoke(t, "hasClaimedReward", idle, 1)
	require.NoError(t, err)
	require.False(t, stack.Pop().Bool())
}

func TestClaimStakerReward_PercentageTooHigh(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 2, expired)

	staker := f.e.NewAccount(t).ScriptHash()
	f.dao.Invoke(t, stackitem.Null{}, "setStakerPercentage", staker, 1, precision+1)
	f.handler.InvokeFail(t, "percentage too high", "claimStakerReward", staker, 1)
}

func TestClaimStakerReward_DaoNotSet(t *testing.T) {
	f := newFeeHandlerFixtureNoDao(t, 1)

	staker := f.e.NewAccount(t).ScriptHash()
	f.handler.InvokeFail(t, "nimbleDao not set", "claimStakerReward", staker, 1)
}

func TestClaim_Reentrancy(t *testing.T) {
	f := newFeeHandlerFixture(t, 1)
	f.setBRR(t, 3000, 2000, 1, farExpiry)

	ctr := neotest.CompileFile(t, f.e.CommitteeHash, reclaimerPath, path.Join(reclaimerPath, "config.yml"))
	f.e.DeployContract(t, ctr, nil)
	attacker := f.e.CommitteeInvoker(ctr.Hash)

	attacker.Invoke(t, stackitem.Null{}, "setTarget", f.handlerHash, "claimReserveRebate")
	f.handleFee(t, []util.Uint160{ctr.Hash}, []int{10_000}, util.Uint160{}, 0, 1_000_000)

	attacker.InvokeFail(t, "reentrant call", "claim")

	// Nothing was paid out by the failed attack.
	require.EqualValues(t, 200_000, f.intValue(t, "rebatePerWallet", ctr.Hash))

	attacker.Invoke(t, stackitem.Null{}, "disarm")
	attacker.Invoke(t, 199_999, "claim")
	require.EqualValues(t, 1, f.intValue(t, "rebatePerWallet", ctr.Hash))
}
