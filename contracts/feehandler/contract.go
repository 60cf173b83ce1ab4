package feehandler

import (
	"github.com/Pnkjgot01/NimbleDAO/common"
	"github.com/Pnkjgot01/NimbleDAO/contracts/feehandler/feehandlerconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// BRRData is the cached fee split fetched from the DAO: how many basis
	// points of every collected fee go to staker rewards and reserve
	// rebates for the given epoch. Whatever is left burns.
	BRRData struct {
		RewardBps int
		RebateBps int
		Epoch     int
		Expiry    int
	}

	// FeeDistribution is the payload attached to a GAS transfer from the
	// network contract. Amount of the transfer must equal
	// PlatformFee + Fee.
	FeeDistribution struct {
		RebateWallets  []interop.Hash160
		RebateBps      []int
		PlatformWallet interop.Hash160
		PlatformFee    int
		Fee            int
	}
)

const (
	networkKey      = 'n'
	swapRouterKey   = 'p'
	daoKey          = 'd'
	daoSetterKey    = 's'
	daoOperatorKey  = 'o'
	nmbTokenKey     = 't'
	brrKey          = 'b'
	totalPayoutKey  = 'T'
	sanityListKey   = 'S'
	gasToBurnKey    = 'g'
	lastBurnKey     = 'l'
	burnIntervalKey = 'i'
	lockKey         = 'L'

	rebatePrefix      = 'r'
	platformFeePrefix = 'f'
	rewardsPrefix     = 'e'
	rewardsPaidPrefix = 'P'
	claimedPrefix     = 'c'
	burntEpochPrefix  = 'B'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		daoSetter         interop.Hash160
		daoOperator       interop.Hash160
		network           interop.Hash160
		swapRouter        interop.Hash160
		nmbToken          interop.Hash160
		burnBlockInterval int
	})

	requireAddress(args.daoSetter, "daoSetter is 0")
	requireAddress(args.daoOperator, "daoOperator is 0")
	requireAddress(args.network, "network is 0")
	requireAddress(args.swapRouter, "swapRouter is 0")
	requireAddress(args.nmbToken, "nmb token is 0")
	if args.burnBlockInterval <= 0 {
		panic("burnBlockInterval is 0")
	}

	storage.Put(ctx, daoSetterKey, args.daoSetter)
	storage.Put(ctx, daoOperatorKey, args.daoOperator)
	storage.Put(ctx, networkKey, args.network)
	storage.Put(ctx, swapRouterKey, args.swapRouter)
	storage.Put(ctx, nmbTokenKey, args.nmbToken)
	storage.Put(ctx, burnIntervalKey, args.burnBlockInterval)
	storage.Put(ctx, gasToBurnKey, feehandlerconst.DefaultGasToBurn)

	runtime.Log("feehandler contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("feehandler contract updated")
}

// OnNEP17Payment is a callback for NEP-17 transfers to the fee handler.
// Native GAS transfers from the network contract carrying a FeeDistribution
// payload are split between staker rewards, reserve rebates and the burn
// budget. A GAS transfer without payload is a plain top-up. NMB receipts
// happen while a burn conversion is in flight and are accepted silently.
// Everything else is aborted.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	caller := runtime.GetCallingScriptHash()

	if caller.Equals(storage.Get(ctx, nmbTokenKey).(interop.Hash160)) {
		return
	}
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("only GAS and NMB accepted")
	}
	if amount <= 0 {
		common.AbortWithMessage("amount must be positive")
	}

	if data == nil {
		runtime.Notify("FeeReceived", amount)
		return
	}

	lockEntry(ctx)
	distribution := data.(FeeDistribution)
	distributeFee(ctx, from, amount, distribution)
	unlock(ctx)
}

func distributeFee(ctx storage.Context, from interop.Hash160, amount int, d FeeDistribution) {
	network := storage.Get(ctx, networkKey).(interop.Hash160)
	if !from.Equals(network) {
		panic(feehandlerconst.ErrOnlyNetwork)
	}
	if d.PlatformFee < 0 || d.Fee < 0 {
		panic("negative fee")
	}
	if amount != d.PlatformFee+d.Fee {
		panic(feehandlerconst.ErrFeeMismatch)
	}
	if len(d.RebateWallets) != len(d.RebateBps) {
		panic("rebate wallets and bps mismatch")
	}

	totalBps := 0
	for i := 0; i < len(d.RebateBps); i++ {
		if d.RebateBps[i] <= 0 {
			panic("invalid rebate bps")
		}
		totalBps += d.RebateBps[i]
	}
	if totalBps > feehandlerconst.BPS {
		panic("rebates more than 100%")
	}

	brr := currentBRR(ctx)

	rewardWei := d.Fee * brr.RewardBps / feehandlerconst.BPS
	rebateWei := d.Fee * brr.RebateBps / feehandlerconst.BPS
	burnWei := d.Fee - rewardWei - rebateWei

	paidRebateWei := 0
	for i := 0; i < len(d.RebateWallets); i++ {
		wallet := d.RebateWallets[i]
		requireAddress(wallet, "rebate wallet is 0")

		share := rebateWei * d.RebateBps[i] / feehandlerconst.BPS
		if share > 0 {
			addToBalance(ctx, walletKey(rebatePrefix, wallet), share)
			paidRebateWei += share
		}
	}

	// Undistributed rebate rounding goes to the epoch reward pool.
	rewardWei += rebateWei - paidRebateWei

	reserved := paidRebateWei
	if epochBurnt(ctx, brr.Epoch) {
		// The epoch pool was already handed off for burning, so its
		// share joins the burn budget instead of the pool.
		burnWei += rewardWei
		rewardWei = 0
	} else if rewardWei > 0 {
		addToBalance(ctx, epochKey(rewardsPrefix, brr.Epoch), rewardWei)
		reserved += rewardWei
	}

	platformFeeWei := 0
	if d.PlatformFee > 0 && len(d.PlatformWallet) == interop.Hash160Len && !isZeroAddress(d.PlatformWallet) {
		platformFeeWei = d.PlatformFee
		addToBalance(ctx, walletKey(platformFeePrefix, d.PlatformWallet), platformFeeWei)
		reserved += platformFeeWei
	} else {
		// A fee addressed to nobody stays in the burn budget.
		burnWei += d.PlatformFee
	}

	addToBalance(ctx, []byte{totalPayoutKey}, reserved)

	runtime.Notify("FeeDistributed", d.PlatformWallet, platformFeeWei,
		rewardWei, paidRebateWei, d.RebateWallets, d.RebateBps, burnWei)
}

// GetBRR returns the effective fee split [rewardBps, rebateBps, epoch],
// refreshing it from the DAO when the cached one expired.
func GetBRR() []int {
	ctx := storage.GetContext()
	brr := currentBRR(ctx)
	return []int{brr.RewardBps, brr.RebateBps, brr.Epoch}
}

// ReadBRRData returns the cached fee split without refreshing it.
func ReadBRRData() BRRData {
	ctx := storage.GetReadOnlyContext()
	return cachedBRR(ctx)
}

// ClaimReserveRebate pays out the accumulated rebate of the wallet and
// returns the paid amount. One token is left on the balance so that the
// storage slot stays warm for the next accrual.
func ClaimReserveRebate(wallet interop.Hash160) int {
	ctx := storage.GetContext()
	lockEntry(ctx)

	key := walletKey(rebatePrefix, wallet)
	balance := common.GetIntOrZero(ctx, key)
	if balance <= 1 {
		panic(feehandlerconst.ErrNoRebate)
	}

	payout := balance - 1
	storage.Put(ctx, key, 1)
	subFromPayoutReserve(ctx, payout)

	common.TransferGas(wallet, payout, "rebate transfer failed")
	runtime.Notify("RebatePaid", wallet, payout)

	unlock(ctx)
	return payout
}

// ClaimPlatformFee pays out the accumulated platform fee of the wallet and
// returns the paid amount. Same dust floor as ClaimReserveRebate.
func ClaimPlatformFee(wallet interop.Hash160) int {
	ctx := storage.GetContext()
	lockEntry(ctx)

	key := walletKey(platformFeePrefix, wallet)
	balance := common.GetIntOrZero(ctx, key)
	if balance <= 1 {
		panic(feehandlerconst.ErrNoPlatformFee)
	}

	payout := balance - 1
	storage.Put(ctx, key, 1)
	subFromPayoutReserve(ctx, payout)

	common.TransferGas(wallet, payout, "platform fee transfer failed")
	runtime.Notify("PlatformFeePaid", wallet, payout)

	unlock(ctx)
	return payout
}

// ClaimStakerReward pays the staker its share of the reward pool of a past
// epoch and returns the paid amount. Claims for the current or a future
// epoch, repeated claims and zero shares are no-ops returning 0.
func ClaimStakerReward(staker interop.Hash160, epoch int) int {
	ctx := storage.GetContext()
	lockEntry(ctx)

	if hasClaimed(ctx, staker, epoch) {
		unlock(ctx)
		return 0
	}

	brr := currentBRR(ctx)
	if epoch >= brr.Epoch {
		unlock(ctx)
		return 0
	}

	dao := daoContract(ctx)
	percentage := contract.Call(dao, "getStakerPercentage", contract.ReadOnly,
		staker, epoch).(int)
	if percentage == 0 {
		unlock(ctx)
		return 0
	}
	if percentage > feehandlerconst.Precision || percentage < 0 {
		panic(feehandlerconst.ErrPercentTooHigh)
	}

	amount := common.GetIntOrZero(ctx, epochKey(rewardsPrefix, epoch)) * percentage / feehandlerconst.Precision
	if amount == 0 {
		unlock(ctx)
		return 0
	}

	paidKey := epochKey(rewardsPaidPrefix, epoch)
	paid := common.GetIntOrZero(ctx, paidKey) + amount
	if paid > common.GetIntOrZero(ctx, epochKey(rewardsPrefix, epoch)) {
		panic("total reward less than epoch reward")
	}
	storage.Put(ctx, paidKey, paid)
	storage.Put(ctx, claimedKey(staker, epoch), true)
	subFromPayoutReserve(ctx, amount)

	common.TransferGas(staker, amount, "reward transfer failed")
	runtime.Notify("RewardPaid", staker, epoch, amount)

	unlock(ctx)
	return amount
}

// MakeEpochRewardBurnable moves the reward pool of an epoch into the burn
// budget. The DAO decides whether the epoch qualifies. The pool is zeroed
// permanently: rewards accrued for a burnt epoch afterwards burn as well.
func MakeEpochRewardBurnable(epoch int) {
	ctx := storage.GetContext()
	lockEntry(ctx)

	dao := daoContract(ctx)
	if !contract.Call(dao, "shouldBurnEpochReward", contract.ReadOnly, epoch).(bool) {
		panic("should not burn reward")
	}

	key := epochKey(rewardsPrefix, epoch)
	amount := common.GetIntOrZero(ctx, key)
	if amount == 0 {
		panic("reward is 0")
	}

	storage.Delete(ctx, key)
	storage.Put(ctx, epochKey(burntEpochPrefix, epoch), true)
	subFromPayoutReserve(ctx, amount)

	runtime.Notify("RewardsRemovedToBurn", epoch, amount)
	unlock(ctx)
}

// BurnNmb converts the free (unreserved) GAS balance of the contract into
// NMB through the swap router, burns the received tokens and returns the
// burnt amount. The exchange rate is cross-checked against an independent
// sanity oracle. Callable by anyone except deployed contracts, rate-limited
// by the burn block interval.
func BurnNmb() int {
	ctx := storage.GetContext()
	lockEntry(ctx)

	caller := runtime.GetCallingScriptHash()
	if management.GetContract(caller) != nil {
		panic("only non-contract")
	}

	block := ledger.CurrentIndex()
	interval := storage.Get(ctx, burnIntervalKey).(int)
	if block < common.GetIntOrZero(ctx, lastBurnKey)+interval {
		panic(feehandlerconst.ErrBurnTooEarly)
	}

	balance := gas.BalanceOf(runtime.GetExecutingScriptHash())
	reserved := common.GetIntOrZero(ctx, totalPayoutKey)
	if balance < reserved {
		panic("gas balance below payout reserve")
	}

	srcAmount := balance - reserved
	burnCap := storage.Get(ctx, gasToBurnKey).(int)
	if srcAmount > burnCap {
		srcAmount = burnCap
	}
	if srcAmount == 0 {
		panic("no gas to burn")
	}

	rate := gasToNmbRate(ctx, srcAmount)
	router := storage.Get(ctx, swapRouterKey).(interop.Hash160)
	nmb := storage.Get(ctx, nmbTokenKey).(interop.Hash160)

	common.TransferGas(router, srcAmount, "gas transfer to router failed")
	burnAmount := contract.Call(router, "convert", contract.All,
		interop.Hash160(gas.Hash), nmb, srcAmount).(int)
	if burnAmount*feehandlerconst.BPS < srcAmount*rate/feehandlerconst.Precision*(feehandlerconst.BPS-feehandlerconst.SanityRateDiffBps) {
		panic("conversion returned too little nmb")
	}

	if !contract.Call(nmb, "burn", contract.All, burnAmount).(bool) {
		panic("nmb burn failed")
	}

	storage.Put(ctx, lastBurnKey, block)
	runtime.Notify("NmbBurned", burnAmount, srcAmount)

	unlock(ctx)
	return burnAmount
}

// SetBurnConfigParams sets the sanity oracle and the per-burn GAS cap. The
// oracle history is append-only with the most recent contract first; a zero
// oracle address is allowed and blocks burning until replaced. Restricted to
// the DAO operator.
func SetBurnConfigParams(sanityRate interop.Hash160, gasToBurn int) {
	ctx := storage.GetContext()
	common.CheckOperatorWitness(storage.Get(ctx, daoOperatorKey).(interop.Hash160))

	if gasToBurn <= 0 {
		panic("gasToBurn is 0")
	}
	if len(sanityRate) != interop.Hash160Len {
		panic("invalid sanity rate address")
	}

	list := common.GetList(ctx, sanityListKey)
	if len(list) == 0 || !sanityRate.Equals(list[0]) {
		list = append([][]byte{sanityRate}, list...)
		common.SetSerialized(ctx, sanityListKey, list)
	}

	storage.Put(ctx, gasToBurnKey, gasToBurn)
	runtime.Notify("BurnConfigSet", sanityRate, gasToBurn)
}

// SetNetworkContract replaces the fee-paying network contract. Restricted to
// the DAO operator.
func SetNetworkContract(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOperatorWitness(storage.Get(ctx, daoOperatorKey).(interop.Hash160))
	requireAddress(addr, "network is 0")

	if !addr.Equals(storage.Get(ctx, networkKey).(interop.Hash160)) {
		storage.Put(ctx, networkKey, addr)
		runtime.Notify("NetworkUpdated", addr)
	}
}

// SetSwapRouter replaces the exchange used for burn conversions. Restricted
// to the DAO operator.
func SetSwapRouter(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOperatorWitness(storage.Get(ctx, daoOperatorKey).(interop.Hash160))
	requireAddress(addr, "swapRouter is 0")

	if !addr.Equals(storage.Get(ctx, swapRouterKey).(interop.Hash160)) {
		storage.Put(ctx, swapRouterKey, addr)
		runtime.Notify("SwapRouterUpdated", addr)
	}
}

// SetDaoContract sets the governance contract the fee split and staker
// shares are fetched from. Restricted to the DAO setter.
func SetDaoContract(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckSetterWitness(storage.Get(ctx, daoSetterKey).(interop.Hash160))
	requireAddress(addr, "nimbleDao is 0")

	storage.Put(ctx, daoKey, addr)
	runtime.Notify("NimbleDaoSet", addr)
}

// TotalPayoutBalance returns the amount of GAS reserved for rebates,
// platform fees and staker rewards. Whatever the contract holds above it is
// free to burn.
func TotalPayoutBalance() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, totalPayoutKey)
}

// RebatePerWallet returns the accumulated rebate balance of the wallet.
func RebatePerWallet(wallet interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, walletKey(rebatePrefix, wallet))
}

// FeePerPlatformWallet returns the accumulated platform fee balance of the
// wallet.
func FeePerPlatformWallet(wallet interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, walletKey(platformFeePrefix, wallet))
}

// RewardsPerEpoch returns the staker reward pool of the epoch.
func RewardsPerEpoch(epoch int) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, epochKey(rewardsPrefix, epoch))
}

// RewardsPaidPerEpoch returns how much of the epoch reward pool was claimed.
func RewardsPaidPerEpoch(epoch int) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, epochKey(rewardsPaidPrefix, epoch))
}

// HasClaimedReward tells whether the staker already claimed its reward for
// the epoch.
func HasClaimedReward(staker interop.Hash160, epoch int) bool {
	ctx := storage.GetReadOnlyContext()
	return hasClaimed(ctx, staker, epoch)
}

// GetSanityRateContracts returns the sanity oracle history, most recent
// first.
func GetSanityRateContracts() []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	list := common.GetList(ctx, sanityListKey)

	result := []interop.Hash160{}
	for i := 0; i < len(list); i++ {
		result = append(result, list[i])
	}
	return result
}

// GetLatestSanityRate returns the current NMB to GAS rate reported by the
// active sanity oracle, or 0 when no usable oracle is configured.
func GetLatestSanityRate() int {
	ctx := storage.GetReadOnlyContext()
	list := common.GetList(ctx, sanityListKey)
	if len(list) == 0 || isZeroAddress(list[0]) {
		return 0
	}
	return contract.Call(list[0], "getLatestRate", contract.ReadOnly).(int)
}

// GasToBurn returns the per-burn GAS cap.
func GasToBurn() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, gasToBurnKey).(int)
}

// BurnBlockInterval returns the minimal number of blocks between burns.
func BurnBlockInterval() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, burnIntervalKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func currentBRR(ctx storage.Context) BRRData {
	brr := cachedBRR(ctx)
	if brr.Expiry > runtime.GetTime() {
		return brr
	}

	dao := daoContract(ctx)
	raw := contract.Call(dao, "getBRRData", contract.ReadOnly).([]any)
	fresh := BRRData{
		RewardBps: raw[0].(int),
		RebateBps: raw[1].(int),
		Epoch:     raw[2].(int),
		Expiry:    raw[3].(int),
	}
	validateBRR(fresh)

	common.SetSerialized(ctx, brrKey, fresh)
	runtime.Notify("BRRUpdated", fresh.RewardBps, fresh.RebateBps,
		feehandlerconst.BPS-fresh.RewardBps-fresh.RebateBps, fresh.Expiry, fresh.Epoch)
	return fresh
}

func cachedBRR(ctx storage.Context) BRRData {
	data := storage.Get(ctx, brrKey)
	if data == nil {
		return BRRData{}
	}
	return std.Deserialize(data.([]byte)).(BRRData)
}

func validateBRR(brr BRRData) {
	if brr.RewardBps < 0 || brr.RebateBps < 0 ||
		brr.RewardBps+brr.RebateBps > feehandlerconst.BPS {
		panic("bad BRR values")
	}
	if brr.Epoch < 0 || brr.Epoch >= 1<<32 {
		panic("epoch overflow")
	}
	if brr.Expiry < 0 || brr.Expiry >= timestampLimit() {
		panic("expiry timestamp overflow")
	}
}

func daoContract(ctx storage.Context) interop.Hash160 {
	data := storage.Get(ctx, daoKey)
	if data == nil {
		panic("nimbleDao not set")
	}
	return data.(interop.Hash160)
}

func gasToNmbRate(ctx storage.Context, srcAmount int) int {
	router := storage.Get(ctx, swapRouterKey).(interop.Hash160)
	nmb := storage.Get(ctx, nmbTokenKey).(interop.Hash160)

	rate := contract.Call(router, "getExpectedRate", contract.ReadOnly,
		interop.Hash160(gas.Hash), nmb, srcAmount).(int)
	if rate > maxRate() {
		panic("gasToNmb rate out of bounds")
	}
	if rate <= 0 {
		panic("gasToNmb rate is 0")
	}

	list := common.GetList(ctx, sanityListKey)
	if len(list) == 0 {
		panic(feehandlerconst.ErrNoSanityContract)
	}
	if isZeroAddress(list[0]) {
		panic(feehandlerconst.ErrBurningBlocked)
	}

	sanityRate := contract.Call(list[0], "getLatestRate", contract.ReadOnly).(int)
	if sanityRate <= 0 {
		panic("sanity rate is 0")
	}
	if sanityRate > maxRate() {
		panic("sanity rate out of bounds")
	}

	// The oracle quotes NMB to GAS, invert it to the GAS to NMB basis.
	precision := feehandlerconst.Precision
	impliedRate := precision * precision / sanityRate
	if rate < impliedRate*(feehandlerconst.BPS-feehandlerconst.SanityRateDiffBps)/feehandlerconst.BPS {
		panic("network gas to nmb rate too low")
	}

	return rate
}

// lockEntry guards payout paths against reentering through OnNEP17Payment
// callbacks of GAS receivers. A panic anywhere under the lock FAULTs the
// transaction and discards the flag together with the rest of the state.
func lockEntry(ctx storage.Context) {
	if storage.Get(ctx, lockKey) != nil {
		panic(feehandlerconst.ErrReentrancy)
	}
	storage.Put(ctx, lockKey, true)
}

func unlock(ctx storage.Context) {
	storage.Delete(ctx, lockKey)
}

func addToBalance(ctx storage.Context, key []byte, amount int) {
	storage.Put(ctx, key, common.GetIntOrZero(ctx, key)+amount)
}

func subFromPayoutReserve(ctx storage.Context, amount int) {
	reserve := common.GetIntOrZero(ctx, totalPayoutKey)
	if reserve < amount {
		panic("payout balance too low")
	}
	storage.Put(ctx, totalPayoutKey, reserve-amount)
}

func epochBurnt(ctx storage.Context, epoch int) bool {
	return storage.Get(ctx, epochKey(burntEpochPrefix, epoch)) != nil
}

func hasClaimed(ctx storage.Context, staker interop.Hash160, epoch int) bool {
	return storage.Get(ctx, claimedKey(staker, epoch)) != nil
}

func walletKey(prefix byte, wallet interop.Hash160) []byte {
	if len(wallet) != interop.Hash160Len {
		panic("invalid wallet address")
	}
	return append([]byte{prefix}, wallet...)
}

func epochKey(prefix byte, epoch int) []byte {
	var raw any = epoch
	return append([]byte{prefix}, raw.([]byte)...)
}

func claimedKey(staker interop.Hash160, epoch int) []byte {
	key := walletKey(claimedPrefix, staker)
	var raw any = epoch
	return append(key, raw.([]byte)...)
}

func requireAddress(addr interop.Hash160, failMsg string) {
	if len(addr) != interop.Hash160Len || isZeroAddress(addr) {
		panic(failMsg)
	}
}

func isZeroAddress(addr []byte) bool {
	for i := 0; i < len(addr); i++ {
		if addr[i] != 0 {
			return false
		}
	}
	return true
}

// maxRate is PRECISION * 10^6, computed at runtime since it does not fit
// a 64-bit constant.
func maxRate() int {
	precision := feehandlerconst.Precision
	return precision * 1_000_000
}

// timestampLimit is 2^64, computed at runtime since it does not fit a 64-bit
// constant.
func timestampLimit() int {
	half := 1 << 32
	return half * (1 << 32)
}
