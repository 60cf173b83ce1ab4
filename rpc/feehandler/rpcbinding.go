// Package feehandler contains RPC wrappers for NimbleDAO FeeHandler contract.
package feehandler

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// FeehandlerBRRData is a contract-specific feehandler.BRRData type used by its methods.
type FeehandlerBRRData struct {
	RewardBps *big.Int
	RebateBps *big.Int
	Epoch     *big.Int
	Expiry    *big.Int
}

// FeeReceivedEvent represents "FeeReceived" event emitted by the contract.
type FeeReceivedEvent struct {
	Amount *big.Int
}

// FeeDistributedEvent represents "FeeDistributed" event emitted by the contract.
type FeeDistributedEvent struct {
	PlatformWallet     util.Uint160
	PlatformFee        *big.Int
	RewardWei          *big.Int
	RebateWei          *big.Int
	RebateWallets      []util.Uint160
	RebateBpsPerWallet []*big.Int
	BurnAmount         *big.Int
}

// BRRUpdatedEvent represents "BRRUpdated" event emitted by the contract.
type BRRUpdatedEvent struct {
	RewardBps *big.Int
	RebateBps *big.Int
	BurnBps   *big.Int
	Expiry    *big.Int
	Epoch     *big.Int
}

// RebatePaidEvent represents "RebatePaid" event emitted by the contract.
type RebatePaidEvent struct {
	Wallet util.Uint160
	Amount *big.Int
}

// PlatformFeePaidEvent represents "PlatformFeePaid" event emitted by the contract.
type PlatformFeePaidEvent struct {
	Wallet util.Uint160
	Amount *big.Int
}

// RewardPaidEvent represents "RewardPaid" event emitted by the contract.
type RewardPaidEvent struct {
	Staker util.Uint160
	Epoch  *big.Int
	Amount *big.Int
}

// RewardsRemovedToBurnEvent represents "RewardsRemovedToBurn" event emitted by the contract.
type RewardsRemovedToBurnEvent struct {
	Epoch  *big.Int
	Amount *big.Int
}

// NmbBurnedEvent represents "NmbBurned" event emitted by the contract.
type NmbBurnedEvent struct {
	NmbBurned *big.Int
	GasSpent  *big.Int
}

// BurnConfigSetEvent represents "BurnConfigSet" event emitted by the contract.
type BurnConfigSetEvent struct {
	SanityRate util.Uint160
	GasToBurn  *big.Int
}

// NetworkUpdatedEvent represents "NetworkUpdated" event emitted by the contract.
type NetworkUpdatedEvent struct {
	Network util.Uint160
}

// SwapRouterUpdatedEvent represents "SwapRouterUpdated" event emitted by the contract.
type SwapRouterUpdatedEvent struct {
	SwapRouter util.Uint160
}

// NimbleDaoSetEvent represents "NimbleDaoSet" event emitted by the contract.
type NimbleDaoSetEvent struct {
	NimbleDao util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BurnBlockInterval invokes `burnBlockInterval` method of contract.
func (c *ContractReader) BurnBlockInterval() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "burnBlockInterval"))
}

// FeePerPlatformWallet invokes `feePerPlatformWallet` method of contract.
func (c *ContractReader) FeePerPlatformWallet(wallet util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "feePerPlatformWallet", wallet))
}

// GasToBurn invokes `gasToBurn` method of contract.
func (c *ContractReader) GasToBurn() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "gasToBurn"))
}

// GetLatestSanityRate invokes `getLatestSanityRate` method of contract.
func (c *ContractReader) GetLatestSanityRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getLatestSanityRate"))
}

// GetSanityRateContracts invokes `getSanityRateContracts` method of contract.
func (c *ContractReader) GetSanityRateContracts() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "getSanityRateContracts"))
}

// HasClaimedReward invokes `hasClaimedReward` method of contract.
func (c *ContractReader) HasClaimedReward(staker util.Uint160, epoch *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasClaimedReward", staker, epoch))
}

// ReadBRRData invokes `readBRRData` method of contract.
func (c *ContractReader) ReadBRRData() (*FeehandlerBRRData, error) {
	return itemToFeehandlerBRRData(unwrap.Item(c.invoker.Call(c.hash, "readBRRData")))
}

// RebatePerWallet invokes `rebatePerWallet` method of contract.
func (c *ContractReader) RebatePerWallet(wallet util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rebatePerWallet", wallet))
}

// RewardsPaidPerEpoch invokes `rewardsPaidPerEpoch` method of contract.
func (c *ContractReader) RewardsPaidPerEpoch(epoch *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardsPaidPerEpoch", epoch))
}

// RewardsPerEpoch invokes `rewardsPerEpoch` method of contract.
func (c *ContractReader) RewardsPerEpoch(epoch *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardsPerEpoch", epoch))
}

// TotalPayoutBalance invokes `totalPayoutBalance` method of contract.
func (c *ContractReader) TotalPayoutBalance() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalPayoutBalance"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// BurnNmb creates a transaction invoking `burnNmb` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BurnNmb() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burnNmb")
}

// BurnNmbTransaction creates a transaction invoking `burnNmb` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnNmbTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burnNmb")
}

// BurnNmbUnsigned creates a transaction invoking `burnNmb` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnNmbUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burnNmb", nil)
}

// ClaimPlatformFee creates a transaction invoking `claimPlatformFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimPlatformFee(wallet util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimPlatformFee", wallet)
}

// ClaimPlatformFeeTransaction creates a transaction invoking `claimPlatformFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimPlatformFeeTransaction(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimPlatformFee", wallet)
}

// ClaimPlatformFeeUnsigned creates a transaction invoking `claimPlatformFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimPlatformFeeUnsigned(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimPlatformFee", nil, wallet)
}

// ClaimReserveRebate creates a transaction invoking `claimReserveRebate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimReserveRebate(wallet util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimReserveRebate", wallet)
}

// ClaimReserveRebateTransaction creates a transaction invoking `claimReserveRebate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimReserveRebateTransaction(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimReserveRebate", wallet)
}

// ClaimReserveRebateUnsigned creates a transaction invoking `claimReserveRebate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimReserveRebateUnsigned(wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimReserveRebate", nil, wallet)
}

// ClaimStakerReward creates a transaction invoking `claimStakerReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimStakerReward(staker util.Uint160, epoch *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimStakerReward", staker, epoch)
}

// ClaimStakerRewardTransaction creates a transaction invoking `claimStakerReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimStakerRewardTransaction(staker util.Uint160, epoch *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimStakerReward", staker, epoch)
}

// ClaimStakerRewardUnsigned creates a transaction invoking `claimStakerReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimStakerRewardUnsigned(staker util.Uint160, epoch *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimStakerReward", nil, staker, epoch)
}

// GetBRR creates a transaction invoking `getBRR` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GetBRR() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "getBRR")
}

// GetBRRTransaction creates a transaction invoking `getBRR` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GetBRRTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "getBRR")
}

// GetBRRUnsigned creates a transaction invoking `getBRR` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GetBRRUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "getBRR", nil)
}

// MakeEpochRewardBurnable creates a transaction invoking `makeEpochRewardBurnable` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MakeEpochRewardBurnable(epoch *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "makeEpochRewardBurnable", epoch)
}

// MakeEpochRewardBurnableTransaction creates a transaction invoking `makeEpochRewardBurnable` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MakeEpochRewardBurnableTransaction(epoch *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "makeEpochRewardBurnable", epoch)
}

// MakeEpochRewardBurnableUnsigned creates a transaction invoking `makeEpochRewardBurnable` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MakeEpochRewardBurnableUnsigned(epoch *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "makeEpochRewardBurnable", nil, epoch)
}

// SetBurnConfigParams creates a transaction invoking `setBurnConfigParams` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetBurnConfigParams(sanityRate util.Uint160, gasToBurn *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setBurnConfigParams", sanityRate, gasToBurn)
}

// SetBurnConfigParamsTransaction creates a transaction invoking `setBurnConfigParams` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetBurnConfigParamsTransaction(sanityRate util.Uint160, gasToBurn *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setBurnConfigParams", sanityRate, gasToBurn)
}

// SetBurnConfigParamsUnsigned creates a transaction invoking `setBurnConfigParams` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetBurnConfigParamsUnsigned(sanityRate util.Uint160, gasToBurn *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setBurnConfigParams", nil, sanityRate, gasToBurn)
}

// SetDaoContract creates a transaction invoking `setDaoContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetDaoContract(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setDaoContract", addr)
}

// SetDaoContractTransaction creates a transaction invoking `setDaoContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetDaoContractTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setDaoContract", addr)
}

// SetDaoContractUnsigned creates a transaction invoking `setDaoContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetDaoContractUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setDaoContract", nil, addr)
}

// SetNetworkContract creates a transaction invoking `setNetworkContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetNetworkContract(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setNetworkContract", addr)
}

// SetNetworkContractTransaction creates a transaction invoking `setNetworkContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetNetworkContractTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setNetworkContract", addr)
}

// SetNetworkContractUnsigned creates a transaction invoking `setNetworkContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetNetworkContractUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setNetworkContract", nil, addr)
}

// SetSwapRouter creates a transaction invoking `setSwapRouter` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSwapRouter(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSwapRouter", addr)
}

// SetSwapRouterTransaction creates a transaction invoking `setSwapRouter` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSwapRouterTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSwapRouter", addr)
}

// SetSwapRouterUnsigned creates a transaction invoking `setSwapRouter` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSwapRouterUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSwapRouter", nil, addr)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToFeehandlerBRRData converts stack item into *FeehandlerBRRData.
func itemToFeehandlerBRRData(item stackitem.Item, err error) (*FeehandlerBRRData, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FeehandlerBRRData)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FeehandlerBRRData from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FeehandlerBRRData) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.RewardBps, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardBps: %w", err)
	}

	index++
	res.RebateBps, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RebateBps: %w", err)
	}

	index++
	res.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	index++
	res.Expiry, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Expiry: %w", err)
	}

	return nil
}

// FeeReceivedEventsFromApplicationLog retrieves a set of all emitted events
// with "FeeReceived" name from the provided [result.ApplicationLog].
func FeeReceivedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeeReceivedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FeeReceivedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FeeReceived" {
				continue
			}
			event := new(FeeReceivedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FeeReceivedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FeeReceivedEvent or
// returns an error if it's not possible to do to so.
func (e *FeeReceivedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// FeeDistributedEventsFromApplicationLog retrieves a set of all emitted events
// with "FeeDistributed" name from the provided [result.ApplicationLog].
func FeeDistributedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeeDistributedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FeeDistributedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FeeDistributed" {
				continue
			}
			event := new(FeeDistributedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FeeDistributedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FeeDistributedEvent or
// returns an error if it's not possible to do to so.
func (e *FeeDistributedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.PlatformWallet, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field PlatformWallet: %w", err)
	}

	index++
	e.PlatformFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PlatformFee: %w", err)
	}

	index++
	e.RewardWei, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardWei: %w", err)
	}

	index++
	e.RebateWei, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RebateWei: %w", err)
	}

	index++
	e.RebateWallets, err = func(item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range arr {
			res[i], err = func(item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			}(arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field RebateWallets: %w", err)
	}

	index++
	e.RebateBpsPerWallet, err = func(item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range arr {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field RebateBpsPerWallet: %w", err)
	}

	index++
	e.BurnAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BurnAmount: %w", err)
	}

	return nil
}

// BRRUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BRRUpdated" name from the provided [result.ApplicationLog].
func BRRUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BRRUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BRRUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BRRUpdated" {
				continue
			}
			event := new(BRRUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BRRUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BRRUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *BRRUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.RewardBps, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardBps: %w", err)
	}

	index++
	e.RebateBps, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RebateBps: %w", err)
	}

	index++
	e.BurnBps, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BurnBps: %w", err)
	}

	index++
	e.Expiry, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Expiry: %w", err)
	}

	index++
	e.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	return nil
}

// RebatePaidEventsFromApplicationLog retrieves a set of all emitted events
// with "RebatePaid" name from the provided [result.ApplicationLog].
func RebatePaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*RebatePaidEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RebatePaidEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RebatePaid" {
				continue
			}
			event := new(RebatePaidEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RebatePaidEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RebatePaidEvent or
// returns an error if it's not possible to do to so.
func (e *RebatePaidEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Wallet, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Wallet: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// PlatformFeePaidEventsFromApplicationLog retrieves a set of all emitted events
// with "PlatformFeePaid" name from the provided [result.ApplicationLog].
func PlatformFeePaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*PlatformFeePaidEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PlatformFeePaidEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PlatformFeePaid" {
				continue
			}
			event := new(PlatformFeePaidEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PlatformFeePaidEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PlatformFeePaidEvent or
// returns an error if it's not possible to do to so.
func (e *PlatformFeePaidEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Wallet, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Wallet: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RewardPaidEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardPaid" name from the provided [result.ApplicationLog].
func RewardPaidEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardPaidEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardPaidEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardPaid" {
				continue
			}
			event := new(RewardPaidEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardPaidEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardPaidEvent or
// returns an error if it's not possible to do to so.
func (e *RewardPaidEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Staker, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Staker: %w", err)
	}

	index++
	e.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RewardsRemovedToBurnEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardsRemovedToBurn" name from the provided [result.ApplicationLog].
func RewardsRemovedToBurnEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardsRemovedToBurnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardsRemovedToBurnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardsRemovedToBurn" {
				continue
			}
			event := new(RewardsRemovedToBurnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardsRemovedToBurnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardsRemovedToBurnEvent or
// returns an error if it's not possible to do to so.
func (e *RewardsRemovedToBurnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Epoch, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Epoch: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// NmbBurnedEventsFromApplicationLog retrieves a set of all emitted events
// with "NmbBurned" name from the provided [result.ApplicationLog].
func NmbBurnedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NmbBurnedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NmbBurnedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NmbBurned" {
				continue
			}
			event := new(NmbBurnedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NmbBurnedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NmbBurnedEvent or
// returns an error if it's not possible to do to so.
func (e *NmbBurnedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.NmbBurned, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NmbBurned: %w", err)
	}

	index++
	e.GasSpent, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasSpent: %w", err)
	}

	return nil
}

// BurnConfigSetEventsFromApplicationLog retrieves a set of all emitted events
// with "BurnConfigSet" name from the provided [result.ApplicationLog].
func BurnConfigSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnConfigSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BurnConfigSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BurnConfigSet" {
				continue
			}
			event := new(BurnConfigSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BurnConfigSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BurnConfigSetEvent or
// returns an error if it's not possible to do to so.
func (e *BurnConfigSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.SanityRate, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field SanityRate: %w", err)
	}

	index++
	e.GasToBurn, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field GasToBurn: %w", err)
	}

	return nil
}

// NetworkUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "NetworkUpdated" name from the provided [result.ApplicationLog].
func NetworkUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NetworkUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NetworkUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NetworkUpdated" {
				continue
			}
			event := new(NetworkUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NetworkUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NetworkUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *NetworkUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Network, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Network: %w", err)
	}

	return nil
}

// SwapRouterUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SwapRouterUpdated" name from the provided [result.ApplicationLog].
func SwapRouterUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SwapRouterUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SwapRouterUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SwapRouterUpdated" {
				continue
			}
			event := new(SwapRouterUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SwapRouterUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SwapRouterUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *SwapRouterUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.SwapRouter, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field SwapRouter: %w", err)
	}

	return nil
}

// NimbleDaoSetEventsFromApplicationLog retrieves a set of all emitted events
// with "NimbleDaoSet" name from the provided [result.ApplicationLog].
func NimbleDaoSetEventsFromApplicationLog(log *result.ApplicationLog) ([]*NimbleDaoSetEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NimbleDaoSetEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NimbleDaoSet" {
				continue
			}
			event := new(NimbleDaoSetEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NimbleDaoSetEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NimbleDaoSetEvent or
// returns an error if it's not possible to do to so.
func (e *NimbleDaoSetEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.NimbleDao, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field NimbleDao: %w", err)
	}

	return nil
}
