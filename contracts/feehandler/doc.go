/*
Package feehandler implements the FeeHandler contract of the NimbleDAO
protocol.

FeeHandler receives trade fees in GAS from the network contract, splits every
fee between staker rewards, reserve rebates and a burn budget according to
the BRR (burn/reward/rebate) split governed by the DAO, and pays the reserved
parts out on claim. The unreserved remainder of the contract balance is
periodically converted to NMB through the swap router and burnt, with the
exchange rate cross-checked against an independent sanity oracle.

# Contract notifications

FeeReceived notification. Produced on a plain GAS top-up without a
distribution payload.

	FeeReceived:
	  - name: amount
	    type: Integer

FeeDistributed notification. Produced on every fee intake from the network.

	FeeDistributed:
	  - name: platformWallet
	    type: Hash160
	  - name: platformFee
	    type: Integer
	  - name: rewardWei
	    type: Integer
	  - name: rebateWei
	    type: Integer
	  - name: rebateWallets
	    type: Array
	  - name: rebateBpsPerWallet
	    type: Array
	  - name: burnAmount
	    type: Integer

BRRUpdated notification. Produced when the cached fee split is refreshed
from the DAO.

	BRRUpdated:
	  - name: rewardBps
	    type: Integer
	  - name: rebateBps
	    type: Integer
	  - name: burnBps
	    type: Integer
	  - name: expiry
	    type: Integer
	  - name: epoch
	    type: Integer

RebatePaid, PlatformFeePaid notifications. Produced on successful claims.

	RebatePaid:
	  - name: wallet
	    type: Hash160
	  - name: amount
	    type: Integer

	PlatformFeePaid:
	  - name: wallet
	    type: Hash160
	  - name: amount
	    type: Integer

RewardPaid notification. Produced when a staker claims its share of a past
epoch reward pool.

	RewardPaid:
	  - name: staker
	    type: Hash160
	  - name: epoch
	    type: Integer
	  - name: amount
	    type: Integer

RewardsRemovedToBurn notification. Produced when the DAO hands an epoch
reward pool off for burning.

	RewardsRemovedToBurn:
	  - name: epoch
	    type: Integer
	  - name: amount
	    type: Integer

NmbBurned notification. Produced on a successful burn.

	NmbBurned:
	  - name: nmbBurned
	    type: Integer
	  - name: gasSpent
	    type: Integer

BurnConfigSet, NetworkUpdated, SwapRouterUpdated, NimbleDaoSet
notifications. Produced on configuration changes.

	BurnConfigSet:
	  - name: sanityRate
	    type: Hash160
	  - name: gasToBurn
	    type: Integer

	NetworkUpdated:
	  - name: network
	    type: Hash160

	SwapRouterUpdated:
	  - name: swapRouter
	    type: Hash160

	NimbleDaoSet:
	  - name: nimbleDao
	    type: Hash160
*/
package feehandler

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'n' -> interop.Hash160
   fee-paying network contract
 - 'p' -> interop.Hash160
   swap router used for burn conversions
 - 'd' -> interop.Hash160
   DAO (governance) contract
 - 's' -> interop.Hash160
   DAO setter account
 - 'o' -> interop.Hash160
   DAO operator account
 - 't' -> interop.Hash160
   NMB token contract
 - 'b' -> std.Serialize(BRRData)
   cached fee split with its expiry and epoch
 - 'T' -> int
   total GAS reserved for rebates, platform fees and staker rewards
 - 'r' + interop.Hash160 -> int
   accumulated rebate balance per reserve wallet
 - 'f' + interop.Hash160 -> int
   accumulated fee balance per platform wallet
 - 'e' + epoch -> int
   staker reward pool per epoch
 - 'P' + epoch -> int
   claimed part of the reward pool per epoch
 - 'c' + interop.Hash160 + epoch -> bool
   staker reward claim markers
 - 'B' + epoch -> bool
   epochs whose reward pool was handed off for burning
 - 'S' -> std.Serialize([][]byte)
   sanity oracle history, most recent first
 - 'g' -> int
   per-burn GAS cap
 - 'l' -> int
   block of the last successful burn
 - 'i' -> int
   minimal number of blocks between burns
 - 'L' -> bool
   transient payout reentrancy guard

# Accounting
GAS held by the contract above the 'T' reserve is the burn budget. Every
intake grows the reserve by exactly what was credited to wallet balances and
epoch pools, every claim shrinks it by what was paid, so the two never drift.
*/
