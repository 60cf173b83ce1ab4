package feehandlerconst

const (
	// BPS is the basis point denominator: 1 bps = 0.01%, 10000 bps = 100%.
	BPS = 10_000

	// Precision is the fixed-point denominator of exchange rates and staker
	// reward percentages.
	Precision = 1_000_000_000_000_000_000

	// SanityRateDiffBps is the maximum allowed downward deviation of the
	// network exchange rate from the sanity-implied rate, in basis points.
	SanityRateDiffBps = 1_000

	// DefaultGasToBurn caps a single burn operation until the DAO operator
	// reconfigures it. 2 GAS in Fixed8.
	DefaultGasToBurn = 2_0000_0000
)

// Panic messages shared between the contract and its off-chain consumers.
const (
	ErrOnlyNetwork      = "only nimbleNetwork"
	ErrFeeMismatch      = "transferred amount not equal to total fees"
	ErrNoRebate         = "no rebate to claim"
	ErrNoPlatformFee    = "no fee to claim"
	ErrPercentTooHigh   = "percentage too high"
	ErrBurnTooEarly     = "wait more blocks to burn"
	ErrNoSanityContract = "no sanity rate contract"
	ErrBurningBlocked   = "sanity rate is 0x0, burning is blocked"
	ErrReentrancy       = "reentrant call"
)
