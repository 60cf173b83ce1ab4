package feehandler_test

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	feeHandlerPath = "."
	daoPath        = "../../internal/testcontracts/nimbledao"
	routerPath     = "../../internal/testcontracts/swaprouter"
	sanityPath     = "../../internal/testcontracts/sanityrate"
	nmbPath        = "../../internal/testcontracts/nmb"
	reclaimerPath  = "../../internal/testcontracts/reclaimer"
	unpayablePath  = "../../internal/testcontracts/unpayable"

	bps       = 10_000
	precision = 1_000_000_000_000_000_000

	// Expiry far enough in the future to keep a cached split valid for
	// the whole test, and one that forces a refresh on every call.
	farExpiry = int64(1) << 62
	expired   = 0
)

type feeHandlerFixture struct {
	e       *neotest.Executor
	handler *neotest.ContractInvoker

	dao    *neotest.ContractInvoker
	router *neotest.ContractInvoker
	sanity *neotest.ContractInvoker
	nmb    *neotest.ContractInvoker

	handlerHash util.Uint160
	daoHash     util.Uint160
	routerHash  util.Uint160
	sanityHash  util.Uint160
	nmbHash     util.Uint160
	gasHash     util.Uint160

	daoSetter   neotest.Signer
	daoOperator neotest.Signer
	network     neotest.Signer
}

func compileAndDeploy(t *testing.T, e *neotest.Executor, srcPath string, args any) (*neotest.ContractInvoker, util.Uint160) {
	c := neotest.CompileFile(t, e.CommitteeHash, srcPath, path.Join(srcPath, "config.yml"))
	e.DeployContract(t, c, args)
	return e.CommitteeInvoker(c.Hash), c.Hash
}

func newFeeHandlerFixture(t *testing.T, burnBlockInterval int) *feeHandlerFixture {
	f := newFeeHandlerFixtureNoDao(t, burnBlockInterval)
	f.handler.WithSigners(f.daoSetter).Invoke(t, stackitem.Null{}, "setDaoContract", f.daoHash)
	return f
}

func newFeeHandlerFixtureNoDao(t *testing.T, burnBlockInterval int) *feeHandlerFixture {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	f := &feeHandlerFixture{e: e}

	f.dao, f.daoHash = compileAndDeploy(t, e, daoPath, nil)
	f.router, f.routerHash = compileAndDeploy(t, e, routerPath, nil)
	f.sanity, f.sanityHash = compileAndDeploy(t, e, sanityPath, nil)
	f.nmb, f.nmbHash = compileAndDeploy(t, e, nmbPath, nil)

	gasHash, err := e.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)
	f.gasHash = gasHash

	f.daoSetter = e.NewAccount(t)
	f.daoOperator = e.NewAccount(t)
	f.network = e.NewAccount(t)

	f.handler, f.handlerHash = compileAndDeploy(t, e, feeHandlerPath, []any{
		f.daoSetter.ScriptHash(),
		f.daoOperator.ScriptHash(),
		f.network.ScriptHash(),
		f.routerHash,
		f.nmbHash,
		burnBlockInterval,
	})
	return f
}

// setBRR configures the split served by the governance mock. With expiry in
// the past the handler re-reads it on every use.
func (f *feeHandlerFixture) setBRR(t *testing.T, rewardBps, rebateBps, epoch int, expiry int64) {
	f.dao.Invoke(t, stackitem.Null{}, "setBRRData", rewardBps, rebateBps, epoch, expiry)
}

// handleFee sends fee GAS from the network account with a distribution
// payload attached and returns the transaction hash.
func (f *feeHandlerFixture) handleFee(t *testing.T, wallets []util.Uint160, walletBps []int,
	platformWallet util.Uint160, platformFee, fee int64) util.Uint256 {
	return f.sendFee(t, f.network, wallets, walletBps, platformWallet, platformFee, fee, platformFee+fee)
}

func (f *feeHandlerFixture) sendFee(t *testing.T, from neotest.Signer, wallets []util.Uint160,
	walletBps []int, platformWallet util.Uint160, platformFee, fee, amount int64) util.Uint256 {
	ws := make([]any, len(wallets))
	for i := range wallets {
		ws[i] = wallets[i]
	}
	wbps := make([]any, len(walletBps))
	for i := range walletBps {
		wbps[i] = walletBps[i]
	}
	data := []any{ws, wbps, platformWallet, platformFee, fee}

	gasInv := f.e.NewInvoker(f.gasHash, from)
	return gasInv.Invoke(t, true, "transfer", from.ScriptHash(), f.handlerHash, amount, data)
}

func (f *feeHandlerFixture) sendFeeFail(t *testing.T, message string, from neotest.Signer,
	wallets []util.Uint160, walletBps []int, platformWallet util.Uint160,
	platformFee, fee, amount int64) {
	ws := make([]any, len(wallets))
	for i := range wallets {
		ws[i] = wallets[i]
	}
	wbps := make([]any, len(walletBps))
	for i := range walletBps {
		wbps[i] = walletBps[i]
	}
	data := []any{ws, wbps, platformWallet, platformFee, fee}

	gasInv := f.e.NewInvoker(f.gasHash, from)
	gasInv.InvokeFail(t, message, "transfer", from.ScriptHash(), f.handlerHash, amount, data)
}

// topUp sends plain GAS without a payload, growing the burn budget only.
func (f *feeHandlerFixture) topUp(t *testing.T, amount int64) util.Uint256 {
	gasInv := f.e.NewInvoker(f.gasHash, f.e.Validator)
	return gasInv.Invoke(t, true, "transfer", f.e.Validator.ScriptHash(), f.handlerHash, amount, nil)
}

// setBurnConfig configures the sanity oracle and burn cap as the operator.
func (f *feeHandlerFixture) setBurnConfig(t *testing.T, sanity util.Uint160, gasToBurn int64) {
	f.handler.WithSigners(f.daoOperator).Invoke(t, stackitem.Null{}, "setBurnConfigParams", sanity, gasToBurn)
}

func (f *feeHandlerFixture) intValue(t *testing.T, method string, args ...any) int64 {
	stack, err := f.handler.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, stack.Len())
	return stack.Pop().BigInt().Int64()
}

// eventItems returns the arguments of the single notification with the given
// name emitted by the transaction.
func (f *feeHandlerFixture) eventItems(t *testing.T, h util.Uint256, name string) []stackitem.Item {
	aer := f.e.GetTxExecResult(t, h)
	var found []stackitem.Item
	for _, ev := range aer.Events {
		if ev.Name != name {
			continue
		}
		require.Nil(t, found, "duplicate %s event", name)
		found = ev.Item.Value().([]stackitem.Item)
	}
	require.NotNil(t, found, "no %s event", name)
	return found
}

func (f *feeHandlerFixture) gasBalance(t *testing.T, acc util.Uint160) int64 {
	stack, err := f.e.CommitteeInvoker(f.gasHash).TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return stack.Pop().BigInt().Int64()
}

func (f *feeHandlerFixture) countEvents(t *testing.T, h util.Uint256, name string) int {
	aer := f.e.GetTxExecResult(t, h)
	n := 0
	for _, ev := range aer.Events {
		if ev.Name == name {
			n++
		}
	}
	return n
}

func itemInt(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func itemHash(t *testing.T, item stackitem.Item) util.Uint160 {
	raw, err := item.TryBytes()
	require.NoError(t, err)
	h, err := util.Uint160DecodeBytesBE(raw)
	require.NoError(t, err)
	return h
}
