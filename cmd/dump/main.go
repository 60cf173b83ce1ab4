package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/big"

	"github.com/Pnkjgot01/NimbleDAO/rpc/feehandler"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "LE script hash of the FeeHandler contract")
	wallet := flag.String("wallet", "", "LE script hash of a wallet to show accrued rebate and platform fee for")
	epoch := flag.Int64("epoch", -1, "Epoch to show reward pool state for")
	withStorage := flag.Bool("storage", false, "Dump raw contract storage as well")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing FeeHandler contract hash")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	b, err := newRemoteBlockChain(*neoRPCEndpoint)
	if err != nil {
		log.Fatal(fmt.Errorf("init remote blockchain: %w", err))
	}

	defer b.close()

	err = dumpFeeHandler(b, h, *wallet, *epoch, *withStorage)
	if err != nil {
		log.Fatal(err)
	}
}

func dumpFeeHandler(b *remoteBlockchain, h util.Uint160, wallet string, epoch int64, withStorage bool) error {
	reader := feehandler.NewReader(b.invoker, h)

	version, err := reader.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}

	brr, err := reader.ReadBRRData()
	if err != nil {
		return fmt.Errorf("read cached BRR data: %w", err)
	}

	reserve, err := reader.TotalPayoutBalance()
	if err != nil {
		return fmt.Errorf("get payout reserve: %w", err)
	}

	gasToBurn, err := reader.GasToBurn()
	if err != nil {
		return fmt.Errorf("get gas to burn: %w", err)
	}

	interval, err := reader.BurnBlockInterval()
	if err != nil {
		return fmt.Errorf("get burn block interval: %w", err)
	}

	sanityContracts, err := reader.GetSanityRateContracts()
	if err != nil {
		return fmt.Errorf("get sanity rate contracts: %w", err)
	}

	sanityRate, err := reader.GetLatestSanityRate()
	if err != nil {
		return fmt.Errorf("get latest sanity rate: %w", err)
	}

	fmt.Printf("FeeHandler %s (version %s) at block #%d\n", h.StringLE(), version, b.currentBlock)
	fmt.Printf("BRR: reward %s bps, rebate %s bps, epoch %s, expiry %s\n",
		brr.RewardBps, brr.RebateBps, brr.Epoch, brr.Expiry)
	fmt.Printf("Payout reserve: %s\n", reserve)
	fmt.Printf("Burn budget per call: %s, block interval: %s\n", gasToBurn, interval)
	fmt.Printf("Latest sanity rate: %s\n", sanityRate)
	for i := range sanityContracts {
		fmt.Printf("Sanity rate contract #%d: %s\n", i, sanityContracts[i].StringLE())
	}

	if wallet != "" {
		w, err := util.Uint160DecodeStringLE(wallet)
		if err != nil {
			return fmt.Errorf("decode wallet hash: %w", err)
		}

		rebate, err := reader.RebatePerWallet(w)
		if err != nil {
			return fmt.Errorf("get rebate of %s: %w", w.StringLE(), err)
		}

		platformFee, err := reader.FeePerPlatformWallet(w)
		if err != nil {
			return fmt.Errorf("get platform fee of %s: %w", w.StringLE(), err)
		}

		fmt.Printf("Wallet %s: rebate %s, platform fee %s\n", w.StringLE(), rebate, platformFee)
	}

	if epoch >= 0 {
		pool, err := reader.RewardsPerEpoch(big.NewInt(epoch))
		if err != nil {
			return fmt.Errorf("get reward pool of epoch %d: %w", epoch, err)
		}

		paid, err := reader.RewardsPaidPerEpoch(big.NewInt(epoch))
		if err != nil {
			return fmt.Errorf("get paid rewards of epoch %d: %w", epoch, err)
		}

		fmt.Printf("Epoch %d: reward pool %s, paid out %s\n", epoch, pool, paid)
	}

	if withStorage {
		fmt.Println("Storage:")

		err = b.iterateContractStorage(h, func(key, value []byte) error {
			fmt.Printf("  %s: %s\n", hex.EncodeToString(key), hex.EncodeToString(value))
			return nil
		})
		if err != nil {
			return fmt.Errorf("iterate contract storage: %w", err)
		}
	}

	return nil
}
