package sanityrate

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

const rateKey = 'r'

func SetRate(rate int) {
	storage.Put(storage.GetContext(), rateKey, rate)
}

// GetLatestRate returns the configured NMB to GAS quote.
func GetLatestRate() int {
	data := storage.Get(storage.GetReadOnlyContext(), rateKey)
	if data == nil {
		return 0
	}
	return data.(int)
}
