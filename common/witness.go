package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrOperatorWitnessFailed appears when the method is restricted
	// to the DAO operator account but was called by someone else.
	ErrOperatorWitnessFailed = "only daoOperator"
	// ErrSetterWitnessFailed appears when the method is restricted
	// to the DAO setter account but was called by someone else.
	ErrSetterWitnessFailed = "only daoSetter"
	// ErrWitnessFailed appears when the method must be called
	// using certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckOperatorWitness checks witness of the stored DAO operator account.
// It panics with ErrOperatorWitnessFailed message on fail.
func CheckOperatorWitness(operator []byte) {
	checkWitnessWithPanic(operator, ErrOperatorWitnessFailed)
}

// CheckSetterWitness checks witness of the stored DAO setter account.
// It panics with ErrSetterWitnessFailed message on fail.
func CheckSetterWitness(setter []byte) {
	checkWitnessWithPanic(setter, ErrSetterWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
