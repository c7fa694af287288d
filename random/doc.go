// Package random should be used in preference to math/rand directly when a
// random number is required inside the emulation, so that power-on state
// can be made reproducible for a given timeline position when ZeroSeed is
// set, while still varying from run to run otherwise.
package random
