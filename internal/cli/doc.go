// Package cli implements the cptoolkit command tree.
//
// Each subcommand is a thin shell around one toolkit package: it parses
// arguments, calls the package, and prints the result to the command's output
// stream. Line-oriented input (dsu, mst) is read from the command's input
// stream, so every command can be driven from tests with SetArgs/SetIn/SetOut.
//
// Commands are grouped:
//   - number:   isprime, factor, divisors, sieve, modpow, extgcd
//   - sequence: zarray, compress
//   - graph:    dsu, mst
//
// Logging goes through a *zap.Logger. NewRootCmd accepts one for tests;
// when nil, a production logger is built in PersistentPreRunE (debug level
// with --verbose), mirroring how the library packages themselves stay silent.
package cli
