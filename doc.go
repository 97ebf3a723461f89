// Package simddecimal parses short, fixed-point decimal strings into
// (mantissa, exponent) pairs in batches, using a fixed sequence of vector
// operations with no data-dependent branching in the fast path.
//
// Each input is a 16-byte window holding an unsigned decimal numeral with
// at most one embedded '.', right-padded with arbitrary trailing bytes
// past real_length. The portable backend (parser_scalar.go) runs
// everywhere; an amd64 backend (parser_amd64_simd.go) runs the same five
// phases, doing load & normalize, dot discovery and validation with the
// experimental simd/archsimd package, when GOEXPERIMENT=simd is set and
// the host CPU supports it, falling back to the portable backend
// otherwise.
package simddecimal
