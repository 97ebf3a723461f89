//go:build goexperiment.simd && amd64

package simddecimal

import "golang.org/x/sys/cpu"

// NOTE: simd/archsimd in Go 1.26 is experimental (GOEXPERIMENT=simd) and
// AMD64-only. Int8x16.Equal().ToBits() lowers to the same family of mask
// instructions as the 32-lane form, so it carries the same runtime
// requirement: don't issue it on a CPU that lacks the feature.
//
// golang.org/x/sys/cpu has no dedicated SSSE3-family predicate bundle the
// way it does for AVX-512F/BW/VL, so a single baseline flag is used here.

// useSIMDKernel indicates whether the amd64-accelerated kernel is safe to
// use on this CPU. Set once at init time and consulted by dispatchBatch.
var useSIMDKernel bool

func init() {
	useSIMDKernel = cpu.X86.HasSSSE3
}

func dispatchBatch(inputs []ParseInput, outputs []ParseOutput, knownInteger bool) bool {
	if useSIMDKernel {
		return parseBatchSIMD(inputs, outputs, knownInteger)
	}
	return parseBatchScalar(inputs, outputs, knownInteger)
}

func activeBackendName() string {
	if useSIMDKernel {
		return "amd64-simd"
	}
	return "scalar"
}
