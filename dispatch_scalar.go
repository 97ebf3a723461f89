//go:build !(goexperiment.simd && amd64)

package simddecimal

// useSIMDKernel is always false on this build: either the toolchain
// wasn't built with GOEXPERIMENT=simd, or the target isn't amd64.
const useSIMDKernel = false

func dispatchBatch(inputs []ParseInput, outputs []ParseOutput, knownInteger bool) bool {
	return parseBatchScalar(inputs, outputs, knownInteger)
}

func activeBackendName() string {
	return "scalar"
}
