package simddecimal

// ParseBatch parses every input into the corresponding output, handling a
// dot anywhere in the numeral (or no dot at all). It returns true only if
// every lane in the batch was a valid decimal numeral; on a false return,
// every output's Mantissa/Exponent is still populated (no input's failure
// affects another's result), but callers must not trust lanes whose own
// validity they have not separately confirmed — ParseBatch reports only a
// single batch-wide ok bit, by design (see the package's error-handling
// notes).
//
// len(inputs) must equal len(outputs); ParseBatch panics otherwise.
func ParseBatch(inputs []ParseInput, outputs []ParseOutput) bool {
	mustMatchLengths(inputs, outputs)
	if len(inputs) == 0 {
		return true
	}
	return dispatchBatch(inputs, outputs, false)
}

// ParseIntegerBatch is ParseBatch specialized for batches the caller
// already knows contain no dot. Skipping dot discovery removes an entire
// phase rather than branching around it per-lane, so every output's
// Exponent is unconditionally 0.
//
// len(inputs) must equal len(outputs); ParseIntegerBatch panics
// otherwise.
func ParseIntegerBatch(inputs []ParseInput, outputs []ParseOutput) bool {
	mustMatchLengths(inputs, outputs)
	if len(inputs) == 0 {
		return true
	}
	return dispatchBatch(inputs, outputs, true)
}

// ActiveBackend reports which kernel is wired into this build: "scalar"
// or "amd64-simd". It exists so a caller can log which path served a
// process without reaching into package internals.
func ActiveBackend() string {
	return activeBackendName()
}

func mustMatchLengths(inputs []ParseInput, outputs []ParseOutput) {
	if len(inputs) != len(outputs) {
		panic("simddecimal: len(inputs) != len(outputs)")
	}
}
