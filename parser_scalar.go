package simddecimal

import "math/bits"

// dotByte is the byte '.' after phase 1's ascii normalization
// ('.' - '0', wrapping, same as the vector ports' splatted comparison
// value).
const dotByte = byte('.' + 256 - '0')

// shuffleLane applies a 16-entry shuffle control to a 16-byte lane: out[i]
// is src[control[i]], or zero when control[i] is the selectZero sentinel.
// This is the scalar stand-in for a hardware byte-shuffle instruction;
// both length-shift and dot-elision reduce to the same operation with a
// different control table.
func shuffleLane(src [16]byte, control [16]byte) [16]byte {
	var out [16]byte
	for i := 0; i < 16; i++ {
		c := control[i]
		if c == selectZero {
			out[i] = 0
			continue
		}
		out[i] = src[c]
	}
	return out
}

// locateDot finds the right-justified position of the dot byte in an
// already length-shifted lane, or 16 if there is none. Bits 16..31 of the
// working mask are pre-set so that an absent dot naturally produces a
// trailing-zero-count of 16, matching a present dot at any valid position
// 0..15.
func locateDot(lane [16]byte) int {
	mask := uint32(0xffff0000)
	for i := 0; i < 16; i++ {
		if lane[i] == dotByte {
			mask |= 1 << uint(i)
		}
	}
	return int(bits.TrailingZeros32(mask))
}

// validateLane reports whether every byte of lane is a digit 0..9. A
// length-shifted, dot-elided lane with any other value (from stray
// non-digit input, a second dot, or anything the shift left as
// zero-filled-but-still-garbage) fails validation.
func validateLane(lane [16]byte) bool {
	ok := true
	for _, b := range lane {
		if b > 9 {
			ok = false
		}
	}
	return ok
}

// reduceMantissa collapses 16 right-justified decimal digits into a
// single uint64, combining adjacent digits two at a time (tens, then
// hundreds, then ten-thousands) the same way the vector ports do with
// maddubs/madd before a final 10^8 join — so that no single
// multiply-accumulate step ever needs to carry more than 8 digits of
// precision.
func reduceMantissa(lane [16]byte) uint64 {
	var pairs [8]uint16
	for k := 0; k < 8; k++ {
		pairs[k] = uint16(lane[2*k])*10 + uint16(lane[2*k+1])
	}

	var quads [4]uint32
	for k := 0; k < 4; k++ {
		quads[k] = uint32(pairs[2*k])*100 + uint32(pairs[2*k+1])
	}

	var octets [2]uint64
	for k := 0; k < 2; k++ {
		octets[k] = uint64(quads[2*k])*10000 + uint64(quads[2*k+1])
	}

	return 100000000*octets[0] + octets[1]
}

// parseBatchScalar is the portable reference kernel: every phase is a
// plain loop over the whole batch, operating on [16]byte lanes instead of
// hardware vector registers.
func parseBatchScalar(inputs []ParseInput, outputs []ParseOutput, knownInteger bool) bool {
	n := len(inputs)
	cleaned := make([][16]byte, n)

	// Phase 1: load & normalize. '0'..'9' become 0..9; anything else
	// wraps into 10..255.
	for i := 0; i < n; i++ {
		for b := 0; b < 16; b++ {
			cleaned[i][b] = inputs[i].Data[b] - '0'
		}
	}

	// Phase 2: right-justify, zero-filling everything past real_length.
	for i := 0; i < n; i++ {
		cleaned[i] = shuffleLane(cleaned[i], lengthShiftControl[inputs[i].RealLength])
	}

	// Phase 3: dot elision & exponent, skipped entirely when the caller
	// already knows every input is a bare integer.
	if knownInteger {
		for i := 0; i < n; i++ {
			outputs[i].Exponent = 0
		}
	} else {
		for i := 0; i < n; i++ {
			dotIdx := locateDot(cleaned[i])
			outputs[i].Exponent = exponentFromBitsTable[dotIdx]
			cleaned[i] = shuffleLane(cleaned[i], dotShuffleControl[dotIdx])
		}
	}

	// Phase 4: validate. A second stray dot, a letter, or any leftover
	// selectZero-adjacent garbage shows up here as a byte above 9.
	ok := true
	for i := 0; i < n; i++ {
		if !validateLane(cleaned[i]) {
			ok = false
		}
	}

	// Phase 5: horizontal reduce.
	for i := 0; i < n; i++ {
		outputs[i].Mantissa = reduceMantissa(cleaned[i])
	}

	return ok
}
