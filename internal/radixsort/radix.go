package radixsort

import "math"

// sortRadix runs a 4-pass LSD radix sort (8 bits/pass) over the
// monotonic bit-pattern transform of values, writing the resulting
// permutation into s.ranks. Always O(N): it never reads s.primed.
func (s *State) sortRadix(values []float32) []uint32 {
	n := len(values)
	if n == 0 {
		return s.ranks[:0]
	}

	for i, v := range values {
		s.keys[i] = floatOrderKey(v)
		s.ranks[i] = uint32(i)
	}

	src, srcIdx := s.keys, s.ranks
	dst, dstIdx := s.tmpKeys, s.tmpIdx

	var counts [256]int
	for pass := 0; pass < 4; pass++ {
		shift := uint(pass * 8)

		counts = [256]int{}
		for _, k := range src {
			counts[byte(k>>shift)]++
		}
		// Prefix-sum the histogram into starting offsets per bucket.
		sum := 0
		for b := 0; b < 256; b++ {
			c := counts[b]
			counts[b] = sum
			sum += c
		}
		for i, k := range src {
			b := byte(k >> shift)
			pos := counts[b]
			counts[b]++
			dst[pos] = k
			dstIdx[pos] = srcIdx[i]
		}

		src, dst = dst, src
		srcIdx, dstIdx = dstIdx, srcIdx
	}

	// After an even number of passes (4), the sorted data is back in the
	// original s.keys/s.ranks buffers.
	s.primed = true
	return s.ranks
}

// floatOrderKey maps a float32's bit pattern to a uint32 that preserves
// IEEE ordering, including +Inf sorting after every finite value. NaN
// is not given special treatment beyond whatever order this transform
// happens to produce for it; callers are expected not to feed it NaN
// coordinates.
//
// Standard trick: for non-negative floats, flip only the sign bit (so
// they sort above all negative floats, which have the sign bit set).
// For negative floats, flip every bit (reversing their ordering, since
// a more negative float has a *larger* raw bit pattern).
func floatOrderKey(v float32) uint32 {
	bits := math.Float32bits(v)
	mask := uint32(0)
	if bits&0x80000000 != 0 {
		mask = 0xFFFFFFFF
	} else {
		mask = 0x80000000
	}
	return bits ^ mask
}
