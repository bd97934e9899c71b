package randutil

// References:
// https://gist.github.com/itsmrpeck/0c55bc45c69632c49a480e9c51a2beaa

const DefaultSeed uint64 = 478119476

// QuickRNG is a linear-congruential 32-bit generator with a
// value-dependent bit-shift extraction, yielding uniform 32-bit output
// from a seed. The state is an explicit value; there is no process-wide
// seed, so test runs stay reproducible.
type QuickRNG struct {
	state uint64
	value uint32
}

func NewQuickRNG(seed uint64) *QuickRNG {
	rng := &QuickRNG{state: seed}
	rng.update()
	return rng
}

func (rng *QuickRNG) update() {
	rng.state = 2862933555777941757*rng.state + 3037000493
	shift := 29 - uint8(rng.state>>61)
	rng.value = uint32(rng.state >> shift)
}

// Next yields the next random number in 0 ... math.MaxUint32.
func (rng *QuickRNG) Next() uint32 {
	rng.update()
	return rng.value
}

// ASCIIString yields a random printable ASCII string of length n.
func ASCIIString(n int, rng *QuickRNG) string {
	buf := make([]byte, n)
	for k := 0; k < n; k++ {
		buf[k] = byte(32 + rng.Next()%95)
	}
	return string(buf)
}

// ASCIIStringRange yields a random printable ASCII string whose length is
// in [minLen, maxLen). Reversed bounds are swapped.
func ASCIIStringRange(minLen, maxLen int, rng *QuickRNG) string {
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	if minLen == maxLen {
		return ASCIIString(minLen, rng)
	}
	return ASCIIString(minLen+int(rng.Next())%(maxLen-minLen), rng)
}
