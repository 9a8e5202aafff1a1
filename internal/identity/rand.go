package identity

const (
	digitChars = "0123456789"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// pick returns a random element from a string slice.
func (g *Generator) pick(s []string) string {
	return s[g.rng.IntN(len(s))]
}

// pickByte returns a random byte from a string.
func (g *Generator) pickByte(s string) byte {
	return s[g.rng.IntN(len(s))]
}

// digits returns n random decimal digits.
func (g *Generator) digits(n int) string {
	return g.chars(n, digitChars)
}

// chars returns n random bytes drawn from alphabet.
func (g *Generator) chars(n int, alphabet string) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = g.pickByte(alphabet)
	}
	return string(buf)
}

// between returns a random int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
