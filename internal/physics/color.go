package physics

// Color is a palette token in #rrggbb form.
type Color string

// DefaultPalette is the fixed set bodies draw their colour from.
var DefaultPalette = []Color{"#ffaa33", "#99ffaa", "#00ff00", "#4411aa", "#ff1100"}

// RGB decodes the token. Malformed tokens decode as white.
func (c Color) RGB() (r, g, b uint8) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 255, 255, 255
	}
	var out [3]uint8
	for i := range out {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return 255, 255, 255
		}
		out[i] = hi<<4 | lo
	}
	return out[0], out[1], out[2]
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
