package utf8pp

// RuneLen returns the number of bytes Encode writes for r, or -1 if r is
// outside [0, MaxCodepoint].
func RuneLen(r rune) int {
	switch {
	case r < 0:
		return -1
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	case r <= MaxCodepoint:
		return 4
	}
	return -1
}

// Encode writes the shortest UTF-8 form of r into dst and returns the
// number of bytes written. Nothing is written on error.
func Encode(dst []byte, r rune) (int, error) {
	n := RuneLen(r)
	if n < 0 {
		return 0, ErrInvalidCodepoint
	}
	if len(dst) < n {
		return 0, ErrShortBuffer
	}

	switch n {
	case 1:
		dst[0] = byte(r)
	case 2:
		dst[0] = byte(0xC0 | r>>6)
		dst[1] = byte(0x80 | r&0x3F)
	case 3:
		dst[0] = byte(0xE0 | r>>12)
		dst[1] = byte(0x80 | (r>>6)&0x3F)
		dst[2] = byte(0x80 | r&0x3F)
	default:
		dst[0] = byte(0xF0 | r>>18)
		dst[1] = byte(0x80 | (r>>12)&0x3F)
		dst[2] = byte(0x80 | (r>>6)&0x3F)
		dst[3] = byte(0x80 | r&0x3F)
	}
	return n, nil
}

// DecodeForward decodes the sequence starting at buf[0]. The rune is 0
// unless n > 0.
func DecodeForward(buf []byte) (r rune, n int, err error) {
	n, err = ScanForward(buf)
	if n <= 0 {
		return 0, n, err
	}
	return decode(buf[:n]), n, nil
}

// DecodeBackward decodes the sequence ending right before buf[cursor]. The
// rune is 0 unless n > 0.
func DecodeBackward(buf []byte, cursor int) (r rune, n int, err error) {
	n, err = ScanBackward(buf, cursor)
	if n <= 0 {
		return 0, n, err
	}
	return decode(buf[cursor-n : cursor]), n, nil
}

// decode assembles a codepoint from a sequence already validated by one of
// the scanners; len(p) is its length.
func decode(p []byte) rune {
	switch len(p) {
	case 1:
		return rune(p[0])
	case 2:
		return rune(p[0]&0x1F)<<6 | rune(p[1]&0x3F)
	case 3:
		return rune(p[0]&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F)
	}
	return rune(p[0]&0x07)<<18 | rune(p[1]&0x3F)<<12 | rune(p[2]&0x3F)<<6 | rune(p[3]&0x3F)
}
