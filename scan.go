package utf8pp

// isContinuation reports whether b is a 10xxxxxx trailing byte.
func isContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xBF
}

// leadFor reports whether b opens a sequence of exactly n bytes.
func leadFor(b byte, n int) bool {
	switch n {
	case 2:
		return b >= 0xC0 && b <= 0xDF
	case 3:
		return b >= 0xE0 && b <= 0xEF
	case 4:
		return b >= 0xF0 && b <= 0xF7
	}
	return false
}

// ScanForward returns the byte length of the sequence starting at buf[0].
// The end of buf is treated like a 0x00 terminator, so a sequence cut
// short by it is malformed.
func ScanForward(buf []byte) (int, error) {
	if len(buf) == 0 || buf[0] == 0 {
		return 0, nil
	}

	b0 := buf[0]
	if b0 < 0x80 {
		return 1, nil
	}
	if b0 < 0xC0 || b0 > 0xF7 {
		return 0, ErrMalformed
	}

	n := 4
	if b0 < 0xE0 {
		n = 2
	} else if b0 < 0xF0 {
		n = 3
	}

	// Checked one at a time so nothing past the first bad byte is read.
	for i := 1; i < n; i++ {
		if i >= len(buf) || !isContinuation(buf[i]) {
			return 0, ErrMalformed
		}
	}
	return n, nil
}

// ScanBackward returns the byte length of the sequence that ends right
// before buf[cursor]. A cursor of 0 or a 0x00 byte at cursor-1 reports end
// of input.
func ScanBackward(buf []byte, cursor int) (int, error) {
	if cursor < 0 || cursor > len(buf) {
		return 0, ErrCursorOutOfRange
	}
	if cursor == 0 {
		return 0, nil
	}

	last := buf[cursor-1]
	if last == 0 {
		return 0, nil
	}
	if last < 0x80 {
		return 1, nil
	}
	if !isContinuation(last) {
		return 0, ErrMalformed
	}

	for n := 2; n <= MaxLen; n++ {
		i := cursor - n
		if i < 0 {
			return 0, ErrMalformed
		}
		b := buf[i]
		if isContinuation(b) {
			continue
		}
		if leadFor(b, n) {
			return n, nil
		}
		return 0, ErrMalformed
	}

	// Four trailing bytes in a row: no sequence is that long.
	return 0, ErrMalformed
}
