package utf8pp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

func expectedLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	}
	return 4
}

// roundTrip encodes r and decodes it both ways, returning a non-empty
// description on the first mismatch.
func roundTrip(buf []byte, r rune) string {
	n, err := Encode(buf, r)
	if err != nil || n != expectedLen(r) {
		return "encode"
	}
	got, fn, err := DecodeForward(buf[:n])
	if err != nil || fn != n || got != r {
		return "forward decode"
	}
	got, bn, err := DecodeBackward(buf[:n], n)
	if err != nil || bn != n || got != r {
		return "backward decode"
	}
	return ""
}

// U+0000 encodes to the terminator byte, so it is left to TestEncodeNul.
func TestRoundTripAllCodepoints(t *testing.T) {
	var buf [MaxLen]byte
	for r := rune(1); r <= MaxCodepoint; r++ {
		if isSurrogate(r) {
			continue
		}
		if failed := roundTrip(buf[:], r); failed != "" {
			t.Fatalf("U+%04X: %s mismatch", r, failed)
		}
	}
}

func TestEncodeNul(t *testing.T) {
	buf := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	n, err := Encode(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, []byte{0x00}, buf[:n])

	// Reading it back yields end of input, not a one-byte character.
	r, n, err := DecodeForward(buf[:1])
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, r)

	r, n, err = DecodeBackward(buf[:1], 1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, r)
}

func TestEncodeLengthBoundaries(t *testing.T) {
	tests := []struct {
		r      rune
		length int
	}{
		{0x7F, 1}, {0x80, 2},
		{0x7FF, 2}, {0x800, 3},
		{0xFFFF, 3}, {0x10000, 4},
		{MaxCodepoint, 4},
	}

	buf := make([]byte, MaxLen)
	for _, tt := range tests {
		n, err := Encode(buf, tt.r)
		require.NoError(t, err)
		assert.Equal(t, tt.length, n, "U+%04X", tt.r)
	}
}

func TestConcurrentCodec(t *testing.T) {
	var wg sync.WaitGroup
	workers := 16
	shared := []byte("shared read-only buffer: ñ 漢 😀")
	errs := make(chan string, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var buf [MaxLen]byte
			for r := rune(w) + 1; r <= MaxCodepoint; r += rune(workers) * 97 {
				if isSurrogate(r) {
					continue
				}
				if failed := roundTrip(buf[:], r); failed != "" {
					errs <- failed
					return
				}
			}
			for cursor := len(shared); cursor > 0; {
				_, n, err := DecodeBackward(shared, cursor)
				if err != nil || n == 0 {
					errs <- "shared buffer"
					return
				}
				cursor -= n
			}
		}(w)
	}

	wg.Wait()
	close(errs)
	for failed := range errs {
		t.Errorf("concurrent %s mismatch", failed)
	}
}

func TestZeroAllocations(t *testing.T) {
	text := []byte("a ñ 漢 😀")
	bad := []byte{0xC0, 0x41}
	var out [MaxLen]byte

	allocs := testing.AllocsPerRun(100, func() {
		for cursor := 0; cursor < len(text); {
			_, n, _ := DecodeForward(text[cursor:])
			cursor += n
		}
		for cursor := len(text); cursor > 0; {
			_, n, _ := DecodeBackward(text, cursor)
			cursor -= n
		}
		_, _ = ScanForward(bad)
		_, _ = ScanBackward(bad, len(bad))
		_, _ = Encode(out[:], 0x1F600)
		_, _ = Encode(out[:], MaxCodepoint+1)
		_, _, _ = DecodeForwardString("漢")
	})
	assert.Zero(t, allocs)
}

func BenchmarkScanForward(b *testing.B) {
	text := []byte("The quick brown fox · 速い茶色の狐 · 🦊🦊🦊")
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for cursor := 0; cursor < len(text); {
			n, _ := ScanForward(text[cursor:])
			cursor += n
		}
	}
}

func BenchmarkDecodeBackward(b *testing.B) {
	text := []byte("The quick brown fox · 速い茶色の狐 · 🦊🦊🦊")
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for cursor := len(text); cursor > 0; {
			_, n, _ := DecodeBackward(text, cursor)
			cursor -= n
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	codepoints := []rune{'a', 'ñ', '漢', '🦊'}
	var buf [MaxLen]byte
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, r := range codepoints {
			_, _ = Encode(buf[:], r)
		}
	}
}
