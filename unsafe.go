package utf8pp

import "unsafe"

// stringBytes views s as a byte slice without copying.
// SAFE here because the codec only reads from the view and never keeps it
// past the call.
func stringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ScanForwardString is ScanForward for a string, without copying it.
func ScanForwardString(s string) (int, error) {
	return ScanForward(stringBytes(s))
}

// ScanBackwardString is ScanBackward for a string, without copying it.
func ScanBackwardString(s string, cursor int) (int, error) {
	return ScanBackward(stringBytes(s), cursor)
}

// DecodeForwardString is DecodeForward for a string, without copying it.
func DecodeForwardString(s string) (rune, int, error) {
	return DecodeForward(stringBytes(s))
}

// DecodeBackwardString is DecodeBackward for a string, without copying it.
func DecodeBackwardString(s string, cursor int) (rune, int, error) {
	return DecodeBackward(stringBytes(s), cursor)
}
