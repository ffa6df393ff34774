// Package shared provides small helpers used by both the client and the server.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Callers use it to drop passwords read from the terminal once they have been sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
