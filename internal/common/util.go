// Package common contains small helpers shared across client layers.
package common

// WipeByteArray overwrites every byte of the buffer with zeros. It is used
// to scrub passwords from memory once they have been sent to the server.
// Safe to call with a nil slice.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
