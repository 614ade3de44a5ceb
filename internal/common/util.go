package common

// WipeByteArray overwrites the contents of b with zeros. Passwords read from
// the terminal are wiped this way once they have been sent.
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
