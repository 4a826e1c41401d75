package sliceops

// SwapBuf returns a copy of in with the byte order reversed.
// The input is never modified.
func SwapBuf(in []byte) []byte {
	if in == nil {
		return nil
	}

	a := make([]byte, len(in))
	for i, j := 0, len(in)-1; j >= 0; i, j = i+1, j-1 {
		a[i] = in[j]
	}

	return a
}

// Clone returns a copy of in, nil for nil input.
func Clone(in []byte) []byte {
	if in == nil {
		return nil
	}

	a := make([]byte, len(in))
	copy(a, in)
	return a
}
