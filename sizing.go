package passvault

// Output-buffer sizing policy. Pure arithmetic over the provider-reported
// length constants; buffers are allocated exactly, immediately before the
// provider call that fills them.

// ciphertextLength returns the buffer size for an encrypt-class output.
func ciphertextLength(plaintextSize int, extra uint32) int {
	return plaintextSize + int(extra)
}

// plaintextLength returns the buffer size for a decrypt-class output. An
// input shorter than the overhead is rejected here, before any allocation
// and before the provider is invoked, so an underflowed length can never
// reach a buffer allocation.
func plaintextLength(op string, ciphertextSize int, extra uint32) (int, error) {
	if ciphertextSize < int(extra) {
		return 0, &InvalidInputLengthError{
			Op:          op,
			InputLength: ciphertextSize,
			MinLength:   int(extra),
		}
	}
	return ciphertextSize - int(extra), nil
}
