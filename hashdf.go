// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"encoding/binary"
	"hash"
)

// hashDF implements Hash_df, SP 800-90A §10.3.1: it compresses an
// arbitrary-length input chain into exactly requestedBytes of output
// using the supplied hash constructor.
//
// counter is a single byte, so this construction tops out at
// 255*outlen produced bytes; every call site in this package requests
// at most a mechanism's seedlen, which is always far below that
// ceiling.
func hashDF(newHash func() hash.Hash, in *Chain, requestedBytes int) []byte {
	h := newHash()
	out := make([]byte, 0, requestedBytes+h.Size())

	var prefix [5]byte
	binary.BigEndian.PutUint32(prefix[1:], uint32(requestedBytes)*8)

	for counter := byte(1); len(out) < requestedBytes; counter++ {
		prefix[0] = counter
		h.Reset()
		h.Write(prefix[:])
		for node := in; node != nil; node = node.next {
			h.Write(node.data)
		}
		out = h.Sum(out)
	}
	return out[:requestedBytes]
}

// hashgen implements the Hashgen helper used inside Hash-DRBG's
// generate (SP 800-90A §10.1.1.4 step Hashgen): starting from state
// value v, repeatedly hash a running data counter and emit digest
// bytes until requestedBytes have been produced. v is not mutated.
func hashgen(newHash func() hash.Hash, v []byte, requestedBytes int) []byte {
	h := newHash()
	data := make([]byte, len(v))
	copy(data, v)

	out := make([]byte, 0, requestedBytes+h.Size())
	for len(out) < requestedBytes {
		h.Reset()
		h.Write(data)
		out = h.Sum(out)
		beIncrement(data)
	}
	return out[:requestedBytes]
}
