// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// zero wipes b in place. It is written as a byte-by-byte loop rather
// than relying on the compiler to recognize a higher-level idiom,
// since every write here is to a buffer the caller is about to
// discard and an optimizer is otherwise free to treat as dead.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
