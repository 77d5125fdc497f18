// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// beAddMod treats dst as a big-endian unsigned integer and adds addend
// to it in place, modulo 2^(8*len(dst)). addend is right-aligned
// against dst (the shorter buffer), and carry propagates from the
// least-significant byte (the tail of both slices) toward the most
// significant; any carry out of the top byte of dst is dropped, which
// is exactly the modular truncation the mechanisms rely on (Hash-DRBG
// §10.1.1.2/10.1.1.4, CTR-DRBG's V counter).
func beAddMod(dst, addend []byte) {
	carry := uint(0)
	i := len(dst) - 1
	j := len(addend) - 1
	for i >= 0 {
		sum := uint(dst[i]) + carry
		if j >= 0 {
			sum += uint(addend[j])
			j--
		}
		dst[i] = byte(sum)
		carry = sum >> 8
		i--
	}
}

// beAddUint64Mod adds a uint64 value to dst in place, modulo
// 2^(8*len(dst)). Used for "V = V + reseed_counter" in Hash-DRBG.
func beAddUint64Mod(dst []byte, v uint64) {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	beAddMod(dst, buf[:])
}

// beIncrement adds 1 to dst in place, modulo 2^(8*len(dst)). Used for
// the CTR-DRBG counter V and for Hash-DRBG's Hashgen data counter.
func beIncrement(dst []byte) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i]++
		if dst[i] != 0 {
			return
		}
	}
}
