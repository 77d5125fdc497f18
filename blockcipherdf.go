// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
)

// dfKey is the fixed key Block_Cipher_df uses for its internal BCC
// calls, 0x000102...1F, per SP 800-90A §10.3.2 step 8. It is never
// secret: it is a constant of the algorithm, not key material.
var dfKey = []byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
	0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
}

// blockCipherDFMaxInputBytes is the cap this package enforces on
// Block_Cipher_df's input length. The upstream source this
// mechanism is modeled on enforces only input_len <= 512/8 = 64 bytes
// rather than the tighter bound SP 800-90A itself allows; that 64-byte
// ceiling is reproduced here deliberately (see DESIGN.md) rather than
// silently widened.
const blockCipherDFMaxInputBytes = 512 / 8

// bcc implements BCC, SP 800-90A §10.3.3: CBC-MAC without output
// truncation. data must already be a whole multiple of the cipher's
// block size; blockCipherDF guarantees this via its padding step.
func bcc(block cipher.Block, data []byte) []byte {
	blockSize := block.BlockSize()
	chainingValue := make([]byte, blockSize)
	inputBlock := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		b := data[off : off+blockSize]
		for j := 0; j < blockSize; j++ {
			inputBlock[j] = chainingValue[j] ^ b[j]
		}
		block.Encrypt(chainingValue, inputBlock)
	}
	return chainingValue
}

// blockCipherDF implements Block_Cipher_df, SP 800-90A §10.3.2, built
// from BCC. keyLen is the AES key size that the derivation step itself
// uses (independent of the caller's eventual mechanism key); newCipher
// constructs an AES block cipher for an arbitrary key of that length.
func blockCipherDF(newCipher func(key []byte) (cipher.Block, error), keyLen int, in *Chain, requestedBytes int) ([]byte, error) {
	blockSize := 16 // AES block size; fixed by SP 800-90A for CTR-DRBG.

	inputLen := in.Len()
	if inputLen > blockCipherDFMaxInputBytes {
		return nil, newErr("blockCipherDF", KindInvalidArgument, errInputTooLarge)
	}

	s := make([]byte, 0, 4+4+inputLen+1+blockSize)
	var l, n [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(inputLen))
	binary.BigEndian.PutUint32(n[:], uint32(requestedBytes))
	s = append(s, l[:]...)
	s = append(s, n[:]...)
	for node := in; node != nil; node = node.next {
		s = append(s, node.data...)
	}
	s = append(s, 0x80)
	for len(s)%blockSize != 0 {
		s = append(s, 0x00)
	}

	k, err := newCipher(dfKey[:keyLen])
	if err != nil {
		return nil, newErr("blockCipherDF", KindPrimitiveFailure, err)
	}

	temp := make([]byte, 0, keyLen+blockSize)
	iv := make([]byte, blockSize)
	ivAndS := make([]byte, 0, blockSize+len(s))
	for i := uint32(0); len(temp) < keyLen+blockSize; i++ {
		binary.BigEndian.PutUint32(iv, i)
		ivAndS = ivAndS[:0]
		ivAndS = append(ivAndS, iv...)
		ivAndS = append(ivAndS, s...)
		temp = append(temp, bcc(k, ivAndS)...)
	}

	kPrime, err := newCipher(temp[:keyLen])
	if err != nil {
		return nil, newErr("blockCipherDF", KindPrimitiveFailure, err)
	}
	x := make([]byte, blockSize)
	copy(x, temp[keyLen:keyLen+blockSize])

	out := make([]byte, 0, requestedBytes+blockSize)
	for len(out) < requestedBytes {
		kPrime.Encrypt(x, x)
		out = append(out, x...)
	}
	return out[:requestedBytes], nil
}

var errInputTooLarge = errors.New("block_cipher_df input exceeds 64-byte cap")
