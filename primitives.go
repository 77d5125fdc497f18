// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/xerrors"
)

// newHashFunc returns the hash.Hash constructor backing a Hash or
// HMAC mechanism's primitive. This is C1's hash contract: the
// mechanism layer only ever calls the returned constructor, never
// reaches into crypto/sha256 etc. directly, so a future primitive
// (e.g. a FIPS-validated module build) can be swapped in behind the
// same seam.
func newHashFunc(p Primitive) (func() hash.Hash, error) {
	switch p {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	default:
		return nil, newErr("newHashFunc", KindInvalidArgument, errUnsupportedPrimitive(p))
	}
}

// newBlockCipher returns C1's block_encrypt contract for a CTR
// mechanism: a single-block ECB adapter over AES, keyed with key.
// The key length must match the mechanism's declared keylen
// (16/24/32); aes.NewCipher already enforces this.
func newBlockCipher(key []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newErr("newBlockCipher", KindPrimitiveFailure, xerrors.Errorf("aes.NewCipher: %w", err))
	}
	if block.BlockSize() != 16 {
		return nil, newErr("newBlockCipher", KindFatal, ErrBlockLengthMismatch)
	}
	return block, nil
}

func errUnsupportedPrimitive(p Primitive) error {
	return &unsupportedPrimitiveError{p: p}
}

type unsupportedPrimitiveError struct{ p Primitive }

func (e *unsupportedPrimitiveError) Error() string {
	return "unsupported hash primitive: " + e.p.String()
}
