// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "fmt"

// MechanismKind identifies which of the three SP 800-90A mechanism families an
// instance runs.
type MechanismKind int

const (
	Hash MechanismKind = iota + 1
	Hmac
	Ctr
)

func (k MechanismKind) String() string {
	switch k {
	case Hash:
		return "Hash"
	case Hmac:
		return "HMAC"
	case Ctr:
		return "CTR"
	default:
		return "unknown"
	}
}

// Primitive identifies the underlying hash function or block cipher a
// mechanism is built on.
type Primitive int

const (
	SHA1 Primitive = iota + 1
	SHA256
	SHA384
	SHA512
	AES128
	AES192
	AES256
)

func (p Primitive) String() string {
	switch p {
	case SHA1:
		return "SHA-1"
	case SHA256:
		return "SHA-256"
	case SHA384:
		return "SHA-384"
	case SHA512:
		return "SHA-512"
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return "unknown"
	}
}

// Descriptor is the immutable, per-configuration mechanism record
// described by SP 800-90A Table 3. One Descriptor exists per
// supported (Kind, Primitive) pair; descriptors never mutate once
// constructed.
type Descriptor struct {
	Kind      MechanismKind
	Primitive Primitive

	// SeedLen is the seedlen of Table 3 in bytes: the length of V and
	// C for Hash, and of the Key||V update output for CTR. HMAC-DRBG's
	// V and K are OutLen bytes long.
	SeedLen int

	// OutLen is the underlying hash function's digest size. Zero for
	// CTR mechanisms, which have no hash primitive.
	OutLen int

	// BlockLen is the underlying block cipher's block size in bytes.
	// Zero for Hash/HMAC mechanisms.
	BlockLen int

	// KeyLen is the AES key size in bytes for CTR mechanisms. Zero
	// for Hash/HMAC mechanisms, where the C buffer substitutes for a
	// cipher key.
	KeyLen int

	// SecurityStrength is the strength in bytes (16/24/32) demanded
	// of the entropy source on instantiate and reseed.
	SecurityStrength int
}

// descriptors is the literal Table 3 registry. Values are taken
// directly from SP 800-90A: for Hash/HMAC, seedlen is 55 bytes for the
// SHA-1/224/256 family and 111 bytes for the SHA-384/512 family; for
// CTR, seedlen = keylen + blocklen with blocklen fixed at the AES
// block size (16).
var descriptors = map[MechanismKind]map[Primitive]Descriptor{
	Hash: {
		SHA1:   {Kind: Hash, Primitive: SHA1, SeedLen: 55, OutLen: 20, SecurityStrength: 16},
		SHA256: {Kind: Hash, Primitive: SHA256, SeedLen: 55, OutLen: 32, SecurityStrength: 16},
		SHA384: {Kind: Hash, Primitive: SHA384, SeedLen: 111, OutLen: 48, SecurityStrength: 24},
		SHA512: {Kind: Hash, Primitive: SHA512, SeedLen: 111, OutLen: 64, SecurityStrength: 32},
	},
	Hmac: {
		SHA1:   {Kind: Hmac, Primitive: SHA1, SeedLen: 55, OutLen: 20, SecurityStrength: 16},
		SHA256: {Kind: Hmac, Primitive: SHA256, SeedLen: 55, OutLen: 32, SecurityStrength: 16},
		SHA384: {Kind: Hmac, Primitive: SHA384, SeedLen: 111, OutLen: 48, SecurityStrength: 24},
		SHA512: {Kind: Hmac, Primitive: SHA512, SeedLen: 111, OutLen: 64, SecurityStrength: 32},
	},
	Ctr: {
		AES128: {Kind: Ctr, Primitive: AES128, SeedLen: 32, BlockLen: 16, KeyLen: 16, SecurityStrength: 16},
		AES192: {Kind: Ctr, Primitive: AES192, SeedLen: 40, BlockLen: 16, KeyLen: 24, SecurityStrength: 24},
		AES256: {Kind: Ctr, Primitive: AES256, SeedLen: 48, BlockLen: 16, KeyLen: 32, SecurityStrength: 32},
	},
}

// LookupDescriptor returns the immutable descriptor for a (kind,
// primitive) pair, or an error if the combination is not part of
// Table 3 (e.g. Ctr+SHA256, or Hash+AES128).
func LookupDescriptor(kind MechanismKind, primitive Primitive) (Descriptor, error) {
	byPrimitive, ok := descriptors[kind]
	if !ok {
		return Descriptor{}, newErr("LookupDescriptor", KindInvalidArgument, fmt.Errorf("unsupported mechanism kind %v", kind))
	}
	d, ok := byPrimitive[primitive]
	if !ok {
		return Descriptor{}, newErr("LookupDescriptor", KindInvalidArgument, fmt.Errorf("primitive %v is not valid for mechanism %v", primitive, kind))
	}
	return d, nil
}

// maxRequestBytes is the maximum number of bytes a single Generate
// call may return (2^16), per §4.4 step 2.
const maxRequestBytes = 1 << 16

// maxReseedCounter is the reseed_counter bound (2^48) shared by all
// three mechanisms.
const maxReseedCounter = uint64(1) << 48

// maxAddtlLen is the bound enforced on additional-input length
// (2^35 bytes on 64-bit platforms per §4.4 step 3). Go's int is at
// least 32 bits and the runtime cannot address a slice anywhere near
// this size on 32-bit platforms either, so a single constant serves
// both architectures without the SIZE_MAX-1 fallback the reference
// design uses for 32-bit builds.
const maxAddtlLen = 1 << 35
