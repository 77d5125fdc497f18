// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HashEngine_InstantiateSetsStateSizes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, err := LookupDescriptor(Hash, SHA256)
	is.NoError(err)

	e, err := newHashEngine(desc)
	is.NoError(err)
	is.Len(e.v, desc.SeedLen)
	is.Len(e.c, desc.SeedLen)
}

func Test_HashEngine_GenerateIsDeterministicGivenFixedState(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, _ := LookupDescriptor(Hash, SHA256)
	e1, _ := newHashEngine(desc)
	e2, _ := newHashEngine(desc)

	seed := NewChain([]byte("entropy-nonce-personalization"))
	is.NoError(e1.update(seed, reseedInitial))
	is.NoError(e2.update(NewChain([]byte("entropy-nonce-personalization")), reseedInitial))

	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	is.NoError(e1.generate(out1, nil))
	is.NoError(e2.generate(out2, nil))
	is.Equal(out1, out2)
}

func Test_HashEngine_ReseedChangesOutput(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, _ := LookupDescriptor(Hash, SHA256)
	e, _ := newHashEngine(desc)
	is.NoError(e.update(NewChain([]byte("initial seed material")), reseedInitial))

	before := make([]byte, 32)
	is.NoError(e.generate(before, nil))

	is.NoError(e.update(NewChain([]byte("different reseed material")), reseedReseed))
	after := make([]byte, 32)
	is.NoError(e.generate(after, nil))

	is.NotEqual(before, after)
}

// Test_HashEngine_ReseedCounterResetsAndTracksGenerateCalls verifies
// that the counter folded into the V-update starts at 1 immediately
// after update (instantiate or reseed) and advances by exactly one
// per generate call thereafter, matching Instance's own counter.
func Test_HashEngine_ReseedCounterResetsAndTracksGenerateCalls(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, _ := LookupDescriptor(Hash, SHA256)
	e, _ := newHashEngine(desc)

	is.NoError(e.update(NewChain([]byte("initial seed material")), reseedInitial))
	is.EqualValues(1, e.reseedCounter)

	out := make([]byte, 16)
	is.NoError(e.generate(out, nil))
	is.EqualValues(2, e.reseedCounter)
	is.NoError(e.generate(out, nil))
	is.EqualValues(3, e.reseedCounter)

	is.NoError(e.update(NewChain([]byte("reseed material")), reseedReseed))
	is.EqualValues(1, e.reseedCounter)
}

func Test_HashEngine_Zeroize(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, _ := LookupDescriptor(Hash, SHA256)
	e, _ := newHashEngine(desc)
	is.NoError(e.update(NewChain([]byte("seed")), reseedInitial))

	e.zeroize()
	is.True(allZero(e.v))
	is.True(allZero(e.c))
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
