// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HMACEngine_UpdateWithEmptySeedRunsOnePass(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, _ := LookupDescriptor(Hmac, SHA256)
	e, err := newHMACEngine(desc)
	is.NoError(err)

	is.NoError(e.update(NewChain(nil), reseedInitial))
	is.False(allZero(e.v), "V should have been refreshed by the single HMAC pass")
	is.False(allZero(e.k), "K should have been refreshed by the single HMAC pass")
}

func Test_HMACEngine_GenerateWithAdditionalInputReseeds(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, _ := LookupDescriptor(Hmac, SHA256)
	e, _ := newHMACEngine(desc)
	is.NoError(e.update(NewChain([]byte("entropy input plus nonce plus personalization")), reseedInitial))

	withoutAddtl := make([]byte, 32)
	withAddtl := make([]byte, 32)

	clone, _ := newHMACEngine(desc)
	copy(clone.v, e.v)
	copy(clone.k, e.k)

	is.NoError(e.generate(withoutAddtl, nil))
	is.NoError(clone.generate(withAddtl, NewChain([]byte("per-call additional input"))))

	is.NotEqual(withoutAddtl, withAddtl)
}

func Test_HMACEngine_TwoGeneratesDiffer(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	desc, _ := LookupDescriptor(Hmac, SHA1)
	e, _ := newHMACEngine(desc)
	is.NoError(e.update(NewChain([]byte("seed")), reseedInitial))

	first := make([]byte, 20)
	second := make([]byte, 20)
	is.NoError(e.generate(first, nil))
	is.NoError(e.generate(second, nil))
	is.NotEqual(first, second)
}
