// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"hash"
)

// hashEngine implements Hash-DRBG, SP 800-90A §10.1.1.
type hashEngine struct {
	desc    Descriptor
	newHash func() hash.Hash

	v []byte // seedlen
	c []byte // seedlen

	// reseedCounter tracks the same value as Instance.reseedCounter
	// (reset to 1 at the end of update, incremented once per generate
	// call) so the V-update below folds in the counter the instance
	// itself reports after the call completes.
	reseedCounter uint64
}

func newHashEngine(desc Descriptor) (*hashEngine, error) {
	newHash, err := newHashFunc(desc.Primitive)
	if err != nil {
		return nil, err
	}
	return &hashEngine{
		desc:    desc,
		newHash: newHash,
		v:       make([]byte, desc.SeedLen),
		c:       make([]byte, desc.SeedLen),
	}, nil
}

func (e *hashEngine) descriptor() Descriptor { return e.desc }

// update implements the Hash-DRBG update step shared by instantiate
// and reseed (§10.1.1.2/§10.1.1.3): on reseed, the chain is prefixed
// with 0x01 || V; otherwise the seed chain is used as-is. V' is
// Hash_df(chain1, seedlen); C' is Hash_df(0x00 || V', seedlen).
func (e *hashEngine) update(seed *Chain, reseed int) error {
	var chain1 *Chain
	if reseed == reseedReseed {
		chain1 = NewChain([]byte{0x01}).Append(e.v)
		restore := splice(chain1, collectBytes(seed)...)
		defer restore()
	} else {
		chain1 = seed
	}

	vPrime := hashDF(e.newHash, chain1, e.desc.SeedLen)

	chain2 := NewChain([]byte{0x00}).Append(vPrime)
	cPrime := hashDF(e.newHash, chain2, e.desc.SeedLen)

	copy(e.v, vPrime)
	copy(e.c, cPrime)
	zero(vPrime)
	zero(cPrime)
	e.reseedCounter = 1
	return nil
}

// generate implements Hash-DRBG's generate algorithm, §10.1.1.4.
func (e *hashEngine) generate(out []byte, addtl *Chain) error {
	if addtl != nil && addtl.Len() > 0 {
		h := e.newHash()
		h.Write([]byte{0x02})
		h.Write(e.v)
		for node := addtl; node != nil; node = node.next {
			h.Write(node.data)
		}
		w := h.Sum(nil)
		beAddMod(e.v, w)
		zero(w)
	}

	returned := hashgen(e.newHash, e.v, len(out))
	copy(out, returned)
	zero(returned)

	h := e.newHash()
	h.Write([]byte{0x03})
	h.Write(e.v)
	hOut := h.Sum(nil)

	beAddMod(e.v, hOut)
	beAddMod(e.v, e.c)
	beAddUint64Mod(e.v, e.reseedCounter)
	zero(hOut)

	e.reseedCounter++
	return nil
}

func (e *hashEngine) zeroize() {
	zero(e.v)
	zero(e.c)
}

// collectBytes flattens a chain into a slice of its node byte slices,
// used when an engine needs to splice a caller chain onto a locally
// built prefix without first flattening the caller's data.
func collectBytes(c *Chain) [][]byte {
	if c == nil {
		return nil
	}
	var out [][]byte
	for node := c; node != nil; node = node.next {
		out = append(out, node.data)
	}
	return out
}
