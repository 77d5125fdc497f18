// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/hmac"
	"hash"
)

// hmacEngine implements HMAC-DRBG, SP 800-90A §10.1.2.
type hmacEngine struct {
	desc    Descriptor
	newHash func() hash.Hash

	v []byte // outlen
	k []byte // outlen
}

func newHMACEngine(desc Descriptor) (*hmacEngine, error) {
	newHash, err := newHashFunc(desc.Primitive)
	if err != nil {
		return nil, err
	}
	return &hmacEngine{
		desc:    desc,
		newHash: newHash,
		v:       make([]byte, desc.OutLen),
		k:       make([]byte, desc.OutLen),
	}, nil
}

func (e *hmacEngine) descriptor() Descriptor { return e.desc }

func (e *hmacEngine) hmacSum(data ...[]byte) []byte {
	h := hmac.New(e.newHash, e.k)
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// update implements HMAC_DRBG_Update, §10.1.2.2. On initial seed
// (reseed == reseedInitial) V is reset to the all-0x01 buffer first;
// the two-pass K/V refresh then runs once if the seed chain is empty,
// twice otherwise.
func (e *hmacEngine) update(seed *Chain, reseed int) error {
	if reseed == reseedInitial {
		for i := range e.v {
			e.v[i] = 0x01
		}
	}

	seedBytes := seed.Bytes()

	k := e.hmacSum(e.v, []byte{0x00}, seedBytes)
	copy(e.k, k)
	zero(k)

	v := e.hmacSum(e.v)
	copy(e.v, v)
	zero(v)

	if len(seedBytes) == 0 {
		return nil
	}

	k = e.hmacSum(e.v, []byte{0x01}, seedBytes)
	copy(e.k, k)
	zero(k)

	v = e.hmacSum(e.v)
	copy(e.v, v)
	zero(v)
	return nil
}

// generate implements HMAC_DRBG_Generate, §10.1.2.4.
func (e *hmacEngine) generate(out []byte, addtl *Chain) error {
	if addtl != nil && addtl.Len() > 0 {
		if err := e.update(addtl, reseedReseed); err != nil {
			return err
		}
	}

	produced := 0
	for produced < len(out) {
		v := e.hmacSum(e.v)
		copy(e.v, v)
		zero(v)
		n := copy(out[produced:], e.v)
		produced += n
	}

	if err := e.update(addtl, reseedReseed); err != nil {
		return err
	}
	return nil
}

func (e *hmacEngine) zeroize() {
	zero(e.v)
	zero(e.k)
}
