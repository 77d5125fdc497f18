// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/cipher"
	"errors"
)

// ctrEngine implements CTR-DRBG with a derivation function,
// SP 800-90A §10.2.1 (df variant only — this package never omits the
// derivation function, so there is no non-df mode to select).
type ctrEngine struct {
	desc Descriptor

	key []byte // keylen
	v   []byte // blocklen

	block cipher.Block // keyed by rekey at construction, rebuilt whenever key changes
}

func newCTREngine(desc Descriptor) (*ctrEngine, error) {
	e := &ctrEngine{
		desc: desc,
		key:  make([]byte, desc.KeyLen),
		v:    make([]byte, desc.BlockLen),
	}
	if err := e.rekey(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *ctrEngine) descriptor() Descriptor { return e.desc }

func (e *ctrEngine) rekey() error {
	block, err := newBlockCipher(e.key)
	if err != nil {
		return err
	}
	e.block = block
	return nil
}

func (e *ctrEngine) seedLen() int { return e.desc.KeyLen + e.desc.BlockLen }

// ctrUpdate implements CTR_DRBG_Update, §10.2.1.2: providedData must
// already be exactly seedLen bytes (the caller has already run it
// through Block_Cipher_df, or it is the zero buffer).
func (e *ctrEngine) ctrUpdate(providedData []byte) error {
	temp := make([]byte, 0, e.seedLen()+e.desc.BlockLen)
	block := make([]byte, e.desc.BlockLen)
	for len(temp) < e.seedLen() {
		beIncrement(e.v)
		e.block.Encrypt(block, e.v)
		temp = append(temp, block...)
	}
	temp = temp[:e.seedLen()]

	for i := range temp {
		temp[i] ^= providedData[i]
	}

	copy(e.key, temp[:e.desc.KeyLen])
	copy(e.v, temp[e.desc.KeyLen:])
	zero(temp)
	zero(block)

	return e.rekey()
}

// update implements the four-way reseed flag described in §4.3.3.
// flag reseedInitial/reseedReseed treat seed as a raw seed chain that
// still needs Block_Cipher_df applied. reseedGenerateApplyDF and
// reseedGenerateDFApplied both treat seed as an already-derived
// seedLen-byte df output and pass it straight to ctrUpdate. generate
// does not go through update: it calls ctrUpdate directly with its
// own df output, computed once for both state refreshes of a call.
func (e *ctrEngine) update(seed *Chain, flag int) error {
	switch flag {
	case reseedInitial, reseedReseed:
		dfOut, err := blockCipherDF(newBlockCipher, e.desc.KeyLen, seed, e.seedLen())
		if err != nil {
			return err
		}
		err = e.ctrUpdate(dfOut)
		zero(dfOut)
		return err
	case reseedGenerateApplyDF, reseedGenerateDFApplied:
		return e.ctrUpdate(seed.Bytes())
	default:
		return newErr("ctrEngine.update", KindInvalidArgument, errInvalidReseedFlag)
	}
}

// generate implements CTR_DRBG_Generate, §10.2.1.5.2, including the
// df-once optimization: when addtl is non-empty its Block_Cipher_df
// output is computed a single time and reused both for the pre-output
// state refresh and the post-output refresh.
func (e *ctrEngine) generate(out []byte, addtl *Chain) error {
	var dfData []byte
	if addtl != nil && addtl.Len() > 0 {
		var err error
		dfData, err = blockCipherDF(newBlockCipher, e.desc.KeyLen, addtl, e.seedLen())
		if err != nil {
			return err
		}
		if err := e.ctrUpdate(dfData); err != nil {
			zero(dfData)
			return err
		}
	} else {
		dfData = make([]byte, e.seedLen())
	}

	block := make([]byte, e.desc.BlockLen)
	produced := 0
	for produced < len(out) {
		beIncrement(e.v)
		e.block.Encrypt(block, e.v)
		n := copy(out[produced:], block)
		produced += n
	}
	zero(block)

	err := e.ctrUpdate(dfData)
	zero(dfData)
	return err
}

func (e *ctrEngine) zeroize() {
	zero(e.key)
	zero(e.v)
}

var errInvalidReseedFlag = errors.New("invalid ctr-drbg update flag")
