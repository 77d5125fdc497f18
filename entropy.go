// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/xerrors"
)

var (
	errForcedEntropyFailure = errors.New("drbg: entropy source forced to fail")
	errEntropyExhausted     = errors.New("drbg: test entropy source exhausted")
)

// EntropySource is C6's external contract: gather must fill dest
// entirely with fresh entropy or return an error. Implementations are
// expected to block until dest is full; the DRBG mutex is held by the
// caller for the entire call, so a slow source stalls every other
// caller, exactly like the upstream OS entropy device this abstracts.
type EntropySource interface {
	Gather(dest []byte) error
}

// defaultEntropySource reads from crypto/rand, the platform CSPRNG.
type defaultEntropySource struct {
	reader io.Reader
}

// DefaultEntropySource returns the entropy gateway used when a Config
// does not override EntropySource: crypto/rand.Reader.
func DefaultEntropySource() EntropySource {
	return defaultEntropySource{reader: rand.Reader}
}

func (d defaultEntropySource) Gather(dest []byte) error {
	if _, err := io.ReadFull(d.reader, dest); err != nil {
		return newErr("EntropySource.Gather", KindEntropySourceFailure, xerrors.Errorf("crypto/rand: %w", err))
	}
	return nil
}

// testEntropySource is the KAT injection point described in §4.5: a
// fixed byte sequence handed out in order, with an optional forced
// failure so C7's sanity tests can exercise the entropy-failure path
// without depending on a real source misbehaving.
type testEntropySource struct {
	chunks  [][]byte
	pos     int
	failNow bool
}

// NewTestEntropySource builds an EntropySource that returns the given
// byte slices in order, one per Gather call that matches its length,
// or concatenated across calls if a single Gather spans more than one
// chunk boundary.
func NewTestEntropySource(chunks ...[]byte) EntropySource {
	return &testEntropySource{chunks: chunks}
}

// NewFailingEntropySource builds an EntropySource whose Gather always
// reports KindEntropySourceFailure, for K6(c)-style sanity tests.
func NewFailingEntropySource() EntropySource {
	return &testEntropySource{failNow: true}
}

func (t *testEntropySource) Gather(dest []byte) error {
	if t.failNow {
		return newErr("EntropySource.Gather", KindEntropySourceFailure, errForcedEntropyFailure)
	}

	produced := 0
	for produced < len(dest) {
		if t.pos >= len(t.chunks) {
			return newErr("EntropySource.Gather", KindEntropySourceFailure, errEntropyExhausted)
		}
		chunk := t.chunks[t.pos]
		n := copy(dest[produced:], chunk)
		produced += n
		if n == len(chunk) {
			t.pos++
		} else {
			t.chunks[t.pos] = chunk[n:]
		}
	}
	return nil
}
