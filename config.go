// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// Config carries the knobs an Instance (or the package-level Control
// surface) is constructed with. It follows the functional-options
// shape used throughout this dependency family: a zero Config is
// never used directly, DefaultConfig() seeds the NIST-recommended
// baseline, and Option values mutate a private copy.
type Config struct {
	Personalization      []byte
	PredictionResistance bool
	EntropySource        EntropySource

	// ReseedInterval records a time-based reseed interval in seconds.
	// Zero by default. Instance does not read it: no reseed is ever
	// triggered by elapsed time, only by the mandatory §4.4 bound,
	// prediction resistance, or a fork.
	ReseedInterval int64

	// ReseedRequests records a request-count reseed threshold, clamped
	// to maxReseedCounter. Zero by default. Instance does not read it:
	// the only request-count reseed is the maxReseedCounter bound.
	ReseedRequests uint64
}

// Option mutates a Config during construction.
type Option func(*Config)

// DefaultConfig returns the package default: no personalization, no
// prediction resistance, entropy from crypto/rand. The Control
// surface's Init(full=true) uses HMAC-SHA-256 with this Config when
// no mechanism has been selected yet, per §6.
func DefaultConfig() Config {
	return Config{
		EntropySource: DefaultEntropySource(),
	}
}

// WithPersonalization sets the personalization string mixed in at
// Instantiate time only.
func WithPersonalization(p []byte) Option {
	return func(c *Config) { c.Personalization = p }
}

// WithPredictionResistance toggles prediction resistance: every
// Generate call reseeds before producing output.
func WithPredictionResistance(pr bool) Option {
	return func(c *Config) { c.PredictionResistance = pr }
}

// WithEntropySource overrides the entropy gateway, primarily for
// injecting KAT vectors via NewTestEntropySource.
func WithEntropySource(s EntropySource) Option {
	return func(c *Config) { c.EntropySource = s }
}

// WithReseedInterval sets Config.ReseedInterval, in seconds. Instance
// does not act on this value.
func WithReseedInterval(seconds int64) Option {
	return func(c *Config) { c.ReseedInterval = seconds }
}

// WithReseedRequests sets Config.ReseedRequests, clamped to the
// mandatory 2^48 reseed_counter bound shared by all mechanisms.
// Instance does not act on this value.
func WithReseedRequests(n uint64) Option {
	return func(c *Config) {
		if n > uint64(maxReseedCounter) {
			n = uint64(maxReseedCounter)
		}
		c.ReseedRequests = n
	}
}

// Flags is the bit layout consumed by Control.Reinit, per §6.
type Flags uint32

const (
	FlagHash Flags = 1 << iota
	FlagHmac
	FlagCtr

	FlagHashSHA1
	FlagHashSHA256
	FlagHashSHA384
	FlagHashSHA512

	FlagSym128
	FlagSym192
	FlagSym256

	FlagPredictionResist

	// familyMask and primitiveMask isolate the mechanism-family bits
	// and primitive bits respectively, for the CIPHER_MASK lookup
	// described in §6.
	familyMask    = FlagHash | FlagHmac | FlagCtr
	primitiveMask = FlagHashSHA1 | FlagHashSHA256 | FlagHashSHA384 | FlagHashSHA512 | FlagSym128 | FlagSym192 | FlagSym256
)

// decode resolves a Flags value into a (kind, primitive,
// predictionResistance) triple, per the CIPHER_MASK lookup in §6.
// flags == 0 is handled by the caller (Control.Reinit): it means
// "retain the previously selected mechanism" and never reaches here.
func (f Flags) decode() (MechanismKind, Primitive, bool, error) {
	pr := f&FlagPredictionResist != 0

	family := f & familyMask
	prim := f & primitiveMask

	var kind MechanismKind
	switch family {
	case FlagHash:
		kind = Hash
	case FlagHmac:
		kind = Hmac
	case FlagCtr:
		kind = Ctr
	default:
		return 0, 0, false, newErr("Flags.decode", KindInvalidArgument, errAmbiguousFamily)
	}

	var primitive Primitive
	switch prim {
	case FlagHashSHA1:
		primitive = SHA1
	case FlagHashSHA256:
		primitive = SHA256
	case FlagHashSHA384:
		primitive = SHA384
	case FlagHashSHA512:
		primitive = SHA512
	case FlagSym128:
		primitive = AES128
	case FlagSym192:
		primitive = AES192
	case FlagSym256:
		primitive = AES256
	default:
		return 0, 0, false, newErr("Flags.decode", KindInvalidArgument, errAmbiguousPrimitive)
	}

	return kind, primitive, pr, nil
}
