// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "sync"

// Control is the package-level control surface from §6. Unlike the
// mechanism engines and Instance, which are plain value types with no
// global state (§9's "no global-mutable singletons inside the
// mechanism"), Control intentionally owns the single process-global
// instance and the single exclusive mutex the concurrency model in
// §5 requires. Most programs use the package-level functions below,
// which operate on a default Control; constructing a Control directly
// is only needed to run more than one independently-locked facade in
// the same process (e.g. in tests).
type Control struct {
	mu sync.Mutex

	inst *Instance
	kind MechanismKind
	prim Primitive
}

var defaultControl Control

// Init is a lazy one-shot. With full=false it only reports whether an
// instance already exists; with full=true it instantiates the
// default mechanism (HMAC-SHA-256, no prediction resistance) if one
// is not already live.
func Init(full bool) error {
	return defaultControl.Init(full)
}

func (c *Control) Init(full bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initLocked(full)
}

func (c *Control) initLocked(full bool) error {
	if c.inst != nil {
		return nil
	}
	if !full {
		return ErrNotInstantiated
	}

	inst, err := NewInstance(Hmac, SHA256)
	if err != nil {
		return newErr("Init", KindFatal, err)
	}
	c.inst = inst
	c.kind = Hmac
	c.prim = SHA256
	return nil
}

// Reinit uninstantiates the current instance, if any, and
// re-instantiates with the mechanism selected by flags. flags == 0
// retains the previously selected mechanism; this requires a prior
// Init or Reinit to have recorded one.
func Reinit(flags Flags, personalization []byte) error {
	return defaultControl.Reinit(flags, personalization)
}

func (c *Control) Reinit(flags Flags, personalization []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kind, prim := c.kind, c.prim
	if flags != 0 {
		var err error
		kind, prim, _, err = flags.decode()
		if err != nil {
			return err
		}
	} else if kind == 0 {
		return newErr("Reinit", KindInvalidArgument, errNoRetainedMechanism)
	}

	if c.inst != nil {
		c.inst.Uninstantiate()
		c.inst = nil
	}

	var opts []Option
	if len(personalization) > 0 {
		opts = append(opts, WithPersonalization(personalization))
	}
	if flags&FlagPredictionResist != 0 {
		opts = append(opts, WithPredictionResistance(true))
	}

	inst, err := NewInstance(kind, prim, opts...)
	if err != nil {
		return err
	}
	c.inst = inst
	c.kind = kind
	c.prim = prim
	return nil
}

// Randomize produces len(buf) bytes, optionally mixing in per-call
// additional input.
func Randomize(buf []byte, addtl []byte) error {
	return defaultControl.Randomize(buf, addtl)
}

func (c *Control) Randomize(buf []byte, addtl []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.initLocked(true); err != nil {
		return err
	}
	return c.inst.GenerateLong(buf, addtl)
}

// AddBytes reseeds the default instance, mixing buf in as additional
// input alongside freshly gathered entropy.
func AddBytes(buf []byte) error {
	return defaultControl.AddBytes(buf)
}

func (c *Control) AddBytes(buf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.initLocked(true); err != nil {
		return err
	}
	return c.inst.Reseed(buf)
}

// SelfTest runs the health-check harness (C7) and reports the first
// failure, if any, via report. A nil report is accepted for callers
// that only care about the returned error.
func SelfTest(report func(string)) error {
	return defaultControl.SelfTest(report)
}

func (c *Control) SelfTest(report func(string)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return runHealthCheck(report)
}

// CloseFDs releases entropy-source file descriptors on a best-effort
// basis. The default entropy source (crypto/rand) does not hold any
// on most platforms, so this is a no-op unless a Config supplied an
// EntropySource that implements io.Closer.
func CloseFDs() error {
	return defaultControl.CloseFDs()
}

func (c *Control) CloseFDs() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inst == nil {
		return nil
	}
	if closer, ok := c.inst.entropySource.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
