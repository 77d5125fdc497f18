// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "golang.org/x/xerrors"

// Instance is a single DRBG instance: the mechanism engine plus the
// lifecycle bookkeeping from §3/§4.4 (C5). An Instance is not safe for
// concurrent use by itself — per the concurrency model in §5, callers
// are expected to serialize every entry point through one exclusive
// mutex; Control (control.go) is the package's own such caller for
// the process-global default instance.
type Instance struct {
	mechanism            engine
	descriptor           Descriptor
	predictionResistance bool
	entropySource        EntropySource

	seeded        bool
	reseedCounter uint64
	seedOwnerPID  int
}

// NewInstance constructs an Instance for the given mechanism and
// instantiates it with the configured personalization string, so the
// returned Instance is ready for Generate.
func NewInstance(kind MechanismKind, primitive Primitive, opts ...Option) (*Instance, error) {
	desc, err := LookupDescriptor(kind, primitive)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := newEngine(desc)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		mechanism:            m,
		descriptor:           desc,
		predictionResistance: cfg.PredictionResistance,
		entropySource:        cfg.EntropySource,
	}

	if err := inst.Instantiate(cfg.Personalization); err != nil {
		return nil, err
	}
	return inst, nil
}

func newEngine(desc Descriptor) (engine, error) {
	switch desc.Kind {
	case Hash:
		return newHashEngine(desc)
	case Hmac:
		return newHMACEngine(desc)
	case Ctr:
		return newCTREngine(desc)
	default:
		return nil, newErr("newEngine", KindInvalidArgument, errUnsupportedMechanism)
	}
}

// Instantiate implements §4.4's instantiate: it pulls entropy (1.5x
// security_strength bytes to cover the nonce on the first seed),
// builds entropy||personalization, and runs the mechanism's initial
// update. On any failure the instance is left uninstantiated.
func (inst *Instance) Instantiate(personalization []byte) error {
	if len(personalization) > maxAddtlLen {
		inst.zeroizeAndClear()
		return newErr("Instantiate", KindInvalidArgument, errAddtlTooLong)
	}

	entropyLen := (inst.descriptor.SecurityStrength*3 + 1) / 2 // ceil(strength * 1.5)
	entropy := make([]byte, entropyLen)
	if err := inst.entropySource.Gather(entropy); err != nil {
		inst.zeroizeAndClear()
		return err
	}

	seed := NewChain(entropy)
	if len(personalization) > 0 {
		seed.Append(personalization)
	}

	if err := inst.mechanism.update(seed, reseedInitial); err != nil {
		zero(entropy)
		inst.zeroizeAndClear()
		return err
	}
	zero(entropy)

	inst.seeded = true
	inst.reseedCounter = 1
	inst.seedOwnerPID = currentPID()
	return nil
}

// Reseed implements §4.4's reseed: entropy||addtl is folded into the
// mechanism state and the reseed counter resets to 1.
func (inst *Instance) Reseed(addtl []byte) error {
	if len(addtl) > maxAddtlLen {
		return newErr("Reseed", KindInvalidArgument, errAddtlTooLong)
	}

	entropy := make([]byte, inst.descriptor.SecurityStrength)
	if err := inst.entropySource.Gather(entropy); err != nil {
		return err
	}

	seed := NewChain(entropy)
	if len(addtl) > 0 {
		seed.Append(addtl)
	}

	if err := inst.mechanism.update(seed, reseedReseed); err != nil {
		zero(entropy)
		return err
	}
	zero(entropy)

	inst.seeded = true
	inst.reseedCounter = 1
	inst.seedOwnerPID = currentPID()
	return nil
}

// Generate implements §4.4's central control flow: bounds checks,
// the reseed-counter-exceeded and prediction-resistance reseed paths,
// the fork-safety check, and finally the mechanism's own generate.
func (inst *Instance) Generate(out []byte, addtl []byte) error {
	if len(out) == 0 {
		return newErr("Generate", KindInvalidArgument, errEmptyOutput)
	}
	if len(out) > maxRequestBytes {
		return newErr("Generate", KindInvalidArgument, errRequestTooLarge)
	}
	if len(addtl) > maxAddtlLen {
		return newErr("Generate", KindInvalidArgument, errAddtlTooLong)
	}

	if inst.reseedCounter > maxReseedCounter {
		inst.seeded = false
	}

	if inst.predictionResistance || !inst.seeded {
		if err := inst.Reseed(addtl); err != nil {
			return err
		}
		addtl = nil
	}

	if currentPID() != inst.seedOwnerPID {
		if err := inst.Reseed(nil); err != nil {
			return newErr("Generate", KindFatal, xerrors.Errorf("%w: %v", ErrForkReseedFailed, err))
		}
	}

	var addtlChain *Chain
	if len(addtl) > 0 {
		addtlChain = NewChain(addtl)
	}

	if err := inst.mechanism.generate(out, addtlChain); err != nil {
		return err
	}
	inst.reseedCounter++
	return nil
}

// GenerateLong is the convenience long-generate loop from §4.4: it
// chunks a request larger than maxRequestBytes into successive
// Generate calls, each obeying the single-call bound.
func (inst *Instance) GenerateLong(out []byte, addtl []byte) error {
	produced := 0
	first := true
	for produced < len(out) {
		chunk := len(out) - produced
		if chunk > maxRequestBytes {
			chunk = maxRequestBytes
		}
		var callAddtl []byte
		if first {
			callAddtl = addtl
			first = false
		}
		if err := inst.Generate(out[produced:produced+chunk], callAddtl); err != nil {
			return err
		}
		produced += chunk
	}
	return nil
}

// Uninstantiate zeroizes all secret-bearing state and clears the
// instance's flags. The Instance may not be used again afterward.
func (inst *Instance) Uninstantiate() {
	inst.zeroizeAndClear()
}

func (inst *Instance) zeroizeAndClear() {
	inst.mechanism.zeroize()
	inst.seeded = false
	inst.reseedCounter = 0
	inst.seedOwnerPID = 0
}

// Seeded reports whether the instance currently holds usable state.
func (inst *Instance) Seeded() bool { return inst.seeded }

// ReseedCounter reports the current reseed counter, mainly for tests
// verifying the reseed-counter bound.
func (inst *Instance) ReseedCounter() uint64 { return inst.reseedCounter }
