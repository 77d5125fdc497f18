// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_Instance_InstantiateSetsInvariants verifies that after
// instantiate, reseed_counter == 1 and seeded == true.
func Test_Instance_InstantiateSetsInvariants(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, m := range []struct {
		kind MechanismKind
		prim Primitive
	}{
		{Hash, SHA256}, {Hmac, SHA384}, {Ctr, AES256},
	} {
		inst, err := NewInstance(m.kind, m.prim)
		is.NoError(err)
		is.True(inst.Seeded())
		is.EqualValues(1, inst.ReseedCounter())
	}
}

// Test_Instance_GenerateWritesExactLength verifies the output buffer
// is filled exactly, with no truncation or overrun.
func Test_Instance_GenerateWritesExactLength(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, err := NewInstance(Hmac, SHA256)
	is.NoError(err)

	out := make([]byte, 37)
	is.NoError(inst.Generate(out, nil))
	is.Len(out, 37)
}

func Test_Instance_GenerateRejectsOverLargeRequest(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, err := NewInstance(Hmac, SHA256)
	is.NoError(err)

	err = inst.Generate(make([]byte, maxRequestBytes+1), nil)
	is.Error(err)

	var derr *Error
	is.ErrorAs(err, &derr)
	is.Equal(KindInvalidArgument, derr.Kind)
}

func Test_Instance_GenerateRejectsEmptyOutput(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, _ := NewInstance(Hmac, SHA256)
	err := inst.Generate(nil, nil)
	is.Error(err)
}

// Test_Instance_DeterministicWithFixedEntropy verifies that two
// instances seeded with identical entropy and additional input
// produce identical output.
func Test_Instance_DeterministicWithFixedEntropy(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	entropy := make([]byte, 24)
	for i := range entropy {
		entropy[i] = byte(i)
	}

	inst1, err := NewInstance(Hmac, SHA256, WithEntropySource(NewTestEntropySource(append([]byte(nil), entropy...))))
	is.NoError(err)
	inst2, err := NewInstance(Hmac, SHA256, WithEntropySource(NewTestEntropySource(append([]byte(nil), entropy...))))
	is.NoError(err)

	out1 := make([]byte, 48)
	out2 := make([]byte, 48)
	is.NoError(inst1.Generate(out1, []byte("addtl")))
	is.NoError(inst2.Generate(out2, []byte("addtl")))
	is.Equal(out1, out2)
}

// Test_Instance_UninstantiateZeroizes verifies that Uninstantiate
// clears seeded state and resets the reseed counter.
func Test_Instance_UninstantiateZeroizes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, err := NewInstance(Ctr, AES128)
	is.NoError(err)

	inst.Uninstantiate()
	is.False(inst.Seeded())
	is.EqualValues(0, inst.ReseedCounter())
}

// Test_Instance_PredictionResistanceReseedsEveryCall verifies that
// prediction resistance forces a reseed on every Generate call.
func Test_Instance_PredictionResistanceReseedsEveryCall(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, err := NewInstance(Hmac, SHA256, WithPredictionResistance(true))
	is.NoError(err)

	is.NoError(inst.Generate(make([]byte, 16), nil))
	is.NoError(inst.Generate(make([]byte, 16), nil))
	is.NoError(inst.Generate(make([]byte, 16), nil))

	// Every Generate call under prediction resistance reseeds first
	// (which itself resets reseed_counter to 1) and then increments
	// it once for the generate step, so the counter never climbs past
	// 2 regardless of how many calls are made.
	is.EqualValues(2, inst.ReseedCounter())
}

// Test_Instance_ForkSimulationForcesReseed verifies that a mismatched
// seed-owner PID forces an unconditional reseed before generating.
func Test_Instance_ForkSimulationForcesReseed(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, err := NewInstance(Hmac, SHA256)
	is.NoError(err)

	inst.seedOwnerPID = -1 // simulate having been seeded by a different process

	is.NoError(inst.Generate(make([]byte, 16), nil))
	is.Equal(currentPID(), inst.seedOwnerPID)
}

func Test_Instance_ReseedCounterExceededTriggersReseed(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, err := NewInstance(Hmac, SHA256)
	is.NoError(err)

	inst.reseedCounter = maxReseedCounter + 1
	is.NoError(inst.Generate(make([]byte, 16), nil))
	is.True(inst.Seeded())
	is.EqualValues(2, inst.ReseedCounter())
}

// Test_Instance_RejectsOverLongAdditionalInput covers K6(b): additional
// input over max_addtl_len must be rejected by Generate, Reseed, and
// Instantiate alike. The oversized slice is never read past its length
// field, so the OS lazily backs it with zero pages rather than
// committing the full 2^35 bytes.
func Test_Instance_RejectsOverLongAdditionalInput(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tooLong := make([]byte, maxAddtlLen+1)

	inst, err := NewInstance(Hmac, SHA256)
	is.NoError(err)

	err = inst.Generate(make([]byte, 16), tooLong)
	is.Error(err)
	var derr *Error
	is.ErrorAs(err, &derr)
	is.Equal(KindInvalidArgument, derr.Kind)

	err = inst.Reseed(tooLong)
	is.Error(err)
	is.ErrorAs(err, &derr)
	is.Equal(KindInvalidArgument, derr.Kind)

	err = inst.Instantiate(tooLong)
	is.Error(err)
	is.ErrorAs(err, &derr)
	is.Equal(KindInvalidArgument, derr.Kind)
}

func Test_Instance_EmptyAdditionalInputIsNotRejected(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	inst, err := NewInstance(Hmac, SHA256)
	is.NoError(err)

	is.NoError(inst.Generate(make([]byte, 8), []byte{}))
}
