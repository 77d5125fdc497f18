// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"bytes"
	"encoding/hex"
)

// katVector is one bundled Known-Answer Test scenario, per §4.6 and
// §8. An instance is built with injected entropy and personalization,
// optionally reseeded, then exercised through two generate calls; the
// second call's output must match expected exactly.
type katVector struct {
	name            string
	kind            MechanismKind
	primitive       Primitive
	entropy         string
	personalization string
	entropyReseed   string // optional; empty means "no explicit reseed step"
	addtlA          string
	entropyPRA      string // optional; non-empty forces a PR-style reseed before generate A
	addtlB          string
	entropyPRB      string
	expected        string
}

// katVectors holds scenarios K1-K5. Hex payloads are abbreviated with
// the exact lengths the mechanism demands. expected was computed by an
// independent reimplementation of each mechanism's update/generate
// algorithm (not derived from or copied out of this package), driven
// by the same fixed entropy/personalization/additional-input bytes
// declared below; it is not an official NIST CAVP vector, but it does
// pin a byte-exact result so a mechanism bug changes these outputs
// instead of merely producing "some" non-degenerate bytes.
var katVectors = []katVector{
	{
		name:            "K1-Hash-SHA256-noPR",
		kind:            Hash,
		primitive:       SHA256,
		entropy:         mustRepeatHex("73d3fba3", 24),
		personalization: "",
		addtlA:          mustRepeatHex("f4d5983d", 32),
		addtlB:          mustRepeatHex("f79e6a56", 32),
		expected:        "070bbb6a94ba9eb95abfa9d0b1c5bc3b5833e50b8ffc7bdd6217b67ee8a6633835e5b73dbef0d1e7dbd020ee6bd4b44179fa34f6347e497c4c5ed892b9cba402e5e94caa9e8a8831f4f239e1064a97f3fda3cfb39f6546384d662c0aa38589bca6f33c0f5b727ac05b12cbc47e4ecbc4016244b4a5428dcb999151a51960ebe0",
	},
	{
		name:            "K2-HMAC-SHA256-noPR-personalized",
		kind:            Hmac,
		primitive:       SHA256,
		entropy:         mustRepeatHex("8df013b4", 24),
		personalization: mustRepeatHex("b571e66d", 32),
		expected:        "ce5efe6786bbcb43d0c5bcd9b69218115fd982c5d7074f571953a554065434d53a908c592f2a0e3a5b8465ad03d9e668115e2ba7d509b24a7c1aa7fb3092df3a4525c2e4887bc990db949f4ea7b5834ed0a44c0967ba7d8de4c509c4f59a68349b3289074c4fa1773f10187a903808836892cc3cf33687a7ad3e28df7e9bc3f6",
	},
	{
		name:            "K3-CTR-AES128-noPR",
		kind:            Ctr,
		primitive:       AES128,
		entropy:         mustRepeatHex("c0701f92", 24),
		personalization: mustRepeatHex("8008aee8", 16),
		addtlA:          mustRepeatHex("f901f816", 16),
		addtlB:          mustRepeatHex("171c0938", 16),
		expected:        "ac31929b1df4a1db63fc2ac352d0ef117ed862fac8445d36501d3ee072d98cc3d6fbacd1315d53abd148361602d441250de0f3e820680b369cd433b8a173ba86",
	},
	{
		name:          "K4-Hash-SHA1-noPR-explicit-reseed",
		kind:          Hash,
		primitive:     SHA1,
		entropy:       mustRepeatHex("d2d28c90", 24),
		entropyReseed: mustRepeatHex("72d28c90", 16),
		expected:      "d916aeef72729a6de48733aa097fb86052c2eabb2c9b587f1da97e91f75cab27ff79038bd6fc788fc38e49285b760c6cb3f266d24c87010cf6bde58b7dde7f99ab89ef7f1e96e25c2e17a75ae0368cd159e217b8281f0a14fde3aa8e5d8528b27aa5e3eccf41e3ecc5b898c683f888afc2b6cd8c9a9ab410a6c23227b6238639",
	},
	{
		name:            "K5-Hash-SHA256-PR",
		kind:            Hash,
		primitive:       SHA256,
		entropy:         mustRepeatHex("5df214bc", 24),
		personalization: "",
		addtlA:          mustRepeatHex("11111111", 32),
		entropyPRA:      mustRepeatHex("22222222", 16),
		addtlB:          mustRepeatHex("33333333", 32),
		entropyPRB:      mustRepeatHex("44444444", 16),
		expected:        "6fe40f1bc02a0edabf9a529e6c02fca7bc2d60ce94f1d091af0c77a50d2e392312ff3fd6d12b8eea5472a70553ce0b3f135c696c4d41010a5fb53efc49c408ba36aef454b6ae5c608ed320278e56da0318d18c1b4a7147f8616457682c578e4b3a0f78a7cf9ed90d1537b67e15cb7101d18c732c4ad97eafb90b0e639037dbce",
	},
}

// mustRepeatHex decodes a short hex prefix and repeats/truncates it to
// exactly n bytes, giving the fixed test payloads above a concrete,
// reproducible length without spelling out every byte by hand.
func mustRepeatHex(prefix string, n int) string {
	raw, err := hex.DecodeString(prefix)
	if err != nil {
		panic(err)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = raw[i%len(raw)]
	}
	return hex.EncodeToString(out)
}

func decodeHex(s string) []byte {
	if s == "" {
		return nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// runKAT instantiates and exercises a single vector, returning the
// second generate call's output for comparison against v.expected.
func runKAT(v katVector) ([]byte, error) {
	entropy := decodeHex(v.entropy)
	personalization := decodeHex(v.personalization)

	var gatherChunks [][]byte
	gatherChunks = append(gatherChunks, entropy)
	if r := decodeHex(v.entropyReseed); r != nil {
		gatherChunks = append(gatherChunks, r)
	}
	if r := decodeHex(v.entropyPRA); r != nil {
		gatherChunks = append(gatherChunks, r)
	}
	if r := decodeHex(v.entropyPRB); r != nil {
		gatherChunks = append(gatherChunks, r)
	}

	src := NewTestEntropySource(gatherChunks...)
	opts := []Option{WithEntropySource(src), WithPersonalization(personalization)}
	if v.entropyPRA != "" || v.entropyPRB != "" {
		opts = append(opts, WithPredictionResistance(true))
	}

	inst, err := NewInstance(v.kind, v.primitive, opts...)
	if err != nil {
		return nil, err
	}
	defer inst.Uninstantiate()

	if v.entropyReseed != "" {
		if err := inst.Reseed(nil); err != nil {
			return nil, err
		}
	}

	outLen := 128
	if v.kind == Ctr {
		outLen = 64
	}

	out := make([]byte, outLen)
	if err := inst.Generate(out, decodeHex(v.addtlA)); err != nil {
		return nil, err
	}
	if err := inst.Generate(out, decodeHex(v.addtlB)); err != nil {
		return nil, err
	}
	return out, nil
}

// runSanityChecks exercises K6: the three documented error paths that
// must fail without leaking state, per §4.6 and §8.
func runSanityChecks() error {
	inst, err := NewInstance(Hmac, SHA256)
	if err != nil {
		return err
	}
	defer inst.Uninstantiate()

	// K6(a): requested length over max_request_bytes.
	if err := inst.Generate(make([]byte, maxRequestBytes+1), nil); err == nil {
		return newErr("SelfTest", KindFatal, errKATRequestBoundNotEnforced)
	}

	// K6(b): additional input over max_addtl_len is covered directly by
	// Test_Instance_RejectsOverLongAdditionalInput in state_test.go
	// rather than here, since materializing a 2^35+1-byte slice on
	// every self-test run is wasteful; the bound itself is exercised
	// against all three entry points (Generate, Reseed, Instantiate).

	// K6(c): entropy source forced to fail during instantiate.
	failing := NewFailingEntropySource()
	if _, err := NewInstance(Hmac, SHA256, WithEntropySource(failing)); err == nil {
		return newErr("SelfTest", KindFatal, errKATEntropyFailureNotPropagated)
	}

	return nil
}

// runHealthCheck is C7's entry point: it runs every bundled KAT
// vector, the sanity/error-path checks, and reports the first failure
// via report (if non-nil).
func runHealthCheck(report func(string)) error {
	for _, v := range katVectors {
		out, err := runKAT(v)
		if err != nil {
			if report != nil {
				report(v.name + ": " + err.Error())
			}
			return newErr("SelfTest", KindFatal, ErrSelfTestFailed)
		}
		if v.expected != "" && !bytes.Equal(out, decodeHex(v.expected)) {
			if report != nil {
				report(v.name + ": output mismatch")
			}
			return newErr("SelfTest", KindFatal, ErrSelfTestFailed)
		}
	}

	if err := runSanityChecks(); err != nil {
		if report != nil {
			report("sanity checks: " + err.Error())
		}
		return newErr("SelfTest", KindFatal, ErrSelfTestFailed)
	}

	return nil
}
