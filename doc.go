// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package drbg implements the three Deterministic Random Bit
// Generator mechanisms standardized in NIST SP 800-90A: Hash-DRBG
// (§10.1.1), HMAC-DRBG (§10.1.2), and CTR-DRBG with a derivation
// function (§10.2.1/10.3.2).
//
// A mechanism is selected once, at instantiation, by a (MechanismKind,
// Primitive) pair looked up against the Table 3 descriptor registry;
// instances are not re-seedable across mechanisms. Supported
// primitives are SHA-1/256/384/512 for Hash and HMAC, and
// AES-128/192/256 for CTR.
//
//	inst, err := drbg.NewInstance(drbg.Hmac, drbg.SHA256)
//	if err != nil { ... }
//	out := make([]byte, 32)
//	if err := inst.Generate(out, nil); err != nil { ... }
//
// Instance is not safe for concurrent use on its own; callers that
// need a shared, lock-protected default instance should use the
// package-level Control surface (Init, Reinit, Randomize, AddBytes,
// SelfTest, CloseFDs) instead, which serializes every call through a
// single mutex, per the concurrency model this package follows.
package drbg
