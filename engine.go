// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// engine is the shape every mechanism family implements, per the
// tagged-variant design in DESIGN.md: one engine per (kind,
// primitive) combination, selected at instantiate time and never
// switched afterward. update and generate operate on the engine's own
// V/C (or V/Key) buffers; they never touch seed_owner_pid, which is
// owned by the surrounding Instance (C5). Hash-DRBG is the one
// exception to "reseed_counter is Instance-only": its own V-update
// folds the counter in directly (§10.1.1.4), so hashEngine tracks a
// copy of it internally, reset in lockstep with Instance's at every
// update call; HMAC-DRBG and CTR-DRBG have no such field because
// neither mechanism's update/generate algorithm uses the counter.
type engine interface {
	// update folds seed material into V (and C/Key) per the
	// mechanism's update algorithm. reseed selects initial-seed vs.
	// reseed framing (Hash-DRBG, HMAC-DRBG) or, for CTR-DRBG, the
	// four-way flag described in §4.3.3.
	update(seed *Chain, reseed int) error

	// generate writes exactly len(out) bytes of mechanism output,
	// mixing in addtl (which may be nil) first. On error, out is left
	// untouched and engine state is unchanged.
	generate(out []byte, addtl *Chain) error

	// zeroize wipes every secret-bearing buffer the engine owns.
	zeroize()

	descriptor() Descriptor
}

// reseed flags for engine.update. Hash-DRBG and HMAC-DRBG only ever
// use reseedInitial/reseedReseed; CTR-DRBG's update additionally
// accepts the split flags, which take an already-derived df output
// (§4.3.3). ctrEngine.generate avoids recomputing Block_Cipher_df
// across the two halves of a call by calling ctrUpdate directly.
const (
	reseedInitial = iota
	reseedReseed
	reseedGenerateApplyDF
	reseedGenerateDFApplied
)
