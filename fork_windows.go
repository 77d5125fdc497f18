// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build windows

package drbg

import "os"

// currentPID returns the process identity used to detect forks.
// Windows has no fork(2); os.Getpid never changes across the life of
// a process, so the fork check in Instance.Generate is always a
// no-op comparison here, not a no-op function — keeping one code path
// rather than special-casing Windows in state.go.
func currentPID() int {
	return os.Getpid()
}
