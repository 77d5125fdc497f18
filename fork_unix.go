// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !windows

package drbg

import "os"

// currentPID returns the process identity used to detect forks.
// Reading os.Getpid() after a fork is always correct: the child
// observes its own new PID immediately, with no syscall caching
// hazard to guard against.
func currentPID() int {
	return os.Getpid()
}
