// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitCommand(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"init"})
	var outBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)

	is.NoError(RootCmd.Execute())
	is.Contains(outBuf.String(), "initialized")
}

func TestRandomizeCommand_Default(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"randomize", "--bytes", "16"})
	var outBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)

	is.NoError(RootCmd.Execute())
	out := strings.TrimSpace(outBuf.String())
	is.Len(out, 32, "expected 16 bytes hex-encoded to 32 characters")
}

func TestRandomizeCommand_WithAdditionalInput(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"randomize", "--bytes", "8", "--addtl", "deadbeef"})
	var outBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)

	is.NoError(RootCmd.Execute())
	out := strings.TrimSpace(outBuf.String())
	is.Len(out, 16)
}

func TestRandomizeCommand_RejectsNonPositiveByteCount(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"randomize", "--bytes", "0"})
	var outBuf, errBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)
	RootCmd.SetErr(&errBuf)

	err := RootCmd.Execute()
	is.Error(err)
	is.Contains(err.Error(), "--bytes must be a positive integer")
}

func TestRandomizeCommand_RejectsBadHexAdditionalInput(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"randomize", "--bytes", "4", "--addtl", "not-hex"})
	var outBuf, errBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)
	RootCmd.SetErr(&errBuf)

	err := RootCmd.Execute()
	is.Error(err)
}

func TestReinitCommand_SwitchesMechanism(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"reinit", "--mechanism", "ctr-aes256"})
	var outBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)

	is.NoError(RootCmd.Execute())
	is.Contains(outBuf.String(), "ctr-aes256")
}

func TestReinitCommand_RejectsUnknownMechanism(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"reinit", "--mechanism", "bogus"})
	var outBuf, errBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)
	RootCmd.SetErr(&errBuf)

	err := RootCmd.Execute()
	is.Error(err)
	is.Contains(err.Error(), "unknown mechanism")
}

func TestAddBytesCommand(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"init"})
	var initOut bytes.Buffer
	RootCmd.SetOut(&initOut)
	is.NoError(RootCmd.Execute())

	RootCmd.SetArgs([]string{"add-bytes", "--bytes", "aabbccdd"})
	var outBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)

	is.NoError(RootCmd.Execute())
	is.Contains(outBuf.String(), "reseeded")
}

func TestAddBytesCommand_RequiresBytes(t *testing.T) {
	is := assert.New(t)

	// Flag values persist across Execute calls on RootCmd; clear the
	// value left by TestAddBytesCommand so --bytes is really absent.
	addBytesHex = ""
	RootCmd.SetArgs([]string{"add-bytes"})
	var outBuf, errBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)
	RootCmd.SetErr(&errBuf)

	err := RootCmd.Execute()
	is.Error(err)
	is.Contains(err.Error(), "--bytes is required")
}

func TestSelftestCommand(t *testing.T) {
	is := assert.New(t)

	RootCmd.SetArgs([]string{"selftest"})
	var outBuf bytes.Buffer
	RootCmd.SetOut(&outBuf)

	is.NoError(RootCmd.Execute())
	is.Contains(outBuf.String(), "ok")
}
