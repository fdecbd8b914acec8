// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuccess(t *testing.T) {
	err := Exec{}.Run(context.Background(), New("sh", "-c", "exit 0"))
	assert.NoError(t, err)
}

func TestRunPropagatesExitCode(t *testing.T) {
	err := Exec{}.Run(context.Background(), New("sh", "-c", "exit 7"))
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.Code)
}

func TestRunMissingBinary(t *testing.T) {
	err := Exec{}.Run(context.Background(), New("captain-no-such-binary"))
	require.Error(t, err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "a spawn failure is not a child exit")
}

func TestCheck(t *testing.T) {
	ok, err := Exec{}.Check(context.Background(), New("sh", "-c", "exit 0"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exec{}.Check(context.Background(), New("sh", "-c", "exit 3"))
	require.NoError(t, err, "a nonzero probe exit is data, not failure")
	assert.False(t, ok)
}

func TestCommandWithArgs(t *testing.T) {
	base := New("solana", "--url", "http://127.0.0.1:8899")
	extended := base.WithArgs("program", "show")

	assert.Equal(t, "solana --url http://127.0.0.1:8899", base.String())
	assert.Equal(t, "solana --url http://127.0.0.1:8899 program show", extended.String())
}
