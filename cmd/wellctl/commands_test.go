// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wellbore/internal/database"
)

func runCmd(t *testing.T, open storeOpener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmdWith(open)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func failingOpener(err error) storeOpener {
	return func() (*database.Store, func(), error) {
		return nil, nil, err
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, failingOpener(errors.New("unused")), "version")
	require.NoError(t, err)
	assert.Equal(t, "wellctl dev\n", out)
}

func TestMigrationsCmd_ListsBuiltInMigrations(t *testing.T) {
	out, err := runCmd(t, failingOpener(errors.New("unused")), "migrations")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(database.Migrations())+1)
	assert.True(t, strings.HasPrefix(lines[0], "VERSION"))
	for i, m := range database.Migrations() {
		assert.Contains(t, lines[i+1], m.Name)
	}
}

func TestDatabaseCommands_PropagateOpenErrors(t *testing.T) {
	openErr := errors.New("configuration validation failed")
	for _, name := range []string{"migrate", "status"} {
		t.Run(name, func(t *testing.T) {
			_, err := runCmd(t, failingOpener(openErr), name)
			assert.ErrorIs(t, err, openErr)
		})
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := runCmd(t, failingOpener(errors.New("unused")), "migrate", "extra")
	assert.Error(t, err)
}
