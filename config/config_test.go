// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := Default()
	c.MintCeiling = 1_000_000
	require.NoError(t, Store(dir, c))

	got, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestValidate(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	c.RootAuthority = "not-an-address"
	require.Error(t, c.Validate())

	c = Default()
	c.Storage.Type = "etcd"
	require.Error(t, c.Validate())
}

func TestStoragePath(t *testing.T) {
	c := Default()
	require.Equal(t, "/w/data", c.StoragePath("/w"))
	c.Storage.Path = "/var/lib/meridian"
	require.Equal(t, "/var/lib/meridian", c.StoragePath("/w"))
}
