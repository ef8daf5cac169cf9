// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertAccountQuery(t *testing.T) {
	query, args, err := buildUpsertAccountQuery("alice", "tok")
	require.NoError(t, err)

	assert.Equal(t, []any{"alice", "tok"}, args)
	assert.Contains(t, query, "INSERT INTO accounts")
	assert.Contains(t, query, "ON CONFLICT(name) DO UPDATE SET token = excluded.token")
	// sqlite placeholders
	assert.NotContains(t, query, "$1")
	assert.Equal(t, 2, strings.Count(query, "?"))
}

func Test_buildListAccountsQuery_Order(t *testing.T) {
	query, args, err := buildListAccountsQuery()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "ORDER BY a.rowid"))
}

func Test_buildClearSelectionQuery(t *testing.T) {
	query, args, err := buildClearSelectionQuery("alice")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM settings WHERE key = ? AND value = ?", query)
	assert.Equal(t, []any{SettingSelectedAccount, "alice"}, args)
}

func Test_buildUpsertProfileQuery(t *testing.T) {
	query, args, err := buildUpsertProfileQuery("alice", "S1", "Alice", "https://a", []byte("{}"))
	require.NoError(t, err)
	assert.Len(t, args, 5)
	assert.Contains(t, query, "ON CONFLICT(account_name)")
}
