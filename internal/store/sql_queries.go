// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	accountsTable = "accounts"
	profilesTable = "profiles"
	settingsTable = "settings"
)

// psql is the statement builder for sqlite's ? placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertAccountQuery(name, token string) (string, []any, error) {
	return psql.
		Insert(accountsTable).
		Columns("name", "token").
		Values(name, token).
		Suffix("ON CONFLICT(name) DO UPDATE SET token = excluded.token").
		ToSql()
}

func buildSelectAccountQuery(name string) (string, []any, error) {
	return psql.
		Select("a.name", "a.token", "COALESCE(p.steam_id, '')").
		From(accountsTable + " a").
		LeftJoin(profilesTable + " p ON p.account_name = a.name").
		Where(sq.Eq{"a.name": name}).
		ToSql()
}

// buildListAccountsQuery orders by rowid so the roster keeps insertion order
// across token updates.
func buildListAccountsQuery() (string, []any, error) {
	return psql.
		Select("a.name", "a.token", "COALESCE(p.steam_id, '')").
		From(accountsTable + " a").
		LeftJoin(profilesTable + " p ON p.account_name = a.name").
		OrderBy("a.rowid").
		ToSql()
}

func buildDeleteAccountQuery(name string) (string, []any, error) {
	return psql.
		Delete(accountsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildUpsertProfileQuery(accountName, steamID, displayName, avatarURL string, payload []byte) (string, []any, error) {
	return psql.
		Insert(profilesTable).
		Columns("account_name", "steam_id", "display_name", "avatar_url", "payload").
		Values(accountName, steamID, displayName, avatarURL, payload).
		Suffix(`ON CONFLICT(account_name) DO UPDATE SET
			steam_id = excluded.steam_id,
			display_name = excluded.display_name,
			avatar_url = excluded.avatar_url,
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()
}

func buildSelectProfileQuery(accountName string) (string, []any, error) {
	return psql.
		Select("payload").
		From(profilesTable).
		Where(sq.Eq{"account_name": accountName}).
		ToSql()
}

func buildDeleteProfileQuery(accountName string) (string, []any, error) {
	return psql.
		Delete(profilesTable).
		Where(sq.Eq{"account_name": accountName}).
		ToSql()
}

func buildSelectSettingQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSettingQuery(key, value string) (string, []any, error) {
	return psql.
		Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteSettingQuery(key string) (string, []any, error) {
	return psql.
		Delete(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildClearSelectionQuery deletes the selection only if it points at name.
func buildClearSelectionQuery(name string) (string, []any, error) {
	return psql.
		Delete(settingsTable).
		Where(sq.Eq{"key": SettingSelectedAccount, "value": name}).
		ToSql()
}
