// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/models"
)

type rosterRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRosterRepository(db *DB, logger *logger.Logger) RosterRepository {
	return &rosterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *rosterRepository) SaveAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertAccountQuery(account.Name, account.Token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "rosterRepository.SaveAccount").
			Str("account", account.Name).
			Msg("failed to upsert account")
		return fmt.Errorf("%w: save account %q: %w", ErrExecutingStatement, account.Name, err)
	}

	return nil
}

func (r *rosterRepository) GetAccount(ctx context.Context, name string) (models.Account, error) {
	query, args, err := buildSelectAccountQuery(name)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.Name, &account.Token, &account.SteamID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: get account %q: %w", ErrScanningRow, name, err)
	}

	return account, nil
}

func (r *rosterRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "rosterRepository.ListAccounts").
			Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: list accounts: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		if err = rows.Scan(&account.Name, &account.Token, &account.SteamID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return accounts, nil
}

func (r *rosterRepository) DeleteAccount(ctx context.Context, name string) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	exec := func(build func(string) (string, []any, error)) (sql.Result, error) {
		query, args, buildErr := build(name)
		if buildErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return res, nil
	}

	if _, err = exec(buildDeleteProfileQuery); err != nil {
		return err
	}

	res, err := exec(buildDeleteAccountQuery)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		err = ErrAccountNotFound
		return err
	}

	if _, err = exec(buildClearSelectionQuery); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "rosterRepository.DeleteAccount").
			Str("account", name).
			Msg("failed to commit account removal")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *rosterRepository) AddAccount(ctx context.Context, account models.Account, user models.User) (err error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	steps := []func() (string, []any, error){
		func() (string, []any, error) { return buildUpsertAccountQuery(account.Name, account.Token) },
		func() (string, []any, error) {
			return buildUpsertProfileQuery(account.Name, user.SteamID, user.DisplayName, user.AvatarMedium, payload)
		},
		func() (string, []any, error) { return buildUpsertSettingQuery(SettingSelectedAccount, account.Name) },
	}
	for _, build := range steps {
		query, args, buildErr := build()
		if buildErr != nil {
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "rosterRepository.AddAccount").
				Str("account", account.Name).
				Msg("failed to add account")
			err = fmt.Errorf("%w: add account %q: %w", ErrExecutingStatement, account.Name, err)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *rosterRepository) SaveProfile(ctx context.Context, accountName string, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	query, args, err := buildUpsertProfileQuery(accountName, user.SteamID, user.DisplayName, user.AvatarMedium, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: save profile %q: %w", ErrExecutingStatement, accountName, err)
	}

	return nil
}

func (r *rosterRepository) GetProfile(ctx context.Context, accountName string) (models.User, error) {
	query, args, err := buildSelectProfileQuery(accountName)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrProfileNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: get profile %q: %w", ErrScanningRow, accountName, err)
	}

	var user models.User
	if err = json.Unmarshal(payload, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	return user, nil
}

func (r *rosterRepository) DeleteProfile(ctx context.Context, accountName string) error {
	query, args, err := buildDeleteProfileQuery(accountName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete profile %q: %w", ErrExecutingStatement, accountName, err)
	}

	return nil
}

func (r *rosterRepository) GetSetting(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectSettingQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: get setting %q: %w", ErrScanningRow, key, err)
	}

	return value, nil
}

func (r *rosterRepository) SetSetting(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertSettingQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: set setting %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *rosterRepository) DeleteSetting(ctx context.Context, key string) error {
	query, args, err := buildDeleteSettingQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: delete setting %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}
