// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pydt-client/internal/adapter"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/mock"
	"github.com/MKhiriev/go-pydt-client/models"
)

func TestParseGameRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "bare id", ref: "4f1c2a9e-0b7d-4e55-9a51-0c2f6d1e8b33", want: "4f1c2a9e-0b7d-4e55-9a51-0c2f6d1e8b33"},
		{name: "game url", ref: "https://playyourdamnturn.com/game/4f1c2a9e-0b7d", want: "4f1c2a9e-0b7d"},
		{name: "trailing slash", ref: "https://playyourdamnturn.com/game/abc123/", want: "abc123"},
		{name: "surrounding space", ref: "  abc123 ", want: "abc123"},
		{name: "empty", ref: "", wantErr: true},
		{name: "uppercase id", ref: "ABC", wantErr: true},
		{name: "other url", ref: "https://example.com/user/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGameRef(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGameRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type gameSvcFixture struct {
	svc      GameService
	accounts *mock.MockAccountService
	remote   *mock.MockRemoteAdapter
	poller   *mock.MockPollerService
}

func newTestGameSvc(t *testing.T, ctrl *gomock.Controller) gameSvcFixture {
	t.Helper()
	f := gameSvcFixture{
		accounts: mock.NewMockAccountService(ctrl),
		remote:   mock.NewMockRemoteAdapter(ctrl),
		poller:   mock.NewMockPollerService(ctrl),
	}
	f.svc = NewGameService(f.accounts, f.remote, f.poller, logger.Nop())
	return f
}

func TestGameService_Join_SelectedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestGameSvc(t, ctrl)
	ctx := context.Background()

	acc := models.Account{Name: "Alice", Token: "tok"}
	game := models.Game{GameID: "abc", DisplayName: "Friday game"}

	gomock.InOrder(
		f.accounts.EXPECT().Selected(ctx).Return(acc, true, nil),
		f.remote.EXPECT().JoinGame(ctx, "tok", "abc", "pw").Return(game, nil),
		f.poller.EXPECT().Refresh(ctx).Return(models.Snapshot{}, nil),
	)

	got, err := f.svc.Join(ctx, "", "https://playyourdamnturn.com/game/abc", "pw")
	require.NoError(t, err)
	assert.Equal(t, game, got)
}

func TestGameService_Join_NamedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestGameSvc(t, ctrl)
	ctx := context.Background()

	f.accounts.EXPECT().List(ctx).Return([]models.Account{
		{Name: "Alice", Token: "a"},
		{Name: "Bob", Token: "b"},
	}, nil)
	f.remote.EXPECT().JoinGame(ctx, "b", "abc", "").Return(models.Game{GameID: "abc"}, nil)
	f.poller.EXPECT().Refresh(ctx).Return(models.Snapshot{}, nil)

	_, err := f.svc.Join(ctx, "Bob", "abc", "")
	require.NoError(t, err)
}

func TestGameService_Join_NoSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestGameSvc(t, ctrl)

	f.accounts.EXPECT().Selected(gomock.Any()).Return(models.Account{}, false, nil)

	_, err := f.svc.Join(context.Background(), "", "abc", "")
	assert.ErrorIs(t, err, ErrNoAccountSelected)
}

func TestGameService_Join_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestGameSvc(t, ctrl)

	f.accounts.EXPECT().List(gomock.Any()).Return([]models.Account{{Name: "Alice"}}, nil)

	_, err := f.svc.Join(context.Background(), "Carol", "abc", "")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGameService_Join_InvalidRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestGameSvc(t, ctrl)

	_, err := f.svc.Join(context.Background(), "", "not a game", "")
	assert.ErrorIs(t, err, ErrInvalidGameRef)
}

func TestGameService_Join_RemoteErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
		wantMsg string
	}{
		{
			name:    "wrong password",
			err:     &adapter.HTTPError{StatusCode: 400, Body: "Supplied password does not match game password!"},
			wantErr: ErrGameRejected,
			wantMsg: "Supplied password does not match",
		},
		{
			name:    "game full",
			err:     &adapter.HTTPError{StatusCode: 409},
			wantErr: ErrGameRejected,
		},
		{
			name:    "unknown game",
			err:     &adapter.HTTPError{StatusCode: 404},
			wantErr: ErrGameNotFound,
		},
		{
			name:    "revoked token",
			err:     &adapter.HTTPError{StatusCode: 401},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTestGameSvc(t, ctrl)

			f.accounts.EXPECT().Selected(gomock.Any()).Return(models.Account{Name: "Alice", Token: "tok"}, true, nil)
			f.remote.EXPECT().JoinGame(gomock.Any(), "tok", "abc", "").Return(models.Game{}, tt.err)

			_, err := f.svc.Join(context.Background(), "", "abc", "")
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestGameService_Leave_RefreshFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestGameSvc(t, ctrl)
	ctx := context.Background()

	f.accounts.EXPECT().Selected(ctx).Return(models.Account{Name: "Alice", Token: "tok"}, true, nil)
	f.remote.EXPECT().LeaveGame(ctx, "tok", "abc").Return(models.Game{GameID: "abc"}, nil)
	f.poller.EXPECT().Refresh(ctx).Return(models.Snapshot{}, adapter.ErrBadGateway)

	got, err := f.svc.Leave(ctx, "", "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.GameID)
}
