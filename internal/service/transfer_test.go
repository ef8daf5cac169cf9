// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/mock"
	"github.com/MKhiriev/go-pydt-client/models"
)

const (
	testExt     = ".Civ6Save"
	waitTimeout = 5 * time.Second
)

type transferFixture struct {
	svc      TransferService
	remote   *mock.MockRemoteAdapter
	poller   *mock.MockPollerService
	notifier *mock.MockNotifier
	dir      string
}

func newTestTransfer(t *testing.T, snapshot models.Snapshot) transferFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := transferFixture{
		remote:   mock.NewMockRemoteAdapter(ctrl),
		poller:   mock.NewMockPollerService(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
		dir:      filepath.Join(t.TempDir(), "Hotseat"),
	}
	f.poller.EXPECT().Latest().Return(snapshot, true).AnyTimes()

	f.svc = NewTransferService(f.remote, f.poller, f.notifier, TransferOptions{
		SaveDir:        f.dir,
		Extension:      testExt,
		StabilityDelay: 50 * time.Millisecond,
		SettleDelay:    10 * time.Millisecond,
	}, logger.Nop())

	// registered after the controller, so it runs before mock verification
	t.Cleanup(f.svc.Close)
	return f
}

func turnSnapshot(games ...models.Game) models.Snapshot {
	s := models.Snapshot{
		CycleID:  "c1",
		Games:    games,
		MyTurn:   make(map[string]string),
		Accounts: map[string]models.Account{"Alice": {Name: "Alice", Token: "ta", SteamID: "S1"}},
	}
	for _, g := range games {
		if g.CurrentPlayerSteamID == "S1" {
			s.MyTurn[g.GameID] = "Alice"
		}
	}
	return s
}

func gzipBytes(t *testing.T, b []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(b)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, b []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(waitTimeout):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestTransfer_PlayTurn_DownloadWatchUpload(t *testing.T) {
	g1 := models.Game{GameID: "G1", DisplayName: "Game: One", CurrentPlayerSteamID: "S1", TurnOrdinal: 5}
	f := newTestTransfer(t, turnSnapshot(g1))

	f.remote.EXPECT().GetTurnDownload(gomock.Any(), "ta", "G1").
		Return(models.TurnDownload{DownloadURL: "https://blob/g1"}, nil)
	f.remote.EXPECT().DownloadSave(gomock.Any(), "https://blob/g1").
		Return(io.NopCloser(bytes.NewReader(gzipBytes(t, []byte("SAVE-V1")))), nil)

	session, err := f.svc.PlayTurn(context.Background(), "G1")
	require.NoError(t, err)

	assert.Equal(t, "G1", session.GameID)
	assert.Equal(t, "Alice", session.AccountName)
	assert.Equal(t, filepath.Join(f.dir, SaveFileName("G1", "Game: One", "Alice", testExt)), session.Downloaded)
	content, err := os.ReadFile(session.Downloaded)
	require.NoError(t, err)
	assert.Equal(t, "SAVE-V1", string(content))

	active, ok := f.svc.ActiveSession()
	require.True(t, ok)
	assert.Equal(t, "G1", active.GameID)

	refreshed := make(chan struct{})
	gomock.InOrder(
		f.remote.EXPECT().StartTurnSubmit(gomock.Any(), "ta", "G1").
			Return(models.TurnSubmit{PutURL: "https://put/1"}, nil),
		f.remote.EXPECT().UploadSave(gomock.Any(), "https://put/1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, gz []byte) error {
				assert.Equal(t, "SAVE-V2", string(gunzipBytes(t, gz)))
				return nil
			}),
		f.remote.EXPECT().FinishTurnSubmit(gomock.Any(), "ta", "G1").Return(g1, nil),
	)
	f.notifier.EXPECT().NotifyTurnSubmitted("G1", "Game: One")
	f.poller.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) (models.Snapshot, error) {
		close(refreshed)
		return models.Snapshot{}, nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "played"+testExt), []byte("SAVE-V2"), 0o644))

	waitFor(t, refreshed, "poller refresh")
	_, ok = f.svc.ActiveSession()
	assert.False(t, ok)
}

func TestTransfer_PlayTurn_FirstTurnSkipsDownload(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Fresh", CurrentPlayerSteamID: "S1", TurnOrdinal: models.FirstTurnOrdinal}
	f := newTestTransfer(t, turnSnapshot(g))

	session, err := f.svc.PlayTurn(context.Background(), "G1")
	require.NoError(t, err)

	assert.Empty(t, session.Downloaded)
	_, ok := f.svc.ActiveSession()
	assert.True(t, ok)

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTransfer_PlayTurn_ConfirmFailureKeepsWatcher(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Game", CurrentPlayerSteamID: "S1", TurnOrdinal: 1}
	f := newTestTransfer(t, turnSnapshot(g))

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	require.NoError(t, err)

	notified := make(chan struct{})
	f.remote.EXPECT().StartTurnSubmit(gomock.Any(), "ta", "G1").Return(models.TurnSubmit{PutURL: "https://put/1"}, nil).Times(1)
	f.remote.EXPECT().UploadSave(gomock.Any(), "https://put/1", gomock.Any()).Return(nil).Times(1)
	f.remote.EXPECT().FinishTurnSubmit(gomock.Any(), "ta", "G1").Return(models.Game{}, errors.New("boom")).Times(1)
	f.notifier.EXPECT().NotifyConfirmFailed("G1", "Game", gomock.Any()).Do(func(string, string, error) {
		close(notified)
	})

	path := filepath.Join(f.dir, "played"+testExt)
	require.NoError(t, os.WriteFile(path, []byte("save"), 0o644))
	waitFor(t, notified, "confirm failure notification")

	// further writes to the same file must not resubmit
	require.NoError(t, os.WriteFile(path, []byte("save again"), 0o644))
	time.Sleep(200 * time.Millisecond)

	session, ok := f.svc.ActiveSession()
	require.True(t, ok)
	assert.Equal(t, "G1", session.GameID)
}

func TestTransfer_PlayTurn_BeginFailureKeepsWatcher(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Game", CurrentPlayerSteamID: "S1", TurnOrdinal: 1}
	f := newTestTransfer(t, turnSnapshot(g))

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	require.NoError(t, err)

	notified := make(chan struct{})
	f.remote.EXPECT().StartTurnSubmit(gomock.Any(), "ta", "G1").Return(models.TurnSubmit{}, errors.New("offline"))
	f.notifier.EXPECT().NotifyUploadFailed("G1", "Game", gomock.Any()).Do(func(string, string, error) {
		close(notified)
	})

	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "played"+testExt), []byte("save"), 0o644))
	waitFor(t, notified, "upload failure notification")

	_, ok := f.svc.ActiveSession()
	assert.True(t, ok)
}

func TestTransfer_PlayTurn_PutFailureAllowsResave(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Game", CurrentPlayerSteamID: "S1", TurnOrdinal: 1}
	f := newTestTransfer(t, turnSnapshot(g))

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	require.NoError(t, err)

	failed := make(chan struct{})
	refreshed := make(chan struct{})
	f.remote.EXPECT().StartTurnSubmit(gomock.Any(), "ta", "G1").Return(models.TurnSubmit{PutURL: "https://put/1"}, nil).Times(2)
	gomock.InOrder(
		f.remote.EXPECT().UploadSave(gomock.Any(), "https://put/1", gomock.Any()).Return(errors.New("reset")),
		f.remote.EXPECT().UploadSave(gomock.Any(), "https://put/1", gomock.Any()).Return(nil),
	)
	f.remote.EXPECT().FinishTurnSubmit(gomock.Any(), "ta", "G1").Return(g, nil)
	f.notifier.EXPECT().NotifyUploadFailed("G1", "Game", gomock.Any()).Do(func(string, string, error) {
		close(failed)
	})
	f.notifier.EXPECT().NotifyTurnSubmitted("G1", "Game")
	f.poller.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) (models.Snapshot, error) {
		close(refreshed)
		return models.Snapshot{}, nil
	})

	path := filepath.Join(f.dir, "played"+testExt)
	require.NoError(t, os.WriteFile(path, []byte("save"), 0o644))
	waitFor(t, failed, "upload failure notification")

	require.NoError(t, os.WriteFile(path, []byte("resave"), 0o644))
	waitFor(t, refreshed, "poller refresh")
}

func TestTransfer_PlayTurn_PreexistingFilesIgnored(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Game", CurrentPlayerSteamID: "S1", TurnOrdinal: 1}
	f := newTestTransfer(t, turnSnapshot(g))

	require.NoError(t, os.MkdirAll(f.dir, 0o755))
	old := filepath.Join(f.dir, "old"+testExt)
	require.NoError(t, os.WriteFile(old, []byte("old"), 0o644))

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	require.NoError(t, err)

	// touching the old file or writing other files must not trigger anything;
	// the remote mock fails the test on any upload call
	require.NoError(t, os.WriteFile(old, []byte("old, touched"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, ".hidden"+testExt), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)

	_, ok := f.svc.ActiveSession()
	assert.True(t, ok)
}

func TestTransfer_PlayTurn_NewSessionReplacesOld(t *testing.T) {
	a := models.Game{GameID: "GA", DisplayName: "A", CurrentPlayerSteamID: "S1", TurnOrdinal: 1}
	b := models.Game{GameID: "GB", DisplayName: "B", CurrentPlayerSteamID: "S1", TurnOrdinal: 1}
	f := newTestTransfer(t, turnSnapshot(a, b))

	_, err := f.svc.PlayTurn(context.Background(), "GA")
	require.NoError(t, err)
	_, err = f.svc.PlayTurn(context.Background(), "GB")
	require.NoError(t, err)

	session, ok := f.svc.ActiveSession()
	require.True(t, ok)
	assert.Equal(t, "GB", session.GameID)

	refreshed := make(chan struct{})
	f.remote.EXPECT().StartTurnSubmit(gomock.Any(), "ta", "GB").Return(models.TurnSubmit{PutURL: "https://put/b"}, nil).Times(1)
	f.remote.EXPECT().UploadSave(gomock.Any(), "https://put/b", gomock.Any()).Return(nil).Times(1)
	f.remote.EXPECT().FinishTurnSubmit(gomock.Any(), "ta", "GB").Return(b, nil).Times(1)
	f.notifier.EXPECT().NotifyTurnSubmitted("GB", "B")
	f.poller.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) (models.Snapshot, error) {
		close(refreshed)
		return models.Snapshot{}, nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "played"+testExt), []byte("save"), 0o644))
	waitFor(t, refreshed, "poller refresh")
}

func TestTransfer_PlayTurn_DownloadFailureLeavesNoFile(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Game", CurrentPlayerSteamID: "S1", TurnOrdinal: 7}
	f := newTestTransfer(t, turnSnapshot(g))

	corrupt := append([]byte{0x1f, 0x8b}, []byte("not really gzip")...)
	f.remote.EXPECT().GetTurnDownload(gomock.Any(), "ta", "G1").Return(models.TurnDownload{DownloadURL: "https://blob/g1"}, nil)
	f.remote.EXPECT().DownloadSave(gomock.Any(), "https://blob/g1").Return(io.NopCloser(bytes.NewReader(corrupt)), nil)
	f.notifier.EXPECT().NotifyTransferFailed("G1", "Game", gomock.Any())

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	require.Error(t, err)

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, ok := f.svc.ActiveSession()
	assert.False(t, ok)
}

func TestTransfer_PlayTurn_DownloadURLFailure(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Game", CurrentPlayerSteamID: "S1", TurnOrdinal: 7}
	f := newTestTransfer(t, turnSnapshot(g))

	f.remote.EXPECT().GetTurnDownload(gomock.Any(), "ta", "G1").Return(models.TurnDownload{}, errors.New("offline"))
	f.notifier.EXPECT().NotifyTransferFailed("G1", "Game", gomock.Any())

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	require.Error(t, err)

	_, statErr := os.Stat(f.dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTransfer_PlayTurn_NotMyTurn(t *testing.T) {
	other := models.Game{GameID: "G1", CurrentPlayerSteamID: "S9", TurnOrdinal: 3}
	f := newTestTransfer(t, turnSnapshot(other))

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	assert.ErrorIs(t, err, ErrNotMyTurn)

	_, err = f.svc.PlayTurn(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotMyTurn)
}

func TestTransfer_CancelWatchAndClose(t *testing.T) {
	g := models.Game{GameID: "G1", DisplayName: "Game", CurrentPlayerSteamID: "S1", TurnOrdinal: 1}
	f := newTestTransfer(t, turnSnapshot(g))

	_, err := f.svc.PlayTurn(context.Background(), "G1")
	require.NoError(t, err)

	f.svc.CancelWatch()
	_, ok := f.svc.ActiveSession()
	assert.False(t, ok)

	f.svc.Close()
	f.svc.Close()

	_, err = f.svc.PlayTurn(context.Background(), "G1")
	assert.ErrorIs(t, err, ErrTransferClosed)
}

func TestSaveFileName(t *testing.T) {
	assert.Equal(t, "My_Game_Alice_g1"+testExt, SaveFileName("g1", "My Game", "Alice", testExt))
	assert.NotEqual(t, SaveFileName("g1", "My Game", "Alice", testExt), SaveFileName("g1", "My Game", "Bob", testExt))
	assert.Equal(t, testExt, filepath.Ext(SaveFileName("g1", "a/b", "c", testExt)))
	assert.NotContains(t, SaveFileName("g1", "a/b", "c", testExt), "/")

	// names that sanitize alike still map to distinct files
	assert.NotEqual(t, SaveFileName("g1", "Game 1", "Alice", testExt), SaveFileName("g2", "Game_1", "Alice", testExt))
	assert.NotEqual(t, SaveFileName("g1", "a_b", "c", testExt), SaveFileName("g2", "a", "b_c", testExt))
}

func TestDecompressTo_PlainPassthrough(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, decompressTo(&buf, bytes.NewReader([]byte("plain"))))
	assert.Equal(t, "plain", buf.String())

	buf.Reset()
	require.NoError(t, decompressTo(&buf, bytes.NewReader(nil)))
	assert.Empty(t, buf.String())
}
