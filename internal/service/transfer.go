// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pydt-client/internal/adapter"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/watcher"
	"github.com/MKhiriev/go-pydt-client/models"
)

// TransferOptions configures the transfer engine.
type TransferOptions struct {
	SaveDir        string
	Extension      string
	StabilityDelay time.Duration
	SettleDelay    time.Duration
}

type transferService struct {
	remote   adapter.RemoteAdapter
	poller   PollerService
	notifier Notifier
	opts     TransferOptions
	logger   *logger.Logger

	// ctx bounds session work. Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	playMu  sync.Mutex
	mu      sync.Mutex
	session *watchSession
	closed  bool
	wg      sync.WaitGroup
}

type watchSession struct {
	info    models.WatchSession
	account models.Account
	watcher *watcher.SaveWatcher

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func (ws *watchSession) halt() {
	ws.stopOnce.Do(func() {
		close(ws.stop)
		ws.watcher.Stop()
	})
}

// NewTransferService creates a TransferService. A nil notifier drops all
// notifications.
func NewTransferService(remote adapter.RemoteAdapter, poller PollerService, notifier Notifier, opts TransferOptions, log *logger.Logger) TransferService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &transferService{
		remote:   remote,
		poller:   poller,
		notifier: notifier,
		opts:     opts,
		logger:   log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// PlayTurn implements TransferService.
func (t *transferService) PlayTurn(ctx context.Context, gameID string) (models.WatchSession, error) {
	t.playMu.Lock()
	defer t.playMu.Unlock()

	if t.isClosed() {
		return models.WatchSession{}, ErrTransferClosed
	}

	snapshot, ok := t.poller.Latest()
	if !ok {
		return models.WatchSession{}, ErrNotMyTurn
	}
	game, ok := snapshot.Game(gameID)
	if !ok {
		return models.WatchSession{}, ErrNotMyTurn
	}
	account, ok := snapshot.TurnOwner(gameID)
	if !ok {
		return models.WatchSession{}, ErrNotMyTurn
	}

	t.teardown()

	log := t.logger.With().Str("game_id", gameID).Str("account", account.Name).Logger()

	var downloaded string
	if !game.IsFirstTurn() {
		path, err := t.downloadSave(ctx, account, game)
		if err != nil {
			log.Error().Err(err).Msg("save download failed")
			t.notifier.NotifyTransferFailed(gameID, game.DisplayName, err)
			return models.WatchSession{}, err
		}
		downloaded = path
		log.Info().Str("path", path).Msg("save downloaded")
	}

	w := watcher.New(watcher.Options{
		Dir:            t.opts.SaveDir,
		Extension:      t.opts.Extension,
		StabilityDelay: t.opts.StabilityDelay,
		Logger:         t.logger,
	})
	if err := w.Start(); err != nil {
		err = fmt.Errorf("watch saves: %w", err)
		t.notifier.NotifyTransferFailed(gameID, game.DisplayName, err)
		return models.WatchSession{}, err
	}

	ws := &watchSession{
		info: models.WatchSession{
			GameID:      gameID,
			GameName:    game.DisplayName,
			AccountName: account.Name,
			SaveDir:     t.opts.SaveDir,
			Extension:   t.opts.Extension,
			Downloaded:  downloaded,
			StartedAt:   time.Now(),
		},
		account: account,
		watcher: w,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		w.Stop()
		return models.WatchSession{}, ErrTransferClosed
	}
	t.session = ws
	t.wg.Add(1)
	t.mu.Unlock()

	go t.runSession(ws)

	log.Info().Msg("watching for the played save")
	return ws.info, nil
}

// CancelWatch implements TransferService.
func (t *transferService) CancelWatch() {
	t.teardown()
}

// ActiveSession implements TransferService.
func (t *transferService) ActiveSession() (models.WatchSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return models.WatchSession{}, false
	}
	return t.session.info, true
}

// Close implements TransferService.
func (t *transferService) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()

	t.cancel()
	t.teardown()
	t.wg.Wait()
}

func (t *transferService) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// teardown stops the active session and waits for its goroutine.
func (t *transferService) teardown() {
	t.mu.Lock()
	ws := t.session
	t.session = nil
	t.mu.Unlock()

	if ws == nil {
		return
	}
	ws.halt()
	<-ws.done

	t.logger.Debug().Str("game_id", ws.info.GameID).Msg("watch session closed")
}

// release drops ws from the slot without waiting. Used by the session
// goroutine itself.
func (t *transferService) release(ws *watchSession) {
	t.mu.Lock()
	if t.session == ws {
		t.session = nil
	}
	t.mu.Unlock()
	ws.halt()
}

func (t *transferService) runSession(ws *watchSession) {
	defer t.wg.Done()
	defer close(ws.done)

	for {
		select {
		case <-ws.stop:
			return
		case path, ok := <-ws.watcher.Events():
			if !ok {
				return
			}
			select {
			case <-ws.stop:
				return
			case <-time.After(t.opts.SettleDelay):
			}

			if !t.upload(ws, path) {
				continue
			}
			t.release(ws)
			if _, err := t.poller.Refresh(t.ctx); err != nil && t.ctx.Err() == nil {
				t.logger.Warn().Err(err).Msg("poll refresh after upload failed")
			}
			return
		}
	}
}

// upload sends the save at path as the turn of the session game and reports
// whether the turn was submitted. A failed begin or PUT step makes path
// eligible again, so the player can resave. After a failed confirm the
// watcher keeps path as seen and never reports it again.
func (t *transferService) upload(ws *watchSession, path string) bool {
	ctx := t.ctx
	gameID, gameName, token := ws.info.GameID, ws.info.GameName, ws.account.Token
	log := t.logger.With().Str("game_id", gameID).Str("path", path).Logger()

	retry := func(err error, msg string) bool {
		log.Error().Err(err).Msg(msg)
		ws.watcher.Forget(path)
		t.notifier.NotifyUploadFailed(gameID, gameName, err)
		return false
	}

	submit, err := t.remote.StartTurnSubmit(ctx, token, gameID)
	if err != nil {
		return retry(err, "begin upload failed")
	}

	payload, err := gzipFile(path)
	if err != nil {
		return retry(fmt.Errorf("read save: %w", err), "upload failed")
	}

	if err = t.remote.UploadSave(ctx, submit.PutURL, payload); err != nil {
		return retry(err, "upload failed")
	}

	if _, err = t.remote.FinishTurnSubmit(ctx, token, gameID); err != nil {
		log.Error().Err(err).Msg("confirm upload failed")
		t.notifier.NotifyConfirmFailed(gameID, gameName, err)
		return false
	}

	log.Info().Int("bytes", len(payload)).Msg("turn submitted")
	t.notifier.NotifyTurnSubmitted(gameID, gameName)
	return true
}

type nopNotifier struct{}

func (nopNotifier) NotifyTurnSubmitted(string, string) {}

func (nopNotifier) NotifyUploadFailed(string, string, error) {}

func (nopNotifier) NotifyConfirmFailed(string, string, error) {}

func (nopNotifier) NotifyTransferFailed(string, string, error) {}
