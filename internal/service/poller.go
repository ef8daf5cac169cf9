// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pydt-client/internal/adapter"
	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/internal/store"
	"github.com/MKhiriev/go-pydt-client/internal/utils"
	"github.com/MKhiriev/go-pydt-client/models"
)

const cycleKey = "poll"

// PollerOptions configures a poller.
type PollerOptions struct {
	// ProfilesTTL is how long a fetched roster profile set stays valid.
	ProfilesTTL time.Duration
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

type pollerService struct {
	roster store.RosterRepository
	remote adapter.RemoteAdapter
	logger *logger.Logger
	ids    *utils.UUIDGenerator

	ttl time.Duration
	now func() time.Time

	group singleflight.Group

	mu               sync.Mutex
	entries          map[string]*models.RosterEntry
	profiles         map[string]models.SteamProfile
	profilesExpireAt time.Time
	latest           models.Snapshot
	hasLatest        bool
	subscribers      map[int]func(models.Snapshot)
	nextSubscriber   int
}

// NewPollerService creates a PollerService. The roster is re-read on every
// cycle, so accounts added or removed meanwhile are picked up.
func NewPollerService(roster store.RosterRepository, remote adapter.RemoteAdapter, opts PollerOptions, log *logger.Logger) PollerService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &pollerService{
		roster:      roster,
		remote:      remote,
		logger:      log,
		ids:         utils.NewUUIDGenerator(),
		ttl:         opts.ProfilesTTL,
		now:         now,
		entries:     make(map[string]*models.RosterEntry),
		profiles:    make(map[string]models.SteamProfile),
		subscribers: make(map[int]func(models.Snapshot)),
	}
}

// Refresh implements PollerService. A caller whose ctx ends stops waiting,
// the cycle itself keeps running for the other callers.
func (s *pollerService) Refresh(ctx context.Context) (models.Snapshot, error) {
	ch := s.group.DoChan(cycleKey, func() (any, error) {
		return s.cycle(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return models.Snapshot{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return models.Snapshot{}, res.Err
		}
		return res.Val.(models.Snapshot), nil
	}
}

// Latest implements PollerService.
func (s *pollerService) Latest() (models.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasLatest
}

// Subscribe implements PollerService.
func (s *pollerService) Subscribe(fn func(models.Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSubscriber
	s.nextSubscriber++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

type fetchResult struct {
	games   []models.Game
	pollURL string
	// cursorFailed is set when the poll cursor was rejected, whatever the
	// fallback full fetch returned.
	cursorFailed bool
	err          error
}

func (s *pollerService) cycle(ctx context.Context) (models.Snapshot, error) {
	cycleID := s.ids.Generate()
	ctx = utils.WithCycleID(ctx, cycleID)
	log := s.logger.With().Str("cycle_id", cycleID).Logger()

	accounts, err := s.roster.ListAccounts(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("list roster: %w", err)
	}

	entries := s.syncEntries(accounts)
	failed := make(map[string]string)
	var failedMu sync.Mutex
	fail := func(name string, err error) {
		failedMu.Lock()
		failed[name] = err.Error()
		failedMu.Unlock()
	}

	// an account whose steam id cannot be resolved sits this cycle out
	excluded := make([]bool, len(accounts))
	var resolve errgroup.Group
	for i := range accounts {
		if entries[i].SteamID != "" {
			continue
		}
		i := i
		resolve.Go(func() error {
			user, err := s.remote.GetCurrentUser(ctx, accounts[i].Token)
			if err != nil {
				log.Warn().Err(err).Str("account", accounts[i].Name).Msg("failed to resolve steam id")
				fail(accounts[i].Name, err)
				excluded[i] = true
				return nil
			}
			if err = s.roster.SaveProfile(ctx, accounts[i].Name, user); err != nil {
				log.Warn().Err(err).Str("account", accounts[i].Name).Msg("failed to cache profile")
			}
			entries[i].SteamID = user.SteamID
			return nil
		})
	}
	_ = resolve.Wait()

	// games
	results := make([]fetchResult, len(accounts))
	var fetch errgroup.Group
	for i := range accounts {
		if excluded[i] {
			continue
		}
		i := i
		fetch.Go(func() error {
			results[i] = s.fetchGames(ctx, accounts[i], entries[i].PollURL)
			return nil
		})
	}
	_ = fetch.Wait()

	s.mu.Lock()
	for i, a := range accounts {
		e := s.entries[a.Name]
		if e == nil {
			continue
		}
		e.SteamID = entries[i].SteamID
		switch {
		case excluded[i]:
			// not polled this cycle, cursor untouched
		case results[i].err == nil:
			e.PollURL = results[i].pollURL
		case results[i].cursorFailed:
			e.PollURL = ""
		}
	}
	s.mu.Unlock()

	snapshot := models.Snapshot{
		CycleID:  cycleID,
		MyTurn:   make(map[string]string),
		Accounts: make(map[string]models.Account, len(accounts)),
		Failed:   failed,
	}

	seen := make(map[string]struct{})
	for i, a := range accounts {
		snapshot.Accounts[a.Name] = models.Account{Name: a.Name, Token: a.Token, SteamID: entries[i].SteamID}

		if excluded[i] {
			continue
		}
		if results[i].err != nil {
			log.Warn().Err(results[i].err).Str("account", a.Name).Msg("failed to fetch games")
			fail(a.Name, results[i].err)
			continue
		}
		for _, g := range results[i].games {
			if _, ok := seen[g.GameID]; ok {
				continue
			}
			seen[g.GameID] = struct{}{}
			snapshot.Games = append(snapshot.Games, g)
		}
	}

	for _, g := range snapshot.Games {
		if g.Completed || g.CurrentPlayerSteamID == "" {
			continue
		}
		for i, a := range accounts {
			if entries[i].SteamID == g.CurrentPlayerSteamID {
				snapshot.MyTurn[g.GameID] = a.Name
				break
			}
		}
	}

	// any account that made it through this cycle can read the roster
	var profilesToken string
	for i, a := range accounts {
		if !excluded[i] && results[i].err == nil {
			profilesToken = a.Token
			break
		}
	}
	s.refreshProfiles(ctx, profilesToken, snapshot.Games)

	s.mu.Lock()
	snapshot.Profiles = maps.Clone(s.profiles)
	snapshot.ProfilesExpireAt = s.profilesExpireAt
	snapshot.TakenAt = s.now()
	s.latest = snapshot
	s.hasLatest = true
	subscribers := make([]func(models.Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	log.Debug().
		Int("games", len(snapshot.Games)).
		Int("my_turn", len(snapshot.MyTurn)).
		Int("failed", len(failed)).
		Msg("poll cycle finished")

	for _, fn := range subscribers {
		fn(snapshot)
	}

	return snapshot, nil
}

// syncEntries aligns the cursor table with the roster and returns a copy of
// the entry of every account, index aligned with accounts.
func (s *pollerService) syncEntries(accounts []models.Account) []models.RosterEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]*models.RosterEntry, len(accounts))
	out := make([]models.RosterEntry, len(accounts))
	for i, a := range accounts {
		e, ok := s.entries[a.Name]
		if !ok {
			e = &models.RosterEntry{}
		}
		if a.SteamID != "" {
			e.SteamID = a.SteamID
		}
		next[a.Name] = e
		out[i] = *e
	}
	s.entries = next

	return out
}

// fetchGames uses the poll cursor when present and falls back to a full
// fetch in the same call when the cursor fails.
func (s *pollerService) fetchGames(ctx context.Context, account models.Account, pollURL string) fetchResult {
	var cursorFailed bool
	if pollURL != "" {
		games, err := s.remote.PollGames(ctx, pollURL)
		if err == nil {
			return fetchResult{games: games, pollURL: pollURL}
		}
		cursorFailed = true
		s.logger.Debug().Err(err).Str("account", account.Name).Msg("poll cursor failed, falling back to full fetch")
	}

	resp, err := s.remote.GetGames(ctx, account.Token)
	if errors.Is(err, adapter.ErrMalformedResponse) || errors.Is(err, adapter.ErrDecodeResponse) {
		s.logger.Warn().Err(err).Str("account", account.Name).Msg("malformed game list, treating as empty")
		return fetchResult{cursorFailed: cursorFailed}
	}
	if err != nil {
		return fetchResult{cursorFailed: cursorFailed, err: err}
	}

	return fetchResult{games: resp.Data, pollURL: resp.PollURL, cursorFailed: cursorFailed}
}

// refreshProfiles fetches the profiles of every player in games with one
// batched call once the cache has expired. A failure keeps the old cache.
// An empty token skips the refresh.
func (s *pollerService) refreshProfiles(ctx context.Context, token string, games []models.Game) {
	s.mu.Lock()
	expired := s.profilesExpireAt.IsZero() || s.now().After(s.profilesExpireAt)
	s.mu.Unlock()

	if !expired || token == "" {
		return
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, g := range games {
		for _, id := range g.PlayerSteamIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}

	profiles, err := s.remote.GetSteamProfiles(ctx, token, ids)
	if err != nil {
		s.logger.Warn().Err(err).Int("ids", len(ids)).Msg("failed to refresh roster profiles, keeping cache")
		return
	}

	cache := make(map[string]models.SteamProfile, len(profiles))
	for _, p := range profiles {
		cache[p.SteamID] = p
	}

	s.mu.Lock()
	s.profiles = cache
	s.profilesExpireAt = s.now().Add(s.ttl)
	s.mu.Unlock()
}
