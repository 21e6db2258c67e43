package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pga-swindle/internal/config"
	"pga-swindle/internal/ledger"
	"pga-swindle/internal/prizes"
	"pga-swindle/internal/season"
	"pga-swindle/internal/snapshot"
	"pga-swindle/internal/store"
	"pga-swindle/internal/wins"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Service struct {
	mu sync.Mutex

	cfg      season.Config
	unitCost decimal.Decimal
	currency string

	store    store.BlobStore
	key      string
	autosave bool
	now      func() time.Time

	season      *season.State
	money       *ledger.Ledger
	prizes      *prizes.Book
	wins        *wins.Ledger
	ranker      *season.Ranker
	currentWeek string
}

type Option func(*Service)

// WithClock replaces time.Now, which drives the current week and export stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(cfg config.AppConfig, st store.BlobStore, opts ...Option) *Service {
	sc := season.Config{Players: cfg.Season.Players, Weeks: cfg.Season.Weeks, BestN: cfg.Season.BestN}
	s := &Service{
		cfg:      sc,
		unitCost: decimal.NewFromInt(cfg.Season.UnitCost),
		currency: cfg.Season.CurrencySymbol,
		store:    st,
		key:      cfg.Store.Key,
		autosave: cfg.Store.Autosave,
		now:      time.Now,
		ranker:   season.NewRanker(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.season = season.New(sc)
	s.money = ledger.New(s.season.Players())
	s.prizes = prizes.NewBook(s.currency)
	s.wins = wins.New()
	s.currentWeek = wins.WeekID(s.now())
	return s
}

// Load replaces the in-memory state with the stored snapshot. The win ledger
// starts empty and the current week is recomputed from the clock.
func (s *Service) Load(ctx context.Context) error {
	blob, err := s.store.Load(ctx, s.key)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNoSavedData
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	st, err := snapshot.Decode(blob)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.season = season.Restore(s.cfg, st.Season)
	s.money.Restore(st.Money)
	s.prizes.Restore(st.Prizes)
	s.wins.Clear()
	s.currentWeek = wins.WeekID(s.now())
	log.Info().Str("key", s.key).Int("bytes", len(blob)).Msg("snapshot_loaded")
	return nil
}

// Save writes the current state regardless of the autosave setting.
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Service) saveLocked(ctx context.Context) error {
	blob, err := snapshot.Encode(snapshot.Capture(s.season, s.money, s.prizes), s.now())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.store.Save(ctx, s.key, blob); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("snapshot_save_failed")
		return fmt.Errorf("save snapshot: %w", err)
	}
	log.Debug().Str("key", s.key).Int("bytes", len(blob)).Msg("snapshot_saved")
	return nil
}

func (s *Service) changed(ctx context.Context) error {
	if !s.autosave {
		return nil
	}
	return s.saveLocked(ctx)
}

// ClearScores resets scores, dates, names, headers, N and cell colours.
func (s *Service) ClearScores(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.season.ClearScores()
	log.Info().Msg("scores_cleared")
	return s.changed(ctx)
}

func (s *Service) ClearMoney(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.money.Clear()
	log.Info().Msg("money_cleared")
	return s.changed(ctx)
}

// ClearPrizes resets award values and winners. Weekly pots are kept.
func (s *Service) ClearPrizes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prizes.ClearAwards()
	log.Info().Msg("prizes_cleared")
	return s.changed(ctx)
}

// ClearAll resets every component, recomputes the current week and deletes
// the stored snapshot.
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.season.ClearAll()
	s.money.Clear()
	s.prizes.ClearAll()
	s.wins.Clear()
	s.ranker = season.NewRanker()
	s.currentWeek = wins.WeekID(s.now())
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	log.Info().Str("key", s.key).Msg("all_data_cleared")
	return nil
}
