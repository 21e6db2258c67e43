package tracker

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pga-swindle/internal/season"

	"github.com/rs/zerolog/log"
)

func (s *Service) inGrid(player, week int) bool {
	return player >= 1 && player <= s.season.Players() && week >= 1 && week <= s.season.Weeks()
}

// SetScore applies raw cell text: blank clears, 0..200 sets, anything else is
// rejected and the previous value stays.
func (s *Service) SetScore(ctx context.Context, player, week int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inGrid(player, week) {
		return ErrInvalidRequest
	}
	if err := s.season.ApplyScoreText(player, week, text); err != nil {
		log.Debug().Err(err).Int("player", player).Int("week", week).Str("text", text).Msg("score_rejected")
		return err
	}
	return s.changed(ctx)
}

func (s *Service) Score(player, week int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.season.Score(player, week)
}

// RemoveWeek clears a whole week column and its date.
func (s *Service) RemoveWeek(ctx context.Context, week int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.season.RemoveWeek(week) {
		return ErrInvalidRequest
	}
	log.Info().Int("week", week).Msg("week_removed")
	return s.changed(ctx)
}

func (s *Service) SetName(ctx context.Context, player int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.season.SetName(player, text) {
		return ErrInvalidRequest
	}
	return s.changed(ctx)
}

func (s *Service) SetHeader(ctx context.Context, slot, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.season.SetHeader(slot, text); err != nil {
		log.Debug().Err(err).Str("slot", slot).Msg("header_rejected")
		return err
	}
	return s.changed(ctx)
}

func (s *Service) Headers() []season.Label {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.season.Headers()
}

func (s *Service) SetDate(ctx context.Context, week int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.season.SetDate(week, text) {
		return ErrInvalidRequest
	}
	return s.changed(ctx)
}

func (s *Service) SetCellColor(ctx context.Context, player, week int, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.season.SetCellColor(player, week, color) {
		return ErrInvalidRequest
	}
	return s.changed(ctx)
}

func (s *Service) SetTitle(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.season.SetTitle(text)
	return s.changed(ctx)
}

func (s *Service) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.season.Title()
}

// SetBestN takes the raw count text; it must be a whole number of at least 1.
func (s *Service) SetBestN(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		log.Debug().Err(err).Str("text", text).Msg("best_n_rejected")
		return fmt.Errorf("%w: %q", season.ErrParseRejected, text)
	}
	if err := s.season.SetBestN(n); err != nil {
		log.Debug().Err(err).Int("n", n).Msg("best_n_rejected")
		return err
	}
	return s.changed(ctx)
}

func (s *Service) BestN() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.season.BestN()
}

func (s *Service) row(player int) PlayerRow {
	sum := s.season.Summary(player)
	return PlayerRow{
		PlayerSummary: sum,
		Scores:        s.season.Highlight(player),
		Money:         s.money.Money(player, sum.GamesPlayed, s.unitCost),
	}
}

// Sheet returns every player row in player order.
func (s *Service) Sheet() []PlayerRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PlayerRow, 0, s.season.Players())
	for p := 1; p <= s.season.Players(); p++ {
		out = append(out, s.row(p))
	}
	return out
}

func (s *Service) Player(player int) (PlayerRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player < 1 || player > s.season.Players() {
		return PlayerRow{}, ErrInvalidRequest
	}
	return s.row(player), nil
}

func (s *Service) rows(order []int) []PlayerRow {
	out := make([]PlayerRow, 0, len(order))
	for _, p := range order {
		out = append(out, s.row(p))
	}
	return out
}

// Rank orders the sheet without touching the remembered toggle directions.
func (s *Service) Rank(by season.RankBy) RankingResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.season.Rank(by, s.money)
	dir := by.Direction
	if by.Metric == season.MetricBestN || dir == "" {
		dir = season.Descending
	}
	return RankingResponse{Metric: by.Metric, Direction: dir, Rows: s.rows(order)}
}

// ToggleRank flips the remembered direction for metric and ranks by it.
func (s *Service) ToggleRank(metric season.Metric) RankingResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, dir := s.ranker.Toggle(s.season, metric, s.money)
	return RankingResponse{Metric: metric, Direction: dir, Rows: s.rows(order)}
}

// WriteCSV exports the score grid.
func (s *Service) WriteCSV(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.season.WriteCSV(w)
}
