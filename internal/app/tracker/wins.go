package tracker

import (
	"pga-swindle/internal/wins"

	"github.com/rs/zerolog/log"
)

// The win ledger lives in memory only: nothing here touches the store.

func (s *Service) CurrentWeek() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentWeek
}

func (s *Service) SetCurrentWeek(id string) error {
	norm, err := wins.NormalizeWeekID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentWeek = norm
	return nil
}

// RecordTopScorerWin credits a win to the highest score of the score-sheet
// week matching the current week number.
func (s *Service) RecordTopScorerWin() (WinResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := wins.WeekNumber(s.currentWeek)
	if err != nil {
		return WinResponse{}, err
	}
	top, ok := s.season.TopScorer(n)
	if !ok {
		return WinResponse{}, ErrNoWeekScores
	}
	rec, err := s.wins.Record(top.Name, s.currentWeek)
	if err != nil {
		return WinResponse{}, err
	}
	log.Info().Str("name", top.Name).Int("score", top.Score).Str("week", s.currentWeek).Int("total", rec.Total).Msg("win_recorded")
	score := top.Score
	return WinResponse{Name: top.Name, Week: s.currentWeek, Score: &score, Record: rec}, nil
}

func (s *Service) RecordWin(name string) (WinResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.wins.Record(name, s.currentWeek)
	if err != nil {
		return WinResponse{}, err
	}
	log.Info().Str("name", name).Str("week", s.currentWeek).Int("total", rec.Total).Msg("win_recorded")
	return WinResponse{Name: name, Week: s.currentWeek, Record: rec}, nil
}

// Leaderboard lists everyone with a win plus every custom-named player.
func (s *Service) Leaderboard() LeaderboardResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := s.season.CustomNames()
	extra := make([]string, 0, len(names))
	for p := 1; p <= s.season.Players(); p++ {
		if n, ok := names[p]; ok {
			extra = append(extra, n)
		}
	}
	return LeaderboardResponse{
		CurrentWeek: s.currentWeek,
		Stats:       s.wins.Stats(s.currentWeek),
		Standings:   s.wins.Snapshot(s.currentWeek, extra),
	}
}

func (s *Service) WinHistory(f wins.HistoryFilter) []wins.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wins.History(f)
}

// WinWeeks lists every week id with a recorded win, oldest first.
func (s *Service) WinWeeks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wins.Weeks()
}

func (s *Service) ClearWins() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wins.Clear()
	log.Info().Msg("wins_cleared")
}
