package season

import (
	"strconv"
	"strings"
)

const (
	MinScore = 0
	MaxScore = 200
)

// Score is one grid slot. Valid is false for a week the player did not play.
type Score struct {
	Value int
	Valid bool
}

func (s *State) Score(player, week int) (int, bool) {
	if !s.inGrid(player, week) {
		return 0, false
	}
	sc := s.cells[s.index(player, week)]
	return sc.Value, sc.Valid
}

// SetScore records a score. Coordinates outside the grid are ignored and
// report false; values outside [MinScore, MaxScore] are rejected.
func (s *State) SetScore(player, week, value int) (bool, error) {
	if value < MinScore || value > MaxScore {
		return false, ErrOutOfRange
	}
	if !s.inGrid(player, week) {
		return false, nil
	}
	s.cells[s.index(player, week)] = Score{Value: value, Valid: true}
	return true, nil
}

func (s *State) ClearScore(player, week int) bool {
	if !s.inGrid(player, week) {
		return false
	}
	s.cells[s.index(player, week)] = Score{}
	return true
}

// ParseScore interprets raw score text. An empty result with ok=false means
// the cell should be cleared.
func ParseScore(text string) (value int, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, ErrParseRejected
	}
	if n < MinScore || n > MaxScore {
		return 0, false, ErrOutOfRange
	}
	return n, true, nil
}

// ApplyScoreText parses text and either sets or clears the cell. Rejected text
// leaves the previous value in place.
func (s *State) ApplyScoreText(player, week int, text string) error {
	v, ok, err := ParseScore(text)
	if err != nil {
		return err
	}
	if !ok {
		s.ClearScore(player, week)
		return nil
	}
	_, err = s.SetScore(player, week, v)
	return err
}

// RemoveWeek drops every score recorded for week along with its date.
func (s *State) RemoveWeek(week int) bool {
	if week < 1 || week > s.cfg.Weeks {
		return false
	}
	for p := 1; p <= s.cfg.Players; p++ {
		s.cells[s.index(p, week)] = Score{}
	}
	delete(s.dates, week)
	return true
}

// weekScores returns the present scores of a player in week order.
func (s *State) weekScores(player int) []weekScore {
	if player < 1 || player > s.cfg.Players {
		return nil
	}
	out := make([]weekScore, 0, s.cfg.Weeks)
	for w := 1; w <= s.cfg.Weeks; w++ {
		sc := s.cells[s.index(player, w)]
		if sc.Valid {
			out = append(out, weekScore{week: w, score: sc.Value})
		}
	}
	return out
}

type weekScore struct {
	week  int
	score int
}

type TopScore struct {
	Player int    `json:"player"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// TopScorer returns the strictly highest score of a week. Ties go to the
// lowest player number.
func (s *State) TopScorer(week int) (TopScore, bool) {
	if week < 1 || week > s.cfg.Weeks {
		return TopScore{}, false
	}
	best := TopScore{Score: -1}
	for p := 1; p <= s.cfg.Players; p++ {
		sc := s.cells[s.index(p, week)]
		if sc.Valid && sc.Value > best.Score {
			best = TopScore{Player: p, Name: s.Name(p), Score: sc.Value}
		}
	}
	if best.Player == 0 {
		return TopScore{}, false
	}
	return best, true
}
