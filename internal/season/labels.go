package season

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	HeaderPlayer      = "player"
	HeaderPlayedGames = "played-games"
	HeaderTotalPoints = "total-points"
	HeaderBestScores  = "best-scores"

	weekHeaderPrefix = "week-"
	defaultColor     = "#ffffff"
)

func DefaultName(player int) string {
	return fmt.Sprintf("Player %d", player)
}

func (s *State) Name(player int) string {
	if n, ok := s.names[player]; ok {
		return n
	}
	return DefaultName(player)
}

// SetName stores a trimmed display name. Blank text or the default name
// removes the override.
func (s *State) SetName(player int, text string) bool {
	if player < 1 || player > s.cfg.Players {
		return false
	}
	name := strings.TrimSpace(text)
	if name == "" || name == DefaultName(player) {
		delete(s.names, player)
		return true
	}
	s.names[player] = name
	return true
}

// CustomNames returns the names that differ from the default, by player.
func (s *State) CustomNames() map[int]string {
	out := make(map[int]string, len(s.names))
	for k, v := range s.names {
		out[k] = v
	}
	return out
}

func WeekHeader(week int) string {
	return weekHeaderPrefix + strconv.Itoa(week)
}

func (s *State) defaultHeader(slot string) (string, bool) {
	switch slot {
	case HeaderPlayer:
		return "Player", true
	case HeaderPlayedGames:
		return "Played Games", true
	case HeaderTotalPoints:
		return "Total Points", true
	case HeaderBestScores:
		return fmt.Sprintf("Best %d Scores", s.bestN), true
	}
	if rest, ok := strings.CutPrefix(slot, weekHeaderPrefix); ok {
		w, err := strconv.Atoi(rest)
		if err == nil && w >= 1 && w <= s.cfg.Weeks {
			return fmt.Sprintf("WK%d", w), true
		}
	}
	return "", false
}

// Header returns the label for a slot: the user's override or the default
// derived from the current state.
func (s *State) Header(slot string) (string, error) {
	def, ok := s.defaultHeader(slot)
	if !ok {
		return "", ErrUnknownHeader
	}
	if v, ok := s.headers[slot]; ok {
		return v, nil
	}
	return def, nil
}

func (s *State) SetHeader(slot, text string) error {
	def, ok := s.defaultHeader(slot)
	if !ok {
		return ErrUnknownHeader
	}
	label := strings.TrimSpace(text)
	if label == "" || label == def {
		delete(s.headers, slot)
		return nil
	}
	s.headers[slot] = label
	return nil
}

// Headers lists every slot label in column order.
func (s *State) Headers() []Label {
	out := make([]Label, 0, s.cfg.Weeks+4)
	add := func(slot string) {
		v, _ := s.Header(slot)
		_, custom := s.headers[slot]
		out = append(out, Label{Slot: slot, Text: v, Custom: custom})
	}
	add(HeaderPlayer)
	for w := 1; w <= s.cfg.Weeks; w++ {
		add(WeekHeader(w))
	}
	add(HeaderPlayedGames)
	add(HeaderTotalPoints)
	add(HeaderBestScores)
	return out
}

type Label struct {
	Slot   string `json:"slot"`
	Text   string `json:"text"`
	Custom bool   `json:"custom"`
}

func (s *State) Date(week int) string {
	return s.dates[week]
}

func (s *State) SetDate(week int, text string) bool {
	if week < 1 || week > s.cfg.Weeks {
		return false
	}
	d := strings.TrimSpace(text)
	if d == "" {
		delete(s.dates, week)
		return true
	}
	s.dates[week] = d
	return true
}

func (s *State) CellColor(player, week int) string {
	return s.colors[Cell{Player: player, Week: week}]
}

// SetCellColor stores a cosmetic colour for a cell; blank or white removes it.
func (s *State) SetCellColor(player, week int, color string) bool {
	if !s.inGrid(player, week) {
		return false
	}
	c := strings.TrimSpace(color)
	key := Cell{Player: player, Week: week}
	if c == "" || strings.EqualFold(c, defaultColor) {
		delete(s.colors, key)
		return true
	}
	s.colors[key] = c
	return true
}

func (s *State) Title() string {
	if s.title == "" {
		return DefaultTitle
	}
	return s.title
}

func (s *State) SetTitle(text string) {
	t := strings.TrimSpace(text)
	if t == DefaultTitle {
		t = ""
	}
	s.title = t
}
