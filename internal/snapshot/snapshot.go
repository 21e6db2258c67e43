package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pga-swindle/internal/ledger"
	"pga-swindle/internal/prizes"
	"pga-swindle/internal/season"

	"github.com/shopspring/decimal"
)

const Version = "2"

var ErrCorrupt = errors.New("corrupt_snapshot")

// State groups the persisted data of every component.
type State struct {
	Season season.Data
	Money  map[int]ledger.Entry
	Prizes prizes.Data
}

func Capture(s *season.State, l *ledger.Ledger, b *prizes.Book) State {
	return State{Season: s.Export(), Money: l.Entries(), Prizes: b.Export()}
}

// Bundle is the wire layout. Map keys are strings: cells use "player-week",
// weeks and players use their decimal number.
type Bundle struct {
	Scores        map[string]int             `json:"scores"`
	Dates         map[string]string          `json:"dates"`
	PlayerNames   map[string]string          `json:"player_names"`
	CustomHeaders map[string]string          `json:"custom_headers"`
	MainTitle     string                     `json:"main_title,omitempty"`
	MoneyWon      map[string]ledger.Entry     `json:"money_won"`
	BestN         int                        `json:"best_n"`
	PrizeValues   map[string]decimal.Decimal `json:"prize_values"`
	PrizeWinners  map[string]string          `json:"prize_winners"`
	PrizePots     map[string]prizes.Pot      `json:"prize_pots"`
	CellColors    map[string]string          `json:"cell_colors"`
	SavedAt       time.Time                  `json:"saved_at"`
	Version       string                     `json:"version"`
}

func Encode(st State, now time.Time) ([]byte, error) {
	b := Bundle{
		Scores:        make(map[string]int, len(st.Season.Scores)),
		Dates:         make(map[string]string, len(st.Season.Dates)),
		PlayerNames:   make(map[string]string, len(st.Season.Names)),
		CustomHeaders: st.Season.Headers,
		MainTitle:     st.Season.Title,
		MoneyWon:      make(map[string]ledger.Entry, len(st.Money)),
		BestN:         st.Season.BestN,
		PrizeValues:   st.Prizes.Values,
		PrizeWinners:  st.Prizes.Winners,
		PrizePots:     make(map[string]prizes.Pot, len(st.Prizes.Pots)),
		CellColors:    make(map[string]string, len(st.Season.Colors)),
		SavedAt:       now.UTC(),
		Version:       Version,
	}
	for c, v := range st.Season.Scores {
		b.Scores[c.String()] = v
	}
	for w, v := range st.Season.Dates {
		b.Dates[strconv.Itoa(w)] = v
	}
	for p, v := range st.Season.Names {
		b.PlayerNames[strconv.Itoa(p)] = v
	}
	for p, e := range st.Money {
		b.MoneyWon[strconv.Itoa(p)] = e
	}
	for w, pot := range st.Prizes.Pots {
		b.PrizePots[strconv.Itoa(w)] = pot
	}
	for c, v := range st.Season.Colors {
		b.CellColors[c.String()] = v
	}
	return json.Marshal(b)
}

// Decode parses a blob written by Encode. Keys that do not parse are skipped;
// range checks happen when the parts are restored into their components.
func Decode(blob []byte) (State, error) {
	var b Bundle
	if err := json.Unmarshal(blob, &b); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	st := State{
		Season: season.Data{
			Scores:  map[season.Cell]int{},
			Dates:   map[int]string{},
			Names:   map[int]string{},
			Headers: map[string]string{},
			Colors:  map[season.Cell]string{},
			Title:   b.MainTitle,
			BestN:   b.BestN,
		},
		Money: map[int]ledger.Entry{},
		Prizes: prizes.Data{
			Values:  map[string]decimal.Decimal{},
			Winners: map[string]string{},
			Pots:    map[int]prizes.Pot{},
		},
	}
	if st.Season.BestN < 1 {
		st.Season.BestN = season.DefaultBestN
	}
	for k, v := range b.Scores {
		if c, ok := parseCell(k); ok {
			st.Season.Scores[c] = v
		}
	}
	for k, v := range b.Dates {
		if w, err := strconv.Atoi(k); err == nil {
			st.Season.Dates[w] = v
		}
	}
	for k, v := range b.PlayerNames {
		if p, err := strconv.Atoi(k); err == nil {
			st.Season.Names[p] = v
		}
	}
	for k, v := range b.CustomHeaders {
		st.Season.Headers[k] = v
	}
	for k, v := range b.CellColors {
		if c, ok := parseCell(k); ok {
			st.Season.Colors[c] = v
		}
	}
	for k, e := range b.MoneyWon {
		if p, err := strconv.Atoi(k); err == nil {
			st.Money[p] = e
		}
	}
	for k, v := range b.PrizeValues {
		st.Prizes.Values[k] = v
	}
	for k, v := range b.PrizeWinners {
		st.Prizes.Winners[k] = v
	}
	for k, pot := range b.PrizePots {
		if w, err := strconv.Atoi(k); err == nil {
			st.Prizes.Pots[w] = pot
		}
	}
	return st, nil
}

func parseCell(key string) (season.Cell, bool) {
	ps, ws, ok := strings.Cut(key, "-")
	if !ok {
		return season.Cell{}, false
	}
	p, err := strconv.Atoi(ps)
	if err != nil {
		return season.Cell{}, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return season.Cell{}, false
	}
	return season.Cell{Player: p, Week: w}, true
}
