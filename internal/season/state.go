package season

import "fmt"

const (
	DefaultPlayers = 50
	DefaultWeeks   = 25
	DefaultBestN   = 10
	DefaultTitle   = "🏌️ PGA Swindle"
)

type Config struct {
	Players int
	Weeks   int
	BestN   int
}

func (c Config) withDefaults() Config {
	if c.Players <= 0 {
		c.Players = DefaultPlayers
	}
	if c.Weeks <= 0 {
		c.Weeks = DefaultWeeks
	}
	if c.BestN < 1 {
		c.BestN = DefaultBestN
	}
	return c
}

// Cell addresses one (player, week) slot of the grid.
type Cell struct {
	Player int
	Week   int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d-%d", c.Player, c.Week)
}

// State is the score side of a season. It is not safe for concurrent use.
type State struct {
	cfg     Config
	bestN   int
	cells   []Score
	names   map[int]string
	headers map[string]string
	dates   map[int]string
	colors  map[Cell]string
	title   string
}

func New(cfg Config) *State {
	cfg = cfg.withDefaults()
	s := &State{cfg: cfg}
	s.reset()
	return s
}

func (s *State) reset() {
	s.bestN = s.cfg.BestN
	s.cells = make([]Score, s.cfg.Players*s.cfg.Weeks)
	s.names = map[int]string{}
	s.headers = map[string]string{}
	s.dates = map[int]string{}
	s.colors = map[Cell]string{}
}

func (s *State) Players() int { return s.cfg.Players }
func (s *State) Weeks() int   { return s.cfg.Weeks }
func (s *State) BestN() int   { return s.bestN }

// SetBestN changes N for best-N totals, highlighting and the default
// best-scores label. Every derived view reads N on demand.
func (s *State) SetBestN(n int) error {
	if n < 1 {
		return ErrOutOfRange
	}
	s.bestN = n
	return nil
}

// ClearScores resets the score side: scores, dates, names, headers, N and
// cell colours. The title is kept.
func (s *State) ClearScores() {
	s.reset()
}

// ClearAll additionally resets the title.
func (s *State) ClearAll() {
	s.reset()
	s.title = ""
}

func (s *State) inGrid(player, week int) bool {
	return player >= 1 && player <= s.cfg.Players && week >= 1 && week <= s.cfg.Weeks
}

func (s *State) index(player, week int) int {
	return (player-1)*s.cfg.Weeks + (week - 1)
}
