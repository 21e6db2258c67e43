package season

// Data is the persisted form of a State, with plain maps only.
type Data struct {
	Scores  map[Cell]int
	Dates   map[int]string
	Names   map[int]string
	Headers map[string]string
	Colors  map[Cell]string
	Title   string
	BestN   int
}

func (s *State) Export() Data {
	d := Data{
		Scores:  map[Cell]int{},
		Dates:   make(map[int]string, len(s.dates)),
		Names:   s.CustomNames(),
		Headers: make(map[string]string, len(s.headers)),
		Colors:  make(map[Cell]string, len(s.colors)),
		Title:   s.title,
		BestN:   s.bestN,
	}
	for p := 1; p <= s.cfg.Players; p++ {
		for _, ws := range s.weekScores(p) {
			d.Scores[Cell{Player: p, Week: ws.week}] = ws.score
		}
	}
	for k, v := range s.dates {
		d.Dates[k] = v
	}
	for k, v := range s.headers {
		d.Headers[k] = v
	}
	for k, v := range s.colors {
		d.Colors[k] = v
	}
	return d
}

// Restore builds a State from persisted data. Entries that do not fit the
// configured grid are dropped; stored values are taken as already normalised.
func Restore(cfg Config, d Data) *State {
	s := New(cfg)
	if d.BestN >= 1 {
		s.bestN = d.BestN
	}
	for c, v := range d.Scores {
		_, _ = s.SetScore(c.Player, c.Week, v)
	}
	for w, v := range d.Dates {
		if w >= 1 && w <= s.cfg.Weeks && v != "" {
			s.dates[w] = v
		}
	}
	for p, v := range d.Names {
		if p >= 1 && p <= s.cfg.Players && v != "" {
			s.names[p] = v
		}
	}
	for slot, v := range d.Headers {
		if _, ok := s.defaultHeader(slot); ok && v != "" {
			s.headers[slot] = v
		}
	}
	for c, v := range d.Colors {
		if s.inGrid(c.Player, c.Week) && v != "" {
			s.colors[c] = v
		}
	}
	s.title = d.Title
	return s
}
