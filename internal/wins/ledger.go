package wins

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownPlayer = errors.New("unknown_player")

// Record is one player's wins. Total always equals the sum of Weekly.
type Record struct {
	Total  int            `json:"total"`
	Weekly map[string]int `json:"weekly"`
}

type Ledger struct {
	records map[string]*Record
	order   []string
}

func New() *Ledger {
	return &Ledger{records: map[string]*Record{}}
}

// Record adds one win for name in weekID. Repeat calls for the same week add
// further wins.
func (l *Ledger) Record(name, weekID string) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, ErrUnknownPlayer
	}
	id, err := NormalizeWeekID(weekID)
	if err != nil {
		return Record{}, err
	}
	r, ok := l.records[name]
	if !ok {
		r = &Record{Weekly: map[string]int{}}
		l.records[name] = r
		l.order = append(l.order, name)
	}
	r.Weekly[id]++
	r.Total = 0
	for _, n := range r.Weekly {
		r.Total += n
	}
	return copyRecord(r), nil
}

func (l *Ledger) Get(name string) (Record, bool) {
	r, ok := l.records[name]
	if !ok {
		return Record{Weekly: map[string]int{}}, false
	}
	return copyRecord(r), true
}

func copyRecord(r *Record) Record {
	out := Record{Total: r.Total, Weekly: make(map[string]int, len(r.Weekly))}
	for k, v := range r.Weekly {
		out.Weekly[k] = v
	}
	return out
}

func (l *Ledger) Clear() {
	l.records = map[string]*Record{}
	l.order = nil
}

func (l *Ledger) Len() int { return len(l.records) }

type Standing struct {
	Name        string  `json:"name"`
	Total       int     `json:"total"`
	ThisWeek    int     `json:"this_week"`
	WinRate     float64 `json:"win_rate"`
	WinRateText string  `json:"win_rate_text"`
	LastWin     string  `json:"last_win,omitempty"`
}

// Snapshot ranks everyone with a win plus any extra names (named players
// without wins show as zero). Order is total desc, this-week desc, then the
// order players first appeared. Win rate divides by the number of distinct
// weeks the player has entries for, not by weeks elapsed in the season.
func (l *Ledger) Snapshot(currentWeek string, extraNames []string) []Standing {
	currentWeek = lookupWeek(currentWeek)
	names := make([]string, 0, len(l.order)+len(extraNames))
	seen := map[string]bool{}
	for _, n := range append(append([]string{}, l.order...), extraNames...) {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	out := make([]Standing, 0, len(names))
	for _, n := range names {
		st := Standing{Name: n}
		if r, ok := l.records[n]; ok {
			st.Total = r.Total
			st.ThisWeek = r.Weekly[currentWeek]
			st.WinRate = float64(r.Total) / float64(max(1, len(r.Weekly))) * 100
			st.LastWin = lastWin(r.Weekly)
		}
		st.WinRateText = fmt.Sprintf("%.1f%%", st.WinRate)
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].ThisWeek > out[j].ThisWeek
	})
	return out
}

// lookupWeek maps a caller-supplied week id onto the stored form. Ids that
// do not parse are left alone so they simply match nothing.
func lookupWeek(id string) string {
	if norm, err := NormalizeWeekID(id); err == nil {
		return norm
	}
	return id
}

func lastWin(weekly map[string]int) string {
	last := ""
	for id, n := range weekly {
		if n > 0 && id > last {
			last = id
		}
	}
	return last
}

type Stats struct {
	WeekWinner    string `json:"week_winner,omitempty"`
	OverallLeader string `json:"overall_leader,omitempty"`
	TotalGames    int    `json:"total_games"`
}

// Stats reports the player with most wins this week, the overall leader and
// the total number of recorded wins. Ties keep the earlier player.
func (l *Ledger) Stats(currentWeek string) Stats {
	currentWeek = lookupWeek(currentWeek)
	var st Stats
	bestWeek, bestTotal := 0, 0
	for _, n := range l.order {
		r := l.records[n]
		st.TotalGames += r.Total
		if w := r.Weekly[currentWeek]; w > bestWeek {
			bestWeek = w
			st.WeekWinner = n
		}
		if r.Total > bestTotal {
			bestTotal = r.Total
			st.OverallLeader = n
		}
	}
	return st
}

type HistoryFilter struct {
	Player string
	Week   string
}

type HistoryEntry struct {
	Player string `json:"player"`
	Week   string `json:"week"`
	Label  string `json:"label"`
}

// History expands every win into its own entry, newest week first.
func (l *Ledger) History(f HistoryFilter) []HistoryEntry {
	if f.Week != "" {
		f.Week = lookupWeek(f.Week)
	}
	var out []HistoryEntry
	for _, n := range l.order {
		if f.Player != "" && f.Player != n {
			continue
		}
		r := l.records[n]
		weeks := make([]string, 0, len(r.Weekly))
		for id := range r.Weekly {
			weeks = append(weeks, id)
		}
		sort.Strings(weeks)
		for _, id := range weeks {
			if f.Week != "" && f.Week != id {
				continue
			}
			for i := 1; i <= r.Weekly[id]; i++ {
				out = append(out, HistoryEntry{Player: n, Week: id, Label: fmt.Sprintf("%s - Win %d", id, i)})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Week > out[j].Week })
	return out
}

// Weeks lists week ids that have any recorded win, oldest first.
func (l *Ledger) Weeks() []string {
	set := map[string]bool{}
	for _, r := range l.records {
		for id := range r.Weekly {
			set[id] = true
		}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
