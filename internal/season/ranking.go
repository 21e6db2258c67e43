package season

import (
	"sort"

	"github.com/shopspring/decimal"
)

type Metric string

const (
	MetricBestN       Metric = "best_n"
	MetricTotalPoints Metric = "total_points"
	MetricMoneyWon    Metric = "money_won"
)

type Direction string

const (
	Descending Direction = "desc"
	Ascending  Direction = "asc"
)

func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// MoneySource reports the total money a player has won.
type MoneySource interface {
	TotalWon(player int) decimal.Decimal
}

type RankBy struct {
	Metric    Metric
	Direction Direction
}

type rankRow struct {
	player    int
	qualifies bool
	points    int
	money     decimal.Decimal
}

// Rank orders player numbers by the chosen metric. Players without data for
// the metric go last in player order; ties break on player number. Best-N
// always ranks highest first. Scores are never modified.
func (s *State) Rank(by RankBy, money MoneySource) []int {
	dir := by.Direction
	if by.Metric == MetricBestN || dir == "" {
		dir = Descending
	}
	rows := make([]rankRow, 0, s.cfg.Players)
	for p := 1; p <= s.cfg.Players; p++ {
		row := rankRow{player: p}
		switch by.Metric {
		case MetricMoneyWon:
			if money != nil {
				row.money = money.TotalWon(p)
			}
			row.qualifies = row.money.IsPositive()
		case MetricTotalPoints:
			sum := s.Summary(p)
			row.points = sum.TotalPoints
			row.qualifies = sum.GamesPlayed > 0
		default:
			sum := s.Summary(p)
			row.points = sum.BestNTotal
			row.qualifies = sum.GamesPlayed > 0
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.qualifies != b.qualifies {
			return a.qualifies
		}
		if !a.qualifies {
			return a.player < b.player
		}
		c := compareRow(a, b, by.Metric)
		if c != 0 {
			if dir == Ascending {
				return c < 0
			}
			return c > 0
		}
		return a.player < b.player
	})
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.player
	}
	return out
}

func compareRow(a, b rankRow, m Metric) int {
	if m == MetricMoneyWon {
		return a.money.Cmp(b.money)
	}
	switch {
	case a.points < b.points:
		return -1
	case a.points > b.points:
		return 1
	}
	return 0
}

// Ranker remembers the last direction used for each toggleable ranking.
type Ranker struct {
	dirs map[Metric]Direction
}

func NewRanker() *Ranker {
	return &Ranker{dirs: map[Metric]Direction{
		MetricTotalPoints: Descending,
		MetricMoneyWon:    Descending,
	}}
}

func (r *Ranker) Direction(m Metric) Direction {
	if d, ok := r.dirs[m]; ok {
		return d
	}
	return Descending
}

// Toggle flips the remembered direction for m and ranks with the new one, so
// the first call on a fresh Ranker sorts ascending. Best-N does not toggle.
func (r *Ranker) Toggle(s *State, m Metric, money MoneySource) ([]int, Direction) {
	if m == MetricBestN {
		return s.Rank(RankBy{Metric: m}, money), Descending
	}
	dir := r.Direction(m).Flip()
	r.dirs[m] = dir
	return s.Rank(RankBy{Metric: m, Direction: dir}, money), dir
}
