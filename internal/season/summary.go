package season

import "sort"

type PlayerSummary struct {
	Player      int    `json:"player"`
	Name        string `json:"name"`
	GamesPlayed int    `json:"games_played"`
	TotalPoints int    `json:"total_points"`
	BestNTotal  int    `json:"best_n_total"`
}

// Summary aggregates one player's row. Best-N sums the lowest N scores,
// lower being better in golf.
func (s *State) Summary(player int) PlayerSummary {
	out := PlayerSummary{Player: player, Name: s.Name(player)}
	scores := s.weekScores(player)
	if len(scores) == 0 {
		return out
	}
	vals := make([]int, 0, len(scores))
	for _, ws := range scores {
		out.TotalPoints += ws.score
		vals = append(vals, ws.score)
	}
	out.GamesPlayed = len(vals)
	sort.Ints(vals)
	for _, v := range vals[:min(s.bestN, len(vals))] {
		out.BestNTotal += v
	}
	return out
}

func (s *State) Summaries() []PlayerSummary {
	out := make([]PlayerSummary, 0, s.cfg.Players)
	for p := 1; p <= s.cfg.Players; p++ {
		out = append(out, s.Summary(p))
	}
	return out
}

func (s *State) GamesPlayed(player int) int {
	return len(s.weekScores(player))
}

type Tier string

const (
	TierTop       Tier = "top"
	TierRemainder Tier = "remainder"
)

type HighlightedScore struct {
	Week  int  `json:"week"`
	Score int  `json:"score"`
	Tier  Tier `json:"tier"`
}

// Highlight marks the N highest scores of a player as top tier. This runs the
// opposite way to Summary's best-N on purpose: it emphasises the big rounds.
// Equal scores at the cut keep week order. Results are in week order.
func (s *State) Highlight(player int) []HighlightedScore {
	scores := s.weekScores(player)
	if len(scores) == 0 {
		return nil
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]].score > scores[order[b]].score
	})
	top := make([]bool, len(scores))
	for _, i := range order[:min(s.bestN, len(order))] {
		top[i] = true
	}
	out := make([]HighlightedScore, len(scores))
	for i, ws := range scores {
		tier := TierRemainder
		if top[i] {
			tier = TierTop
		}
		out[i] = HighlightedScore{Week: ws.week, Score: ws.score, Tier: tier}
	}
	return out
}
