package tracker

import (
	"pga-swindle/internal/ledger"
	"pga-swindle/internal/season"
	"pga-swindle/internal/wins"
)

// PlayerRow is one line of the score sheet with every derived value.
type PlayerRow struct {
	season.PlayerSummary
	Scores []season.HighlightedScore `json:"scores"`
	Money  ledger.Money              `json:"money"`
}

type RankingResponse struct {
	Metric    season.Metric    `json:"metric"`
	Direction season.Direction `json:"direction"`
	Rows      []PlayerRow      `json:"rows"`
}

type LeaderboardResponse struct {
	CurrentWeek string          `json:"current_week"`
	Stats       wins.Stats      `json:"stats"`
	Standings   []wins.Standing `json:"standings"`
}

type WinResponse struct {
	Name   string      `json:"name"`
	Week   string      `json:"week"`
	Score  *int        `json:"score,omitempty"`
	Record wins.Record `json:"record"`
}
