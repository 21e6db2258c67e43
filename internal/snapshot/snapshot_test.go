package snapshot

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pga-swindle/internal/ledger"
	"pga-swindle/internal/prizes"
	"pga-swindle/internal/season"

	"github.com/shopspring/decimal"
)

func TestRoundTripRestoresScore(t *testing.T) {
	s := season.New(season.Config{})
	if _, err := s.SetScore(3, 7, 42); err != nil {
		t.Fatalf("set score: %v", err)
	}
	blob, err := Encode(Capture(s, ledger.New(50), prizes.NewBook("")), time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	st, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	restored := season.Restore(season.Config{}, st.Season)
	if v, ok := restored.Score(3, 7); !ok || v != 42 {
		t.Fatalf("score(3,7) = %d,%v want 42", v, ok)
	}
	if _, ok := restored.Score(7, 3); ok {
		t.Fatalf("unexpected score at (7,3)")
	}
}

func TestRoundTripCarriesEveryComponent(t *testing.T) {
	s := season.New(season.Config{})
	_, _ = s.SetScore(1, 1, 30)
	s.SetName(2, "Rory")
	s.SetDate(4, "12/04")
	if err := s.SetHeader(season.HeaderTotalPoints, "Points"); err != nil {
		t.Fatalf("set header: %v", err)
	}
	s.SetCellColor(1, 1, "#ffcc00")
	s.SetTitle("Club Swindle")
	if err := s.SetBestN(8); err != nil {
		t.Fatalf("set best n: %v", err)
	}

	l := ledger.New(50)
	if _, err := l.Record(2, ledger.Recurring, decimal.RequireFromString("12.50")); err != nil {
		t.Fatalf("record: %v", err)
	}

	b := prizes.NewBook("£")
	if _, err := b.Set(3, prizes.SlotFirst, "20"); err != nil {
		t.Fatalf("set pot: %v", err)
	}
	if _, err := b.SetValue("best-round", "15"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := b.SetWinner("best-round", "Rory"); err != nil {
		t.Fatalf("set winner: %v", err)
	}

	blob, err := Encode(Capture(s, l, b), time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	st, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	rs := season.Restore(season.Config{}, st.Season)
	if rs.Name(2) != "Rory" || rs.Date(4) != "12/04" || rs.Title() != "Club Swindle" || rs.BestN() != 8 {
		t.Fatalf("season fields lost: name=%q date=%q title=%q n=%d", rs.Name(2), rs.Date(4), rs.Title(), rs.BestN())
	}
	if h, _ := rs.Header(season.HeaderTotalPoints); h != "Points" {
		t.Fatalf("header = %q", h)
	}
	if rs.CellColor(1, 1) != "#ffcc00" {
		t.Fatalf("cell color = %q", rs.CellColor(1, 1))
	}

	rl := ledger.New(50)
	rl.Restore(st.Money)
	if !rl.TotalWon(2).Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("total won = %s", rl.TotalWon(2))
	}

	rb := prizes.NewBook("£")
	rb.Restore(st.Prizes)
	if !rb.WeekTotal(3).Equal(decimal.NewFromInt(20)) {
		t.Fatalf("week total = %s", rb.WeekTotal(3))
	}
	if rb.Winner("best-round") != "Rory" {
		t.Fatalf("winner = %q", rb.Winner("best-round"))
	}
}

func TestEncodeUsesSnakeCaseKeys(t *testing.T) {
	s := season.New(season.Config{})
	_, _ = s.SetScore(3, 7, 42)
	blob, err := Encode(Capture(s, ledger.New(50), prizes.NewBook("")), time.Now())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"scores", "player_names", "custom_headers", "money_won", "best_n", "prize_pots", "cell_colors", "version"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing key %q in %s", key, blob)
		}
	}
	for _, key := range []string{"weekly_wins", "current_week"} {
		if _, ok := raw[key]; ok {
			t.Fatalf("key %q must not be persisted", key)
		}
	}
	var scores map[string]int
	_ = json.Unmarshal(raw["scores"], &scores)
	if scores["3-7"] != 42 {
		t.Fatalf("scores = %v", scores)
	}
}

func TestDecodeSkipsBadKeys(t *testing.T) {
	blob := []byte(`{"scores":{"3-7":42,"x-1":5,"99-1":10,"4":1},"best_n":0}`)
	st, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(st.Season.Scores) != 2 {
		t.Fatalf("expected the two well-formed keys, got %v", st.Season.Scores)
	}
	if st.Season.BestN != season.DefaultBestN {
		t.Fatalf("best n = %d, want default", st.Season.BestN)
	}
	s := season.Restore(season.Config{}, st.Season)
	if _, ok := s.Score(99, 1); ok {
		t.Fatalf("out of grid score restored")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not json")); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}
