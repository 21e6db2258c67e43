package season

import (
	"errors"
	"testing"
)

func TestSetScoreBounds(t *testing.T) {
	s := New(Config{})
	if ok, err := s.SetScore(3, 7, 42); err != nil || !ok {
		t.Fatalf("SetScore(3,7,42) = %v, %v", ok, err)
	}
	if v, ok := s.Score(3, 7); !ok || v != 42 {
		t.Fatalf("Score(3,7) = %d,%v want 42,true", v, ok)
	}
	if _, err := s.SetScore(3, 7, 201); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if v, _ := s.Score(3, 7); v != 42 {
		t.Fatalf("rejected score changed the cell to %d", v)
	}
}

func TestOutsideGridIsNoop(t *testing.T) {
	s := New(Config{Players: 4, Weeks: 3})
	if ok, err := s.SetScore(5, 1, 10); ok || err != nil {
		t.Fatalf("SetScore outside grid = %v, %v", ok, err)
	}
	if ok, _ := s.SetScore(1, 0, 10); ok {
		t.Fatal("week 0 should be ignored")
	}
	if s.ClearScore(0, 1) {
		t.Fatal("ClearScore outside grid should report false")
	}
	if _, ok := s.Score(9, 9); ok {
		t.Fatal("Score outside grid should be absent")
	}
}

func TestApplyScoreText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		present bool
		wantErr error
	}{
		{name: "number", text: " 72 ", want: 72, present: true},
		{name: "zero", text: "0", want: 0, present: true},
		{name: "blank clears", text: "  ", present: false},
		{name: "letters", text: "7x", want: 50, present: true, wantErr: ErrParseRejected},
		{name: "negative", text: "-1", want: 50, present: true, wantErr: ErrParseRejected},
		{name: "too big", text: "250", want: 50, present: true, wantErr: ErrParseRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Config{})
			_, _ = s.SetScore(1, 1, 50)
			err := s.ApplyScoreText(1, 1, tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			v, ok := s.Score(1, 1)
			if ok != tt.present || (ok && v != tt.want) {
				t.Fatalf("Score = %d,%v want %d,%v", v, ok, tt.want, tt.present)
			}
		})
	}
}

func TestRemoveWeek(t *testing.T) {
	s := New(Config{Players: 3, Weeks: 4})
	for p := 1; p <= 3; p++ {
		_, _ = s.SetScore(p, 2, 30+p)
		_, _ = s.SetScore(p, 3, 40+p)
	}
	s.SetDate(2, "2025-04-12")
	if !s.RemoveWeek(2) {
		t.Fatal("RemoveWeek(2) = false")
	}
	for p := 1; p <= 3; p++ {
		if _, ok := s.Score(p, 2); ok {
			t.Fatalf("player %d still has a week 2 score", p)
		}
		if _, ok := s.Score(p, 3); !ok {
			t.Fatalf("player %d lost week 3", p)
		}
	}
	if s.Date(2) != "" {
		t.Fatalf("date kept: %q", s.Date(2))
	}
}

func TestTopScorer(t *testing.T) {
	s := New(Config{Players: 5, Weeks: 3})
	if _, ok := s.TopScorer(1); ok {
		t.Fatal("empty week should have no top scorer")
	}
	_, _ = s.SetScore(4, 1, 36)
	_, _ = s.SetScore(2, 1, 36)
	_, _ = s.SetScore(5, 1, 20)
	s.SetName(2, "Rory")

	top, ok := s.TopScorer(1)
	if !ok {
		t.Fatal("expected a top scorer")
	}
	if top.Player != 2 || top.Name != "Rory" || top.Score != 36 {
		t.Fatalf("top = %+v, want player 2 Rory 36", top)
	}

	_, _ = s.SetScore(3, 2, 0)
	top, ok = s.TopScorer(2)
	if !ok || top.Player != 3 || top.Score != 0 {
		t.Fatalf("zero score should still win an otherwise empty week: %+v %v", top, ok)
	}
}
