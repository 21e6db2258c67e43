package ledger

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRecordClampsAtZero(t *testing.T) {
	l := New(50)
	if _, err := l.Record(5, Recurring, dec("20")); err != nil {
		t.Fatalf("record: %v", err)
	}
	e, err := l.Record(5, Recurring, dec("-30"))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !e.Recurring.IsZero() {
		t.Fatalf("recurring = %s, want 0", e.Recurring)
	}
}

func TestRecordZeroResetsCategory(t *testing.T) {
	l := New(50)
	_, _ = l.Record(2, OneOff, dec("45.50"))
	_, _ = l.Record(2, Recurring, dec("10"))
	e, _ := l.Record(2, OneOff, decimal.Zero)
	if !e.OneOff.IsZero() {
		t.Fatalf("one-off = %s, want 0", e.OneOff)
	}
	if !e.Recurring.Equal(dec("10")) {
		t.Fatalf("recurring = %s, want 10", e.Recurring)
	}
}

func TestRecordAccumulates(t *testing.T) {
	l := New(50)
	_, _ = l.Record(1, Recurring, dec("20"))
	_, _ = l.Record(1, Recurring, dec("12.25"))
	_, _ = l.Record(1, Recurring, dec("-2.25"))
	_, _ = l.Record(1, OneOff, dec("100"))
	if got := l.TotalWon(1); !got.Equal(dec("130")) {
		t.Fatalf("TotalWon = %s, want 130", got)
	}
}

func TestRecordRejectsBadInput(t *testing.T) {
	l := New(3)
	if _, err := l.Record(4, Recurring, dec("1")); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("err = %v", err)
	}
	if _, err := l.Record(1, Category("weekly"), dec("1")); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v", err)
	}
	_, _ = l.Record(1, Recurring, dec("8"))
	if _, err := l.RecordText(1, Recurring, "ten pounds"); !errors.Is(err, ErrParseRejected) {
		t.Fatalf("err = %v", err)
	}
	if got := l.Entry(1).Recurring; !got.Equal(dec("8")) {
		t.Fatalf("rejected text changed value to %s", got)
	}
}

func TestNeverNegativeUnderRandomEntries(t *testing.T) {
	l := New(4)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		p := rnd.Intn(4) + 1
		cat := Recurring
		if rnd.Intn(2) == 0 {
			cat = OneOff
		}
		amt := decimal.NewFromInt(int64(rnd.Intn(200) - 120))
		if _, err := l.Record(p, cat, amt); err != nil {
			t.Fatalf("record: %v", err)
		}
		for q := 1; q <= 4; q++ {
			e := l.Entry(q)
			if e.Recurring.IsNegative() || e.OneOff.IsNegative() {
				t.Fatalf("negative entry after step %d: %+v", i, e)
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "£20", want: "20"},
		{in: "-10", want: "-10"},
		{in: " £1,250.75 ", want: "1250.75"},
		{in: "€-3.5", want: "-3.5"},
		{in: "0", want: "0"},
		{in: "", wantErr: true},
		{in: "£", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "1e3", wantErr: true},
		{in: "£2E2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrParseRejected) {
					t.Fatalf("err = %v, want parse_rejected", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tt.in, err)
			}
			if !got.Equal(dec(tt.want)) {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoneyTriple(t *testing.T) {
	l := New(10)
	_, _ = l.Record(3, Recurring, dec("15"))
	_, _ = l.Record(3, OneOff, dec("5"))
	m := l.Money(3, 4, decimal.NewFromInt(5))
	if !m.Invested.Equal(dec("20")) || !m.TotalWon.Equal(dec("20")) {
		t.Fatalf("money = %+v", m)
	}
	if got := Invested(0, decimal.NewFromInt(5)); !got.IsZero() {
		t.Fatalf("Invested(0) = %s", got)
	}
}

func TestRestoreFloorsNegative(t *testing.T) {
	l := New(5)
	l.Restore(map[int]Entry{
		1: {Recurring: dec("-5"), OneOff: dec("3")},
		2: {Recurring: dec("-1")},
		9: {Recurring: dec("4")},
	})
	if got := l.Entries(); len(got) != 1 || got[1].Total().IsZero() {
		t.Fatalf("entries = %v, want only player 1", got)
	}
	if !l.Entry(1).Recurring.IsZero() {
		t.Fatalf("recurring = %s", l.Entry(1).Recurring)
	}
	l.Clear()
	if len(l.Entries()) != 0 {
		t.Fatal("Clear left entries")
	}
}
