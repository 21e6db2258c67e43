package prizes

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWeekTotalExcludesPot(t *testing.T) {
	b := NewBook("£")
	for _, in := range []struct {
		slot Slot
		text string
	}{
		{SlotFirst, "£10"},
		{SlotSecond, "5"},
		{SlotPot, "£100"},
	} {
		if _, err := b.Set(3, in.slot, in.text); err != nil {
			t.Fatalf("Set(%s, %q): %v", in.slot, in.text, err)
		}
	}
	if got := b.Format(b.WeekTotal(3)); got != "£15.00" {
		t.Fatalf("week total = %s, want £15.00", got)
	}
}

func TestSetEchoesFormattedValue(t *testing.T) {
	b := NewBook("£")
	got, err := b.Set(1, SlotThird, " £1,250.5 ")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got != "£1250.50" {
		t.Fatalf("display = %q, want £1250.50", got)
	}
}

func TestSetRejectsAndKeepsPrevious(t *testing.T) {
	b := NewBook("£")
	_, _ = b.Set(7, SlotFirst, "20")
	for _, text := range []string{"-5", "abc", "1.2.3", "£."} {
		got, err := b.Set(7, SlotFirst, text)
		if !errors.Is(err, ErrRejected) {
			t.Fatalf("Set(%q) err = %v, want rejected", text, err)
		}
		if got != "£20.00" {
			t.Fatalf("Set(%q) display = %q, want previous £20.00", text, got)
		}
	}
	p, _ := b.Pot(7)
	if !p.First.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("first = %s", p.First)
	}
}

func TestSetEmptyResetsSlot(t *testing.T) {
	b := NewBook("£")
	_, _ = b.Set(2, SlotFifth, "3")
	got, err := b.Set(2, SlotFifth, "  ")
	if err != nil || got != "" {
		t.Fatalf("Set empty = %q, %v", got, err)
	}
	if !b.WeekTotal(2).IsZero() {
		t.Fatalf("total = %s", b.WeekTotal(2))
	}
}

func TestAllFiftyWeeksExist(t *testing.T) {
	b := NewBook("")
	rows := b.Weeks()
	if len(rows) != PotWeeks {
		t.Fatalf("weeks = %d", len(rows))
	}
	if rows[49].Week != 50 || rows[49].Total != "£0.00" {
		t.Fatalf("last row = %+v", rows[49])
	}
	if _, err := b.Set(50, SlotFirst, "1"); err != nil {
		t.Fatalf("week 50: %v", err)
	}
	if _, err := b.Set(51, SlotFirst, "1"); !errors.Is(err, ErrUnknownWeek) {
		t.Fatalf("week 51 err = %v", err)
	}
	if _, err := b.Set(1, Slot("sixth"), "1"); !errors.Is(err, ErrUnknownSlot) {
		t.Fatalf("slot err = %v", err)
	}
}

func TestValuesAndWinners(t *testing.T) {
	b := NewBook("$")
	if got, err := b.SetValue("most-birdies", "$40"); err != nil || got != "$40.00" {
		t.Fatalf("SetValue = %q, %v", got, err)
	}
	if got, err := b.SetValue("most-birdies", "-1"); !errors.Is(err, ErrRejected) || got != "$40.00" {
		t.Fatalf("rejected SetValue = %q, %v", got, err)
	}
	_ = b.SetWinner("most-birdies", "  Jack ")
	_ = b.SetWinner("longest-drive", "Arnie")

	awards := b.Awards()
	if len(awards) != 2 || awards[0].Key != "longest-drive" || awards[1].Winner != "Jack" {
		t.Fatalf("awards = %+v", awards)
	}

	_, _ = b.SetValue("most-birdies", "")
	if _, ok := b.Value("most-birdies"); ok {
		t.Fatal("empty value should remove the category")
	}
	_, _ = b.Set(4, SlotFirst, "9")
	b.ClearAwards()
	if b.Winner("longest-drive") != "" {
		t.Fatal("ClearAwards kept winners")
	}
	if b.WeekTotal(4).IsZero() {
		t.Fatal("ClearAwards must keep weekly pots")
	}
	b.ClearAll()
	if !b.WeekTotal(4).IsZero() {
		t.Fatal("ClearAll kept weekly pots")
	}
}
