package prizes

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func seeded() *Book {
	b := NewBook("£")
	_, _ = b.SetValue("champion", "200")
	_ = b.SetWinner("champion", "Seve")
	_, _ = b.Set(2, SlotPot, "80")
	_, _ = b.Set(2, SlotFirst, "30")
	return b
}

func TestDocumentRoundTrip(t *testing.T) {
	b := seeded()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	raw, err := MarshalDocument(b.ExportDocument("01J0000000000000000000000", now))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc, err := UnmarshalDocument(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Version != ExportVersion || !doc.ExportedAt.Equal(now) {
		t.Fatalf("header = %s %v", doc.Version, doc.ExportedAt)
	}

	other := NewBook("£")
	if err := other.Import(doc); err != nil {
		t.Fatalf("import: %v", err)
	}
	if other.Winner("champion") != "Seve" {
		t.Fatalf("winner = %q", other.Winner("champion"))
	}
	if v, _ := other.Value("champion"); !v.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("value = %s", v)
	}
	if got := other.Format(other.WeekTotal(2)); got != "£30.00" {
		t.Fatalf("week 2 total = %s", got)
	}
}

func TestImportOnlyReplacesPresentSections(t *testing.T) {
	b := seeded()
	doc, err := UnmarshalDocument([]byte(`{"prize_winners": {"rookie": "Tom"}, "version": "1.1"}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := b.Import(doc); err != nil {
		t.Fatalf("import: %v", err)
	}
	if b.Winner("champion") != "" || b.Winner("rookie") != "Tom" {
		t.Fatalf("winners not replaced: %+v", b.Awards())
	}
	if _, ok := b.Value("champion"); !ok {
		t.Fatal("values section was absent and must be kept")
	}
	if b.WeekTotal(2).IsZero() {
		t.Fatal("pots section was absent and must be kept")
	}
}

func TestImportRejectsMissingSections(t *testing.T) {
	b := seeded()
	doc, _ := UnmarshalDocument([]byte(`{"version": "1.1"}`))
	if err := b.Import(doc); !errors.Is(err, ErrMalformedImport) {
		t.Fatalf("err = %v", err)
	}
	if _, err := UnmarshalDocument([]byte(`not json`)); !errors.Is(err, ErrMalformedImport) {
		t.Fatalf("err = %v", err)
	}
}

func TestImportValidatesBeforeMutating(t *testing.T) {
	b := seeded()
	doc, _ := UnmarshalDocument([]byte(`{
		"prize_winners": {"rookie": "Tom"},
		"prize_pots": {"2": {"first": "10"}, "99": {"first": "5"}}
	}`))
	if err := b.Import(doc); !errors.Is(err, ErrMalformedImport) {
		t.Fatalf("err = %v", err)
	}
	if b.Winner("champion") != "Seve" || b.Winner("rookie") != "" {
		t.Fatal("failed import mutated winners")
	}

	doc, _ = UnmarshalDocument([]byte(`{"prize_values": {"champion": "-4"}}`))
	if err := b.Import(doc); !errors.Is(err, ErrMalformedImport) {
		t.Fatalf("negative value err = %v", err)
	}
}

func TestExportRestore(t *testing.T) {
	b := seeded()
	d := b.Export()
	if len(d.Pots) != 1 {
		t.Fatalf("pots = %d, want only the non-zero week", len(d.Pots))
	}
	other := NewBook("£")
	other.Restore(d)
	if got := other.Format(other.WeekTotal(2)); got != "£30.00" {
		t.Fatalf("restored total = %s", got)
	}
	p, _ := other.Pot(2)
	if !p.Pot.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("restored pot = %s", p.Pot)
	}
}

func TestImportBrowserLayout(t *testing.T) {
	raw := []byte(`{
  "prizeValues": {"champion": 150},
  "prizeWinners": {"champion": "Seve"},
  "weeklyPrizeData": {"3": {"prizePot": 100, "first": 10, "second": 5, "third": 0, "fourth": 0, "fifth": 0}},
  "exportDate": "2025-09-01T12:00:00.000Z",
  "exportVersion": "1.1"
}`)
	doc, err := UnmarshalDocument(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Version != "1.1" || doc.ExportedAt.IsZero() {
		t.Fatalf("header = %q %v", doc.Version, doc.ExportedAt)
	}
	b := NewBook("£")
	if err := b.Import(doc); err != nil {
		t.Fatalf("import: %v", err)
	}
	p, _ := b.Pot(3)
	if !p.Pot.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("pot = %s, want 100", p.Pot)
	}
	if got := b.Format(b.WeekTotal(3)); got != "£15.00" {
		t.Fatalf("week total = %s", got)
	}
	if v, ok := b.Value("champion"); !ok || !v.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("value = %s,%v", v, ok)
	}
	if b.Winner("champion") != "Seve" {
		t.Fatalf("winner = %q", b.Winner("champion"))
	}
}
