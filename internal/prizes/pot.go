package prizes

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const PotWeeks = 50

var (
	ErrRejected        = errors.New("prize_rejected")
	ErrUnknownSlot     = errors.New("unknown_slot")
	ErrUnknownWeek     = errors.New("unknown_week")
	ErrMalformedImport = errors.New("malformed_import")
)

type Slot string

const (
	SlotPot    Slot = "pot"
	SlotFirst  Slot = "first"
	SlotSecond Slot = "second"
	SlotThird  Slot = "third"
	SlotFourth Slot = "fourth"
	SlotFifth  Slot = "fifth"
)

var Slots = []Slot{SlotPot, SlotFirst, SlotSecond, SlotThird, SlotFourth, SlotFifth}

// Pot is one week's prize record. The pot amount itself is not part of the
// week total.
type Pot struct {
	Pot    decimal.Decimal `json:"pot"`
	First  decimal.Decimal `json:"first"`
	Second decimal.Decimal `json:"second"`
	Third  decimal.Decimal `json:"third"`
	Fourth decimal.Decimal `json:"fourth"`
	Fifth  decimal.Decimal `json:"fifth"`
}

func (p Pot) WeekTotal() decimal.Decimal {
	return decimal.Sum(p.First, p.Second, p.Third, p.Fourth, p.Fifth)
}

func (p Pot) IsZero() bool {
	return p.Pot.IsZero() && p.WeekTotal().IsZero()
}

func (p *Pot) field(s Slot) *decimal.Decimal {
	switch s {
	case SlotPot:
		return &p.Pot
	case SlotFirst:
		return &p.First
	case SlotSecond:
		return &p.Second
	case SlotThird:
		return &p.Third
	case SlotFourth:
		return &p.Fourth
	case SlotFifth:
		return &p.Fifth
	}
	return nil
}

func (p Pot) Get(s Slot) decimal.Decimal {
	if f := p.field(s); f != nil {
		return *f
	}
	return decimal.Zero
}

func (p Pot) valid() bool {
	for _, s := range Slots {
		if p.Get(s).IsNegative() {
			return false
		}
	}
	return true
}

// ParsePrize reads a non-negative prize amount. Empty text reads as zero with
// empty=true. Currency symbols and separators are dropped; a minus sign, a
// second decimal point or text with no digits is rejected.
func ParsePrize(text string) (amount decimal.Decimal, empty bool, err error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return decimal.Zero, true, nil
	}
	if strings.Contains(raw, "-") {
		return decimal.Zero, false, ErrRejected
	}
	var b strings.Builder
	dots := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			dots++
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if dots > 1 || strings.Trim(clean, ".") == "" {
		return decimal.Zero, false, ErrRejected
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false, ErrRejected
	}
	return d, false, nil
}

// Format renders an amount the way the tracker displays it, e.g. £12.50.
func Format(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}
