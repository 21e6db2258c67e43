package prizes

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Book holds the weekly pots plus the award values and winners.
type Book struct {
	symbol  string
	pots    [PotWeeks + 1]Pot
	values  map[string]decimal.Decimal
	winners map[string]string
}

func NewBook(currencySymbol string) *Book {
	if currencySymbol == "" {
		currencySymbol = "£"
	}
	return &Book{
		symbol:  currencySymbol,
		values:  map[string]decimal.Decimal{},
		winners: map[string]string{},
	}
}

func (b *Book) Format(d decimal.Decimal) string {
	return Format(b.symbol, d)
}

func (b *Book) Pot(week int) (Pot, error) {
	if week < 1 || week > PotWeeks {
		return Pot{}, ErrUnknownWeek
	}
	return b.pots[week], nil
}

func (b *Book) WeekTotal(week int) decimal.Decimal {
	if week < 1 || week > PotWeeks {
		return decimal.Zero
	}
	return b.pots[week].WeekTotal()
}

// Set parses text into one slot of a week. The returned string is what the
// input should show afterwards: the formatted new value, an empty string for
// a cleared slot, or the previous value when the text was rejected.
func (b *Book) Set(week int, slot Slot, text string) (string, error) {
	if week < 1 || week > PotWeeks {
		return "", ErrUnknownWeek
	}
	f := b.pots[week].field(slot)
	if f == nil {
		return "", ErrUnknownSlot
	}
	amount, empty, err := ParsePrize(text)
	if err != nil {
		return b.display(*f), err
	}
	*f = amount
	if empty {
		return "", nil
	}
	return b.Format(amount), nil
}

func (b *Book) display(d decimal.Decimal) string {
	if d.IsPositive() {
		return b.Format(d)
	}
	return ""
}

type WeekRow struct {
	Week  int    `json:"week"`
	Pot   Pot    `json:"amounts"`
	Total string `json:"total"`
}

// Weeks lists all fifty weeks with their formatted totals.
func (b *Book) Weeks() []WeekRow {
	out := make([]WeekRow, 0, PotWeeks)
	for w := 1; w <= PotWeeks; w++ {
		out = append(out, WeekRow{Week: w, Pot: b.pots[w], Total: b.Format(b.pots[w].WeekTotal())})
	}
	return out
}

// SetValue stores an award amount for a category; empty text removes it.
func (b *Book) SetValue(key, text string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrUnknownSlot
	}
	amount, empty, err := ParsePrize(text)
	if err != nil {
		prev, ok := b.values[key]
		if !ok {
			return "", err
		}
		return b.Format(prev), err
	}
	if empty {
		delete(b.values, key)
		return "", nil
	}
	b.values[key] = amount
	return b.Format(amount), nil
}

func (b *Book) Value(key string) (decimal.Decimal, bool) {
	v, ok := b.values[key]
	return v, ok
}

func (b *Book) SetWinner(key, name string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrUnknownSlot
	}
	name = strings.TrimSpace(name)
	if name == "" {
		delete(b.winners, key)
		return nil
	}
	b.winners[key] = name
	return nil
}

func (b *Book) Winner(key string) string {
	return b.winners[key]
}

type Award struct {
	Key    string `json:"key"`
	Value  string `json:"value,omitempty"`
	Winner string `json:"winner,omitempty"`
}

// Awards joins values and winners by category key, sorted by key.
func (b *Book) Awards() []Award {
	keys := map[string]struct{}{}
	for k := range b.values {
		keys[k] = struct{}{}
	}
	for k := range b.winners {
		keys[k] = struct{}{}
	}
	out := make([]Award, 0, len(keys))
	for k := range keys {
		a := Award{Key: k, Winner: b.winners[k]}
		if v, ok := b.values[k]; ok {
			a.Value = b.Format(v)
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ClearAwards resets values and winners. Weekly pots are kept.
func (b *Book) ClearAwards() {
	b.values = map[string]decimal.Decimal{}
	b.winners = map[string]string{}
}

func (b *Book) ClearAll() {
	b.ClearAwards()
	b.pots = [PotWeeks + 1]Pot{}
}
