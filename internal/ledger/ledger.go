package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrParseRejected   = errors.New("parse_rejected")
	ErrUnknownCategory = errors.New("unknown_category")
	ErrUnknownPlayer   = errors.New("unknown_player")
)

type Category string

const (
	Recurring Category = "recurring"
	OneOff    Category = "one_off"
)

func ParseCategory(v string) (Category, error) {
	switch Category(v) {
	case Recurring, OneOff:
		return Category(v), nil
	}
	return "", ErrUnknownCategory
}

// Entry holds a player's winnings. Neither field ever drops below zero.
type Entry struct {
	Recurring decimal.Decimal `json:"recurring"`
	OneOff    decimal.Decimal `json:"one_off"`
}

func (e Entry) Total() decimal.Decimal {
	return e.Recurring.Add(e.OneOff)
}

type Ledger struct {
	players int
	entries map[int]Entry
}

func New(players int) *Ledger {
	return &Ledger{players: players, entries: map[int]Entry{}}
}

func (l *Ledger) Entry(player int) Entry {
	return l.entries[player]
}

// Record applies a signed amount to one category. A non-zero amount is added
// and the result floored at zero; exactly zero resets the category.
func (l *Ledger) Record(player int, cat Category, amount decimal.Decimal) (Entry, error) {
	if player < 1 || player > l.players {
		return Entry{}, ErrUnknownPlayer
	}
	if cat != Recurring && cat != OneOff {
		return l.entries[player], ErrUnknownCategory
	}
	e := l.entries[player]
	field := &e.Recurring
	if cat == OneOff {
		field = &e.OneOff
	}
	if amount.IsZero() {
		*field = decimal.Zero
	} else {
		*field = field.Add(amount)
		if field.IsNegative() {
			*field = decimal.Zero
		}
	}
	if e.Recurring.IsZero() && e.OneOff.IsZero() {
		delete(l.entries, player)
	} else {
		l.entries[player] = e
	}
	return e, nil
}

// RecordText parses raw amount text and records it. Rejected text changes
// nothing.
func (l *Ledger) RecordText(player int, cat Category, text string) (Entry, error) {
	amount, err := ParseAmount(text)
	if err != nil {
		return l.entries[player], err
	}
	return l.Record(player, cat, amount)
}

func (l *Ledger) TotalWon(player int) decimal.Decimal {
	return l.entries[player].Total()
}

func Invested(gamesPlayed int, unitCost decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(int64(gamesPlayed)))
}

type Money struct {
	Player   int             `json:"player"`
	Invested decimal.Decimal `json:"invested"`
	Won      Entry           `json:"won"`
	TotalWon decimal.Decimal `json:"total_won"`
}

func (l *Ledger) Money(player, gamesPlayed int, unitCost decimal.Decimal) Money {
	e := l.entries[player]
	return Money{
		Player:   player,
		Invested: Invested(gamesPlayed, unitCost),
		Won:      e,
		TotalWon: e.Total(),
	}
}

// Entries returns a copy of every non-zero entry.
func (l *Ledger) Entries() map[int]Entry {
	out := make(map[int]Entry, len(l.entries))
	for k, v := range l.entries {
		out[k] = v
	}
	return out
}

// Restore replaces the ledger contents. Negative stored values are floored so
// the invariant holds for data written elsewhere.
func (l *Ledger) Restore(entries map[int]Entry) {
	l.entries = map[int]Entry{}
	for p, e := range entries {
		if p < 1 || p > l.players {
			continue
		}
		if e.Recurring.IsNegative() {
			e.Recurring = decimal.Zero
		}
		if e.OneOff.IsNegative() {
			e.OneOff = decimal.Zero
		}
		if e.Recurring.IsZero() && e.OneOff.IsZero() {
			continue
		}
		l.entries[p] = e
	}
}

func (l *Ledger) Clear() {
	l.entries = map[int]Entry{}
}
