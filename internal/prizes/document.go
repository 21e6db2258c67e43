package prizes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const ExportVersion = "1.1"

// Data is the persisted form of a Book. Pots holds only non-zero weeks.
type Data struct {
	Values  map[string]decimal.Decimal
	Winners map[string]string
	Pots    map[int]Pot
}

func (b *Book) Export() Data {
	d := Data{
		Values:  make(map[string]decimal.Decimal, len(b.values)),
		Winners: make(map[string]string, len(b.winners)),
		Pots:    map[int]Pot{},
	}
	for k, v := range b.values {
		d.Values[k] = v
	}
	for k, v := range b.winners {
		d.Winners[k] = v
	}
	for w := 1; w <= PotWeeks; w++ {
		if !b.pots[w].IsZero() {
			d.Pots[w] = b.pots[w]
		}
	}
	return d
}

// Restore replaces the book contents with persisted data. Weeks outside
// 1..50 and negative amounts are dropped.
func (b *Book) Restore(d Data) {
	b.ClearAll()
	for k, v := range d.Values {
		if k != "" && !v.IsNegative() {
			b.values[k] = v
		}
	}
	for k, v := range d.Winners {
		if k != "" && v != "" {
			b.winners[k] = v
		}
	}
	for w, p := range d.Pots {
		if w >= 1 && w <= PotWeeks && p.valid() {
			b.pots[w] = p
		}
	}
}

// Document is the standalone prizes export. A nil section means the section
// is absent from the file.
type Document struct {
	ID           string                     `json:"id,omitempty"`
	PrizeValues  map[string]decimal.Decimal `json:"prize_values"`
	PrizeWinners map[string]string          `json:"prize_winners"`
	PrizePots    map[string]Pot             `json:"prize_pots"`
	ExportedAt   time.Time                  `json:"exported_at"`
	Version      string                     `json:"version"`
}

func (b *Book) ExportDocument(id string, now time.Time) Document {
	d := b.Export()
	doc := Document{
		ID:           id,
		PrizeValues:  d.Values,
		PrizeWinners: d.Winners,
		PrizePots:    make(map[string]Pot, len(d.Pots)),
		ExportedAt:   now.UTC(),
		Version:      ExportVersion,
	}
	for w, p := range d.Pots {
		doc.PrizePots[strconv.Itoa(w)] = p
	}
	return doc
}

func MarshalDocument(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// browserDocument is the layout written by the browser tracker: camelCase
// sections and prizePot for the pot slot.
type browserDocument struct {
	PrizeValues     map[string]decimal.Decimal `json:"prizeValues"`
	PrizeWinners    map[string]string          `json:"prizeWinners"`
	WeeklyPrizeData map[string]browserPot      `json:"weeklyPrizeData"`
	ExportDate      time.Time                  `json:"exportDate"`
	ExportVersion   string                     `json:"exportVersion"`
}

type browserPot struct {
	PrizePot decimal.Decimal `json:"prizePot"`
	First    decimal.Decimal `json:"first"`
	Second   decimal.Decimal `json:"second"`
	Third    decimal.Decimal `json:"third"`
	Fourth   decimal.Decimal `json:"fourth"`
	Fifth    decimal.Decimal `json:"fifth"`
}

// UnmarshalDocument reads either export layout. Sections of the browser
// layout are used only when the snake_case section is absent.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	var alt browserDocument
	if err := json.Unmarshal(data, &alt); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	if doc.PrizeValues == nil {
		doc.PrizeValues = alt.PrizeValues
	}
	if doc.PrizeWinners == nil {
		doc.PrizeWinners = alt.PrizeWinners
	}
	if doc.PrizePots == nil && alt.WeeklyPrizeData != nil {
		doc.PrizePots = make(map[string]Pot, len(alt.WeeklyPrizeData))
		for k, p := range alt.WeeklyPrizeData {
			doc.PrizePots[k] = Pot{Pot: p.PrizePot, First: p.First, Second: p.Second, Third: p.Third, Fourth: p.Fourth, Fifth: p.Fifth}
		}
	}
	if doc.ExportedAt.IsZero() {
		doc.ExportedAt = alt.ExportDate
	}
	if doc.Version == "" {
		doc.Version = alt.ExportVersion
	}
	return doc, nil
}

// Import replaces each section present in doc and leaves absent sections
// alone. Everything is validated before the book is touched.
func (b *Book) Import(doc Document) error {
	if doc.PrizeValues == nil && doc.PrizeWinners == nil && doc.PrizePots == nil {
		return fmt.Errorf("%w: missing prize data", ErrMalformedImport)
	}
	for k, v := range doc.PrizeValues {
		if v.IsNegative() {
			return fmt.Errorf("%w: negative value for %q", ErrMalformedImport, k)
		}
	}
	var pots map[int]Pot
	if doc.PrizePots != nil {
		pots = make(map[int]Pot, len(doc.PrizePots))
		for key, p := range doc.PrizePots {
			w, err := strconv.Atoi(key)
			if err != nil || w < 1 || w > PotWeeks {
				return fmt.Errorf("%w: bad week %q", ErrMalformedImport, key)
			}
			if !p.valid() {
				return fmt.Errorf("%w: negative amount in week %d", ErrMalformedImport, w)
			}
			pots[w] = p
		}
	}

	if doc.PrizeValues != nil {
		b.values = make(map[string]decimal.Decimal, len(doc.PrizeValues))
		for k, v := range doc.PrizeValues {
			b.values[k] = v
		}
	}
	if doc.PrizeWinners != nil {
		b.winners = make(map[string]string, len(doc.PrizeWinners))
		for k, v := range doc.PrizeWinners {
			if v != "" {
				b.winners[k] = v
			}
		}
	}
	if pots != nil {
		b.pots = [PotWeeks + 1]Pot{}
		for w, p := range pots {
			b.pots[w] = p
		}
	}
	return nil
}
