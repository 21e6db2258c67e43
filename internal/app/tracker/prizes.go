package tracker

import (
	"context"

	"pga-swindle/internal/prizes"
	"pga-swindle/internal/store"

	"github.com/rs/zerolog/log"
)

// SetPrize applies raw text to one slot of a week's prize record and returns
// the formatted amount to display. On rejection the previous amount is
// returned alongside the error.
func (s *Service) SetPrize(ctx context.Context, week int, slot prizes.Slot, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	display, err := s.prizes.Set(week, slot, text)
	if err != nil {
		log.Debug().Err(err).Int("week", week).Str("slot", string(slot)).Str("text", text).Msg("prize_rejected")
		return display, err
	}
	return display, s.changed(ctx)
}

func (s *Service) PrizeWeeks() []prizes.WeekRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prizes.Weeks()
}

func (s *Service) SetPrizeValue(ctx context.Context, key, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	display, err := s.prizes.SetValue(key, text)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Str("text", text).Msg("prize_value_rejected")
		return display, err
	}
	return display, s.changed(ctx)
}

func (s *Service) SetPrizeWinner(ctx context.Context, key, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prizes.SetWinner(key, name); err != nil {
		return err
	}
	return s.changed(ctx)
}

func (s *Service) Awards() []prizes.Award {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prizes.Awards()
}

// ExportPrizes renders the standalone prizes document.
func (s *Service) ExportPrizes() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	return prizes.MarshalDocument(s.prizes.ExportDocument(store.NewIDAt(now), now))
}

// ImportPrizes replaces the prize sections present in data. Nothing changes
// when the document is malformed.
func (s *Service) ImportPrizes(ctx context.Context, data []byte) error {
	doc, err := prizes.UnmarshalDocument(data)
	if err != nil {
		log.Warn().Err(err).Msg("prize_import_rejected")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.prizes.Import(doc); err != nil {
		log.Warn().Err(err).Msg("prize_import_rejected")
		return err
	}
	log.Info().Str("id", doc.ID).Str("version", doc.Version).Msg("prizes_imported")
	return s.changed(ctx)
}
