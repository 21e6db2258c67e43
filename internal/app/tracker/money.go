package tracker

import (
	"context"

	"pga-swindle/internal/ledger"

	"github.com/rs/zerolog/log"
)

// SetMoney applies raw amount text to one ledger category. Zero resets the
// category; other amounts add and the result never drops below zero.
func (s *Service) SetMoney(ctx context.Context, player int, category, text string) (ledger.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, err := ledger.ParseCategory(category)
	if err != nil {
		return ledger.Money{}, err
	}
	if _, err := s.money.RecordText(player, cat, text); err != nil {
		log.Debug().Err(err).Int("player", player).Str("category", category).Str("text", text).Msg("money_rejected")
		return ledger.Money{}, err
	}
	if err := s.changed(ctx); err != nil {
		return ledger.Money{}, err
	}
	return s.money.Money(player, s.season.GamesPlayed(player), s.unitCost), nil
}

// Money returns invested, won and total won for player.
func (s *Service) Money(player int) (ledger.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player < 1 || player > s.season.Players() {
		return ledger.Money{}, ErrInvalidRequest
	}
	return s.money.Money(player, s.season.GamesPlayed(player), s.unitCost), nil
}
