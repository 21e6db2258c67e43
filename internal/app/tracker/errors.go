package tracker

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNoSavedData    = errors.New("no_saved_data")
	ErrNoWeekScores   = errors.New("no_scores_this_week")
)
