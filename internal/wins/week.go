package wins

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var ErrBadWeekID = errors.New("bad_week_id")

var weekIDPattern = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)

// WeekID returns the ISO week of t as YYYY-Www. The zero padding keeps ids
// in chronological order when compared as strings.
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeekNumber extracts the week-of-year from an id such as 2025-W07.
func WeekNumber(id string) (int, error) {
	m := weekIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, ErrBadWeekID
	}
	n, err := strconv.Atoi(m[2])
	if err != nil || n < 1 || n > 53 {
		return 0, ErrBadWeekID
	}
	return n, nil
}

// NormalizeWeekID validates id and rewrites it in padded form.
func NormalizeWeekID(id string) (string, error) {
	m := weekIDPattern.FindStringSubmatch(id)
	if m == nil {
		return "", ErrBadWeekID
	}
	n, err := WeekNumber(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-W%02d", m[1], n), nil
}
