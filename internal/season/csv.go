package season

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes one row per player with a column per week.
func (s *State) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	head := make([]string, 0, s.cfg.Weeks+1)
	head = append(head, "Player")
	for wk := 1; wk <= s.cfg.Weeks; wk++ {
		head = append(head, fmt.Sprintf("WK%d (%s)", wk, s.dates[wk]))
	}
	if err := cw.Write(head); err != nil {
		return err
	}
	for p := 1; p <= s.cfg.Players; p++ {
		row := make([]string, 0, s.cfg.Weeks+1)
		row = append(row, s.Name(p))
		for wk := 1; wk <= s.cfg.Weeks; wk++ {
			v, ok := s.Score(p, wk)
			if ok {
				row = append(row, strconv.Itoa(v))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
