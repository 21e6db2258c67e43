package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"pga-swindle/internal/app/tracker"
	"pga-swindle/internal/prizes"
	"pga-swindle/internal/season"
	"pga-swindle/internal/wins"
)

var errUsage = errors.New("usage")

const usage = `usage: swindle <command> [args]

  sheet                              print every player row
  player <n>                         print one player row
  score <player> <week> <text>       set or clear a score
  remove-week <week>                 clear a whole week and its date
  name <player> <text>               set or clear a player name
  header <slot> <text>               set or clear a column header
  headers                            print the column headers
  date <week> <text>                 set or clear a week date
  color <player> <week> <color>      set or clear a cell colour
  title <text>                       set the sheet title
  best-n <n>                         set the best-N count
  money <player> <category> <text>   record money won (recurring|one_off)
  rank <metric> [asc|desc]           rank by best_n, total_points or money_won
  prize <week> <slot> <text>         set a weekly prize amount
  pots                               print all weekly prize records
  award-value <key> <text>           set a prize category value
  award-winner <key> <name>          set a prize category winner
  awards                             print prize categories
  export-prizes [file]               write the prizes document
  import-prizes <file>               replace prize sections from a document
  win [week] [name]                  record a win and print the leaderboard
  csv                                print the score grid as CSV
  clear <scores|money|prizes|all>    clear a scope`

type command struct {
	args int
	run  func(ctx context.Context, svc *tracker.Service, args []string, out io.Writer) error
}

var commands = map[string]command{
	"sheet": {0, func(_ context.Context, svc *tracker.Service, _ []string, out io.Writer) error {
		return writeJSON(out, svc.Sheet())
	}},
	"player": {1, func(_ context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		p, err := atoi(args[0])
		if err != nil {
			return err
		}
		row, err := svc.Player(p)
		if err != nil {
			return err
		}
		return writeJSON(out, row)
	}},
	"score": {3, func(ctx context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		p, w, err := atoi2(args[0], args[1])
		if err != nil {
			return err
		}
		if err := svc.SetScore(ctx, p, w, args[2]); err != nil {
			return err
		}
		return writeJSON(out, mustRow(svc, p))
	}},
	"remove-week": {1, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		w, err := atoi(args[0])
		if err != nil {
			return err
		}
		return svc.RemoveWeek(ctx, w)
	}},
	"name": {2, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		p, err := atoi(args[0])
		if err != nil {
			return err
		}
		return svc.SetName(ctx, p, args[1])
	}},
	"header": {2, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		return svc.SetHeader(ctx, args[0], args[1])
	}},
	"headers": {0, func(_ context.Context, svc *tracker.Service, _ []string, out io.Writer) error {
		return writeJSON(out, svc.Headers())
	}},
	"date": {2, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		w, err := atoi(args[0])
		if err != nil {
			return err
		}
		return svc.SetDate(ctx, w, args[1])
	}},
	"color": {3, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		p, w, err := atoi2(args[0], args[1])
		if err != nil {
			return err
		}
		return svc.SetCellColor(ctx, p, w, args[2])
	}},
	"title": {1, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		return svc.SetTitle(ctx, args[0])
	}},
	"best-n": {1, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		return svc.SetBestN(ctx, args[0])
	}},
	"money": {3, func(ctx context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		p, err := atoi(args[0])
		if err != nil {
			return err
		}
		m, err := svc.SetMoney(ctx, p, args[1], args[2])
		if err != nil {
			return err
		}
		return writeJSON(out, m)
	}},
	"rank": {1, func(_ context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		by := season.RankBy{Metric: season.Metric(args[0]), Direction: season.Descending}
		if len(args) > 1 {
			by.Direction = season.Direction(args[1])
		}
		switch by.Metric {
		case season.MetricBestN, season.MetricTotalPoints, season.MetricMoneyWon:
		default:
			return fmt.Errorf("%w: unknown metric %q", tracker.ErrInvalidRequest, args[0])
		}
		if by.Direction != season.Ascending && by.Direction != season.Descending {
			return fmt.Errorf("%w: unknown direction %q", tracker.ErrInvalidRequest, by.Direction)
		}
		return writeJSON(out, svc.Rank(by))
	}},
	"prize": {3, func(ctx context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		w, err := atoi(args[0])
		if err != nil {
			return err
		}
		display, err := svc.SetPrize(ctx, w, prizes.Slot(args[1]), args[2])
		if err != nil {
			return fmt.Errorf("%w (kept %s)", err, display)
		}
		_, err = fmt.Fprintln(out, display)
		return err
	}},
	"pots": {0, func(_ context.Context, svc *tracker.Service, _ []string, out io.Writer) error {
		return writeJSON(out, svc.PrizeWeeks())
	}},
	"award-value": {2, func(ctx context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		display, err := svc.SetPrizeValue(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, display)
		return err
	}},
	"award-winner": {2, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		return svc.SetPrizeWinner(ctx, args[0], args[1])
	}},
	"awards": {0, func(_ context.Context, svc *tracker.Service, _ []string, out io.Writer) error {
		return writeJSON(out, svc.Awards())
	}},
	"export-prizes": {0, func(_ context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		data, err := svc.ExportPrizes()
		if err != nil {
			return err
		}
		if len(args) > 0 {
			return os.WriteFile(args[0], data, 0o644)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}},
	"import-prizes": {1, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return svc.ImportPrizes(ctx, data)
	}},
	"win": {0, func(_ context.Context, svc *tracker.Service, args []string, out io.Writer) error {
		if len(args) > 0 {
			if err := svc.SetCurrentWeek(args[0]); err != nil {
				return err
			}
		}
		var err error
		if len(args) > 1 {
			_, err = svc.RecordWin(strings.Join(args[1:], " "))
		} else {
			_, err = svc.RecordTopScorerWin()
		}
		if err != nil {
			return err
		}
		return writeJSON(out, struct {
			tracker.LeaderboardResponse
			History []wins.HistoryEntry `json:"history"`
			Weeks   []string            `json:"weeks"`
		}{svc.Leaderboard(), svc.WinHistory(wins.HistoryFilter{}), svc.WinWeeks()})
	}},
	"csv": {0, func(_ context.Context, svc *tracker.Service, _ []string, out io.Writer) error {
		return svc.WriteCSV(out)
	}},
	"clear": {1, func(ctx context.Context, svc *tracker.Service, args []string, _ io.Writer) error {
		switch args[0] {
		case "scores":
			return svc.ClearScores(ctx)
		case "money":
			return svc.ClearMoney(ctx)
		case "prizes":
			return svc.ClearPrizes(ctx)
		case "all":
			return svc.ClearAll(ctx)
		}
		return fmt.Errorf("%w: unknown scope %q", tracker.ErrInvalidRequest, args[0])
	}},
}

func run(ctx context.Context, svc *tracker.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok || len(args)-1 < cmd.args {
		return errUsage
	}
	return cmd.run(ctx, svc, args[1:], out)
}

func mustRow(svc *tracker.Service, player int) tracker.PlayerRow {
	row, _ := svc.Player(player)
	return row
}

func atoi(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", tracker.ErrInvalidRequest, v)
	}
	return n, nil
}

func atoi2(a, b string) (int, int, error) {
	x, err := atoi(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := atoi(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
