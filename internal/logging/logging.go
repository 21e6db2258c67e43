package logging

import (
	"io"
	"os"
	"strings"

	"pga-swindle/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the global zerolog logger. Logs go to stderr so the CLI can
// keep stdout for JSON output.
func Init(cfg config.LogConfig) io.Closer {
	return initTo(os.Stderr, cfg)
}

func initTo(stderr io.Writer, cfg config.LogConfig) io.Closer {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	output := stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: stderr}
	}

	var closer io.Closer = nopCloser{}
	var fileErr error
	path := strings.TrimSpace(cfg.File)
	if path != "" {
		w, err := newRotatingWriter(path, cfg.MaxMB)
		if err != nil {
			fileErr = err
		} else {
			output = zerolog.MultiLevelWriter(output, w)
			closer = w
		}
	}

	zerolog.SetGlobalLevel(level)
	ctx := zerolog.New(output).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	logger := ctx.Logger()
	if n := cfg.SampleEvery; n > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(n)})
	}
	log.Logger = logger
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("file", path).Msg("log file disabled")
	}
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
