package logging

import (
	"io"
	"os"
	"strings"

	"code-casino/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var output io.Writer = os.Stdout

func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && cfg.Level != "" {
		level = parsed
	}

	output = os.Stdout
	if cfg.File != "" {
		if w, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB); err == nil {
			output = w
		}
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer exposes the log destination so the HTTP request logger can share it.
func Writer() io.Writer {
	return output
}
