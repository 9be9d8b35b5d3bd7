package cli

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig controls the process-wide logger.
type LogConfig struct {
	Level   string
	Out     io.Writer
	NoColor bool
}

// LogLevel picks the level for a run: --debug wins over --verbose, which
// wins over the configured level. The default is "warn".
func LogLevel(args CommandArgs, configured string) string {
	switch {
	case args.Bool("debug"):
		return "debug"
	case args.Bool("verbose"):
		return "info"
	case strings.TrimSpace(configured) != "":
		return strings.ToLower(strings.TrimSpace(configured))
	default:
		return "warn"
	}
}

// InitLogger points the global zerolog logger at a console writer and sets
// the global level.
func InitLogger(config LogConfig) error {
	out := config.Out
	if out == nil {
		out = os.Stderr
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, NoColor: config.NoColor})

	switch config.Level {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		return errors.Errorf("unknown log level %q", config.Level)
	}
	return nil
}
