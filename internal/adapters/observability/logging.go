package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger on stderr, keeping stdout free for
// command output and result files. APP_ENV dev or development switches to
// the human-readable console writer; anything else emits JSON lines.
func NewLogger(env string) zerolog.Logger {
	return newLogger(os.Stderr, env)
}

func newLogger(out io.Writer, env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}
