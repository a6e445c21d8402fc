package logger

import (
	"io"
	"log/slog"

	"github.com/go-chi/httplog/v3"
)

type Options struct {
	App     string
	Version string
	Env     string
	Level   slog.Level
}

// New returns a JSON logger whose attribute keys follow the ECS schema used by
// the request logger, so application and request lines share one format.
func New(w io.Writer, opts Options) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)
}
