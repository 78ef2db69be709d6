// Package logs builds the process-wide structured logger.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"atrium/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params carries the logger's dependencies.
type Params struct {
	fx.In

	Config *config.Config
}

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New builds the slog.Logger shared by every component. Output is JSON
// unless pretty text logging is enabled for local development.
func New(params Params) (*slog.Logger, error) {
	name := params.Config.Env.Log.Level
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", name)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}
