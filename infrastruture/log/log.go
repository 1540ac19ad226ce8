// Package log builds the named zap loggers used by each component.
package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Component names.
const (
	App    = "APP"
	Solver = "SOLVER"
	Jobs   = "JOBS"
	HTTP   = "HTTP"
)

// New creates a console logger named name writing entries at level or
// above to w. level is one of debug, info, warn, error.
func New(name, level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeName = func(n string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + n + "]")
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core).Named(name), nil
}
