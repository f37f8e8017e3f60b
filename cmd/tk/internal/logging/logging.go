// Package logging builds the CLI's zap logger.
//
// Console output goes to stderr. When a log file is configured, the same
// events are also written as JSON to a lumberjack-rotated file.
package logging

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/tk/cmd/tk/internal/config"
)

// New returns a logger for cfg and installs it with zap.ReplaceGlobals.
// The returned close func flushes and releases the log file.
func New(cfg config.Log, console io.Writer) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if console == nil {
		console = os.Stderr
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		NameKey:      "logger",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	consoleEnc := zapcore.NewConsoleEncoder(encCfg)
	if cfg.Format == "json" {
		consoleEnc = zapcore.NewJSONEncoder(encCfg)
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.AddSync(console), level),
	}

	var sink *lumberjack.Logger
	if cfg.File != "" {
		sink = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), level))
	}

	log := zap.New(zapcore.NewTee(cores...))
	undo := zap.ReplaceGlobals(log)
	closeFn := func() {
		_ = log.Sync()
		undo()
		if sink != nil {
			_ = sink.Close()
		}
	}
	return log, closeFn, nil
}
