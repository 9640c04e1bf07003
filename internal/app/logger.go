package app

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"ecodeli-delivery/internal/config"
	"ecodeli-delivery/internal/logx"
)

// NewLogger builds the JSON zap logger. Output goes to stdout and, when
// cfg.Log.File is set, to a rotated file as well.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	z, err := newZap(cfg.Log)
	if err != nil {
		return nil, err
	}
	return logx.NewZapAdapter(z), nil
}

func newZap(lc config.Log) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if s := strings.TrimSpace(lc.Level); s != "" {
		parsed, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", s, err)
		}
		level = parsed
	}

	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeDuration = zapcore.MillisDurationEncoder
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if f := strings.TrimSpace(lc.File); f != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   f,
			MaxSize:    lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAge:     lc.MaxAgeDays,
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.NewMultiWriteSyncer(sinks...), level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}
