package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger for structured application logging.
type Logger struct {
	*zap.SugaredLogger
}

// L is the process-wide logger for call sites that are not wired for
// dependency injection (scripts, init paths). Everything else should take a
// *Logger explicitly.
var L *Logger

// New builds a production logger. Development mode switches to the console
// encoder with debug level.
func New(development bool) (*Logger, error) {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

func init() {
	logger, err := New(false)
	if err != nil {
		logger = &Logger{SugaredLogger: zap.NewNop().Sugar()}
	}
	L = logger
}
