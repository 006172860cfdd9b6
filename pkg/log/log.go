package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zap.NewNop()

func InitProd() *zap.Logger {
	return initLogger(zap.NewProductionConfig(), "")
}

func InitDev() *zap.Logger {
	return initLogger(zap.NewDevelopmentConfig(), "")
}

// Init builds a production or development logger. When file is not empty the
// logs are also written there, rotated by lumberjack.
func Init(prod bool, file string) *zap.Logger {
	if prod {
		return initLogger(zap.NewProductionConfig(), file)
	}
	return initLogger(zap.NewDevelopmentConfig(), file)
}

func initLogger(config zap.Config, file string) *zap.Logger {
	var err error
	logger, err = config.Build(zap.AddStacktrace(zap.WarnLevel))
	if err != nil {
		fmt.Printf("Failed to init zap logger: %v", err)
		os.Exit(1)
	}

	if len(file) > 0 {
		logger = logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, newFileCore(config, file))
		}))
	}

	zap.ReplaceGlobals(logger)
	return logger
}

func newFileCore(config zap.Config, file string) zapcore.Core {
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    64,
		MaxBackups: 3,
		MaxAge:     28,
	})
	return zapcore.NewCore(zapcore.NewJSONEncoder(config.EncoderConfig), sink, config.Level)
}

func Sync() {
	logger.Sync()
}
