package lib

import (
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/richardtsai/pacfuncs/pac"
)

// Version is an external string variable identifying the version of this
// binary.
var Version = "v0.3.0"

// BuiltTime is an external string variable identifying the built time of
// this binary.
var BuiltTime = "UNKNOWN"

// CreateLogger creates a zap SugaredLogger from given configuration.
func CreateLogger(config LoggingConfig) (*zap.SugaredLogger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Sampling = nil
	if config.File != "" {
		zapCfg.OutputPaths = []string{config.File}
	}
	if config.Format != "" {
		if config.Format == "console_rich" {
			zapCfg.Encoding = "console"
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			zapCfg.Encoding = config.Format
		}
	}
	if zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	switch config.Level {
	case "": // no-op
	case "debug":
		zapCfg.Level.SetLevel(zap.DebugLevel)
	case "info":
		zapCfg.Level.SetLevel(zap.InfoLevel)
	case "warn":
		zapCfg.Level.SetLevel(zap.WarnLevel)
	case "error":
		zapCfg.Level.SetLevel(zap.ErrorLevel)
	case "fatal":
		zapCfg.Level.SetLevel(zap.FatalLevel)
	default:
		return nil, errors.New("unknown logging level: " + config.Level)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// CreateClock creates the clock read by the time based predicates.
func CreateClock(config MiscConfig) (pac.Clock, error) {
	if config.Timezone == "" {
		return pac.SystemClock{}, nil
	}
	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid timezone")
	}
	return pac.SystemClock{Location: loc}, nil
}

// CreateEvaluator wires a PAC evaluator from the whole configuration.
func CreateEvaluator(
	config Config, log *zap.SugaredLogger) (*pac.Evaluator, error) {
	resolver, err := CreateResolver(config.Resolver, log.Named("resolver"))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create resolver")
	}
	clock, err := CreateClock(config.Misc)
	if err != nil {
		return nil, err
	}
	return pac.NewEvaluator(resolver, clock, log.Named("pac")), nil
}

// GetHomePath returns the home path of the current user.
func GetHomePath() string {
	if runtime.GOOS == "windows" {
		if p := os.Getenv("HOME"); p != "" {
			return p
		} else if p := os.Getenv("USERPROFILE"); p != "" {
			return p
		}
		d := os.Getenv("HOMEDRIVE")
		p := os.Getenv("HOMEPATH")
		if d != "" && p != "" {
			return d + p
		}
		return ""
	}
	return os.Getenv("HOME")
}

// LoadEvaluator loads the configuration file (or the default one, if any)
// and creates an evaluator together with its logger.
func LoadEvaluator(configFile string) (*pac.Evaluator, error) {
	config, err := LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	log, err := CreateLogger(config.Logging)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create logger")
	}
	return CreateEvaluator(*config, log)
}
