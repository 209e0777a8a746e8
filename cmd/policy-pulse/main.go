package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bhum/policy-pulse/internal/config"
	"github.com/bhum/policy-pulse/internal/server"
	"github.com/bhum/policy-pulse/internal/simulation"
	"github.com/bhum/policy-pulse/pkg/constants"
	"github.com/bhum/policy-pulse/pkg/history"
	"github.com/bhum/policy-pulse/pkg/output"
	"github.com/bhum/policy-pulse/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// newSeriesCache builds the series cache named by the configuration.
func newSeriesCache(cacheConfig config.CacheConfig) (history.SeriesCache, error) {
	switch cacheConfig.Backend {
	case "", "memory":
		return history.NewMemoryCache(), nil
	case "redis":
		if cacheConfig.RedisAddr == "" {
			return nil, fmt.Errorf("cache backend redis requires redisAddr")
		}
		return history.NewRedisCache(cacheConfig.RedisAddr), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid cache backend: %s", cacheConfig.Backend)
	}
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "serve the simulation API over HTTP instead of running once")
	serverConfigLocation := flag.String("server-config", "", "path to server configuration file")
	addr := flag.String("addr", "", "HTTP listen address override")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	cache, err := newSeriesCache(conf.Cache)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if *serve {
		serverConf, err := server.LoadConfig(*serverConfigLocation)
		if err != nil {
			logger.Fatal("failed to load server configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if *addr != "" {
			serverConf.Address = *addr
		}

		handler := server.NewHandler(logger, cache, serverConf.MaxBodySize, version)
		logger.Info("serving simulation API",
			zap.String("op", "main"),
			zap.String("address", serverConf.Address),
		)
		if err := http.ListenAndServe(serverConf.Address, handler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Run the simulation for every active scenario.
	results, err := simulation.Run(logger, *conf, cache)
	if err != nil {
		logger.Fatal("failed to compute simulation",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, results, conf.Output.Theme)
	case constants.OutputFormatCSV:
		for i, result := range results {
			if len(results) > 1 {
				fmt.Printf("# scenario: %s\n", result.Scenario)
			}
			if err := output.CsvFormat(os.Stdout, result.Rows); err != nil {
				logger.Fatal("failed to write CSV",
					zap.String("op", "main"),
					zap.Error(err),
				)
			}
			if i < len(results)-1 {
				fmt.Printf("\n")
			}
		}
	}
}
