package logger

import (
	"bopLand/internal/api/middleware"
	"bopLand/internal/config"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup инициализирует глобальный логгер zerolog в зависимости от окружения.
// В debug пишем в stdout с уровнем debug, в prod - в файл APP_LOG_PATH,
// в test оставляем только ошибки.
func Setup(envConf *config.Config) *zerolog.Logger {
	switch envConf.ProductionType {
	case config.ProductionTypeDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.ProductionTypeTest:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	zerolog.TimeFieldFormat = "15:04:05 02.01.2006"

	// Оставляем в caller только пакет и файл
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		parts := strings.Split(file, "/")
		if len(parts) > 2 {
			file = strings.Join(parts[len(parts)-2:], "/")
		}
		return fmt.Sprintf("%s:%d", file, line)
	}

	var writer io.Writer = os.Stdout

	if envConf.ProductionType == config.ProductionTypeProd {
		logPath := envConf.LogPath

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			log.Fatal().Err(err).Msg("failed to create logger directory")
		}

		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open logger file")
		}
		writer = logFile
	}

	loggerContext := zerolog.New(writer).
		With().
		Caller().
		Timestamp().
		Logger()

	log.Logger = loggerContext

	log.Info().Str("production_type", envConf.ProductionType).Msg("logger setup complete")
	return &loggerContext
}

// GetRequestID достаёт request id, положенный в контекст LoggerMiddleware
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(middleware.RequestIDKey).(string); ok {
		return requestID
	}
	return "unknown"
}
