package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

const (
	SinkLog    = "log"
	SinkMemory = "memory"
	SinkRedis  = "redis"
	SinkNats   = "nats"
)

type zonkEnvironment struct {
	LogLevel     string
	LogFormat    string
	HandSink     string
	RedisHost    string
	RedisPort    string
	RedisPW      string
	RedisDB      string
	NatsURL      string
	SortStrategy string
}

// Env is a helper object for accessing environment variables.
var Env = &zonkEnvironment{
	LogLevel:     "LOG_LEVEL",
	LogFormat:    "LOG_FORMAT",
	HandSink:     "HAND_SINK",
	RedisHost:    "REDIS_HOST",
	RedisPort:    "REDIS_PORT",
	RedisPW:      "REDIS_PW",
	RedisDB:      "REDIS_DB",
	NatsURL:      "NATS_URL",
	SortStrategy: "SORT_STRATEGY",
}

func (z *zonkEnvironment) GetZeroLogLogLevel() zerolog.Level {
	s := strings.ToLower(os.Getenv(z.LogLevel))
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		environmentLogger.Warn().Msgf("Invalid %s [%s]. Using info", z.LogLevel, s)
		return zerolog.InfoLevel
	}
	return level
}

// GetLogFormat falls back to console output for anything but "json".
func (z *zonkEnvironment) GetLogFormat() string {
	if strings.ToLower(os.Getenv(z.LogFormat)) == LogFormatJSON {
		return LogFormatJSON
	}
	return LogFormatConsole
}

func (z *zonkEnvironment) GetHandSink() string {
	sink := strings.ToLower(os.Getenv(z.HandSink))
	switch sink {
	case "":
		return SinkLog
	case SinkLog, SinkMemory, SinkRedis, SinkNats:
		return sink
	default:
		msg := fmt.Sprintf("Invalid %s [%s]", z.HandSink, sink)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
}

func (z *zonkEnvironment) GetRedisHost() string {
	host := os.Getenv(z.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", z.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (z *zonkEnvironment) GetRedisPort() int {
	portStr := os.Getenv(z.RedisPort)
	if portStr == "" {
		return 6379
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (z *zonkEnvironment) GetRedisPW() string {
	return os.Getenv(z.RedisPW)
}

func (z *zonkEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(z.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (z *zonkEnvironment) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", z.GetRedisHost(), z.GetRedisPort())
}

func (z *zonkEnvironment) GetNatsURL() string {
	url := os.Getenv(z.NatsURL)
	if url == "" {
		msg := fmt.Sprintf("%s is not defined", z.NatsURL)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return url
}

// GetSortStrategy returns an empty string when the variable is not set.
func (z *zonkEnvironment) GetSortStrategy() string {
	return strings.ToLower(os.Getenv(z.SortStrategy))
}
