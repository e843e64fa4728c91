package main

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type config struct {
	stageCapacity    int
	intakePerSecond  float64
	intakeBurst      int
	intakeSweepEvery time.Duration
	logFormat        string
	logLevel         string

	eventsRedisEnabled     bool
	eventsRedisAddr        string
	eventsRedisPassword    string
	eventsRedisDB          int
	eventsRedisPrefix      string
	eventsRedisTTL         time.Duration
	eventsRedisBucket      string
	eventsRedisTrackOwners bool
}

func readConfig() (config, error) {
	cfg := config{}
	cfg.stageCapacity = env("STAGE_CAPACITY", 3, strconv.Atoi)
	// INTAKE_RPS=0 desliga o limite de admissões por tutor.
	cfg.intakePerSecond = env("INTAKE_RPS", 0, parseFloat)
	cfg.intakeBurst = env("INTAKE_BURST", 1, strconv.Atoi)
	cfg.intakeSweepEvery = env("INTAKE_SWEEP_EVERY", time.Minute, time.ParseDuration)
	cfg.logFormat = strings.ToLower(env("LOG_FORMAT", "text", asString))
	cfg.logLevel = env("LOG_LEVEL", "info", asString)

	cfg.eventsRedisEnabled = env("EVENTS_REDIS_ENABLED", false, strconv.ParseBool)
	cfg.eventsRedisAddr = env("EVENTS_REDIS_ADDR", "", asString)
	cfg.eventsRedisPassword = os.Getenv("EVENTS_REDIS_PASSWORD")
	cfg.eventsRedisDB = env("EVENTS_REDIS_DB", 0, strconv.Atoi)
	cfg.eventsRedisPrefix = env("EVENTS_REDIS_PREFIX", "petshop:events", asString)
	cfg.eventsRedisTTL = env("EVENTS_REDIS_TTL", 24*time.Hour, time.ParseDuration)
	cfg.eventsRedisBucket = env("EVENTS_REDIS_BUCKET", "minute", asString)
	cfg.eventsRedisTrackOwners = env("EVENTS_REDIS_TRACK_OWNERS", false, strconv.ParseBool)

	if cfg.eventsRedisEnabled && strings.TrimSpace(cfg.eventsRedisAddr) == "" {
		return config{}, errors.New("EVENTS_REDIS_ADDR is required when EVENTS_REDIS_ENABLED=true")
	}
	if cfg.stageCapacity <= 0 {
		return config{}, errors.New("STAGE_CAPACITY must be > 0")
	}
	if cfg.intakePerSecond < 0 {
		return config{}, errors.New("INTAKE_RPS must be >= 0")
	}
	if cfg.intakePerSecond > 0 && cfg.intakeBurst <= 0 {
		return config{}, errors.New("INTAKE_BURST must be > 0")
	}
	if cfg.logFormat != "text" && cfg.logFormat != "json" {
		return config{}, errors.New("LOG_FORMAT must be text or json")
	}
	return cfg, nil
}

// env lê a variável k com parse; vazia ou inválida, fica com def.
func env[T any](k string, def T, parse func(string) (T, error)) T {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	out, err := parse(v)
	if err != nil {
		return def
	}
	return out
}

func asString(v string) (string, error) { return v, nil }

func parseFloat(v string) (float64, error) { return strconv.ParseFloat(v, 64) }
