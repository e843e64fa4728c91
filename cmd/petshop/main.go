package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petshop-bay/bay/flow"
	"petshop-bay/bay/flow/domain"
	"petshop-bay/bay/flow/infra"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		args = defaultScript
	}
	steps, err := parseScript(args)
	if err != nil {
		log.Fatalf("script error: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sinks := []domain.EventSink{infra.NewLogSink(logger)}
	if cfg.eventsRedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.eventsRedisAddr,
			Password: cfg.eventsRedisPassword,
			DB:       cfg.eventsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		pingCancel()
		if err != nil {
			log.Fatalf("redis events ping error: %v", err)
		}

		sinks = append(sinks, infra.NewRedisEventStore(
			rdb,
			infra.WithEventsPrefix(cfg.eventsRedisPrefix),
			infra.WithEventsTTL(cfg.eventsRedisTTL),
			infra.WithEventsBucket(cfg.eventsRedisBucket),
			infra.WithEventsTrackOwners(cfg.eventsRedisTrackOwners),
		))
	}

	var intake domain.IntakePolicy
	intakeLine := "intake: disabled"
	if cfg.intakePerSecond > 0 {
		owners := infra.NewOwnerIntake(cfg.intakePerSecond, cfg.intakeBurst, infra.WithSweepEvery(cfg.intakeSweepEvery))
		owners.StartSweeper(ctx)
		intake = owners
		intakeLine = fmt.Sprintf("intake: perSecond=%.3f burst=%d sweepEvery=%s", owners.PerSecond(), owners.Burst(), cfg.intakeSweepEvery)
	}

	ctrl := flow.New(flow.Options{
		Capacity: cfg.stageCapacity,
		Events:   infra.NewMultiSink(sinks...),
		Intake:   intake,
	})

	log.Printf("petshop: stage capacity=%d steps=%d", cfg.stageCapacity, len(steps))
	log.Print(intakeLine)
	log.Printf("events-redis: enabled=%v addr=%q bucket=%q ttl=%s trackOwners=%v", cfg.eventsRedisEnabled, cfg.eventsRedisAddr, cfg.eventsRedisBucket, cfg.eventsRedisTTL, cfg.eventsRedisTrackOwners)

	if failed := run(ctx, ctrl, steps, os.Stdout); failed > 0 {
		log.Printf("%d step(s) reported errors", failed)
	}
}

func newLogger(cfg config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
}
