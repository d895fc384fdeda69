package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"leave-calendar-sync/config"
	_ "leave-calendar-sync/docs" // Swagger docs
	"leave-calendar-sync/internal/app"
	"leave-calendar-sync/internal/httpserver"
	"leave-calendar-sync/internal/leave"
	leaveHTTP "leave-calendar-sync/internal/leave/delivery/http"
	slackDelivery "leave-calendar-sync/internal/leave/delivery/slack"
	tgNotifier "leave-calendar-sync/internal/leave/delivery/telegram"
	"leave-calendar-sync/internal/scheduler"
	"leave-calendar-sync/internal/webhook"
	"leave-calendar-sync/pkg/log"
	"leave-calendar-sync/pkg/telegram"
)

// @title       Leave Calendar Sync API
// @description Mirrors Slack leave notifications into a Notion database or Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
//
// @securityDefinitions.apikey InternalKey
// @in                         header
// @name                       X-Internal-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting leave calendar sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := cfg.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration: ", err)
		return
	}

	// 3. Optional Telegram summaries
	var notifier leave.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifier = tgNotifier.New(logger, telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatID)
		logger.Info(ctx, "Telegram sync summaries enabled")
	}

	// 4. Leave domain
	leaveApp, err := app.NewLeave(ctx, cfg, logger, notifier)
	if err != nil {
		logger.Error(ctx, "Failed to initialize leave domain: ", err)
		return
	}
	uc := leaveApp.UseCase

	// 5. Scheduler
	var sched *scheduler.Scheduler
	if cfg.Sync.Schedule != "off" {
		sched, err = scheduler.New(logger, cfg.Sync.Schedule, cfg.Sync.Timezone, func(ctx context.Context) {
			uc.RunOnce(ctx)
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize scheduler: ", err)
			return
		}
		sched.Start(ctx)
		logger.Infof(ctx, "Scheduler started (%s, next run %s)", cfg.Sync.Schedule, sched.Next())
	} else {
		logger.Info(ctx, "Scheduler disabled")
	}

	// 6. Slack Events API
	var slackHandler slackDelivery.Handler
	if cfg.Webhook.Enabled {
		security := webhook.NewSecurityValidator(webhook.SecurityConfig{
			SigningSecret:   cfg.Slack.SigningSecret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		})
		slackHandler = slackDelivery.New(logger, uc, security, cfg.Slack.ChannelID)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		InternalKey:  cfg.HTTPServer.InternalKey,
		StoreBackend: cfg.Store.Backend,
		LeaveHandler: leaveHTTP.New(logger, uc, leaveApp.Dates.Location()),
		SlackHandler: slackHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	if sched != nil {
		if err := sched.Stop(context.Background()); err != nil {
			logger.Warnf(context.Background(), "Scheduler stop: %v", err)
		}
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
