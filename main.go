package main

import (
	"OchiqMuloqot/bot"
	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/bot/workflows/registration"
	"OchiqMuloqot/impl/core"
	"OchiqMuloqot/internal/config"
	repository "OchiqMuloqot/internal/database"
	"OchiqMuloqot/internal/http-server/api"
	"OchiqMuloqot/internal/i18n"
	"OchiqMuloqot/internal/lib/logger"
	"OchiqMuloqot/internal/lib/sl"
	"OchiqMuloqot/internal/scheduler"
	"OchiqMuloqot/internal/sink"
	"OchiqMuloqot/internal/stats"
	"OchiqMuloqot/internal/ws"
	"context"
	"flag"
	"log/slog"

	"github.com/joho/godotenv"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "", "path to log file, stdout when empty")
	flag.Parse()

	_ = godotenv.Load() // TELEGRAM_TOKEN etc.

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	texts := i18n.NewResolver()

	userBot, err := bot.NewUserBot(conf.Telegram.BotName, conf.Telegram.ApiKey, texts, lg)
	if err != nil {
		lg.Error("failed to initialize telegram bot", sl.Err(err))
		return
	}

	notifier := bot.NewAdminNotifier(userBot.Api(), conf.Telegram.AdminIds, texts, lg)
	if len(conf.Telegram.AdminIds) > 0 {
		lg = logger.SetupTelegramHandler(lg, notifier, slog.LevelWarn)
	}
	lg.With(
		slog.String("bot_name", conf.Telegram.BotName),
	).Info("telegram bot initialized")

	lg.Info("starting ochiq muloqot", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	counters := stats.New()
	registry := workflow.NewRegistry()
	pipeline := registration.NewPipeline(conf.Dialog.Districts, nil)
	machine := workflow.NewMachine(pipeline, texts, lg)

	ctx := context.Background()

	var syncers []sink.Syncer
	if conf.Sheets.Enabled {
		creds, err := sink.Credentials(conf.Sheets.CredentialsJSON, conf.Sheets.CredentialsFile)
		if err != nil {
			lg.With(sl.Err(err)).Error("sheets credentials")
		} else {
			sheetsSync, err := sink.NewSheetsSync(ctx, creds, conf.Sheets.SpreadsheetID, conf.Sheets.Range)
			if err != nil {
				lg.With(sl.Err(err)).Error("sheets client")
			} else {
				syncers = append(syncers, sheetsSync)
				lg.With(
					slog.String("spreadsheet", conf.Sheets.SpreadsheetID),
				).Info("sheets sync initialized")
			}
		}
	}

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		syncers = append(syncers, sink.NewStoreSync("mongo", db))
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	recordSink := sink.New(sink.NewCSVLog(conf.CSV.Path), counters, lg, syncers...)

	coordinator := workflow.NewCoordinator(registry, machine, recordSink, texts, counters, lg)
	coordinator.SetReceipt(registration.Summary)
	coordinator.AddObserver(notifier)

	hub := ws.NewHub(lg)
	go hub.Run()
	coordinator.AddObserver(hub)

	userBot.SetCoordinator(coordinator)
	go func() {
		if err := userBot.Start(); err != nil {
			lg.Error("telegram bot error", sl.Err(err))
		}
	}()

	sched, err := scheduler.Start(lg, scheduler.Options{
		Registry:      registry,
		Counters:      counters,
		SessionTTL:    conf.Dialog.SessionTTL,
		SweepInterval: conf.Dialog.SweepInterval,
		DigestCron:    conf.Dialog.DigestCron,
		Archive:       archiveOrNil(db),
		Notifier:      notifier,
	})
	if err != nil {
		lg.With(sl.Err(err)).Error("scheduler start")
		return
	}
	defer func() { _ = sched.Shutdown() }()

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)
	handler.SetRegistry(registry)
	handler.SetStats(counters)
	if db != nil {
		handler.SetArchive(db)
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}

// archiveOrNil keeps a typed nil *MongoDB out of the Archive
// interface, a nil interface is what disables the digest lookup.
func archiveOrNil(db *repository.MongoDB) scheduler.Archive {
	if db == nil {
		return nil
	}
	return db
}
