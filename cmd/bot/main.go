package main

import (
	"time"

	"github.com/havenlink/haven-bot/internal/bot"
	"github.com/havenlink/haven-bot/internal/engine"
	"github.com/havenlink/haven-bot/internal/resources"
	"github.com/havenlink/haven-bot/internal/session"
	"github.com/havenlink/haven-bot/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	// Initialize resource storage and conversation log
	var (
		resourceStore resources.Store
		conversations engine.ConversationLog
	)
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory resource storage")
		resourceStore = resources.NewMemoryStore()
		conversations = engine.NopLog{}
	} else {
		logger.Info("Using PostgreSQL resource storage")
		pg, err := resources.NewPostgresStore(resources.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize resource storage", zap.Error(err))
		}
		resourceStore = pg
		conversations = pg
	}
	defer resourceStore.Close()

	// Initialize session storage
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		logger.Info("Using Redis session storage", zap.String("addr", cfg.Redis.Addr))
		sessions, err = session.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, sessionTTL, logger)
		if err != nil {
			logger.Fatal("Failed to initialize session storage", zap.Error(err))
		}
	} else {
		logger.Info("Using in-memory session storage")
		sessions = session.NewMemoryStore(sessionTTL)
	}
	defer sessions.Close()

	// Initialize the conversational engine
	eng := engine.New(sessions, resourceStore, conversations, logger)

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, eng, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
