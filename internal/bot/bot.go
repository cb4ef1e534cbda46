package bot

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/havenlink/haven-bot/internal/dialogue"
	"github.com/havenlink/haven-bot/internal/engine"
	"go.uber.org/zap"
)

// Bot is the Telegram transport: it maps chat ids to session ids and hands
// every message to the engine. It holds no dialogue logic of its own.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *engine.Engine
	logger *zap.Logger
}

func New(token string, eng *engine.Engine, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:    api,
		engine: eng,
		logger: logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	text := message.Text
	if text == "" {
		return
	}

	sessionID := strconv.FormatInt(message.Chat.ID, 10)

	reply, err := b.engine.Respond(ctx, text, sessionID)
	if err != nil {
		b.logger.Error("Failed to handle message",
			zap.Error(err),
			zap.String("session_id", sessionID))
		b.sendMessage(message.Chat.ID, "Sorry, something went wrong on my end. Please try again.")
		return
	}

	b.sendMessage(message.Chat.ID, reply)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.sendMessage(message.Chat.ID, dialogue.WelcomeText())
	case "help":
		b.sendMessage(message.Chat.ID, dialogue.MainMenuText())
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see what I can do.")
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
