package bot

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"OchiqMuloqot/bot/workflow"
	"OchiqMuloqot/bot/workflow/ui"
	"OchiqMuloqot/entity"
	"OchiqMuloqot/internal/i18n"
	"OchiqMuloqot/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
)

// UserBot is the Telegram transport of the reception dialog. It decodes
// updates, hands them to the coordinator and renders the replies.
type UserBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	texts       *i18n.Resolver
	coordinator *workflow.Coordinator
}

// NewUserBot creates a new user bot instance.
func NewUserBot(botName, apiKey string, texts *i18n.Resolver, log *slog.Logger) (*UserBot, error) {
	bot := &UserBot{
		log:         log.With(sl.Module("userbot")),
		botUsername: botName,
		texts:       texts,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	bot.api = api

	return bot, nil
}

// SetCoordinator wires the dialog coordinator.
func (b *UserBot) SetCoordinator(c *workflow.Coordinator) {
	b.coordinator = c
}

// Api exposes the underlying client for the admin notifier.
func (b *UserBot) Api() *tgbotapi.Bot {
	return b.api
}

// Start registers the bot commands and begins polling for updates.
func (b *UserBot) Start() error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(bot *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Println("an error occurred while handling update:", err.Error())
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("start", b.handleStart))
	dispatcher.AddHandler(handlers.NewCommand("cancel", b.handleCancel))
	dispatcher.AddHandler(handlers.NewCommand("whoami", b.handleWhoami))
	dispatcher.AddHandler(handlers.NewCallback(b.workflowCallbackFilter, b.handleCallback))
	dispatcher.AddHandler(handlers.NewMessage(message.Contact, b.handleContact))
	dispatcher.AddHandler(handlers.NewMessage(b.plainTextFilter, b.handleMessage))

	b.setMyCommands()

	// Start receiving updates
	err := updater.StartPolling(b.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	b.log.Info("user bot started", slog.String("username", b.botUsername))

	// Idle, to keep updates coming in
	updater.Idle()

	return nil
}

func (b *UserBot) setMyCommands() {
	_, err := b.api.SetMyCommands([]tgbotapi.BotCommand{
		{Command: "start", Description: "Boshlash / Старт"},
		{Command: "cancel", Description: "Bekor qilish / Отмена"},
		{Command: "whoami", Description: "User ID ni ko'rish"},
	}, nil)
	if err != nil {
		b.log.Warn("setting bot commands", sl.Err(err))
	}
}

// workflowCallbackFilter filters callbacks that belong to the dialog.
func (b *UserBot) workflowCallbackFilter(cq *tgbotapi.CallbackQuery) bool {
	return workflow.IsWorkflowCallback(cq.Data)
}

// plainTextFilter matches typed answers, leaving commands to their own
// handlers.
func (b *UserBot) plainTextFilter(msg *tgbotapi.Message) bool {
	return message.Text(msg) && !strings.HasPrefix(msg.Text, "/")
}

// handleStart opens a fresh dialog.
func (b *UserBot) handleStart(bot *tgbotapi.Bot, ctx *ext.Context) error {
	if b.coordinator == nil {
		b.log.Warn("coordinator not initialized")
		return nil
	}

	reply := b.coordinator.Start(context.Background(), ctx.EffectiveUser.Id, ctx.EffectiveChat.Id, ctx.EffectiveUser.LanguageCode)
	return b.sendReply(bot, ctx.EffectiveChat.Id, reply)
}

// handleCancel abandons the dialog.
func (b *UserBot) handleCancel(bot *tgbotapi.Bot, ctx *ext.Context) error {
	if b.coordinator == nil {
		return nil
	}

	reply := b.coordinator.Cancel(context.Background(), ctx.EffectiveUser.Id, ctx.EffectiveUser.LanguageCode)
	return b.sendReply(bot, ctx.EffectiveChat.Id, reply)
}

// handleWhoami tells users their Telegram ID, for admin setup.
func (b *UserBot) handleWhoami(bot *tgbotapi.Bot, ctx *ext.Context) error {
	_, err := bot.SendMessage(ctx.EffectiveChat.Id, fmt.Sprintf("Sizning user ID: %d", ctx.EffectiveUser.Id), nil)
	return err
}

// handleCallback handles inline keyboard taps.
func (b *UserBot) handleCallback(bot *tgbotapi.Bot, ctx *ext.Context) error {
	if b.coordinator == nil {
		return nil
	}

	cb := workflow.ParseCallback(ctx.CallbackQuery.Data)
	if cb == nil {
		return nil
	}

	if _, err := ctx.CallbackQuery.Answer(bot, nil); err != nil {
		b.log.Debug("answering callback", sl.Err(err))
	}

	userID := ctx.EffectiveUser.Id
	chatID := ctx.EffectiveChat.Id
	hint := ctx.EffectiveUser.LanguageCode

	var reply workflow.Reply
	switch {
	case cb.IsLang():
		reply = b.coordinator.ChooseLanguage(context.Background(), userID, chatID, cb.LangValue())
	case cb.IsSelect():
		reply = b.coordinator.HandleChoice(context.Background(), userID, chatID, cb.SelectedValue(), hint)
	default:
		return nil
	}

	return b.sendReply(bot, chatID, reply)
}

// handleContact handles the shared phone number.
func (b *UserBot) handleContact(bot *tgbotapi.Bot, ctx *ext.Context) error {
	if b.coordinator == nil {
		return nil
	}

	contact := ctx.EffectiveMessage.Contact
	if contact == nil {
		return nil
	}

	reply := b.coordinator.HandleContact(context.Background(), ctx.EffectiveUser.Id, ctx.EffectiveChat.Id, contact.PhoneNumber, ctx.EffectiveUser.LanguageCode)
	return b.sendReply(bot, ctx.EffectiveChat.Id, reply)
}

// handleMessage handles typed answers.
func (b *UserBot) handleMessage(bot *tgbotapi.Bot, ctx *ext.Context) error {
	if b.coordinator == nil {
		return nil
	}

	reply := b.coordinator.HandleText(context.Background(), ctx.EffectiveUser.Id, ctx.EffectiveChat.Id, ctx.EffectiveMessage.Text, ctx.EffectiveUser.LanguageCode)
	return b.sendReply(bot, ctx.EffectiveChat.Id, reply)
}

// sendReply renders one coordinator reply into a Telegram message.
func (b *UserBot) sendReply(bot *tgbotapi.Bot, chatID int64, reply workflow.Reply) error {
	var opts *tgbotapi.SendMessageOpts

	switch {
	case reply.LanguageSelect:
		opts = &tgbotapi.SendMessageOpts{
			ReplyMarkup: ui.LanguageKeyboard(entity.LanguageUz, entity.LanguageRu),
		}
	case len(reply.Choices) > 0:
		opts = &tgbotapi.SendMessageOpts{
			ReplyMarkup: ui.ChoiceKeyboard(reply.Choices, reply.Lang),
		}
	case reply.Contact:
		opts = &tgbotapi.SendMessageOpts{
			ReplyMarkup: ui.ContactRequestKeyboard(b.texts.Text(reply.Lang, i18n.KeyBtnSendPhone)),
		}
	case reply.ClearKeyboard:
		opts = &tgbotapi.SendMessageOpts{
			ReplyMarkup: ui.RemoveKeyboard(),
		}
	}

	_, err := bot.SendMessage(chatID, reply.Text, opts)
	if err != nil {
		b.log.With(
			slog.Int64("chat_id", chatID),
		).Warn("sending reply", sl.Err(err))
	}
	return err
}
