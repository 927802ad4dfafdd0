package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"glas-taro/internal/deck"
	"glas-taro/internal/i18n"
	"glas-taro/internal/reading"
	"glas-taro/internal/tier"
)

// Bot is the Telegram edge of the service. It translates commands, button
// presses and free text into reading events, and renders the orchestrator's
// replies as messages with inline keyboards. It holds no flow state of its
// own.
type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	orch        *reading.Orchestrator
	texts       *i18n.Manager
	deck        *deck.Deck
	tiers       *tier.Service
	adminUserID int64
}

func New(botToken string, orch *reading.Orchestrator, texts *i18n.Manager, d *deck.Deck, tiers *tier.Service, adminUserID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:         api,
		s:           botAPISender{api: api},
		orch:        orch,
		texts:       texts,
		deck:        d,
		tiers:       tiers,
		adminUserID: adminUserID,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		// A reading can spend half a minute inside a provider call, so
		// updates are handled concurrently. Per-user ordering is
		// enforced by the session store, not here.
		go b.handleUpdate(ctx, update)
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		b.handleMessage(ctx, update.Message)
		return
	}
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID
	b.texts.AutoDetect(userID, msg.From.LanguageCode)

	switch msg.Command() {
	case "start":
		b.send(chatID, b.mainMenu(userID, msg.From.FirstName))
	case "help":
		b.sendText(chatID, b.texts.Text(userID, "help_text"))
	case "reading":
		b.dispatch(ctx, userID, chatID, reading.StartReading{})
	case "daily":
		b.send(chatID, b.orch.DailyCard(ctx, userID))
	case "learn":
		b.send(chatID, b.learnMenu(userID))
	case "language":
		b.send(chatID, b.languageMenu(userID))
	case "cancel":
		b.dispatch(ctx, userID, chatID, reading.Cancel{})
	case "grant", "revoke", "premium":
		if b.adminUserID == 0 || userID != b.adminUserID {
			b.sendText(chatID, b.texts.Text(userID, "help_text"))
			return
		}
		b.handleAdmin(msg)
	case "":
		// Free text is only ever a question for the current reading.
		if b.orch.AwaitingQuestion(userID) {
			b.sendText(chatID, b.texts.Text(userID, "reading_loading"))
		}
		b.dispatch(ctx, userID, chatID, reading.SubmitQuestion{Text: msg.Text})
	default:
		b.sendText(chatID, b.texts.Text(userID, "help_text"))
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil {
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	b.ack(cb)

	data := cb.Data
	switch {
	case data == reading.CallbackStartReading:
		b.dispatch(ctx, userID, chatID, reading.StartReading{})
	case strings.HasPrefix(data, reading.CallbackSpreadPrefix):
		st, err := deck.ParseSpread(data[len(reading.CallbackSpreadPrefix):])
		if err != nil {
			b.sendText(chatID, b.texts.Text(userID, "invalid_selection"))
			return
		}
		b.dispatch(ctx, userID, chatID, reading.SelectSpread{Spread: st})
	case data == reading.CallbackSkipQuestion:
		if b.orch.AwaitingQuestion(userID) {
			b.sendText(chatID, b.texts.Text(userID, "reading_loading"))
		}
		b.dispatch(ctx, userID, chatID, reading.SubmitQuestion{Skip: true})
	case data == reading.CallbackMainMenu:
		b.send(chatID, b.mainMenu(userID, cb.From.FirstName))
	case data == reading.CallbackDailyCard:
		b.send(chatID, b.orch.DailyCard(ctx, userID))
	case data == reading.CallbackLearn:
		b.send(chatID, b.learnMenu(userID))
	case data == reading.CallbackLearnMajor:
		b.send(chatID, b.cardList(userID, deck.ArcanaMajor))
	case data == reading.CallbackLearnMinor:
		b.send(chatID, b.cardList(userID, deck.ArcanaMinor))
	case strings.HasPrefix(data, reading.CallbackCardPrefix):
		b.send(chatID, b.orch.Explain(ctx, userID, data[len(reading.CallbackCardPrefix):]))
	case data == reading.CallbackLanguage:
		b.send(chatID, b.languageMenu(userID))
	case strings.HasPrefix(data, reading.CallbackLangPrefix):
		lang := i18n.Lang(data[len(reading.CallbackLangPrefix):])
		if !b.texts.SetUserLanguage(userID, lang) {
			b.sendText(chatID, b.texts.Text(userID, "invalid_selection"))
			return
		}
		b.sendText(chatID, b.texts.Text(userID, "language_changed"))
	default:
		log.Printf("unknown callback %q from user %d", data, userID)
	}
}

func (b *Bot) dispatch(ctx context.Context, userID, chatID int64, ev reading.Event) {
	b.send(chatID, b.orch.HandleEvent(ctx, userID, ev))
}

func (b *Bot) send(chatID int64, resp reading.Response) {
	msg := tgbotapi.NewMessage(chatID, resp.Text)
	if len(resp.Buttons) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(resp.Buttons))
		for _, row := range resp.Buttons {
			btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
			for _, btn := range row {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Data))
			}
			rows = append(rows, btns)
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(chatID, reading.Response{Text: text})
}

func (b *Bot) ack(cb *tgbotapi.CallbackQuery) {
	if b.api == nil {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}
