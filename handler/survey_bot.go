package handler

import (
	"context"
	"strings"

	"SurveyBot/model"
	"SurveyBot/survey"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// Messenger is the subset of *bot.Bot the survey uses.
type Messenger interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

// Dispatcher applies an event to the sender's survey session.
type Dispatcher interface {
	Handle(ctx context.Context, ev survey.Event) (model.Step, error)
}

type SurveyBotHandler struct {
	service Dispatcher
}

func NewSurveyBotHandler(service Dispatcher) *SurveyBotHandler {
	return &SurveyBotHandler{
		service: service,
	}
}

// Handler is registered as the bot's default handler.
func (h *SurveyBotHandler) Handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h *SurveyBotHandler) handle(ctx context.Context, m Messenger, update *models.Update) {
	switch {
	case update.Message != nil:
		h.handleMessage(ctx, m, update.Message)
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, m, update.CallbackQuery)
	}
}

func (h *SurveyBotHandler) handleMessage(ctx context.Context, m Messenger, msg *models.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID

	step, err := h.service.Handle(ctx, survey.Event{
		UserID:   userID,
		Username: msg.From.Username,
		Input:    messageInput(msg),
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("error handling message")
		return
	}
	if step.Prompt == nil {
		return
	}

	_, err = m.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        step.Prompt.Text,
		ReplyMarkup: replyMarkup(step.Prompt),
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("error sending message")
	}
}

func (h *SurveyBotHandler) handleCallback(ctx context.Context, m Messenger, q *models.CallbackQuery) {
	userID := q.From.ID
	tag, value := survey.ParseSelection(q.Data)

	step, err := h.service.Handle(ctx, survey.Event{
		UserID:   userID,
		Username: q.From.Username,
		Input:    model.SelectionInput(tag, value),
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("error handling selection")
		return
	}

	switch step.Outcome {
	case model.OutcomeIgnored:
		log.Debug().Int64("user_id", userID).Str("data", q.Data).Msg("selection dropped")
		return
	case model.OutcomeRejected:
		answerCallback(ctx, m, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: q.ID,
			Text:            step.Alert,
			ShowAlert:       true,
		})
		return
	}

	if step.Prompt != nil {
		replaceMessage(ctx, m, q, step.Prompt)
	}
	answerCallback(ctx, m, &bot.AnswerCallbackQueryParams{CallbackQueryID: q.ID})
}

// replaceMessage swaps the message holding the pressed keyboard for the next prompt, falling
// back to a new message when the original is no longer accessible.
func replaceMessage(ctx context.Context, m Messenger, q *models.CallbackQuery, p *model.Prompt) {
	if msg := q.Message.Message; msg != nil {
		_, err := m.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      msg.Chat.ID,
			MessageID:   msg.ID,
			Text:        p.Text,
			ReplyMarkup: editMarkup(p),
		})
		if err == nil {
			return
		}
		log.Warn().Err(err).Int64("user_id", q.From.ID).Msg("error editing message, sending a new one")
	}

	_, err := m.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      q.From.ID,
		Text:        p.Text,
		ReplyMarkup: replyMarkup(p),
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", q.From.ID).Msg("error sending message")
	}
}

func answerCallback(ctx context.Context, m Messenger, params *bot.AnswerCallbackQueryParams) {
	if _, err := m.AnswerCallbackQuery(ctx, params); err != nil {
		log.Error().Err(err).Msg("error answering callback query")
	}
}

func messageInput(msg *models.Message) model.Input {
	if msg.Contact != nil {
		return model.ContactInput(msg.Contact.PhoneNumber, msg.Contact.UserID)
	}
	if isStartCommand(msg.Text) {
		return model.RestartInput()
	}
	return model.TextInput(msg.Text)
}

// isStartCommand accepts "/start", "/start@botname" and "/start <payload>".
func isStartCommand(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return cmd == "/start"
}
