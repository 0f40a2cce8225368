package handler

import (
	"context"
	"errors"
	"testing"

	"SurveyBot/model"
	"SurveyBot/repo"
	"SurveyBot/survey"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessenger struct {
	sent     []*bot.SendMessageParams
	edited   []*bot.EditMessageTextParams
	answered []*bot.AnswerCallbackQueryParams
	editErr  error
}

func (f *fakeMessenger) SendMessage(_ context.Context, p *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, p)
	return &models.Message{}, nil
}

func (f *fakeMessenger) EditMessageText(_ context.Context, p *bot.EditMessageTextParams) (*models.Message, error) {
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edited = append(f.edited, p)
	return &models.Message{}, nil
}

func (f *fakeMessenger) AnswerCallbackQuery(_ context.Context, p *bot.AnswerCallbackQueryParams) (bool, error) {
	f.answered = append(f.answered, p)
	return true, nil
}

type nopPersister struct {
	err   error
	count int
}

func (n *nopPersister) Persist(context.Context, model.Record) error {
	if n.err != nil {
		return n.err
	}
	n.count++
	return nil
}

const userID int64 = 42

func textUpdate(text string) *models.Update {
	return &models.Update{Message: &models.Message{
		ID:   1,
		From: &models.User{ID: userID, Username: "user42"},
		Chat: models.Chat{ID: userID},
		Text: text,
	}}
}

func contactUpdate(phone string) *models.Update {
	return &models.Update{Message: &models.Message{
		ID:      2,
		From:    &models.User{ID: userID, Username: "user42"},
		Chat:    models.Chat{ID: userID},
		Contact: &models.Contact{PhoneNumber: phone, UserID: userID},
	}}
}

func callbackUpdate(data string) *models.Update {
	return &models.Update{CallbackQuery: &models.CallbackQuery{
		ID:   "cb-" + data,
		From: models.User{ID: userID, Username: "user42"},
		Data: data,
		Message: models.MaybeInaccessibleMessage{
			Message: &models.Message{ID: 99, Chat: models.Chat{ID: userID}},
		},
	}}
}

func newTestHandler(p survey.Persister) (*SurveyBotHandler, *repo.SessionStore) {
	sessions := repo.NewSessionStore()
	return NewSurveyBotHandler(survey.NewService(sessions, p)), sessions
}

func TestIsStartCommand(t *testing.T) {
	t.Parallel()
	assert.True(t, isStartCommand("/start"))
	assert.True(t, isStartCommand("/start@survey_bot"))
	assert.True(t, isStartCommand("  /start payload"))
	assert.False(t, isStartCommand("/startle"))
	assert.False(t, isStartCommand("start"))
	assert.False(t, isStartCommand(""))
}

func TestHandler_StartSendsLanguageKeyboard(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(&nopPersister{})
	m := &fakeMessenger{}

	h.handle(context.Background(), m, textUpdate("/start"))

	require.Len(t, m.sent, 1)
	assert.Equal(t, userID, m.sent[0].ChatID)
	kb, ok := m.sent[0].ReplyMarkup.(*models.ReplyKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.Keyboard, 1)
	assert.Len(t, kb.Keyboard[0], 3)
}

func TestHandler_ContactFlow(t *testing.T) {
	t.Parallel()
	h, sessions := newTestHandler(&nopPersister{})
	m := &fakeMessenger{}

	h.handle(context.Background(), m, textUpdate("en"))
	require.Len(t, m.sent, 1)
	kb, ok := m.sent[0].ReplyMarkup.(*models.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.True(t, kb.Keyboard[0][0].RequestContact)

	h.handle(context.Background(), m, contactUpdate("+998901234567"))
	require.Len(t, m.sent, 2)
	assert.Equal(t, "Enter your first name:", m.sent[1].Text)
	assert.IsType(t, &models.ReplyKeyboardRemove{}, m.sent[1].ReplyMarkup)

	sess, ok := sessions.Get(userID)
	require.True(t, ok)
	assert.Equal(t, "+998901234567", sess.Answers.Phone)
}

func driveToEmployment(t *testing.T, h *SurveyBotHandler, m *fakeMessenger) {
	t.Helper()
	h.handle(context.Background(), m, textUpdate("en"))
	h.handle(context.Background(), m, contactUpdate("+998901234567"))
	h.handle(context.Background(), m, textUpdate("John"))
	h.handle(context.Background(), m, textUpdate("Doe"))
	h.handle(context.Background(), m, textUpdate("SE12345"))
}

func TestHandler_SelectionEditsMessage(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(&nopPersister{})
	m := &fakeMessenger{}
	driveToEmployment(t, h, m)
	last := m.sent[len(m.sent)-1]
	menu, ok := last.ReplyMarkup.(*models.InlineKeyboardMarkup)
	require.True(t, ok)
	assert.Equal(t, "employed:yes", menu.InlineKeyboard[0][0].CallbackData)

	h.handle(context.Background(), m, callbackUpdate("employed:no"))

	require.Len(t, m.edited, 1)
	assert.Equal(t, 99, m.edited[0].MessageID)
	assert.Equal(t, "Do you agree to share your details with employers?", m.edited[0].Text)
	require.Len(t, m.answered, 1)
	assert.False(t, m.answered[0].ShowAlert)
}

func TestHandler_MalformedSelectionIsSilent(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(&nopPersister{})
	m := &fakeMessenger{}
	driveToEmployment(t, h, m)
	sent := len(m.sent)

	h.handle(context.Background(), m, callbackUpdate("employed:perhaps"))
	h.handle(context.Background(), m, callbackUpdate("garbage"))
	h.handle(context.Background(), m, textUpdate("yes"))

	assert.Len(t, m.sent, sent)
	assert.Empty(t, m.edited)
	assert.Empty(t, m.answered)
}

func TestHandler_InvalidRatingAlerts(t *testing.T) {
	t.Parallel()
	h, sessions := newTestHandler(&nopPersister{})
	m := &fakeMessenger{}
	driveToEmployment(t, h, m)
	h.handle(context.Background(), m, callbackUpdate("employed:no"))
	h.handle(context.Background(), m, callbackUpdate("share:yes"))
	h.handle(context.Background(), m, callbackUpdate("region:navoiy"))
	answered := len(m.answered)

	h.handle(context.Background(), m, callbackUpdate("rating:9"))

	require.Len(t, m.answered, answered+1)
	alert := m.answered[len(m.answered)-1]
	assert.True(t, alert.ShowAlert)
	assert.Equal(t, "Please choose a rating from 1 to 5.", alert.Text)
	sess, _ := sessions.Get(userID)
	assert.Equal(t, model.StateAwaitingRating, sess.State)
}

func TestHandler_EditFallsBackToSend(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler(&nopPersister{})
	m := &fakeMessenger{}
	driveToEmployment(t, h, m)
	m.editErr = errors.New("message is too old")
	sent := len(m.sent)

	h.handle(context.Background(), m, callbackUpdate("employed:yes"))

	require.Len(t, m.sent, sent+1)
	assert.Equal(t, "Enter your workplace:", m.sent[sent].Text)
}

func TestHandler_PersistFailureSendsNothing(t *testing.T) {
	t.Parallel()
	p := &nopPersister{err: errors.New("sheets down")}
	h, sessions := newTestHandler(p)
	m := &fakeMessenger{}
	driveToEmployment(t, h, m)
	h.handle(context.Background(), m, callbackUpdate("employed:yes"))
	h.handle(context.Background(), m, textUpdate("Acme"))
	h.handle(context.Background(), m, textUpdate("Developer"))
	h.handle(context.Background(), m, callbackUpdate("region:toshkent_shahri"))
	h.handle(context.Background(), m, callbackUpdate("rating:5"))
	h.handle(context.Background(), m, callbackUpdate("recommend:absolutely"))
	sent := len(m.sent)

	h.handle(context.Background(), m, textUpdate("More labs"))

	assert.Len(t, m.sent, sent)
	sess, ok := sessions.Get(userID)
	require.True(t, ok)
	assert.Equal(t, model.StateAwaitingImprovement, sess.State)

	p.err = nil
	h.handle(context.Background(), m, textUpdate("More labs"))
	require.Len(t, m.sent, sent+1)
	assert.Equal(t, "Thank you! Your answers have been saved.", m.sent[sent].Text)
	assert.Equal(t, 1, p.count)
}

func TestReplyMarkup_RegionLayout(t *testing.T) {
	t.Parallel()
	p := survey.NewMachine().Prompt(model.StateAwaitingRegion, "en")

	menu, ok := replyMarkup(p).(*models.InlineKeyboardMarkup)
	require.True(t, ok)

	var sizes []int
	for _, row := range menu.InlineKeyboard {
		sizes = append(sizes, len(row))
	}
	assert.Equal(t, []int{2, 3, 3, 3, 3, 1}, sizes)
	assert.Equal(t, "region:toshkent_shahri", menu.InlineKeyboard[0][0].CallbackData)
}

func TestEditMarkup_FreeTextHasNoKeyboard(t *testing.T) {
	t.Parallel()
	p := survey.NewMachine().Prompt(model.StateAwaitingWorkplace, "en")

	assert.Nil(t, editMarkup(p))
}
