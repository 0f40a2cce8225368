package survey_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"SurveyBot/i18n"
	"SurveyBot/model"
	"SurveyBot/repo"
	"SurveyBot/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	records []model.Record
	err     error
}

func (f *fakePersister) Persist(_ context.Context, rec model.Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func fullSurvey() []model.Input {
	return []model.Input{
		model.RestartInput(),
		model.TextInput("en"),
		model.ContactInput("+998901234567", 42),
		model.TextInput("John"),
		model.TextInput("Doe"),
		model.TextInput("SE12345"),
		model.SelectionInput(survey.TagEmployed, "yes"),
		model.TextInput("Acme"),
		model.TextInput("Developer"),
		model.SelectionInput(survey.TagRegion, "toshkent_shahri"),
		model.SelectionInput(survey.TagRating, "5"),
		model.SelectionInput(survey.TagRecommend, "absolutely"),
		model.TextInput("More labs"),
	}
}

func send(t *testing.T, svc *survey.Service, inputs ...model.Input) (model.Step, error) {
	t.Helper()
	var (
		step model.Step
		err  error
	)
	for _, in := range inputs {
		step, err = svc.Handle(context.Background(), survey.Event{UserID: 42, Username: "user42", Input: in})
		if err != nil {
			return step, err
		}
	}
	return step, nil
}

func TestService_EndToEnd(t *testing.T) {
	t.Parallel()
	sessions := repo.NewSessionStore()
	persister := &fakePersister{}
	svc := survey.NewService(sessions, persister, survey.WithClock(fixedClock))

	step, err := send(t, svc, fullSurvey()...)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeCompleted, step.Outcome)
	assert.Equal(t, "Thank you! Your answers have been saved.", step.Prompt.Text)
	require.Len(t, persister.records, 1)
	assert.Equal(t, []string{
		"2024-01-02", "03:04:05", "42", "user42", "en", "+998 90 123 45 67",
		"John", "Doe", "SE12345", "Ha", "Acme", "Developer", "",
		"Toshkent shahri", "5", "Albatta", "More labs",
	}, persister.records[0].Values(i18n.StoreLabels()))

	_, ok := sessions.Get(42)
	assert.False(t, ok, "session should be cleared after persisting")
}

func TestService_PersistFailureKeepsSession(t *testing.T) {
	t.Parallel()
	sessions := repo.NewSessionStore()
	persister := &fakePersister{err: errors.New("sheets down")}
	svc := survey.NewService(sessions, persister, survey.WithClock(fixedClock))

	step, err := send(t, svc, fullSurvey()...)

	require.Error(t, err)
	assert.ErrorContains(t, err, "sheets down")
	assert.Nil(t, step.Prompt)
	sess, ok := sessions.Get(42)
	require.True(t, ok)
	assert.Equal(t, model.StateAwaitingImprovement, sess.State)
	assert.Equal(t, "More labs", sess.Answers.Improvement)

	persister.err = nil
	step, err = send(t, svc, model.TextInput("More labs, again"))
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeCompleted, step.Outcome)
	require.Len(t, persister.records, 1)
	assert.Equal(t, "More labs, again", persister.records[0].Improvement)
}

func TestService_UnemployedRecord(t *testing.T) {
	t.Parallel()
	persister := &fakePersister{}
	svc := survey.NewService(repo.NewSessionStore(), persister, survey.WithClock(fixedClock))

	_, err := send(t, svc,
		model.TextInput("uz"),
		model.ContactInput("901234567", 42),
		model.TextInput("Ali"),
		model.TextInput("Valiyev"),
		model.TextInput("ID1"),
		model.SelectionInput(survey.TagEmployed, "no"),
		model.SelectionInput(survey.TagShare, "yes"),
		model.SelectionInput(survey.TagRegion, "andijon"),
		model.SelectionInput(survey.TagRating, "3"),
		model.SelectionInput(survey.TagRecommend, "no"),
		model.TextInput(""),
	)
	require.NoError(t, err)

	require.Len(t, persister.records, 1)
	rec := persister.records[0]
	assert.Equal(t, model.FlagNo, rec.Employed)
	assert.Empty(t, rec.Workplace)
	assert.Empty(t, rec.Position)
	assert.Equal(t, model.FlagYes, rec.ShareWithEmployer)
	assert.Equal(t, "Andijon viloyati", rec.Region)
	assert.Equal(t, model.RecommendNo, rec.Recommendation)
}

func TestService_RestartMidway(t *testing.T) {
	t.Parallel()
	sessions := repo.NewSessionStore()
	svc := survey.NewService(sessions, &fakePersister{})

	_, err := send(t, svc, model.TextInput("ru"), model.ContactInput("+998901234567", 42), model.TextInput("Ivan"))
	require.NoError(t, err)
	sess, ok := sessions.Get(42)
	require.True(t, ok)
	require.Equal(t, model.StateAwaitingLastName, sess.State)

	step, err := send(t, svc, model.RestartInput())
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeRestarted, step.Outcome)
	_, ok = sessions.Get(42)
	assert.False(t, ok)
}
