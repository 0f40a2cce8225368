package survey

import (
	"context"
	"errors"
	"fmt"

	"SurveyBot/i18n"
	"SurveyBot/model"

	"github.com/looplab/fsm"
)

const (
	eventLanguageChosen  = "language_chosen"
	eventContactShared   = "contact_shared"
	eventFirstNameGiven  = "first_name_given"
	eventLastNameGiven   = "last_name_given"
	eventStudentIDGiven  = "student_id_given"
	eventEmployed        = "employed"
	eventUnemployed      = "unemployed"
	eventWorkplaceGiven  = "workplace_given"
	eventPositionGiven   = "position_given"
	eventShareAnswered   = "share_answered"
	eventRegionChosen    = "region_chosen"
	eventRated           = "rated"
	eventRecommended     = "recommended"
	eventSurveyCompleted = "" // the last answer has no outgoing edge
)

func edge(event string, from, to model.State) fsm.EventDesc {
	return fsm.EventDesc{Name: event, Src: []string{string(from)}, Dst: string(to)}
}

// The employment branch splits after awaiting_employment and both paths meet again at
// awaiting_region.
var flowEvents = fsm.Events{
	edge(eventLanguageChosen, model.StateAwaitingLanguage, model.StateAwaitingContact),
	edge(eventContactShared, model.StateAwaitingContact, model.StateAwaitingFirstName),
	edge(eventFirstNameGiven, model.StateAwaitingFirstName, model.StateAwaitingLastName),
	edge(eventLastNameGiven, model.StateAwaitingLastName, model.StateAwaitingStudentID),
	edge(eventStudentIDGiven, model.StateAwaitingStudentID, model.StateAwaitingEmployment),
	edge(eventEmployed, model.StateAwaitingEmployment, model.StateAwaitingWorkplace),
	edge(eventUnemployed, model.StateAwaitingEmployment, model.StateAwaitingShareConsent),
	edge(eventWorkplaceGiven, model.StateAwaitingWorkplace, model.StateAwaitingPosition),
	edge(eventPositionGiven, model.StateAwaitingPosition, model.StateAwaitingRegion),
	edge(eventShareAnswered, model.StateAwaitingShareConsent, model.StateAwaitingRegion),
	edge(eventRegionChosen, model.StateAwaitingRegion, model.StateAwaitingRating),
	edge(eventRated, model.StateAwaitingRating, model.StateAwaitingRecommendation),
	edge(eventRecommended, model.StateAwaitingRecommendation, model.StateAwaitingImprovement),
}

type stepFunc func(a *model.Answers, in model.Input) (event string, err error)

// rule describes what a state accepts and what an accepted input does.
type rule struct {
	accepts model.InputKind
	tag     string // menu states only
	ask     func(lang string) *model.Prompt
	// retry is sent when a message of the wrong kind arrives; ask is used when nil.
	retry func(lang string) *model.Prompt
	step  stepFunc
}

// Machine drives sessions through the survey. It keeps no state of its own and is safe for
// concurrent use.
type Machine struct {
	rules map[model.State]rule
}

func NewMachine() *Machine {
	return &Machine{rules: map[model.State]rule{
		model.StateAwaitingLanguage: {
			accepts: model.InputText,
			ask: func(string) *model.Prompt {
				return languagePrompt(i18n.T(i18n.DefaultLanguage, "start_choose_language"))
			},
			retry: func(string) *model.Prompt {
				return languagePrompt(i18n.T(i18n.DefaultLanguage, "language_not_supported"))
			},
			step: chooseLanguage,
		},
		model.StateAwaitingContact: {
			accepts: model.InputContact,
			ask:     func(lang string) *model.Prompt { return contactPrompt(lang, "ask_contact") },
			retry:   func(lang string) *model.Prompt { return contactPrompt(lang, "contact_required") },
			step:    shareContact,
		},
		model.StateAwaitingFirstName: freeText("ask_first_name", func(a *model.Answers, s string) string {
			a.FirstName = s
			return eventFirstNameGiven
		}),
		model.StateAwaitingLastName: freeText("ask_last_name", func(a *model.Answers, s string) string {
			a.LastName = s
			return eventLastNameGiven
		}),
		model.StateAwaitingStudentID: freeText("ask_student_id", func(a *model.Answers, s string) string {
			a.StudentID = s
			return eventStudentIDGiven
		}),
		model.StateAwaitingEmployment: {
			accepts: model.InputSelection,
			tag:     TagEmployed,
			ask:     func(lang string) *model.Prompt { return yesNoPrompt(lang, "ask_is_employed", TagEmployed) },
			step:    chooseEmployment,
		},
		model.StateAwaitingWorkplace: freeText("ask_work_place", func(a *model.Answers, s string) string {
			a.Workplace = s
			return eventWorkplaceGiven
		}),
		model.StateAwaitingPosition: freeText("ask_position", func(a *model.Answers, s string) string {
			a.Position = s
			return eventPositionGiven
		}),
		model.StateAwaitingShareConsent: {
			accepts: model.InputSelection,
			tag:     TagShare,
			ask:     func(lang string) *model.Prompt { return yesNoPrompt(lang, "ask_share_with_employer", TagShare) },
			step:    chooseShare,
		},
		model.StateAwaitingRegion: {
			accepts: model.InputSelection,
			tag:     TagRegion,
			ask:     regionPrompt,
			step:    chooseRegion,
		},
		model.StateAwaitingRating: {
			accepts: model.InputSelection,
			tag:     TagRating,
			ask:     ratingPrompt,
			step:    rate,
		},
		model.StateAwaitingRecommendation: {
			accepts: model.InputSelection,
			tag:     TagRecommend,
			ask:     recommendationPrompt,
			step:    recommend,
		},
		model.StateAwaitingImprovement: freeText("ask_uni_improvement", func(a *model.Answers, s string) string {
			a.Improvement = s
			return eventSurveyCompleted
		}),
	}}
}

// Apply feeds one input to the session and reports what happened. The session is only modified
// when the input is accepted or is a restart. An error means the transition table itself is broken.
func (m *Machine) Apply(ctx context.Context, sess *model.Session, in model.Input) (model.Step, error) {
	if in.Kind == model.InputRestart {
		sess.Reset()
		return model.Step{Outcome: model.OutcomeRestarted, Prompt: m.Prompt(sess.State, "")}, nil
	}
	if sess.State == "" {
		sess.State = model.StateAwaitingLanguage
	}
	r, ok := m.rules[sess.State]
	if !ok {
		return model.Step{}, fmt.Errorf("no rule for state %q", sess.State)
	}
	lang := sess.Answers.Language

	if in.Kind != r.accepts {
		// Menus ignore messages and stale button presses are ignored everywhere.
		if in.Kind == model.InputSelection || r.accepts == model.InputSelection {
			return model.Step{Outcome: model.OutcomeIgnored}, nil
		}
		return model.Step{Outcome: model.OutcomeReprompted, Prompt: r.retryPrompt(lang)}, nil
	}
	if r.accepts == model.InputSelection && in.Tag != r.tag {
		return model.Step{Outcome: model.OutcomeIgnored}, nil
	}

	answers := sess.Answers
	event, err := r.step(&answers, in)
	switch {
	case errors.Is(err, model.ErrUnsupportedLanguage):
		return model.Step{Outcome: model.OutcomeReprompted, Prompt: r.retryPrompt(lang)}, nil
	case errors.Is(err, model.ErrInvalidRating):
		return model.Step{Outcome: model.OutcomeRejected, Alert: i18n.T(lang, "invalid_rating")}, nil
	case errors.Is(err, model.ErrInvalidRecommendation):
		return model.Step{Outcome: model.OutcomeRejected, Alert: i18n.T(lang, "invalid_input")}, nil
	case errors.Is(err, model.ErrMalformedSelection):
		return model.Step{Outcome: model.OutcomeIgnored}, nil
	case err != nil:
		return model.Step{}, err
	}

	if event == eventSurveyCompleted {
		sess.Answers = answers
		return model.Step{Outcome: model.OutcomeCompleted, Prompt: textPrompt(answers.Language, "thanks")}, nil
	}

	next, err := m.fire(ctx, sess.State, event)
	if err != nil {
		return model.Step{}, err
	}
	sess.State = next
	sess.Answers = answers
	return model.Step{Outcome: model.OutcomeAdvanced, Prompt: m.Prompt(next, answers.Language)}, nil
}

// Prompt returns the question asked on entering state.
func (m *Machine) Prompt(state model.State, lang string) *model.Prompt {
	r, ok := m.rules[state]
	if !ok {
		return nil
	}
	return r.ask(lang)
}

func (m *Machine) fire(ctx context.Context, from model.State, event string) (model.State, error) {
	flow := fsm.NewFSM(string(from), flowEvents, nil)
	if err := flow.Event(ctx, event); err != nil {
		return from, fmt.Errorf("error firing %s from %s: %w", event, from, err)
	}
	return model.State(flow.Current()), nil
}

func (r rule) retryPrompt(lang string) *model.Prompt {
	if r.retry != nil {
		return r.retry(lang)
	}
	return r.ask(lang)
}

func freeText(key string, store func(a *model.Answers, s string) string) rule {
	return rule{
		accepts: model.InputText,
		ask:     func(lang string) *model.Prompt { return textPrompt(lang, key) },
		step: func(a *model.Answers, in model.Input) (string, error) {
			return store(a, in.Text), nil
		},
	}
}

func chooseLanguage(a *model.Answers, in model.Input) (string, error) {
	lang, ok := ResolveLanguage(in.Text)
	if !ok {
		return "", model.ErrUnsupportedLanguage
	}
	a.Language = lang
	return eventLanguageChosen, nil
}

func shareContact(a *model.Answers, in model.Input) (string, error) {
	a.Phone = in.Phone
	a.ContactOwnerID = in.ContactOwnerID
	return eventContactShared, nil
}

func chooseEmployment(a *model.Answers, in model.Input) (string, error) {
	employed, err := parseYesNo(in.Value)
	if err != nil {
		return "", err
	}
	a.Employed = &employed
	a.ShareWithEmployer = nil
	if employed {
		return eventEmployed, nil
	}
	a.Workplace = ""
	a.Position = ""
	return eventUnemployed, nil
}

func chooseShare(a *model.Answers, in model.Input) (string, error) {
	share, err := parseYesNo(in.Value)
	if err != nil {
		return "", err
	}
	a.ShareWithEmployer = &share
	return eventShareAnswered, nil
}

func chooseRegion(a *model.Answers, in model.Input) (string, error) {
	a.Region = RegionLabel(in.Value)
	return eventRegionChosen, nil
}

func rate(a *model.Answers, in model.Input) (string, error) {
	switch in.Value {
	case "1", "2", "3", "4", "5":
		a.Rating = in.Value
		return eventRated, nil
	}
	return "", model.ErrInvalidRating
}

func recommend(a *model.Answers, in model.Input) (string, error) {
	switch model.Recommendation(in.Value) {
	case model.RecommendYes, model.RecommendNo, model.RecommendAbsolutely:
		a.Recommendation = in.Value
		return eventRecommended, nil
	}
	return "", model.ErrInvalidRecommendation
}

func parseYesNo(v string) (bool, error) {
	switch v {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", model.ErrMalformedSelection, v)
}
