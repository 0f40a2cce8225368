package survey

import (
	"context"
	"fmt"
	"time"

	"SurveyBot/model"

	"github.com/rs/zerolog/log"
)

// SessionStore gives exclusive access to one user's session for the duration of fn.
type SessionStore interface {
	With(userID int64, fn func(sess *model.Session) error) error
}

// Persister stores a finished record.
type Persister interface {
	Persist(ctx context.Context, rec model.Record) error
}

// Event is an inbound input together with who sent it.
type Event struct {
	UserID   int64
	Username string
	Input    model.Input
}

type Service struct {
	machine   *Machine
	sessions  SessionStore
	persister Persister
	now       func() time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(sessions SessionStore, persister Persister, opts ...Option) *Service {
	s := &Service{
		machine:   NewMachine(),
		sessions:  sessions,
		persister: persister,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle applies one event to the sender's session. A completed survey is assembled and
// persisted before the session is reset; if persisting fails the error is returned and the
// session stays on the last question.
func (s *Service) Handle(ctx context.Context, ev Event) (model.Step, error) {
	var step model.Step
	err := s.sessions.With(ev.UserID, func(sess *model.Session) error {
		from := sess.State
		var err error
		step, err = s.machine.Apply(ctx, sess, ev.Input)
		if err != nil {
			return err
		}
		log.Debug().
			Int64("user_id", ev.UserID).
			Str("input", ev.Input.Kind.String()).
			Str("from", string(from)).
			Str("to", string(sess.State)).
			Stringer("outcome", step.Outcome).
			Msg("survey step")

		if step.Outcome != model.OutcomeCompleted {
			return nil
		}
		rec := Assemble(sess.Answers, ev.UserID, ev.Username, s.now())
		if err := s.persister.Persist(ctx, rec); err != nil {
			return fmt.Errorf("error persisting survey of user %d: %w", ev.UserID, err)
		}
		sess.Reset()
		log.Info().Int64("user_id", ev.UserID).Msg("survey completed")
		return nil
	})
	if err != nil {
		return model.Step{}, err
	}
	return step, nil
}
