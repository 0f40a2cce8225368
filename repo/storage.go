package repo

import (
	"context"

	"SurveyBot/model"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// Submission is one rendered survey row plus an id that is unique per persist call.
type Submission struct {
	ID  string
	Row []string
}

// Sink receives submissions.
type Sink interface {
	Append(ctx context.Context, s Submission) error
}

// SurveyStorage writes records to the primary sink and then to any backups. Only the primary
// can fail a persist; backup failures are logged.
type SurveyStorage struct {
	primary Sink
	backups []Sink
	labels  model.Labels
}

func NewSurveyStorage(primary Sink, labels model.Labels, backups ...Sink) *SurveyStorage {
	return &SurveyStorage{
		primary: primary,
		backups: backups,
		labels:  labels,
	}
}

func (s *SurveyStorage) Persist(ctx context.Context, rec model.Record) error {
	sub := Submission{
		ID:  ulid.Make().String(),
		Row: rec.Values(s.labels),
	}

	if err := s.primary.Append(ctx, sub); err != nil {
		return err
	}
	log.Info().Str("submission_id", sub.ID).Int64("user_id", rec.UserID).Msg("survey row appended")

	for _, b := range s.backups {
		if err := b.Append(ctx, sub); err != nil {
			log.Warn().Err(err).Str("submission_id", sub.ID).Msgf("backup %T failed", b)
		}
	}
	return nil
}
