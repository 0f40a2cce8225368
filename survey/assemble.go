package survey

import (
	"strings"
	"time"

	"SurveyBot/i18n"
	"SurveyBot/model"
)

// Assemble flattens a finished session into a record. It has no side effects; the capture
// instant is supplied by the caller.
func Assemble(a model.Answers, userID int64, username string, capturedAt time.Time) model.Record {
	lang := a.Language
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	return model.Record{
		CapturedAt:        capturedAt.UTC(),
		UserID:            userID,
		Username:          username,
		Language:          lang,
		Phone:             FormatPhone(a.Phone),
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		StudentID:         a.StudentID,
		Employed:          model.FlagOf(a.Employed),
		Workplace:         a.Workplace,
		Position:          a.Position,
		ShareWithEmployer: model.FlagOf(a.ShareWithEmployer),
		Region:            a.Region,
		Rating:            a.Rating,
		Recommendation:    DecodeRecommendation(a.Recommendation),
		Improvement:       a.Improvement,
	}
}

// DecodeRecommendation maps a recommendation answer, including its Uzbek spellings, to a
// canonical code. Unknown values pass through untouched.
func DecodeRecommendation(value string) model.Recommendation {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "ha":
		return model.RecommendYes
	case "no", "yoq", "yo‘q", "yo'q":
		return model.RecommendNo
	case "absolutely", "albatta":
		return model.RecommendAbsolutely
	}
	return model.Recommendation(value)
}
