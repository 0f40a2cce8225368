package model

import (
	"strconv"
	"time"
)

// Header is the column order of the survey sheet. Rows produced by Record.Values follow it.
var Header = []string{
	"date",
	"time",
	"telegram_user_id",
	"telegram_username",
	"language",
	"phone",
	"first_name",
	"last_name",
	"student_university_id",
	"is_employed",
	"work_place",
	"position",
	"share_with_employer",
	"region",
	"uni_rating",
	"recommend_answer",
	"uni_improvement_suggestions",
}

// Flag is a yes/no answer that may also be absent.
type Flag int

const (
	FlagUnset Flag = iota
	FlagYes
	FlagNo
)

func FlagOf(v *bool) Flag {
	switch {
	case v == nil:
		return FlagUnset
	case *v:
		return FlagYes
	default:
		return FlagNo
	}
}

// Recommendation holds a canonical answer code, or the raw value when it could not be decoded.
type Recommendation string

const (
	RecommendYes        Recommendation = "yes"
	RecommendNo         Recommendation = "no"
	RecommendAbsolutely Recommendation = "absolutely"
)

// Labels are the display strings used when rendering a record.
type Labels struct {
	Yes        string
	No         string
	Absolutely string
}

// Record is a finished survey ready to be stored.
type Record struct {
	CapturedAt        time.Time
	UserID            int64
	Username          string
	Language          string
	Phone             string
	FirstName         string
	LastName          string
	StudentID         string
	Employed          Flag
	Workplace         string
	Position          string
	ShareWithEmployer Flag
	Region            string
	Rating            string
	Recommendation    Recommendation
	Improvement       string
}

// Values renders the record in Header order.
func (r Record) Values(l Labels) []string {
	at := r.CapturedAt.UTC()
	return []string{
		at.Format("2006-01-02"),
		at.Format("15:04:05"),
		strconv.FormatInt(r.UserID, 10),
		r.Username,
		r.Language,
		r.Phone,
		r.FirstName,
		r.LastName,
		r.StudentID,
		l.flag(r.Employed),
		r.Workplace,
		r.Position,
		l.flag(r.ShareWithEmployer),
		r.Region,
		r.Rating,
		l.recommendation(r.Recommendation),
		r.Improvement,
	}
}

func (l Labels) flag(f Flag) string {
	switch f {
	case FlagYes:
		return l.Yes
	case FlagNo:
		return l.No
	}
	return ""
}

func (l Labels) recommendation(r Recommendation) string {
	switch r {
	case RecommendYes:
		return l.Yes
	case RecommendNo:
		return l.No
	case RecommendAbsolutely:
		return l.Absolutely
	}
	return string(r)
}
