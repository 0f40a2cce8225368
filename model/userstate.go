package model

// Answers holds everything collected so far. Fields stay at their zero value until the
// matching question has been answered.
type Answers struct {
	Language       string
	Phone          string
	ContactOwnerID int64
	FirstName      string
	LastName       string
	StudentID      string
	Employed       *bool
	Workplace      string // only when Employed
	Position       string // only when Employed
	// ShareWithEmployer is only asked when not employed; nil means not applicable.
	ShareWithEmployer *bool
	Region            string
	Rating            string
	Recommendation    string
	Improvement       string
}

// Session is the live progress of one user's conversation.
type Session struct {
	State   State
	Answers Answers
}

func NewSession() Session {
	return Session{State: StateAwaitingLanguage}
}

// Reset drops all answers and returns the session to the language question.
func (s *Session) Reset() {
	*s = NewSession()
}

// IsZero reports whether the session holds no progress at all.
func (s Session) IsZero() bool {
	return (s.State == StateAwaitingLanguage || s.State == "") && s.Answers == (Answers{})
}
