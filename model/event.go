package model

// State names a step of the survey conversation.
type State string

const (
	StateAwaitingLanguage       State = "awaiting_language"
	StateAwaitingContact        State = "awaiting_contact"
	StateAwaitingFirstName      State = "awaiting_first_name"
	StateAwaitingLastName       State = "awaiting_last_name"
	StateAwaitingStudentID      State = "awaiting_student_id"
	StateAwaitingEmployment     State = "awaiting_employment"
	StateAwaitingWorkplace      State = "awaiting_workplace"
	StateAwaitingPosition       State = "awaiting_position"
	StateAwaitingShareConsent   State = "awaiting_share_consent"
	StateAwaitingRegion         State = "awaiting_region"
	StateAwaitingRating         State = "awaiting_rating"
	StateAwaitingRecommendation State = "awaiting_recommendation"
	StateAwaitingImprovement    State = "awaiting_improvement"
)

// States lists every state in question order.
var States = []State{
	StateAwaitingLanguage,
	StateAwaitingContact,
	StateAwaitingFirstName,
	StateAwaitingLastName,
	StateAwaitingStudentID,
	StateAwaitingEmployment,
	StateAwaitingWorkplace,
	StateAwaitingPosition,
	StateAwaitingShareConsent,
	StateAwaitingRegion,
	StateAwaitingRating,
	StateAwaitingRecommendation,
	StateAwaitingImprovement,
}

// InputKind is the category of an inbound event.
type InputKind int

const (
	InputText InputKind = iota + 1
	InputContact
	InputSelection
	InputRestart
)

func (k InputKind) String() string {
	switch k {
	case InputText:
		return "text"
	case InputContact:
		return "contact"
	case InputSelection:
		return "selection"
	case InputRestart:
		return "restart"
	}
	return "unknown"
}

// Input is one inbound event from the chat transport.
type Input struct {
	Kind InputKind

	Text string

	Phone          string
	ContactOwnerID int64

	// Tag identifies the choice group of a menu selection, e.g. "employed" or "rating".
	Tag   string
	Value string
}

func TextInput(text string) Input {
	return Input{Kind: InputText, Text: text}
}

func ContactInput(phone string, ownerID int64) Input {
	return Input{Kind: InputContact, Phone: phone, ContactOwnerID: ownerID}
}

func SelectionInput(tag, value string) Input {
	return Input{Kind: InputSelection, Tag: tag, Value: value}
}

func RestartInput() Input {
	return Input{Kind: InputRestart}
}
