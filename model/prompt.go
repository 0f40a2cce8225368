package model

// InputHint tells the transport which kind of answer widget to render.
type InputHint int

const (
	HintFreeText InputHint = iota
	HintRequestContact
	HintKeyboard // reply keyboard, the pressed label comes back as text
	HintMenu     // inline buttons, the pressed option comes back as a selection
)

// Option is a single button. Data is only set for menu options and has the form "tag:value".
type Option struct {
	Label string
	Data  string
}

// Prompt is an outbound question or notice.
type Prompt struct {
	Text    string
	Hint    InputHint
	Options []Option
	// Layout gives the number of buttons per row; the last entry repeats.
	Layout []int
}

// Rows splits the options according to Layout.
func (p Prompt) Rows() [][]Option {
	if len(p.Options) == 0 {
		return nil
	}
	var rows [][]Option
	rest := p.Options
	for i := 0; len(rest) > 0; i++ {
		size := len(rest)
		if len(p.Layout) > 0 {
			size = p.Layout[min(i, len(p.Layout)-1)]
		}
		if size <= 0 || size > len(rest) {
			size = len(rest)
		}
		rows = append(rows, rest[:size])
		rest = rest[size:]
	}
	return rows
}

// Outcome classifies what a single input did to a session.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeAdvanced
	OutcomeReprompted
	OutcomeRejected
	OutcomeCompleted
	OutcomeRestarted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeReprompted:
		return "reprompted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCompleted:
		return "completed"
	case OutcomeRestarted:
		return "restarted"
	}
	return "unknown"
}

// Step is the result of feeding one input to the state machine.
type Step struct {
	Outcome Outcome
	// Prompt is the next message for the user, nil when nothing is sent.
	Prompt *Prompt
	// Alert is set on validation failures.
	Alert string
}
