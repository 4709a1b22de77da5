package responder

type IResponder interface {
	Respond(message string) string
	Classify(message string) Intent
}

type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentBookLookup Intent = "book_lookup"
	IntentSubject    Intent = "subject"
	IntentHelp       Intent = "help"
	IntentStudy      Intent = "study"
	IntentFallback   Intent = "fallback"
)

// SubjectAlias maps a short subject keyword to exact catalog titles.
type SubjectAlias struct {
	Keyword string
	Titles  []string
}
