package responder

import (
	"edushelf/internal/entity"
	"edushelf/pkg/catalog"
	"strings"
)

// Responder maps a user utterance to a canned reply. It holds no mutable
// state and is safe for concurrent use.
type Responder struct {
	catalog catalog.ICatalog
	aliases []SubjectAlias
}

func New(c catalog.ICatalog, aliases []SubjectAlias) IResponder {
	return &Responder{
		catalog: c,
		aliases: aliases,
	}
}

func NewDefault() IResponder {
	return New(catalog.Default(), DefaultAliases)
}

// Respond runs the rule cascade in fixed order: greeting, book lookup,
// subject alias, help, study advice, fallback. The first match wins.
func (r *Responder) Respond(message string) string {
	text := normalize(message)

	if containsAny(text, greetingPhrases) {
		return GreetingText
	}

	if containsAny(text, bookTriggers) {
		found := r.catalog.Match(text)
		if len(found) > 0 {
			return renderRecommendations(found)
		}
		return renderCatalog(r.catalog.ListAll())
	}

	if alias, ok := r.matchAlias(text); ok {
		books := make([]entity.Book, 0, len(alias.Titles))
		for _, title := range alias.Titles {
			books = append(books, r.catalog.MustFindByTitle(title))
		}
		return renderSubject(alias.Keyword, books)
	}

	if containsAny(text, helpTriggers) {
		return HelpText
	}

	if containsAny(text, studyTriggers) {
		return StudyTipsText
	}

	return FallbackText
}

// Classify reports which rule Respond would apply to message.
func (r *Responder) Classify(message string) Intent {
	text := normalize(message)

	switch {
	case containsAny(text, greetingPhrases):
		return IntentGreeting
	case containsAny(text, bookTriggers):
		return IntentBookLookup
	}

	if _, ok := r.matchAlias(text); ok {
		return IntentSubject
	}

	switch {
	case containsAny(text, helpTriggers):
		return IntentHelp
	case containsAny(text, studyTriggers):
		return IntentStudy
	default:
		return IntentFallback
	}
}

func (r *Responder) matchAlias(text string) (SubjectAlias, bool) {
	for _, alias := range r.aliases {
		if strings.Contains(text, alias.Keyword) {
			return alias, true
		}
	}
	return SubjectAlias{}, false
}

func normalize(message string) string {
	return catalog.Fold(message)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
