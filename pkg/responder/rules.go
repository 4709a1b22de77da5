package responder

const maxRecommendations = 3

var (
	greetingPhrases = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}
	bookTriggers    = []string{"book", "books", "find", "search", "recommend", "suggest"}
	helpTriggers    = []string{"help", "how", "guide", "navigate", "use"}
	studyTriggers   = []string{"study", "learn", "tip", "advice", "exam", "preparation"}
)

// DefaultAliases is evaluated in order; the first keyword found in the
// message wins. Every title must exist in catalog.Default().
var DefaultAliases = []SubjectAlias{
	{Keyword: "math", Titles: []string{"Mathematics I", "Mathematics II"}},
	{Keyword: "programming", Titles: []string{"Programming For Problem Solving"}},
	{Keyword: "english", Titles: []string{"Technical English"}},
	{Keyword: "electronics", Titles: []string{"Signal & System", "Op-Amp and Linear Integrated Circuit"}},
	{Keyword: "electrical", Titles: []string{"Elements of Electromagnetics"}},
	{Keyword: "civil", Titles: []string{"Basic Civil Engineering"}},
	{Keyword: "environment", Titles: []string{"Environmental Science"}},
	{Keyword: "microcontroller", Titles: []string{"AVR Microcontroller and Embedded Systems"}},
	{Keyword: "ethics", Titles: []string{"Professional Ethics"}},
}
