package handlers

// Log prefixes
const (
	LogPrefixDispatch = "internal.handlers.Dispatch"
	LogPrefixNew      = "internal.handlers.NewDispatcher"
)

// Dispatch result statuses.
const (
	StatusSuccess             = "success"
	StatusClarificationNeeded = "clarification_needed"
)

// clarificationMessage is shown whenever no tool met the confidence bar.
const clarificationMessage = "मुझे समझ नहीं आया। कृपया स्पष्ट करें कि आप क्या चाहते हैं। / I didn't understand. Please clarify what you want."

// clarificationSuggestions lists one example phrasing per capability.
var clarificationSuggestions = []string{
	"खाना बनाने के लिए - 'leftover se kya banau' या 'recipe batao'",
	"कहानी के लिए - 'story sunao' या 'bacchon ki kahani'",
	"कविता के लिए - 'poem sunao' या 'poetry chahiye'",
	"संगीत के लिए - 'purane gaane' या 'nostalgic music'",
	"खाने की जगह के लिए - 'nearby restaurant' या 'food places'",
}
