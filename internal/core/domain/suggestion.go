package domain

// Suggestion is an autocomplete hint for the current input.
// Suggestions are recomputed on every keystroke and never stored.
type Suggestion struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}
