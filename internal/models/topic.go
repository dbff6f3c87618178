package models

// CommandStep is a single step inside a topic. The template may contain
// placeholder tokens; HighlightedVars are plain substrings the UI draws
// attention to and are not required to be real placeholders.
type CommandStep struct {
	ID              string
	Title           string
	Description     string
	CommandTemplate string
	HighlightedVars []string
}

// Topic is a static tutorial unit for one administrative task.
type Topic struct {
	ID              string
	Category        string
	Title           string
	Description     string
	Steps           []CommandStep
	AIPromptContext string
}
