package messages

import "adminforge/internal/probe"

// ChatReplyMsg carries the outcome of one chat turn. Gen identifies the
// chat binding the turn belongs to; stale generations are dropped.
type ChatReplyMsg struct {
	Gen  int
	Text string
	Err  error
}

// ExplainResultMsg carries the explanation for one command step.
type ExplainResultMsg struct {
	StepID string
	Text   string
}

// GenerateResultMsg carries a deep-generation result for a topic.
type GenerateResultMsg struct {
	TopicID string
	Text    string
}

// ProbeResultMsg carries the reachability check for a profile.
type ProbeResultMsg struct {
	ProfileID string
	Result    probe.Result
}

// CopiedMsg signals that text landed on the clipboard.
type CopiedMsg struct{ Err error }
