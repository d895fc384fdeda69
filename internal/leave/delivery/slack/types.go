package slack

import "github.com/slack-go/slack/slackevents"

type status struct {
	Status string `json:"status"`
}

var (
	statusAccepted  = status{Status: "accepted"}
	statusIgnored   = status{Status: "ignored"}
	statusDuplicate = status{Status: "duplicate"}
)

// isUserMessage reports whether ev is a plain message posted by a person.
// Edits, deletions, joins and bot posts all carry a subtype or bot_id.
func isUserMessage(ev *slackevents.MessageEvent) bool {
	return ev != nil && ev.SubType == "" && ev.BotID == ""
}
