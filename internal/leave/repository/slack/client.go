package slack

import (
	"strings"

	slackapi "github.com/slack-go/slack"
)

// NewClient creates a Slack Web API client. An empty baseURL keeps the
// public Slack endpoint; tests point it at a local server.
func NewClient(baseURL, token string) *slackapi.Client {
	if baseURL == "" {
		return slackapi.New(token)
	}
	// slack-go joins endpoint and method name without a separator.
	return slackapi.New(token, slackapi.OptionAPIURL(strings.TrimRight(baseURL, "/")+"/"))
}
