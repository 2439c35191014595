package bot

import (
	"strings"
)

// Command identifies which handler an inbound message routes to
type Command int

const (
	CommandFaucetSend Command = iota
	CommandBalance
)

// The two command prefixes, checked in order; first match wins
const (
	faucetSendPrefix = "!faucet send"
	balancePrefix    = "!balance"
)

// Action is a parsed command ready for a handler
type Action struct {
	Command  Command
	AuthorID string
	// Address is the raw argument after the command prefix, trimmed
	Address string
}

// Dispatcher parses inbound messages against the known command
// prefixes. It serves a single configured channel; messages from any
// other channel are dropped.
type Dispatcher struct {
	channelID string
}

// NewDispatcher creates a dispatcher bound to the target channel
func NewDispatcher(channelID string) *Dispatcher {
	return &Dispatcher{channelID: channelID}
}

// Dispatch parses a message into an Action. The second return value is
// false when the message should be ignored: wrong channel, empty
// author or text, or no matching command.
func (d *Dispatcher) Dispatch(channelID, authorID, content string) (Action, bool) {
	if channelID != d.channelID {
		return Action{}, false
	}
	if authorID == "" || content == "" {
		return Action{}, false
	}

	switch {
	case strings.HasPrefix(content, faucetSendPrefix):
		return Action{
			Command:  CommandFaucetSend,
			AuthorID: authorID,
			Address:  strings.TrimSpace(content[len(faucetSendPrefix):]),
		}, true
	case strings.HasPrefix(content, balancePrefix):
		return Action{
			Command:  CommandBalance,
			AuthorID: authorID,
			Address:  strings.TrimSpace(content[len(balancePrefix):]),
		}, true
	}

	return Action{}, false
}
