// Package host describes the parts of the game server the discs addon talks to.
// Everything here is owned by the server; the addon only calls through these
// interfaces.
package host

//go:generate mockgen -source=host.go -destination=mock_host.go -package=host

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PermissionDefault decides who holds a permission nobody granted explicitly.
type PermissionDefault int

const (
	PermissionFalse PermissionDefault = iota
	PermissionTrue
	PermissionOp
	PermissionNotOp
)

func (d PermissionDefault) String() string {
	switch d {
	case PermissionTrue:
		return "true"
	case PermissionOp:
		return "op"
	case PermissionNotOp:
		return "not_op"
	default:
		return "false"
	}
}

// ParsePermissionDefault accepts the names printed by String.
func ParsePermissionDefault(s string) (PermissionDefault, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return PermissionTrue, nil
	case "false":
		return PermissionFalse, nil
	case "op":
		return PermissionOp, nil
	case "not_op", "notop":
		return PermissionNotOp, nil
	}
	return PermissionFalse, fmt.Errorf("unknown permission default %q", s)
}

// Text is a displayable chat component. A translatable text carries a key
// that is resolved in the receiver's language.
type Text struct {
	Key     string
	Args    []string
	Content string
}

// Literal returns text that is shown as is.
func Literal(s string) Text {
	return Text{Content: s}
}

// Translatable returns text resolved from key, with args substituted.
func Translatable(key string, args ...string) Text {
	return Text{Key: key, Args: args}
}

// IsTranslatable reports whether the text needs a language lookup.
func (t Text) IsTranslatable() bool {
	return t.Key != ""
}

// Sender is whoever invoked a command: the console or a player.
type Sender interface {
	Name() string
	IsOperator() bool
	HasPermission(node string) bool
	SendMessage(text Text)
}

// VoicePlayer is a sender that is connected with voice enabled.
type VoicePlayer interface {
	Sender
	ID() uuid.UUID
	Locale() string
}

// PermissionRegistry records the permissions a plugin declares.
type PermissionRegistry interface {
	Register(node string, def PermissionDefault) error
}

// Languages resolves the translation table used for a sender.
type Languages interface {
	ServerLanguage(sender Sender) map[string]string
}

// Server is the host as seen from a plugin.
type Server interface {
	Permissions() PermissionRegistry
	Languages() Languages
	VoicePlayer(sender Sender) (VoicePlayer, bool)
}

// CommandExecutor handles an invocation of a root command.
type CommandExecutor interface {
	OnCommand(sender Sender, command, label string, args []string) bool
}

// TabCompleter supplies completions for a root command.
type TabCompleter interface {
	OnTabComplete(sender Sender, command, label string, args []string) []string
}
