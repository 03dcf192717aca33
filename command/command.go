package command

//go:generate mockgen -source=command.go -destination=mock_command_test.go -package=command

import (
	"pvdiscs.dev/host"
)

// Permission is a node declared by a sub-command, relative to PermissionPrefix.
type Permission struct {
	Node    string
	Default host.PermissionDefault
}

// SubCommand is a named handler routed to by the first argument.
type SubCommand interface {
	Name() string
	Permissions() []Permission
	Execute(sender host.Sender, args []string)
	Suggest(sender host.Sender, args []string) []string
	CheckCanExecute(sender host.Sender) bool
}

// Factory builds a sub-command. It receives the handler it is being added to
// so the sub-command can reach translations and the server.
type Factory func(h *Handler) SubCommand
