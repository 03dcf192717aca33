package command

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
)

const (
	// PermissionPrefix namespaces every permission a sub-command declares.
	PermissionPrefix = "pv.addon.discs."

	// UnknownSubcommandKey is sent when no sub-command matches.
	UnknownSubcommandKey = "pv.addon.discs.error.unknown_subcommand"
)

var ErrDuplicateSubCommand = errors.New("sub-command already registered")

// Handler routes a root command to its sub-commands by the first argument.
// Sub-commands are added while the plugin loads; lookups may then come from
// any goroutine.
type Handler struct {
	server host.Server

	mu    sync.RWMutex
	subs  map[string]SubCommand
	order []string
}

// NewHandler returns an empty handler bound to server.
func NewHandler(server host.Server) *Handler {
	return &Handler{
		server: server,
		subs:   make(map[string]SubCommand),
	}
}

// Server returns the host the handler was created for.
func (h *Handler) Server() host.Server {
	return h.server
}

// AddSubCommand builds a sub-command with f and registers its permissions.
// A name that is already taken is rejected before anything is registered.
// Errors from the host permission registry are returned as is.
func (h *Handler) AddSubCommand(f Factory) error {
	sub := f(h)
	name := sub.Name()

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.subs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSubCommand, name)
	}

	perms := sub.Permissions()
	for _, p := range perms {
		if err := h.server.Permissions().Register(PermissionPrefix+p.Node, p.Default); err != nil {
			return err
		}
	}

	h.subs[name] = sub
	h.order = append(h.order, name)

	log.WithFields(log.Fields{
		"component":   "command",
		"subcommand":  name,
		"permissions": len(perms),
	}).Debug("registered sub-command")

	return nil
}

// MustAddSubCommand is AddSubCommand for load-time wiring. It panics on error.
func (h *Handler) MustAddSubCommand(f Factory) *Handler {
	if err := h.AddSubCommand(f); err != nil {
		panic(err)
	}
	return h
}

// SubCommand returns the sub-command registered under name.
func (h *Handler) SubCommand(name string) (SubCommand, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sub, ok := h.subs[name]
	return sub, ok
}

// Names returns the registered names in the order they were added.
func (h *Handler) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, len(h.order))
	copy(names, h.order)
	return names
}

// UnknownCommandMessage lists the sub-commands registered right now.
func (h *Handler) UnknownCommandMessage() host.Text {
	return host.Translatable(UnknownSubcommandKey, strings.Join(h.Names(), ", "))
}

// TranslationStringByKey looks key up in the sender's server language and
// falls back to the key itself.
func (h *Handler) TranslationStringByKey(key string, sender host.Sender) string {
	if s, ok := h.server.Languages().ServerLanguage(sender)[key]; ok {
		return s
	}
	return key
}

// Dispatch runs the sub-command named by args[0]. It reports false when the
// sender is not a voice player, when args is empty or when nothing matches.
// Whatever the sub-command does while executing is left to it.
func (h *Handler) Dispatch(sender host.Sender, args []string) bool {
	player, ok := h.server.VoicePlayer(sender)
	if !ok {
		return false
	}

	if len(args) == 0 {
		player.SendMessage(h.UnknownCommandMessage())
		return false
	}

	if sub, ok := h.SubCommand(args[0]); ok {
		sub.Execute(sender, args)
		return true
	}

	player.SendMessage(h.UnknownCommandMessage())
	return false
}

// Suggest completes the sub-command name while a single argument is typed and
// hands later arguments to the matching sub-command.
func (h *Handler) Suggest(sender host.Sender, args []string) []string {
	switch len(args) {
	case 0:
		return h.executable(sender, "")
	case 1:
		return h.executable(sender, args[0])
	}

	if sub, ok := h.SubCommand(args[0]); ok {
		return sub.Suggest(sender, args)
	}
	return []string{}
}

func (h *Handler) executable(sender host.Sender, prefix string) []string {
	type candidate struct {
		name string
		sub  SubCommand
	}

	h.mu.RLock()
	candidates := make([]candidate, 0, len(h.order))
	for _, name := range h.order {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, candidate{name, h.subs[name]})
		}
	}
	h.mu.RUnlock()

	// sub-commands may call back into the handler
	names := []string{}
	for _, c := range candidates {
		if c.sub.CheckCanExecute(sender) {
			names = append(names, c.name)
		}
	}
	return names
}

// OnCommand implements host.CommandExecutor.
func (h *Handler) OnCommand(sender host.Sender, command, label string, args []string) bool {
	return h.Dispatch(sender, args)
}

// OnTabComplete implements host.TabCompleter.
func (h *Handler) OnTabComplete(sender host.Sender, command, label string, args []string) []string {
	return h.Suggest(sender, args)
}
