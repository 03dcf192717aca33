// Package server is a small game server host for the discs addon.
//
// Players join over a websocket console, type commands and receive chat
// messages rendered in their own language. Root commands are registered by
// label and handed to a host.CommandExecutor, the same way a plugin's
// commands are on a real server.
package server

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
	"pvdiscs.dev/lang"
	"pvdiscs.dev/permission"
)

var (
	ErrCommandExists = errors.New("command already registered")
	ErrInvalidName   = errors.New("invalid player name")
	ErrAlreadyOnline = errors.New("player already online")

	validName = regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`)
)

const outboxSize = 64

// Command is a root command and whoever handles it.
type Command struct {
	Name      string
	Usage     string
	Aliases   []string
	Executor  host.CommandExecutor
	Completer host.TabCompleter
}

// Options configure a Server.
type Options struct {
	Permissions *permission.Registry
	Languages   *lang.Store
	// Grants is where the operator console writes permission grants.
	Grants GrantWriter
	// Operators may become operators on joining by presenting
	// OperatorToken. Everyone else is made one from the console.
	Operators     []string
	OperatorToken string
	// ConsoleOut receives console messages; defaults to stdout.
	ConsoleOut io.Writer
}

// Server implements host.Server.
type Server struct {
	perms   *permission.Registry
	langs   *lang.Store
	grants  GrantWriter
	console *Console
	opToken string

	mu       sync.RWMutex
	commands map[string]*Command
	players  map[uuid.UUID]*Player
	ops      map[string]bool
}

// New returns a server with no players online.
func New(opts Options) *Server {
	out := opts.ConsoleOut
	if out == nil {
		out = os.Stdout
	}
	s := &Server{
		perms:    opts.Permissions,
		langs:    opts.Languages,
		grants:   opts.Grants,
		opToken:  opts.OperatorToken,
		commands: make(map[string]*Command),
		players:  make(map[uuid.UUID]*Player),
		ops:      make(map[string]bool),
	}
	for _, name := range opts.Operators {
		if name = strings.TrimSpace(name); name != "" {
			s.ops[strings.ToLower(name)] = true
		}
	}
	s.console = &Console{out: out, langs: opts.Languages}
	return s
}

func (s *Server) Permissions() host.PermissionRegistry {
	return s.perms
}

func (s *Server) Languages() host.Languages {
	return s.langs
}

// VoicePlayer resolves sender to a player that is still connected.
func (s *Server) VoicePlayer(sender host.Sender) (host.VoicePlayer, bool) {
	p, ok := sender.(*Player)
	if !ok || p == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if online, ok := s.players[p.id]; !ok || online != p {
		return nil, false
	}
	return p, true
}

// Console returns the server console sender.
func (s *Server) Console() *Console {
	return s.console
}

// RegisterCommand makes cmd reachable by its name and aliases.
func (s *Server) RegisterCommand(cmd Command) error {
	if cmd.Executor == nil {
		return fmt.Errorf("command %s has no executor", cmd.Name)
	}
	labels := append([]string{cmd.Name}, cmd.Aliases...)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, label := range labels {
		if _, exists := s.commands[strings.ToLower(label)]; exists {
			return fmt.Errorf("%w: %s", ErrCommandExists, label)
		}
	}
	c := cmd
	for _, label := range labels {
		s.commands[strings.ToLower(label)] = &c
	}

	log.WithFields(log.Fields{
		"component": "server",
		"command":   cmd.Name,
		"aliases":   cmd.Aliases,
	}).Info("registered command")
	return nil
}

// Commands returns the registered root commands sorted by name.
func (s *Server) Commands() []Command {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[*Command]bool)
	var cmds []Command
	for _, c := range s.commands {
		if !seen[c] {
			seen[c] = true
			cmds = append(cmds, *c)
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

func (s *Server) command(label string) (*Command, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.commands[strings.ToLower(label)]
	return c, ok
}

// Execute runs a command line typed by sender. A leading slash is optional.
// When the executor reports the command as not handled the usage is sent.
func (s *Server) Execute(sender host.Sender, line string) bool {
	label, args := splitCommandLine(line)
	if label == "" {
		return false
	}

	cmd, ok := s.command(label)
	if !ok {
		sender.SendMessage(host.Literal(fmt.Sprintf("Unknown command: /%s", label)))
		return false
	}

	log.WithFields(log.Fields{
		"component": "server",
		"sender":    sender.Name(),
		"command":   cmd.Name,
		"args":      args,
	}).Debug("executing command")

	if cmd.Executor.OnCommand(sender, cmd.Name, label, args) {
		return true
	}
	if cmd.Usage != "" {
		sender.SendMessage(host.Literal(cmd.Usage))
	}
	return false
}

// Complete returns completions for a partially typed command line.
func (s *Server) Complete(sender host.Sender, line string) []string {
	label, args := splitCommandLine(line)
	if !strings.Contains(strings.TrimPrefix(strings.TrimLeft(line, " "), "/"), " ") {
		return s.labels(label)
	}

	cmd, ok := s.command(label)
	if !ok || cmd.Completer == nil {
		return []string{}
	}
	return cmd.Completer.OnTabComplete(sender, cmd.Name, label, args)
}

func (s *Server) labels(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := []string{}
	for label := range s.commands {
		if strings.HasPrefix(label, strings.ToLower(prefix)) {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// splitCommandLine splits on single spaces so a trailing space yields an
// empty last argument, which completers treat as "nothing typed yet".
func splitCommandLine(line string) (label string, args []string) {
	line = strings.TrimPrefix(strings.TrimLeft(line, " "), "/")
	label, rest, found := strings.Cut(line, " ")
	if !found {
		return label, []string{}
	}
	return label, strings.Split(rest, " ")
}

// Join brings a player online.
func (s *Server) Join(name, locale string) (*Player, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	p := &Player{
		id:     OfflineUUID(name),
		name:   name,
		locale: locale,
		server: s,
		outbox: make(chan Frame, outboxSize),
	}

	s.mu.Lock()
	if _, online := s.players[p.id]; online {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyOnline, name)
	}
	s.players[p.id] = p
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"component": "server",
		"player":    name,
		"uuid":      p.id,
		"locale":    locale,
	}).Info("player joined")
	return p, nil
}

// Leave takes a player offline.
func (s *Server) Leave(p *Player) {
	s.mu.Lock()
	if online, ok := s.players[p.id]; ok && online == p {
		delete(s.players, p.id)
	}
	s.mu.Unlock()

	log.WithFields(log.Fields{"component": "server", "player": p.name}).Info("player left")
}

// Player returns the online player called name.
func (s *Server) Player(name string) (*Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[OfflineUUID(name)]
	return p, ok
}

// Players returns the online players sorted by name.
func (s *Server) Players() []*Player {
	s.mu.RLock()
	players := make([]*Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	s.mu.RUnlock()
	sort.Slice(players, func(i, j int) bool { return players[i].name < players[j].name })
	return players
}

// SetOperator grants or removes operator status of the online player called
// name for the rest of their session. It reports whether they were online.
func (s *Server) SetOperator(name string, op bool) bool {
	p, ok := s.Player(name)
	if !ok {
		return false
	}
	p.op.Store(op)
	log.WithFields(log.Fields{"component": "server", "player": p.name, "operator": op}).Info("operator changed")
	return true
}

// operatorLogin reports whether name may start its session as an operator:
// it must be a configured operator and present the operator token.
func (s *Server) operatorLogin(name, token string) bool {
	if s.opToken == "" || token == "" {
		return false
	}
	s.mu.RLock()
	listed := s.ops[strings.ToLower(name)]
	s.mu.RUnlock()
	return listed && subtle.ConstantTimeCompare([]byte(token), []byte(s.opToken)) == 1
}
