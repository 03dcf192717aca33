package server

import (
	"crypto/md5"
	"sync/atomic"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
	"pvdiscs.dev/permission"
)

// Frame is one websocket message in either direction.
type Frame struct {
	Type        string   `json:"type"`
	Line        string   `json:"line,omitempty"`
	Text        string   `json:"text,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

const (
	FrameCommand     = "command"
	FrameComplete    = "complete"
	FrameMessage     = "message"
	FrameSuggestions = "suggestions"
	FrameError       = "error"
)

// OfflineUUID derives a player's id from the name the way offline-mode
// servers do: a version 3 UUID of "OfflinePlayer:<name>".
func OfflineUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	var id uuid.UUID
	copy(id[:], sum[:])
	id[6] = (id[6] & 0x0f) | 0x30
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

// Player is a connected player. It implements host.VoicePlayer.
type Player struct {
	id     uuid.UUID
	name   string
	locale string
	server *Server
	outbox chan Frame
	op     atomic.Bool
}

func (p *Player) ID() uuid.UUID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Locale() string {
	return p.locale
}

// IsOperator reports operator status for this session only. Joining under
// an operator's name does not make a player one.
func (p *Player) IsOperator() bool {
	return p.op.Load()
}

func (p *Player) HasPermission(node string) bool {
	if p.server.perms == nil {
		return p.IsOperator()
	}
	return p.server.perms.Has(permission.Subject{ID: p.id, Operator: p.IsOperator()}, node)
}

// SendMessage renders text in the player's language and queues it.
func (p *Player) SendMessage(text host.Text) {
	msg := text.Content
	if p.server.langs != nil {
		msg = p.server.langs.Render(text, p.locale)
	}
	p.send(Frame{Type: FrameMessage, Text: msg})
}

// Messages is the queue of frames waiting to be written to the player.
func (p *Player) Messages() <-chan Frame {
	return p.outbox
}

func (p *Player) send(f Frame) {
	select {
	case p.outbox <- f:
	default:
		log.WithFields(log.Fields{
			"component": "server",
			"player":    p.name,
			"type":      f.Type,
		}).Warn("outbox full, dropping frame")
	}
}
