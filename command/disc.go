package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pvdiscs.dev/data"
	"pvdiscs.dev/host"
	"pvdiscs.dev/track"
)

// Store operations are bounded so a slow database cannot hold up the
// server's command pipeline.
const storeTimeout = 5 * time.Second

// DiscStore persists the disc each player holds.
type DiscStore interface {
	BurnDisc(ctx context.Context, holder uuid.UUID, url, name string) (*data.Disc, error)
	HeldDisc(ctx context.Context, holder uuid.UUID) (*data.Disc, error)
	EraseDisc(ctx context.Context, holder uuid.UUID) (bool, error)
	SearchDiscs(ctx context.Context, query string, limit int) ([]*data.Disc, error)
	DiscNames(ctx context.Context, prefix string, limit int) ([]string, error)
	DiscsByTrack(ctx context.Context, url string) ([]*data.Disc, error)
}

// TrackResolver looks up what a track URL points at.
type TrackResolver interface {
	Resolve(ctx context.Context, rawURL string) (*track.Metadata, error)
}

// baseCommand carries what every disc sub-command shares.
type baseCommand struct {
	handler *Handler
	name    string
}

func (c *baseCommand) Name() string {
	return c.name
}

func (c *baseCommand) permission() string {
	return PermissionPrefix + c.name
}

func (c *baseCommand) CheckCanExecute(sender host.Sender) bool {
	return sender.HasPermission(c.permission())
}

// player resolves the sender and tells it off when it cannot run the command.
func (c *baseCommand) player(sender host.Sender) (host.VoicePlayer, bool) {
	if !c.CheckCanExecute(sender) {
		sender.SendMessage(host.Translatable("pv.addon.discs.error.no_permission"))
		return nil, false
	}
	player, ok := c.handler.Server().VoicePlayer(sender)
	if !ok {
		sender.SendMessage(host.Translatable("pv.addon.discs.error.player_only"))
		return nil, false
	}
	return player, true
}
