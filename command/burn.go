package command

import (
	"context"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
)

const (
	trackScheme = "https://"

	// lookupTimeout bounds fetching a track page for its title.
	lookupTimeout = 3 * time.Second
)

type burnCommand struct {
	baseCommand
	store         DiscStore
	tracks        TrackResolver
	lookupTimeout time.Duration
}

// Burn writes a track URL onto the player's disc: burn <url> [name...].
// Without a name the title is looked up from the URL.
func Burn(store DiscStore, tracks TrackResolver) Factory {
	return func(h *Handler) SubCommand {
		return &burnCommand{
			baseCommand:   baseCommand{handler: h, name: "burn"},
			store:         store,
			tracks:        tracks,
			lookupTimeout: lookupTimeout,
		}
	}
}

func (c *burnCommand) Permissions() []Permission {
	return []Permission{{Node: "burn", Default: host.PermissionOp}}
}

func (c *burnCommand) Execute(sender host.Sender, args []string) {
	player, ok := c.player(sender)
	if !ok {
		return
	}

	if len(args) < 2 || args[1] == "" {
		player.SendMessage(host.Translatable("pv.addon.discs.usage.burn"))
		return
	}

	trackURL := args[1]
	if !validTrackURL(trackURL) {
		player.SendMessage(host.Translatable("pv.addon.discs.error.invalid_url", trackURL))
		return
	}

	name := strings.TrimSpace(strings.Join(args[2:], " "))
	if name == "" {
		name = c.title(sender, trackURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	disc, err := c.store.BurnDisc(ctx, player.ID(), trackURL, name)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"component": "command",
			"player":    player.Name(),
			"url":       trackURL,
		}).Error("burn failed")
		player.SendMessage(host.Translatable("pv.addon.discs.error.burn_failed"))
		return
	}

	player.SendMessage(host.Translatable("pv.addon.discs.success.burn", disc.Name))
}

// title names an unnamed disc: a name someone already gave the same track,
// then the page title, then the unknown track label. Each lookup has its own
// deadline and none of them eats into the burn itself.
func (c *burnCommand) title(sender host.Sender, trackURL string) string {
	unknown := c.handler.TranslationStringByKey("pv.addon.discs.label.unknown_track", sender)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	discs, err := c.store.DiscsByTrack(ctx, trackURL)
	cancel()
	if err != nil {
		log.WithError(err).WithField("url", trackURL).Warn("disc lookup failed")
	}
	for _, d := range discs {
		if d.Name != "" && d.Name != unknown {
			return d.Name
		}
	}

	if c.tracks != nil {
		ctx, cancel := context.WithTimeout(context.Background(), c.lookupTimeout)
		defer cancel()
		meta, err := c.tracks.Resolve(ctx, trackURL)
		if err == nil && meta.Title != "" {
			return meta.Title
		}
		if err != nil {
			log.WithError(err).WithField("url", trackURL).Warn("track lookup failed")
		}
	}
	return unknown
}

func (c *burnCommand) Suggest(sender host.Sender, args []string) []string {
	if len(args) != 2 || !c.CheckCanExecute(sender) {
		return []string{}
	}
	if strings.HasPrefix(trackScheme, args[1]) {
		return []string{trackScheme}
	}
	return []string{}
}

func validTrackURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
