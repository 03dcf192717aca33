package command

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/data"
	"pvdiscs.dev/host"
)

type eraseCommand struct {
	baseCommand
	store DiscStore
}

// Erase blanks the player's disc.
func Erase(store DiscStore) Factory {
	return func(h *Handler) SubCommand {
		return &eraseCommand{
			baseCommand: baseCommand{handler: h, name: "erase"},
			store:       store,
		}
	}
}

func (c *eraseCommand) Permissions() []Permission {
	return []Permission{{Node: "erase", Default: host.PermissionOp}}
}

func (c *eraseCommand) Execute(sender host.Sender, args []string) {
	player, ok := c.player(sender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	disc, err := c.store.HeldDisc(ctx, player.ID())
	if errors.Is(err, data.ErrNotFound) {
		player.SendMessage(host.Translatable("pv.addon.discs.error.not_burned"))
		return
	}
	if err == nil {
		_, err = c.store.EraseDisc(ctx, player.ID())
	}
	if err != nil {
		log.WithError(err).WithField("player", player.Name()).Error("erase failed")
		player.SendMessage(host.Translatable("pv.addon.discs.error.erase_failed"))
		return
	}

	player.SendMessage(host.Translatable("pv.addon.discs.success.erase", disc.Name))
}

func (c *eraseCommand) Suggest(sender host.Sender, args []string) []string {
	return []string{}
}
