package command

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/host"
)

const (
	searchLimit  = 10
	suggestLimit = 20
)

type searchCommand struct {
	baseCommand
	store DiscStore
}

// Search lists burned discs whose name contains the query.
func Search(store DiscStore) Factory {
	return func(h *Handler) SubCommand {
		return &searchCommand{
			baseCommand: baseCommand{handler: h, name: "search"},
			store:       store,
		}
	}
}

func (c *searchCommand) Permissions() []Permission {
	return []Permission{{Node: "search", Default: host.PermissionTrue}}
}

func (c *searchCommand) Execute(sender host.Sender, args []string) {
	player, ok := c.player(sender)
	if !ok {
		return
	}

	query := strings.TrimSpace(strings.Join(args[1:], " "))
	if query == "" {
		player.SendMessage(host.Translatable("pv.addon.discs.usage.search"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	discs, err := c.store.SearchDiscs(ctx, query, searchLimit)
	if err != nil {
		log.WithError(err).WithField("query", query).Error("search failed")
		player.SendMessage(host.Translatable("pv.addon.discs.error.search_failed"))
		return
	}
	if len(discs) == 0 {
		player.SendMessage(host.Translatable("pv.addon.discs.search.no_results", query))
		return
	}

	player.SendMessage(host.Translatable("pv.addon.discs.search.header", query))
	for _, d := range discs {
		player.SendMessage(host.Translatable("pv.addon.discs.search.entry", d.Name, d.URL))
	}
}

func (c *searchCommand) Suggest(sender host.Sender, args []string) []string {
	if len(args) != 2 || !c.CheckCanExecute(sender) {
		return []string{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	names, err := c.store.DiscNames(ctx, args[1], suggestLimit)
	if err != nil {
		log.WithError(err).Warn("disc name suggestions failed")
		return []string{}
	}
	return names
}
