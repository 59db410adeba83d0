package balance

import (
	"github.com/bwmarrin/discordgo"

	"github.com/bililionairestory/casino-bot/service"
)

type Feature struct {
	statsService service.StatsService
}

func New(statsService service.StatsService) *Feature {
	return &Feature{
		statsService: statsService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleBalance(s, i)
}
