package leaderboard

import (
	"github.com/bwmarrin/discordgo"

	"github.com/bililionairestory/casino-bot/service"
)

// Rows shown on the chat leaderboard.
const boardSize = 10

type Feature struct {
	statsService service.StatsService
}

func New(statsService service.StatsService) *Feature {
	return &Feature{
		statsService: statsService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "leaderboard":
		f.handleLeaderboard(s, i)
	case "stats":
		f.handleStats(s, i)
	}
}
