package rewards

import (
	"github.com/bwmarrin/discordgo"

	"github.com/bililionairestory/casino-bot/service"
)

type Feature struct {
	rewardService service.RewardService
}

func New(rewardService service.RewardService) *Feature {
	return &Feature{
		rewardService: rewardService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "daily":
		f.handleDaily(s, i)
	case "vote":
		f.handleVote(s, i)
	case "votemultipliers":
		f.handleVoteMultipliers(s, i)
	}
}
