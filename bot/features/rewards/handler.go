package rewards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/bot/common"
	"github.com/bililionairestory/casino-bot/service"
)

func (f *Feature) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := i.Member.User.ID

	result, err := f.rewardService.ClaimDaily(ctx, userID)
	if err != nil {
		var cooldownErr *service.DailyCooldownError
		if errors.As(err, &cooldownErr) {
			common.RespondWithError(s, i, fmt.Sprintf("You already claimed your daily reward. Come back in **%s**.",
				common.FormatDuration(cooldownErr.Remaining)))
			return
		}
		log.Errorf("Error claiming daily for %s: %v", userID, err)
		common.RespondWithError(s, i, "Unable to claim the daily reward. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, userID)
	common.Respond(s, i, fmt.Sprintf("☀️ **%s** claimed the daily reward of **%s coins**! New balance: **%s coins**",
		displayName, common.FormatBalance(result.Reward), common.FormatBalance(result.NewBalance)))
}

func (f *Feature) handleVote(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := i.Member.User.ID

	var voteNumber int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "number" {
			voteNumber = opt.IntValue()
		}
	}

	result, err := f.rewardService.ClaimVote(ctx, userID, voteNumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVoteNumber):
			common.RespondWithError(s, i, "Vote number must be a positive integer.")
		case errors.Is(err, service.ErrVoteAlreadyClaimed):
			common.RespondWithError(s, i, fmt.Sprintf("You already claimed the reward for vote #%d.", voteNumber))
		default:
			log.Errorf("Error claiming vote %d for %s: %v", voteNumber, userID, err)
			common.RespondWithError(s, i, "Unable to claim the vote reward. Please try again.")
		}
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, userID)
	message := fmt.Sprintf("🗳️ **%s** claimed vote #%d at **%dx** for **%s coins**! New balance: **%s coins**",
		displayName, result.VoteNumber, result.Multiplier,
		common.FormatBalance(result.Reward), common.FormatBalance(result.NewBalance))
	if result.Milestone {
		message += "\n🏆 **Milestone vote!**"
	}
	common.Respond(s, i, message)
}

func (f *Feature) handleVoteMultipliers(s *discordgo.Session, i *discordgo.InteractionCreate) {
	tiers := f.rewardService.VoteTiers()

	var lines []string
	for idx, tier := range tiers {
		var span string
		switch {
		case tier.Milestone() && idx == len(tiers)-1:
			span = fmt.Sprintf("Votes %d+", tier.Min)
		case tier.Milestone():
			span = fmt.Sprintf("Vote %d", tier.Min)
		default:
			span = fmt.Sprintf("Votes %d–%d", tier.Min, tier.Max)
		}
		line := fmt.Sprintf("**%s**: %dx → %s coins", span, tier.Multiplier, common.FormatBalance(tier.Reward))
		if tier.Milestone() {
			line += " 🏆"
		}
		lines = append(lines, line)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🗳️ Vote Reward Multipliers",
		Description: strings.Join(lines, "\n"),
		Color:       0x57F287,
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Error responding to votemultipliers command: %v", err)
	}
}
