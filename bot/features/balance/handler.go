package balance

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/bot/common"
	"github.com/bililionairestory/casino-bot/models"
)

func (f *Feature) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := i.Member.User.ID

	account, err := f.statsService.AccountOverview(ctx, userID)
	if err != nil {
		log.Errorf("Error getting account for %s: %v", userID, err)
		common.RespondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, userID)

	if err := common.RespondWithEmbed(s, i, balanceEmbed(displayName, account), nil, false); err != nil {
		log.Errorf("Error responding to balance command: %v", err)
	}
}

// balanceEmbed renders the balance alongside the account's slot record.
func balanceEmbed(displayName string, account models.Account) *discordgo.MessageEmbed {
	played := account.StatInt(models.StatSlotsPlayed)
	won := account.StatInt(models.StatSlotsWon)

	winRate := "—"
	if played > 0 {
		winRate = fmt.Sprintf("%.1f%%", float64(won)/float64(played)*100)
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("💰 Balance for %s", displayName),
		Color: 0x57F287,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: common.FormatBalance(account.Balance) + " coins", Inline: true},
			{Name: "Spins Played", Value: common.FormatBalance(played), Inline: true},
			{Name: "Spins Won", Value: common.FormatBalance(won), Inline: true},
			{Name: "Win Rate", Value: winRate, Inline: true},
			{Name: "Highest Win", Value: common.FormatBalance(account.StatInt(models.StatHighestWin)) + " coins", Inline: true},
		},
	}
}
