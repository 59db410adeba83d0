package leaderboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/bot/common"
	"github.com/bililionairestory/casino-bot/service"
)

func (f *Feature) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	entries := f.statsService.Leaderboard(boardSize)
	if len(entries) == 0 {
		common.Respond(s, i, "Nobody has played yet. Spin the slots to claim the top spot!")
		return
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var lines []string
	for _, entry := range entries {
		rank := fmt.Sprintf("#%d", entry.Rank)
		if entry.Rank <= len(medals) {
			rank = medals[entry.Rank-1]
		}
		lines = append(lines, fmt.Sprintf("%s <@%s> — **%s coins**", rank, entry.UserID, common.FormatBalance(entry.Balance)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 Richest Players",
		Description: strings.Join(lines, "\n"),
		Color:       0xFEE75C,
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	targetID := i.Member.User.ID
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			if user := opt.UserValue(s); user != nil {
				targetID = user.ID
			}
		}
	}

	stats, err := f.statsService.UserStats(targetID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			common.RespondWithError(s, i, "That player hasn't played yet.")
			return
		}
		log.Errorf("Error getting stats for %s: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to retrieve stats. Please try again.")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, targetID)

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Stats for %s", displayName),
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: common.FormatBalance(stats.Balance) + " coins", Inline: true},
			{Name: "Spins Played", Value: common.FormatBalance(stats.SlotsPlayed), Inline: true},
			{Name: "Spins Won", Value: common.FormatBalance(stats.SlotsWon), Inline: true},
			{Name: "Win Rate", Value: fmt.Sprintf("%.1f%%", stats.WinRate*100), Inline: true},
			{Name: "Highest Win", Value: common.FormatBalance(stats.HighestWin) + " coins", Inline: true},
		},
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, false); err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}
