package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/amount"
	"github.com/bililionairestory/casino-bot/bot/common"
	"github.com/bililionairestory/casino-bot/ledger"
	"github.com/bililionairestory/casino-bot/models"
	"github.com/bililionairestory/casino-bot/service"
)

func (f *Feature) handleSlot(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := i.Member.User.ID

	if remaining := f.checkCooldown(userID, time.Now()); remaining > 0 {
		common.RespondWithError(s, i, fmt.Sprintf("Slow down! You can spin again in %s.", common.FormatDuration(remaining)))
		return
	}

	var rawBet string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "bet" {
			rawBet = opt.StringValue()
		}
	}

	result, err := f.gamblingService.PlaySlots(ctx, userID, rawBet)
	if err != nil {
		f.clearCooldown(userID)
		switch {
		case errors.Is(err, amount.ErrInvalidAmount):
			common.RespondWithError(s, i, fmt.Sprintf("I don't understand the bet `%s`. Try a number like `100` or `2.5k`.", rawBet))
		case errors.Is(err, service.ErrBetTooSmall):
			common.RespondWithError(s, i, fmt.Sprintf("The minimum bet is **%s coins**.", common.FormatBalance(f.gamblingService.MinimumBet())))
		case errors.Is(err, ledger.ErrInsufficientFunds):
			common.RespondWithError(s, i, "You don't have enough coins for that bet.")
		default:
			log.Errorf("Error playing slots for %s: %v", userID, err)
			common.RespondWithError(s, i, "Unable to play right now. Please try again.")
		}
		return
	}

	common.Respond(s, i, formatSpin(common.GetDisplayName(s, i.GuildID, userID), result))
}

func (f *Feature) handleSymbols(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var lines []string
	for _, symbol := range f.gamblingService.Table().Symbols() {
		var payouts []string
		for _, count := range []int{2, 3} {
			if mult, ok := symbol.Payouts[count]; ok {
				payouts = append(payouts, fmt.Sprintf("%d of a kind pays %s", count, common.FormatMultiplier(mult)))
			}
		}
		lines = append(lines, fmt.Sprintf("%s **%s** — %s", symbol.Symbol, symbol.Rarity, strings.Join(payouts, ", ")))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎰 Slot Machine Symbols",
		Description: strings.Join(lines, "\n"),
		Color:       0x5865F2,
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Error responding to symbols command: %v", err)
	}
}

func (f *Feature) handleOdds(s *discordgo.Session, i *discordgo.InteractionCreate) {
	table := f.gamblingService.Table()

	var lines []string
	for _, symbol := range table.Symbols() {
		lines = append(lines, fmt.Sprintf("%s %.2f%% per reel", symbol.Symbol, table.Probability(symbol.Symbol)*100))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎰 Symbol Draw Odds",
		Description: strings.Join(lines, "\n"),
		Color:       0x5865F2,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Each of the three reels draws independently. Minimum bet: %s coins.", common.FormatBalance(f.gamblingService.MinimumBet())),
		},
	}
	if err := common.RespondWithEmbed(s, i, embed, nil, true); err != nil {
		log.Errorf("Error responding to odds command: %v", err)
	}
}

func formatSpin(displayName string, result *models.SlotResult) string {
	reels := strings.Join(result.Symbols, " | ")

	if !result.Won {
		return fmt.Sprintf("**%s** spun [ %s ]\n😔 No match. You lost **%s coins**. New balance: **%s coins**",
			displayName, reels, common.FormatBalance(result.Bet), common.FormatBalance(result.NewBalance))
	}

	return fmt.Sprintf("**%s** spun [ %s ]\n🎉 **%s** pays %s! You won **%s coins**. New balance: **%s coins**",
		displayName, reels, result.Pattern, common.FormatMultiplier(result.Multiplier),
		common.FormatBalance(result.Winnings), common.FormatBalance(result.NewBalance))
}
