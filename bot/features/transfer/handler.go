package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/amount"
	"github.com/bililionairestory/casino-bot/bot/common"
	"github.com/bililionairestory/casino-bot/ledger"
	"github.com/bililionairestory/casino-bot/service"
)

func (f *Feature) handleGive(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	var rawAmount string
	var recipient *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			rawAmount = opt.StringValue()
		case "user":
			recipient = opt.UserValue(s)
		}
	}

	if recipient == nil {
		common.RespondWithError(s, i, "Invalid recipient user.")
		return
	}

	fromID := i.Member.User.ID
	amt, err := f.transferService.PrepareGift(ctx, fromID, recipient.ID, recipient.Bot, rawAmount)
	if err != nil {
		switch {
		case errors.Is(err, amount.ErrInvalidAmount):
			common.RespondWithError(s, i, fmt.Sprintf("I don't understand the amount `%s`. Try a number like `100` or `2.5k`.", rawAmount))
		case errors.Is(err, service.ErrAmountNotPositive):
			common.RespondWithError(s, i, "Amount must be positive.")
		case errors.Is(err, service.ErrSelfTransfer):
			common.RespondWithError(s, i, "You cannot give coins to yourself.")
		case errors.Is(err, service.ErrBotRecipient):
			common.RespondWithError(s, i, "You cannot give coins to a bot.")
		case errors.Is(err, ledger.ErrInsufficientFunds):
			common.RespondWithError(s, i, "You don't have enough coins for that gift.")
		default:
			log.Errorf("Error preparing gift from %s to %s: %v", fromID, recipient.ID, err)
			common.RespondWithError(s, i, "Unable to process the gift. Please try again.")
		}
		return
	}

	session := &giftSession{
		id:          uuid.New().String(),
		fromID:      fromID,
		toID:        recipient.ID,
		toName:      common.GetDisplayName(s, i.GuildID, recipient.ID),
		amount:      amt,
		interaction: i.Interaction,
	}
	f.putSession(session)

	embed := giftEmbed(session, fmt.Sprintf("Confirm within %d seconds or the gift is cancelled.", int(confirmTimeout.Seconds())))
	components := giftButtons(session.id)
	if err := common.RespondWithEmbed(s, i, embed, components, false); err != nil {
		log.Errorf("Error showing gift confirmation: %v", err)
		f.takeSession(session.id)
		return
	}

	// The prompt expires on its own; the ledger is untouched until confirm.
	time.AfterFunc(confirmTimeout, func() {
		f.expireSession(s, session.id)
	})
}

func (f *Feature) handleGiftButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	var sessionID string
	var confirm bool
	switch {
	case strings.HasPrefix(customID, "gift_confirm_"):
		sessionID = strings.TrimPrefix(customID, "gift_confirm_")
		confirm = true
	case strings.HasPrefix(customID, "gift_cancel_"):
		sessionID = strings.TrimPrefix(customID, "gift_cancel_")
	default:
		return
	}

	f.mu.Lock()
	session, ok := f.sessions[sessionID]
	f.mu.Unlock()
	if !ok {
		common.RespondWithError(s, i, "This gift has already been resolved or expired.")
		return
	}

	// Only the sender can resolve their own gift prompt
	if i.Member.User.ID != session.fromID {
		common.RespondWithError(s, i, "Only the sender can confirm or cancel this gift.")
		return
	}

	session = f.takeSession(sessionID)
	if session == nil {
		common.RespondWithError(s, i, "This gift has already been resolved or expired.")
		return
	}

	if !confirm {
		embed := giftEmbed(session, "Gift cancelled. No coins were moved.")
		if err := respondUpdate(s, i, embed); err != nil {
			log.Errorf("Error updating cancelled gift message: %v", err)
		}
		return
	}

	result, err := f.transferService.ExecuteGift(context.Background(), session.fromID, session.toID, session.amount)
	if err != nil {
		message := "Unable to complete the gift. No coins were moved."
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			message = "You no longer have enough coins for this gift."
		} else {
			log.Errorf("Error executing gift %s: %v", session.id, err)
		}
		embed := giftEmbed(session, "❌ "+message)
		if err := respondUpdate(s, i, embed); err != nil {
			log.Errorf("Error updating failed gift message: %v", err)
		}
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "🎁 Gift Sent",
		Description: fmt.Sprintf("<@%s> gave **%s coins** to <@%s>.\nYour new balance: **%s coins**",
			session.fromID, common.FormatBalance(result.Amount), session.toID,
			common.FormatBalance(result.SenderBalance)),
		Color: 0x57F287,
	}
	if err := respondUpdate(s, i, embed); err != nil {
		log.Errorf("Error updating completed gift message: %v", err)
	}
}

// expireSession abandons a still-pending gift and disables its buttons.
func (f *Feature) expireSession(s *discordgo.Session, sessionID string) {
	session := f.takeSession(sessionID)
	if session == nil {
		return
	}

	embed := giftEmbed(session, "⌛ Gift expired without confirmation. No coins were moved.")
	empty := []discordgo.MessageComponent{}
	_, err := s.InteractionResponseEdit(session.interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &empty,
	})
	if err != nil {
		log.Errorf("Error expiring gift message %s: %v", sessionID, err)
	}
}

// respondUpdate replaces the confirmation prompt with a final message and
// removes the buttons.
func respondUpdate(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	})
}

func giftEmbed(session *giftSession, footer string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎁 Gift Confirmation",
		Description: fmt.Sprintf("Give **%s coins** to **%s**?",
			common.FormatBalance(session.amount), session.toName),
		Color:  0x5865F2,
		Footer: &discordgo.MessageEmbedFooter{Text: footer},
	}
}

func giftButtons(sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm",
					Style:    discordgo.SuccessButton,
					CustomID: "gift_confirm_" + sessionID,
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: "gift_cancel_" + sessionID,
				},
			},
		},
	}
}
