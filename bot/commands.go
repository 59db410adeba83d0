package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current coin balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily coin reward",
		},
		{
			Name:        "vote",
			Description: "Claim the reward for a vote",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "number",
					Description: "The vote number to claim",
					Required:    true,
				},
			},
		},
		{
			Name:        "votemultipliers",
			Description: "Show the vote reward multiplier schedule",
		},
		{
			Name:        "give",
			Description: "Give coins to another player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Player to give coins to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "amount",
					Description: "Amount to give, suffixes allowed (e.g. 100, 2.5k, 1m)",
					Required:    true,
				},
			},
		},
		{
			Name:        "slot",
			Description: "Spin the slot machine",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "bet",
					Description: "Bet amount, suffixes allowed (defaults to the minimum bet)",
					Required:    false,
				},
			},
		},
		{
			Name:        "symbols",
			Description: "Show the slot machine symbols and payouts",
		},
		{
			Name:        "odds",
			Description: "Show the slot machine draw odds",
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players",
		},
		{
			Name:        "stats",
			Description: "View player statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Player to check stats for (defaults to you)",
					Required:    false,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
