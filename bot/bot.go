package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/bililionairestory/casino-bot/bot/features/balance"
	"github.com/bililionairestory/casino-bot/bot/features/leaderboard"
	"github.com/bililionairestory/casino-bot/bot/features/rewards"
	"github.com/bililionairestory/casino-bot/bot/features/slots"
	"github.com/bililionairestory/casino-bot/bot/features/transfer"
	"github.com/bililionairestory/casino-bot/events"
	"github.com/bililionairestory/casino-bot/service"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config  Config
	session *discordgo.Session

	balanceFeature     *balance.Feature
	slotsFeature       *slots.Feature
	rewardsFeature     *rewards.Feature
	transferFeature    *transfer.Feature
	leaderboardFeature *leaderboard.Feature

	eventBus *events.Bus
}

func New(config Config, gamblingService service.GamblingService, rewardService service.RewardService, transferService service.TransferService, statsService service.StatsService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:             config,
		session:            dg,
		balanceFeature:     balance.New(statsService),
		slotsFeature:       slots.New(gamblingService),
		rewardsFeature:     rewards.New(rewardService),
		transferFeature:    transfer.New(transferService),
		leaderboardFeature: leaderboard.New(statsService),
		eventBus:           eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleComponentInteractions)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "balance":
		b.balanceFeature.HandleCommand(s, i)
	case "slot", "symbols", "odds":
		b.slotsFeature.HandleCommand(s, i)
	case "daily", "vote", "votemultipliers":
		b.rewardsFeature.HandleCommand(s, i)
	case "give":
		b.transferFeature.HandleCommand(s, i)
	case "leaderboard", "stats":
		b.leaderboardFeature.HandleCommand(s, i)
	}
}

func (b *Bot) handleComponentInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	if b.transferFeature.HandlesInteraction(customID) {
		b.transferFeature.HandleInteraction(s, i)
	}
}
