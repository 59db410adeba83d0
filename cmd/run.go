package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bililionairestory/casino-bot/bot"
	"github.com/bililionairestory/casino-bot/config"
	"github.com/bililionairestory/casino-bot/database"
	"github.com/bililionairestory/casino-bot/events"
	"github.com/bililionairestory/casino-bot/jobs"
	"github.com/bililionairestory/casino-bot/ledger"
	"github.com/bililionairestory/casino-bot/service"
	"github.com/bililionairestory/casino-bot/slots"
	"github.com/bililionairestory/casino-bot/web"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting casino bot...")

	// Load configuration
	cfg := config.Get()

	// Open the ledger store: Postgres when configured, the JSON file
	// otherwise
	var store ledger.Store
	if cfg.DatabaseURL != "" {
		log.Println("Connecting to database...")
		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		store = ledger.NewPGStore(db)
		log.Println("Database connection established successfully")
	} else {
		log.Printf("Using ledger file %s", cfg.DataFile)
		store = ledger.NewFileStore(cfg.DataFile)
	}

	log.Println("Loading ledger...")
	accountLedger, err := ledger.Open(ctx, store, cfg.StartingBalance)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}

	// Initialize event bus
	eventBus := events.NewBus()
	subscribeAuditLog(eventBus)
	accountLedger.SetEventBus(eventBus)

	// Initialize services
	log.Println("Initializing services...")
	machine := slots.NewMachine(slots.DefaultTable(), rand.New(rand.NewSource(time.Now().UnixNano())))
	gamblingService := service.NewGamblingService(accountLedger, machine, eventBus, cfg.MinimumBet)
	rewardService := service.NewRewardService(accountLedger, eventBus, cfg.DailyReward, 24*time.Hour, service.DefaultVoteTiers())
	transferService := service.NewTransferService(accountLedger, eventBus)
	statsService := service.NewStatsService(accountLedger)
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}
	discordBot, err := bot.New(botConfig, gamblingService, rewardService, transferService, statsService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Start the web query surface
	webServer := web.NewServer(cfg.WebAddr, statsService)
	go func() {
		if err := webServer.ListenAndServe(); err != nil {
			log.Printf("Web server stopped: %v", err)
		}
	}()

	// Start scheduled ledger backups
	var scheduler *jobs.Scheduler
	if cfg.BackupDir != "" {
		scheduler = jobs.NewScheduler(accountLedger, cfg.BackupDir)
		if err := scheduler.Start(cfg.BackupSchedule); err != nil {
			return fmt.Errorf("failed to start backup scheduler: %w", err)
		}
	}

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	if scheduler != nil {
		scheduler.Stop()
	}

	if err := webServer.Close(); err != nil {
		log.Printf("Error closing web server: %v", err)
	}

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("Closing ledger...")
	if err := accountLedger.Close(); err != nil {
		log.Printf("Error closing ledger: %v", err)
	}

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}

// subscribeAuditLog writes a log line for every economy event.
func subscribeAuditLog(bus *events.Bus) {
	bus.Subscribe(events.EventTypeSpinPlayed, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.SpinPlayedEvent); ok {
			log.Printf("audit: user %s bet %d won %d (x%g)", e.UserID, e.Bet, e.Winnings, e.Multiplier)
		}
	})
	bus.Subscribe(events.EventTypeRewardClaimed, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.RewardClaimedEvent); ok {
			log.Printf("audit: user %s claimed %s reward of %d", e.UserID, e.Kind, e.Amount)
		}
	})
	bus.Subscribe(events.EventTypeTransferCompleted, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.TransferCompletedEvent); ok {
			log.Printf("audit: user %s gave %d to %s", e.FromUserID, e.Amount, e.ToUserID)
		}
	})
	bus.Subscribe(events.EventTypeAccountCreated, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.AccountCreatedEvent); ok {
			log.Printf("audit: account %s created with %d coins", e.UserID, e.InitialBalance)
		}
	})
	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BalanceChangeEvent); ok {
			log.Printf("audit: user %s balance %d -> %d (%s)", e.UserID, e.OldBalance, e.NewBalance, e.Reason)
		}
	})
}
