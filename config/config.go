package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Ledger storage. DataFile backs the default JSON store; when
	// DatabaseURL is set the Postgres store is used instead.
	DataFile    string
	DatabaseURL string

	// Economy settings
	StartingBalance int64
	DailyReward     int64
	MinimumBet      int64

	// Web query surface
	WebAddr string

	// Scheduled ledger backups
	BackupDir      string
	BackupSchedule string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Storage
		DataFile:    os.Getenv("DATA_FILE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Economy settings with defaults
		StartingBalance: 500,
		DailyReward:     100,
		MinimumBet:      10,

		// Web
		WebAddr: os.Getenv("WEB_ADDR"),

		// Backups
		BackupDir:      os.Getenv("BACKUP_DIR"),
		BackupSchedule: os.Getenv("BACKUP_SCHEDULE"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsed, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsed
		}
	}
	if reward := os.Getenv("DAILY_REWARD"); reward != "" {
		if parsed, err := strconv.ParseInt(reward, 10, 64); err == nil {
			config.DailyReward = parsed
		}
	}
	if minBet := os.Getenv("MINIMUM_BET"); minBet != "" {
		if parsed, err := strconv.ParseInt(minBet, 10, 64); err == nil {
			config.MinimumBet = parsed
		}
	}

	if config.DataFile == "" {
		config.DataFile = "user_data.json"
	}
	if config.WebAddr == "" {
		config.WebAddr = ":8080"
	}
	if config.BackupSchedule == "" {
		config.BackupSchedule = "@daily"
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	return config, nil
}
