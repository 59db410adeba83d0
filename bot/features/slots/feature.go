package slots

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/bililionairestory/casino-bot/service"
)

// Players can spin at most once per cooldown window.
const playCooldown = 5 * time.Second

type Feature struct {
	gamblingService service.GamblingService

	mu       sync.Mutex
	lastPlay map[string]time.Time
}

func New(gamblingService service.GamblingService) *Feature {
	return &Feature{
		gamblingService: gamblingService,
		lastPlay:        make(map[string]time.Time),
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "slot":
		f.handleSlot(s, i)
	case "symbols":
		f.handleSymbols(s, i)
	case "odds":
		f.handleOdds(s, i)
	}
}

// checkCooldown returns the remaining cooldown for a user, recording the play
// time when the user is clear to spin.
func (f *Feature) checkCooldown(userID string, now time.Time) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	if last, ok := f.lastPlay[userID]; ok {
		if remaining := playCooldown - now.Sub(last); remaining > 0 {
			return remaining
		}
	}
	f.lastPlay[userID] = now
	return 0
}

// clearCooldown forgets a recorded play, so rejected bets do not burn the
// cooldown window.
func (f *Feature) clearCooldown(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lastPlay, userID)
}
