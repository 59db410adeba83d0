package transfer

import (
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/bililionairestory/casino-bot/service"
)

// A pending gift waits this long for the sender to confirm.
const confirmTimeout = 30 * time.Second

// giftSession is a gift awaiting the sender's confirmation. No coins move
// until the sender presses confirm; expiry or cancel drops the session with
// no state change.
type giftSession struct {
	id          string
	fromID      string
	toID        string
	toName      string
	amount      int64
	interaction *discordgo.Interaction
}

type Feature struct {
	transferService service.TransferService

	mu       sync.Mutex
	sessions map[string]*giftSession
}

func New(transferService service.TransferService) *Feature {
	return &Feature{
		transferService: transferService,
		sessions:        make(map[string]*giftSession),
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleGive(s, i)
}

// HandlesInteraction reports whether a component interaction belongs to this
// feature.
func (f *Feature) HandlesInteraction(customID string) bool {
	return strings.HasPrefix(customID, "gift_")
}

func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleGiftButton(s, i)
}

func (f *Feature) putSession(session *giftSession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.id] = session
}

// takeSession removes and returns a pending session, or nil when it already
// completed or expired.
func (f *Feature) takeSession(id string) *giftSession {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[id]
	if !ok {
		return nil
	}
	delete(f.sessions, id)
	return session
}
