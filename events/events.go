package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange     EventType = "balance_change"
	EventTypeAccountCreated    EventType = "account_created"
	EventTypeSpinPlayed        EventType = "spin_played"
	EventTypeRewardClaimed     EventType = "reward_claimed"
	EventTypeTransferCompleted EventType = "transfer_completed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID       string
	OldBalance   int64
	NewBalance   int64
	ChangeAmount int64
	Reason       string
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// AccountCreatedEvent represents an account created on first contact
type AccountCreatedEvent struct {
	UserID         string
	InitialBalance int64
}

func (e AccountCreatedEvent) Type() EventType {
	return EventTypeAccountCreated
}

// SpinPlayedEvent represents a slot machine play that was resolved
type SpinPlayedEvent struct {
	UserID     string
	Bet        int64
	Winnings   int64
	Multiplier float64
	Pattern    string
	Won        bool
}

func (e SpinPlayedEvent) Type() EventType {
	return EventTypeSpinPlayed
}

// RewardClaimedEvent represents a daily or vote reward claim
type RewardClaimedEvent struct {
	UserID     string
	Kind       string // "daily" or "vote"
	VoteNumber int64  // zero for daily claims
	Amount     int64
}

func (e RewardClaimedEvent) Type() EventType {
	return EventTypeRewardClaimed
}

// TransferCompletedEvent represents a gift completed between two users
type TransferCompletedEvent struct {
	FromUserID string
	ToUserID   string
	Amount     int64
}

func (e TransferCompletedEvent) Type() EventType {
	return EventTypeTransferCompleted
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
