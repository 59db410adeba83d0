package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAmountNotPositive is returned when a parsed amount is zero or negative
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrSelfTransfer is returned when a user tries to gift coins to themselves
	ErrSelfTransfer = errors.New("cannot transfer coins to yourself")

	// ErrBotRecipient is returned when the gift recipient is a bot account
	ErrBotRecipient = errors.New("cannot transfer coins to a bot")

	// ErrBetTooSmall is returned when a slot bet is below the table minimum
	ErrBetTooSmall = errors.New("bet is below the minimum")

	// ErrInvalidVoteNumber is returned for vote numbers that are not positive
	ErrInvalidVoteNumber = errors.New("vote number must be positive")

	// ErrVoteAlreadyClaimed is returned when a vote reward was claimed before
	ErrVoteAlreadyClaimed = errors.New("vote reward already claimed")

	// ErrDailyOnCooldown is returned when the daily reward is not yet available
	ErrDailyOnCooldown = errors.New("daily reward is on cooldown")

	// ErrUnknownUser is returned when a read-only lookup finds no account
	ErrUnknownUser = errors.New("unknown user")
)

// DailyCooldownError reports how long until the daily reward can be claimed
// again. It matches ErrDailyOnCooldown with errors.Is.
type DailyCooldownError struct {
	Remaining time.Duration
}

func (e *DailyCooldownError) Error() string {
	return fmt.Sprintf("daily reward is on cooldown for %s", e.Remaining)
}

func (e *DailyCooldownError) Is(target error) bool {
	return target == ErrDailyOnCooldown
}
