package common

import (
	"github.com/bwmarrin/discordgo"
)

// GetDisplayName returns the server-specific display name for a user
// Falls back to username if nickname is not set or if there's an error
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	// Fallback to just getting the user
	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}
