package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordConfig holds configuration for the Discord notifier
type DiscordConfig struct {
	// Session is an open Discord session
	Session *discordgo.Session
}

// discordNotifier delivers events as Discord direct messages
type discordNotifier struct {
	session *discordgo.Session
}

// NewDiscord creates a Discord-backed notifier
func NewDiscord(cfg *DiscordConfig) (*discordNotifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	return &discordNotifier{
		session: cfg.Session,
	}, nil
}

// Notify sends the event to the user as a direct message
func (n *discordNotifier) Notify(ctx context.Context, userID string, event *Event) error {
	if userID == "" || event == nil {
		return errors.New("user ID and event cannot be empty")
	}

	channel, err := n.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	content := fmt.Sprintf("[%s] %s", event.Kind, event.Message)
	if _, err := n.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}
