package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/gamevault/backend/internal/domain"
	"github.com/gamevault/backend/internal/metrics"
)

// Event is a single notification to be delivered.
type Event struct {
	Type    string            `json:"event_type" validate:"required,oneof=registration gift_received sale_started"`
	Title   string            `json:"title"`
	Message string            `json:"message" validate:"required"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Notifier delivers events to an external channel
type Notifier interface {
	Send(ctx context.Context, event Event) error
}

// discordNotifier posts events to a Discord channel webhook.
type discordNotifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// NewDiscordNotifier builds a notifier from a Discord webhook URL
// (https://discord.com/api/webhooks/{id}/{token}). An empty URL returns a
// no-op notifier so callers never need a nil check.
func NewDiscordNotifier(webhookURL string) (Notifier, error) {
	if webhookURL == "" {
		slog.Info(LogMsgNotifierDisabled)
		return noopNotifier{}, nil
	}

	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}

	// Webhook execution is unauthenticated, no bot token needed.
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &discordNotifier{
		session:   session,
		webhookID: id,
		token:     token,
	}, nil
}

func (n *discordNotifier) Send(ctx context.Context, event Event) error {
	embed := &discordgo.MessageEmbed{
		Title:       event.Title,
		Description: event.Message,
		Color:       embedColor(event.Type),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	for name, value := range event.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: true,
		})
	}

	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(event.Type, ResultFailed).Inc()
		slog.Error(LogMsgNotificationFailed, "event_type", event.Type, "error", err)
		return fmt.Errorf("execute webhook: %w", err)
	}

	metrics.NotificationsSent.WithLabelValues(event.Type, ResultOK).Inc()
	slog.Info(LogMsgNotificationSent, "event_type", event.Type)
	return nil
}

func embedColor(eventType string) int {
	switch eventType {
	case EventRegistration:
		return colorGreen
	case EventGiftReceived:
		return colorBlue
	default:
		return colorOrange
	}
}

// parseWebhookURL extracts the webhook ID and token from a channel webhook URL.
func parseWebhookURL(webhookURL string) (id, token string, err error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "", "", fmt.Errorf("parse webhook URL: %w", err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// Expected path: api/webhooks/{id}/{token}
	if len(parts) < 4 || parts[len(parts)-3] != "webhooks" {
		return "", "", fmt.Errorf("%w: malformed webhook URL", domain.ErrInvalidInput)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// noopNotifier drops every event. Used when no webhook is configured.
type noopNotifier struct{}

func (noopNotifier) Send(context.Context, Event) error { return nil }
