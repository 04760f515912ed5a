package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campus-sports/arena/internal/matchmaking"
	"github.com/campus-sports/arena/internal/metrics"
	"github.com/campus-sports/arena/internal/notifier"
	"github.com/campus-sports/arena/internal/scheduling"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendMatchAnnouncement(match *matchmaking.Match, dryRun bool) error {
	msg := s.formatMatchAnnouncement(match)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendResultNotification(match *matchmaking.Match, dryRun bool) error {
	msg := s.formatResultNotification(match)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendBookingNotification(schedule *scheduling.Schedule, venueName string, dryRun bool) error {
	msg := s.formatBookingNotification(schedule, venueName)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendCertificateNotification(cert *matchmaking.Certificate, userName string, dryRun bool) error {
	msg := s.formatCertificateNotification(cert, userName)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatMatchAnnouncement creates the Slack message for a newly created match using Block Kit.
func (s *Notifier) formatMatchAnnouncement(match *matchmaking.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏅 New match scheduled! 🏅", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	when := time.Unix(match.ScheduledTime, 0).UTC().Format("Monday, Jan 2 at 15:04")
	details := fmt.Sprintf("*When:* %s\n*Players:* %d to %d", when, match.MinPlayers, match.MaxPlayers)
	if match.SkillLevelRange > 0 {
		details += fmt.Sprintf("\n*Skill range:* ±%d around the current average", match.SkillLevelRange)
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("mrkdwn", details, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatResultNotification creates the Slack message for a completed match.
func (s *Notifier) formatResultNotification(match *matchmaking.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Match finished! 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := "The result is in."
	if match.WinnerTeamID != nil {
		body = fmt.Sprintf("Congratulations to team `%s`!", *match.WinnerTeamID)
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatBookingNotification creates the Slack message for a venue booking.
func (s *Notifier) formatBookingNotification(schedule *scheduling.Schedule, venueName string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📍 Venue booked! 📍", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	start := time.Unix(schedule.StartTime, 0).UTC().Format("Monday, Jan 2 15:04")
	end := time.Unix(schedule.EndTime, 0).UTC().Format("15:04")
	details := fmt.Sprintf("*Venue:* %s\n*Slot:* %s to %s", venueName, start, end)
	if len(schedule.Equipment) > 0 {
		details += fmt.Sprintf("\n*Equipment:* %v", schedule.Equipment)
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("mrkdwn", details, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatCertificateNotification creates the Slack message for an issued certificate.
func (s *Notifier) formatCertificateNotification(cert *matchmaking.Certificate, userName string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎖️ Certificate issued! 🎖️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := fmt.Sprintf("*%s* earned a *%s* certificate.", userName, cert.Type)
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("mrkdwn", body, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
