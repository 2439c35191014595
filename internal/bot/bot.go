package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/halcyon-network/faucet-bot/internal/faucet"
	"github.com/halcyon-network/faucet-bot/internal/models"
	"go.uber.org/zap"
)

// Embed colors for replies
const (
	colorSuccess = 0x2ecc71
	colorWarning = 0xf1c40f
	colorError   = 0xe74c3c
)

// Bot bridges the Discord gateway to the faucet service
type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
	faucet     *faucet.Service
	logger     *zap.Logger
	network    string
}

// New creates a bot listening on the configured faucet channel
func New(token, channelID, network string, svc *faucet.Service, logger *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	b := &Bot{
		session:    session,
		dispatcher: NewDispatcher(channelID),
		faucet:     svc,
		logger:     logger,
		network:    network,
	}

	session.AddHandler(b.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return b, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	return nil
}

// Close closes the gateway connection
func (b *Bot) Close() error {
	return b.session.Close()
}

// onMessageCreate is the single entry point for inbound messages. It
// routes through the dispatcher and reports every handler outcome,
// success or failure, back to the channel as an embed.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	act, ok := b.dispatcher.Dispatch(m.ChannelID, m.Author.ID, m.Content)
	if !ok {
		return
	}

	ctx := context.Background()

	var embed *discordgo.MessageEmbed
	switch act.Command {
	case CommandFaucetSend:
		embed = b.handleSend(ctx, act)
	case CommandBalance:
		embed = b.handleBalance(ctx, act)
	}
	if embed == nil {
		return
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.String("channel", m.ChannelID),
		)
	}
}

func (b *Bot) handleSend(ctx context.Context, act Action) *discordgo.MessageEmbed {
	grant, err := b.faucet.Send(ctx, act.AuthorID, act.Address)
	if err != nil {
		var rejection *models.Rejection
		if errors.As(err, &rejection) {
			return b.rejectionEmbed(rejection)
		}
		return &discordgo.MessageEmbed{
			Title:       "Faucet Error",
			Color:       colorError,
			Description: "Could not process the transfer. Please try again later.",
		}
	}

	return &discordgo.MessageEmbed{
		Title: "Token Faucet",
		Color: colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "To account", Value: "0x" + grant.Address},
			{Name: "Amount sent", Value: fmt.Sprintf("%d tokens", grant.Tokens)},
			{Name: "Current balance", Value: fmt.Sprintf("%s tokens", grant.Balance.String())},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Funds on %s are for development use only", b.network),
		},
	}
}

func (b *Bot) handleBalance(ctx context.Context, act Action) *discordgo.MessageEmbed {
	report, err := b.faucet.BalanceOf(ctx, act.Address)
	if err != nil {
		var rejection *models.Rejection
		if errors.As(err, &rejection) {
			return b.rejectionEmbed(rejection)
		}
		return &discordgo.MessageEmbed{
			Title:       "Balance Error",
			Color:       colorError,
			Description: "Could not query the balance. Please try again later.",
		}
	}

	return &discordgo.MessageEmbed{
		Title: "Account Balance",
		Color: colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Account", Value: "0x" + report.Address},
			{Name: "Balance", Value: fmt.Sprintf("%s tokens", report.Balance.String())},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Network: %s", b.network),
		},
	}
}

func (b *Bot) rejectionEmbed(rejection *models.Rejection) *discordgo.MessageEmbed {
	switch rejection.Kind {
	case models.RejectionCooldownActive:
		return &discordgo.MessageEmbed{
			Title:       "Slow down",
			Color:       colorWarning,
			Description: fmt.Sprintf("You already received tokens recently. Try again in %s.", rejection.Wait),
		}
	case models.RejectionInvalidAddress:
		return &discordgo.MessageEmbed{
			Title:       "Invalid address",
			Color:       colorError,
			Description: "Please supply a valid H160 address (40 hex characters, 0x prefix optional).",
		}
	default:
		return &discordgo.MessageEmbed{
			Title:       "Request rejected",
			Color:       colorError,
			Description: rejection.Error(),
		}
	}
}
