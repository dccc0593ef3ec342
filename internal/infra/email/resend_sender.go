// Package email provides the Resend-backed transactional email sender.
package email

import (
	"context"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"go.uber.org/fx"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type resendSender struct {
	logger *slog.Logger
	client *resend.Client
	cfg    *config.EmailConfig
}

// New creates the Resend sender. A missing API key is tolerated at startup
// and reported on the first send, so local development without credentials
// still boots.
func New(params Params) service.EmailSender {
	sender := &resendSender{
		logger: params.Logger,
		cfg:    params.Config.Email,
	}
	if params.Config.Email.APIKey != "" {
		sender.client = resend.NewClient(params.Config.Email.APIKey)
	} else {
		params.Logger.Warn("no email API key configured, sends will fail")
	}

	return sender
}

func (s *resendSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	if s.client == nil {
		return domainerrors.ErrEmailNotConfigured
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.cfg.FromAddress,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return domainerrors.ErrEmailSendFailed.WithDetails(err.Error())
	}

	s.logger.Debug("email sent",
		slog.String("id", sent.Id),
		slog.String("subject", msg.Subject))

	return nil
}
