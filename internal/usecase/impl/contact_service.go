package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

type contactService struct {
	logger   *slog.Logger
	emails   service.EmailSender
	emailCfg *config.EmailConfig
}

// NewContactUsecase creates the contact form service.
func NewContactUsecase(logger *slog.Logger, emails service.EmailSender, cfg *config.Config) usecase.ContactUsecase {
	return &contactService{
		logger:   logger,
		emails:   emails,
		emailCfg: cfg.Email,
	}
}

func (s *contactService) SubmitInquiry(ctx context.Context, inquiry *usecase.ContactInquiry) (string, error) {
	if s.emailCfg.OwnerAddress == "" {
		return "", domainerrors.ErrEmailNotConfigured.WithDetails("no owner address configured")
	}

	inquiryID := uuid.NewString()

	msg := &service.EmailMessage{
		To:      []string{s.emailCfg.OwnerAddress},
		Subject: fmt.Sprintf("Contact inquiry from %s %s", inquiry.FirstName, inquiry.LastName),
		HTML:    renderInquiryEmail(inquiryID, inquiry),
	}
	if err := s.emails.Send(ctx, msg); err != nil {
		s.logger.Error("send contact inquiry failed",
			slog.String("inquiry_id", inquiryID),
			slog.Any("error", err))

		return "", domainerrors.ErrEmailSendFailed.WithDetails(err.Error())
	}

	s.logger.Info("contact inquiry forwarded",
		slog.String("inquiry_id", inquiryID),
		slog.String("email", inquiry.Email))

	return inquiryID, nil
}

func renderInquiryEmail(inquiryID string, inquiry *usecase.ContactInquiry) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">`)
	b.WriteString(`<h1>New contact inquiry</h1>`)
	fmt.Fprintf(&b, `<p><strong>From:</strong> %s %s</p>`,
		html.EscapeString(inquiry.FirstName), html.EscapeString(inquiry.LastName))
	if inquiry.Company != "" {
		fmt.Fprintf(&b, `<p><strong>Company:</strong> %s</p>`, html.EscapeString(inquiry.Company))
	}
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, html.EscapeString(inquiry.Email))
	if inquiry.Phone != "" {
		fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, html.EscapeString(inquiry.Phone))
	}
	fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(inquiry.Message))
	fmt.Fprintf(&b, `<p style="color:#888;font-size:12px">Inquiry ID: %s</p>`, inquiryID)
	b.WriteString(`</div>`)

	return b.String()
}
