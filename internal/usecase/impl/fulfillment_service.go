package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type fulfillmentService struct {
	logger  *slog.Logger
	gateway service.PaymentGateway
	emails  service.EmailSender
	ledger  repository.FulfillmentLedger
	stock   usecase.StockUsecase

	emailCfg *config.EmailConfig
	shopCfg  *config.ShopConfig

	// Injectable for tests.
	now   func() time.Time
	sleep func(d time.Duration)
}

// NewFulfillmentUsecase creates the fulfillment service.
func NewFulfillmentUsecase(
	logger *slog.Logger,
	gateway service.PaymentGateway,
	emails service.EmailSender,
	ledger repository.FulfillmentLedger,
	stock usecase.StockUsecase,
	cfg *config.Config,
) usecase.FulfillmentUsecase {
	return &fulfillmentService{
		logger:   logger,
		gateway:  gateway,
		emails:   emails,
		ledger:   ledger,
		stock:    stock,
		emailCfg: cfg.Email,
		shopCfg:  cfg.Shop,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

func (s *fulfillmentService) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return err
	}

	if event.Type != service.EventCheckoutCompleted {
		s.logger.Debug("ignoring webhook event", slog.String("type", event.Type))

		return nil
	}

	detail, err := s.gateway.GetSessionDetail(ctx, event.SessionID)
	if err != nil {
		return errors.Wrap(err, "fetch session detail")
	}

	claimed, err := s.ledger.Claim(ctx, detail.ID)
	if err != nil {
		return errors.Wrap(err, "claim session")
	}
	if !claimed {
		s.logger.Info("session already fulfilled, skipping",
			slog.String("session_id", detail.ID))

		return nil
	}

	// The order number is derived once here and reused everywhere, so the
	// customer and the owner always see the same number.
	confirmation := s.buildConfirmation(detail)

	s.logger.Info("fulfilling order",
		slog.String("session_id", detail.ID),
		slog.String("order_number", confirmation.OrderNumber),
		slog.Int("lines", len(confirmation.Lines)))

	// The session is claimed at this point. Email and stock failures are
	// logged but never fail the webhook; a provider redelivery would be
	// skipped by the ledger anyway.
	s.sendOrderEmails(ctx, confirmation)
	s.adjustStock(ctx, confirmation)

	return nil
}

func (s *fulfillmentService) buildConfirmation(detail *service.SessionDetail) *entity.OrderConfirmation {
	return &entity.OrderConfirmation{
		OrderNumber:    deriveOrderNumber(s.shopCfg.OrderNumberPrefix, detail.ID, s.now()),
		SessionID:      detail.ID,
		CustomerName:   detail.CustomerName,
		CustomerEmail:  detail.CustomerEmail,
		Address:        resolveAddress(detail),
		Lines:          detail.Lines,
		AmountTotal:    detail.AmountTotal,
		ShippingAmount: detail.ShippingAmount,
		Currency:       detail.Currency,
	}
}

// resolveAddress picks the shipping destination with a three-tier fallback:
// explicit shipping details, the address collected alongside the customer
// details, then the billing address.
func resolveAddress(detail *service.SessionDetail) *entity.ShippingAddress {
	if detail.ShippingDetails != nil {
		return detail.ShippingDetails
	}
	if detail.CollectedAddress != nil {
		return detail.CollectedAddress
	}

	return detail.BillingAddress
}

// deriveOrderNumber builds a human-readable order number from the session
// id: prefix, order date, and the last eight characters of the id uppercased.
func deriveOrderNumber(prefix, sessionID string, t time.Time) string {
	suffix := sessionID
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}

	return fmt.Sprintf("%s-%s-%s", prefix, t.Format("20060102"), strings.ToUpper(suffix))
}

// sendOrderEmails sends the customer confirmation and the owner
// notification. The sends are independent: one failing never suppresses
// the other. A pause between sends respects the provider rate limit.
func (s *fulfillmentService) sendOrderEmails(ctx context.Context, confirmation *entity.OrderConfirmation) {
	if confirmation.CustomerEmail != "" {
		msg := &service.EmailMessage{
			To:      []string{confirmation.CustomerEmail},
			Subject: fmt.Sprintf("Order Confirmation - %s", confirmation.OrderNumber),
			HTML:    renderCustomerEmail(confirmation),
		}
		if err := s.emails.Send(ctx, msg); err != nil {
			s.logger.Error("send customer confirmation failed",
				slog.String("order_number", confirmation.OrderNumber),
				slog.Any("error", err))
		}

		s.sleep(s.emailCfg.SendInterval)
	} else {
		s.logger.Warn("session has no customer email, skipping confirmation",
			slog.String("session_id", confirmation.SessionID))
	}

	if s.emailCfg.OwnerAddress == "" {
		s.logger.Warn("no owner address configured, skipping owner notification")

		return
	}

	msg := &service.EmailMessage{
		To:      []string{s.emailCfg.OwnerAddress},
		Subject: fmt.Sprintf("New Order %s", confirmation.OrderNumber),
		HTML:    renderOwnerEmail(confirmation),
	}
	if err := s.emails.Send(ctx, msg); err != nil {
		s.logger.Error("send owner notification failed",
			slog.String("order_number", confirmation.OrderNumber),
			slog.Any("error", err))
	}
}

// adjustStock decrements inventory for every line that carries a product id.
// Lines without reconciliation metadata are skipped.
func (s *fulfillmentService) adjustStock(ctx context.Context, confirmation *entity.OrderConfirmation) {
	adjustments := make([]usecase.StockAdjustment, 0, len(confirmation.Lines))
	for _, line := range confirmation.Lines {
		if line.ProductID == 0 {
			continue
		}
		adjustments = append(adjustments, usecase.StockAdjustment{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
		})
	}
	if len(adjustments) == 0 {
		return
	}

	results, allOK := s.stock.AdjustForPurchase(ctx, adjustments)
	if !allOK {
		for _, result := range results {
			if result.Success {
				continue
			}
			s.logger.Error("stock adjustment failed",
				slog.String("order_number", confirmation.OrderNumber),
				slog.Int64("product_id", result.ProductID),
				slog.String("error", result.Error))
		}
	}
}
