package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type fulfillmentLedger struct {
	db *gorm.DB
}

// NewFulfillmentLedger creates a new fulfillment ledger instance
func NewFulfillmentLedger(db *gorm.DB) repository.FulfillmentLedger {
	return &fulfillmentLedger{db: db}
}

// Claim inserts the session id, relying on the unique index to reject a
// second claim. The losing delivery sees false with no error.
func (l *fulfillmentLedger) Claim(ctx context.Context, sessionID string) (bool, error) {
	record := model.ProcessedSessionModel{SessionID: sessionID}
	err := l.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "claim session")
	}

	return true, nil
}
