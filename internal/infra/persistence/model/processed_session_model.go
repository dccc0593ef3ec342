package model

import "time"

// ProcessedSessionModel records a fulfilled checkout session. The unique
// index on session_id is what makes webhook redelivery idempotent.
type ProcessedSessionModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID   string    `gorm:"column:session_id;uniqueIndex;not null"`
	ProcessedAt time.Time `gorm:"column:processed_at;autoCreateTime"`
}

// TableName overrides the default table name
func (ProcessedSessionModel) TableName() string {
	return "processed_sessions"
}
