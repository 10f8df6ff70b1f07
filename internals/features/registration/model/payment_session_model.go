package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Session statuses. A session finalizes at most once. SessionPaymentRedirected
// moves into the persist/notify phase; SessionAwaitingPayment is accepted too,
// the gateway callback can land before the redirect status update commits.
const (
	SessionAwaitingPayment   = "awaiting_payment"
	SessionPaymentRedirected = "payment_redirected"
	SessionPaymentFailed     = "payment_failed"
	SessionPaymentCancelled  = "payment_cancelled"
	SessionDuplicate         = "duplicate"
	// Payment went through but the record insert failed; needs support
	// reconciliation, never retried automatically.
	SessionPaidPendingRecord = "paid_pending_record"
	SessionCompleted         = "completed"
)

// PaymentSession is the resume state persisted before redirecting the
// participant to the gateway. The full browser navigation wipes in-memory
// state, so the draft snapshot here is what the callback resumes from.
type PaymentSession struct {
	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_id"`

	OrderID       string `gorm:"column:order_id;type:varchar(100);not null;unique" json:"order_id"`
	Amount        int    `gorm:"column:amount;not null" json:"amount"`
	TransactionID string `gorm:"column:transaction_id;type:varchar(100)" json:"transaction_id"`
	Status        string `gorm:"column:status;type:varchar(30);not null;default:'awaiting_payment'" json:"status"`

	Draft datatypes.JSON `gorm:"column:draft;type:jsonb;not null" json:"draft"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentSession) TableName() string {
	return "payment_sessions"
}
