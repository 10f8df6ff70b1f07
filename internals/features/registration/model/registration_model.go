package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Registration is the durable record written once per successful flow.
// Never updated or deleted by this system after creation.
type Registration struct {
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`

	RegistrationType string `gorm:"column:registration_type;type:varchar(20);not null" json:"registration_type"`
	TeamName         string `gorm:"column:team_name;type:varchar(100);not null" json:"team_name"`
	ProjectTrack     string `gorm:"column:project_track;type:varchar(100);not null" json:"project_track"`
	ProjectTitle     string `gorm:"column:project_title;type:varchar(200);not null" json:"project_title"`
	ProjectIdea      string `gorm:"column:project_idea;type:text;not null" json:"project_idea"`

	Members datatypes.JSON `gorm:"column:members;type:jsonb;not null" json:"members"`

	Amount        int    `gorm:"column:amount;not null;check:amount > 0" json:"amount"`
	TransactionID string `gorm:"column:transaction_id;type:varchar(100);not null;unique" json:"transaction_id"`

	// Verbatim copy of the submitted payload for audit.
	RequestData datatypes.JSON `gorm:"column:request_data;type:jsonb" json:"request_data,omitempty"`

	SubmittedAt time.Time `gorm:"column:submitted_at;not null" json:"submitted_at"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}
