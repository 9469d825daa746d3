package models

import "time"

// Appointment represents the appointments table, exported as an iCal feed.
type Appointment struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"column:user_id" json:"user_id"`
	LeadID      *string    `gorm:"column:lead_id" json:"lead_id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	StartTime   time.Time  `gorm:"column:start_time" json:"start_time"`
	EndTime     *time.Time `gorm:"column:end_time" json:"end_time,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}
