package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;type:varchar(150)" json:"username"`
	PasswordHash string `json:"-"`

	Devices []Device `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type Device struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index" json:"user_id"`
	Name       string `gorm:"type:varchar(100)" json:"name"`
	DeviceType string `gorm:"type:varchar(20)" json:"device_type"`
	Status     string `gorm:"type:varchar(50);default:off" json:"status"`

	Logs []Log `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"-"`
}

type Log struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeviceID  uint      `gorm:"index" json:"device_id"`
	Action    string    `gorm:"type:varchar(50)" json:"action"`
	Value     *float64  `json:"value"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// ParsedCommand is the structured proposal extracted from free text by the
// command interpreter. DeviceName and Action are mandatory; Value stays
// untyped because the language model may emit a number or a numeric string
// and coercion happens at validation time.
type ParsedCommand struct {
	DeviceName string `json:"device_name"`
	Action     string `json:"action"`
	Value      any    `json:"value,omitempty"`
}

// RevokedToken records a refresh token blacklisted by logout. Rows are only
// useful until the token would have expired on its own.
type RevokedToken struct {
	ID        uint   `gorm:"primaryKey"`
	TokenID   string `gorm:"uniqueIndex;type:varchar(64)"`
	ExpiresAt time.Time
}
