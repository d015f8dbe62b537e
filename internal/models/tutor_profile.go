package models

import "time"

type TutorProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio        string  `gorm:"size:500" json:"bio"`
	Subjects   string  `gorm:"size:255" json:"subjects"`
	HourlyRate float64 `json:"hourly_rate"`
	AvatarURL  string  `gorm:"size:255" json:"avatar_url"`
	Active     bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
