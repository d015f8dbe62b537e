package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Série recorrente (vazio para aula avulsa)
	SeriesID    string `gorm:"size:36;index" json:"series_id"`
	SeriesIndex int    `json:"series_index"`
	SeriesTotal int    `json:"series_total"`

	TutorID    uint   `gorm:"index" json:"tutor_id"`
	Tutor      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tutor"`
	TutorEmail string `gorm:"size:100" json:"tutor_email"`
	TutorName  string `gorm:"size:100" json:"tutor_name"`

	StudentID    uint   `gorm:"index" json:"student_id"`
	Student      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"student"`
	StudentEmail string `gorm:"size:100" json:"student_email"`

	// Dia (YYYY-MM-DD) e hora local (HH:MM); juntos formam o slot
	Date            string `gorm:"size:10;index" json:"date"`
	Time            string `gorm:"size:5" json:"time"`
	DurationMinutes int    `gorm:"default:60" json:"duration_minutes"`

	// Snapshot comercial no momento da criação — nunca recalculado
	HourlyRate    float64 `json:"hourly_rate"`
	PaymentAmount float64 `json:"payment_amount"`
	IsTrial       bool    `gorm:"default:false" json:"is_trial"`

	Status        string `gorm:"size:20;default:'confirmed'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	MeetingLink        string     `gorm:"size:255" json:"meeting_link"`
	MeetingLinkAddedAt *time.Time `json:"meeting_link_added_at"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CancelledBy string     `gorm:"size:100" json:"cancelled_by"`

	CompletedAt *time.Time `json:"completed_at"`
	CompletedBy string     `gorm:"size:100" json:"completed_by"`

	DisputedAt    *time.Time `json:"disputed_at"`
	DisputedBy    string     `gorm:"size:100" json:"disputed_by"`
	DisputeReason string     `gorm:"size:500" json:"dispute_reason"`

	PaidAt      *time.Time `json:"paid_at"`
	CheckoutRef string     `gorm:"size:255" json:"checkout_ref"`
	PaymentRef  string     `gorm:"size:255" json:"payment_ref"`

	// Token otimista: todo replace exige a versão lida
	Version int `gorm:"default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
