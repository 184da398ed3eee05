package entities

import "time"

// Reel represents one persisted media submission. The video column holds
// the empty string until the object upload is reconciled.
type Reel struct {
	ID          string    `gorm:"type:varchar(40);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	SubmittedBy string    `gorm:"column:by;type:varchar(64);not null"`
	VideoURL    string    `gorm:"column:video;type:varchar(512);not null;default:''"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Reel) TableName() string {
	return "reels"
}
