package database

import (
	"time"
)

// PreferenceSnapshot database model. Each successful write of the
// preferences file stores one document.
type PreferenceSnapshot struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BatchID   string    `gorm:"type:varchar(36);index" json:"batch_id"`
	Document  []byte    `gorm:"type:blob" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
