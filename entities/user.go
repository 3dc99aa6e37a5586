package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a tracker account. Users are never updated or deleted once created.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	Username  string    `gorm:"not null" bson:"username" json:"username"`
	CreatedAt time.Time `gorm:"index" bson:"created_at" json:"-"`
}

// AssignDefaults fills the generated fields of a new user.
func (u *User) AssignDefaults() {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.AssignDefaults()
	return
}
