package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise is a single logged activity. Date holds the display form
// ("Sun Jan 15 2023") and Day the sortable form ("2023-01-15") used for
// range queries.
type Exercise struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"-"`
	UserID      string    `gorm:"not null;type:varchar(36);index:idx_exercises_user_day,priority:1" bson:"user_id" json:"-"`
	Description string    `gorm:"not null" bson:"description" json:"description"`
	Duration    int       `gorm:"not null" bson:"duration" json:"duration"`
	Date        string    `gorm:"not null;type:varchar(32)" bson:"date" json:"date"`
	Day         string    `gorm:"not null;type:varchar(10);index:idx_exercises_user_day,priority:2" bson:"day" json:"-"`
	CreatedAt   time.Time `gorm:"index" bson:"created_at" json:"-"`
}

// NewExercise builds an entry for userID on the calendar day of when.
func NewExercise(userID, description string, duration int, when time.Time) *Exercise {
	return &Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        FormatDate(when),
		Day:         FormatDay(when),
	}
}

// AssignDefaults fills the generated fields of a new entry.
func (e *Exercise) AssignDefaults() {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) (err error) {
	e.AssignDefaults()
	return
}
