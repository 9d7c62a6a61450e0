package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores an ordered list of tags as a JSON text column so the
// same model works on postgres and sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("incompatible type for StringList")
}

// A user-authored recipe. Only the owning user may update or delete it.
type Recipe struct {
	ID          string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Ingredients string     `json:"ingredients" gorm:"not null"`
	Preparation string     `json:"preparation" gorm:"not null"`
	Category    string     `json:"category" gorm:"not null"`
	Tags        StringList `json:"tags" gorm:"type:text"`
	UserID      string     `json:"userId" gorm:"type:varchar(36);index;not null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
