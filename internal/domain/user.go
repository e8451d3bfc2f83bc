package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of date_of_suscription.
const DateLayout = "2006-01-02"

// User is a blog reader. The password hash never leaves the server.
type User struct {
	ID                int64          `json:"id" gorm:"primaryKey"`
	Name              string         `json:"name" gorm:"size:50;not null"`
	LastName          string         `json:"last_name" gorm:"size:50;not null"`
	Email             string         `json:"email" gorm:"size:120;not null;uniqueIndex"`
	PasswordHash      string         `json:"-" gorm:"column:password;size:80;not null"`
	IsActive          bool           `json:"is_active" gorm:"not null"`
	DateOfSuscription datatypes.Date `json:"-" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

func (u User) EntityKind() EntityKind { return KindUser }
func (u User) EntityID() int64        { return u.ID }

func (u User) UniqueKey() (string, string) { return "email", u.Email }

// userJSON mirrors User for serialization, rendering the subscription
// date without a time component.
type userJSON struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	LastName          string `json:"last_name"`
	IsActive          bool   `json:"is_active"`
	DateOfSuscription string `json:"date_of_suscription"`
}

func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		LastName:          u.LastName,
		IsActive:          u.IsActive,
		DateOfSuscription: time.Time(u.DateOfSuscription).Format(DateLayout),
	})
}
