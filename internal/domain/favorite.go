package domain

import (
	"encoding/json"
	"strings"
)

// TargetKind tags what a Favorite points at.
type TargetKind string

const (
	TargetPlanet    TargetKind = "planet"
	TargetVehicle   TargetKind = "vehicle"
	TargetCharacter TargetKind = "character"
)

// ParseTargetKind accepts the lower-case target kind name.
func ParseTargetKind(s string) (TargetKind, error) {
	switch k := TargetKind(strings.ToLower(strings.TrimSpace(s))); k {
	case TargetPlanet, TargetVehicle, TargetCharacter:
		return k, nil
	}
	return "", NewValidationError("target_kind", "must be one of planet, vehicle, character")
}

// EntityKind maps the target tag onto the table it references.
func (k TargetKind) EntityKind() EntityKind {
	return EntityKind(k)
}

// Target is the tagged union referenced by a Favorite: exactly one
// planet, vehicle or character.
type Target struct {
	Kind TargetKind `gorm:"column:target_kind;type:varchar(16);not null;uniqueIndex:idx_favorite_user_target,priority:2;check:target_kind IN ('planet','vehicle','character')"`
	ID   int64      `gorm:"column:target_id;not null;uniqueIndex:idx_favorite_user_target,priority:3"`
}

func PlanetTarget(id int64) Target    { return Target{Kind: TargetPlanet, ID: id} }
func VehicleTarget(id int64) Target   { return Target{Kind: TargetVehicle, ID: id} }
func CharacterTarget(id int64) Target { return Target{Kind: TargetCharacter, ID: id} }

// Favorite links a user to exactly one target entity.
type Favorite struct {
	ID     int64  `gorm:"primaryKey"`
	UserID int64  `gorm:"not null;index;uniqueIndex:idx_favorite_user_target,priority:1"`
	Target Target `gorm:"embedded"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// favoriteJSON keeps one nullable reference per target kind so clients
// that read planet/vehicle/character keep working.
type favoriteJSON struct {
	ID         int64      `json:"id"`
	User       int64      `json:"user"`
	TargetKind TargetKind `json:"target_kind"`
	TargetID   int64      `json:"target_id"`
	Planet     *int64     `json:"planet"`
	Vehicle    *int64     `json:"vehicle"`
	Character  *int64     `json:"character"`
}

func (f Favorite) MarshalJSON() ([]byte, error) {
	out := favoriteJSON{
		ID:         f.ID,
		User:       f.UserID,
		TargetKind: f.Target.Kind,
		TargetID:   f.Target.ID,
	}
	id := f.Target.ID
	switch f.Target.Kind {
	case TargetPlanet:
		out.Planet = &id
	case TargetVehicle:
		out.Vehicle = &id
	case TargetCharacter:
		out.Character = &id
	}
	return json.Marshal(out)
}
