package domain

import "strings"

// EntityKind names one of the independent tables.
type EntityKind string

const (
	KindUser      EntityKind = "user"
	KindCharacter EntityKind = "character"
	KindPlanet    EntityKind = "planet"
	KindVehicle   EntityKind = "vehicle"
)

// Entity is a row of one of the entity tables.
type Entity interface {
	EntityKind() EntityKind
	EntityID() int64
	// UniqueKey returns the column and value that must be unique in the table.
	UniqueKey() (column string, value string)
}

// ParseEntityKind accepts the lower-case kind name, ignoring surrounding space.
func ParseEntityKind(s string) (EntityKind, error) {
	switch k := EntityKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindUser, KindCharacter, KindPlanet, KindVehicle:
		return k, nil
	}
	return "", NewValidationError("kind", "unknown entity kind")
}
