package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a user or the gender a profile is searching for.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender validates a wire value against the closed gender set.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), true
	}
	return "", false
}

// ProfileType describes what role the profile owner is offering.
type ProfileType string

const (
	ProfileTypeDriver    ProfileType = "driver"
	ProfileTypeCompanion ProfileType = "companion"
	ProfileTypeTogether  ProfileType = "together"
	ProfileTypeAny       ProfileType = "any"
)

// ParseProfileType validates a wire value against the closed profile-type set.
func ParseProfileType(s string) (ProfileType, bool) {
	switch ProfileType(s) {
	case ProfileTypeDriver, ProfileTypeCompanion, ProfileTypeTogether, ProfileTypeAny:
		return ProfileType(s), true
	}
	return "", false
}

// Code returns the SMALLINT representation stored in the profiles table.
func (t ProfileType) Code() int16 {
	switch t {
	case ProfileTypeDriver:
		return 0
	case ProfileTypeCompanion:
		return 1
	case ProfileTypeTogether:
		return 2
	default:
		return 3
	}
}

// VehicleType is the vehicle a driver profile advertises.
type VehicleType string

const (
	VehicleSedan VehicleType = "sedan"
	VehicleSUV   VehicleType = "suv"
	VehicleVan   VehicleType = "van"
	VehicleCoupe VehicleType = "coupe"
	VehicleMoto  VehicleType = "moto"
	VehicleOther VehicleType = "other"
)

// ParseVehicleType validates a wire value against the closed vehicle set.
func ParseVehicleType(s string) (VehicleType, bool) {
	switch VehicleType(s) {
	case VehicleSedan, VehicleSUV, VehicleVan, VehicleCoupe, VehicleMoto, VehicleOther:
		return VehicleType(s), true
	}
	return "", false
}

// PhotoClass selects which photo table a subject's photos live in. Each class
// maps to a fixed statement pair and quota; the class is never interpolated
// into SQL text.
type PhotoClass string

const (
	PhotoClassUser    PhotoClass = "user"
	PhotoClassProfile PhotoClass = "profile"
)

// ParsePhotoClass validates a wire value against the closed photo-class set.
func ParsePhotoClass(s string) (PhotoClass, bool) {
	switch PhotoClass(s) {
	case PhotoClassUser, PhotoClassProfile:
		return PhotoClass(s), true
	}
	return "", false
}

// User represents a registered user
type User struct {
	ID             uuid.UUID `json:"user_id"`
	Nickname       string    `json:"nickname"`
	FirstName      string    `json:"first_name"`
	RegTime        time.Time `json:"reg_time"`
	BornDate       time.Time `json:"born_date"`
	Gender         Gender    `json:"gender"`
	HashedPassword string    `json:"-"`
}

// Session binds a (user, device) pair to its token. At most one session
// exists per pair; the token never expires.
type Session struct {
	ID        uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	DeviceID  string    `json:"device_id"`
	StartTime time.Time `json:"start_time"`
	Token     string    `json:"-"`
}

// Profile is a search profile owned by a user; one per (user, type)
type Profile struct {
	ID            uuid.UUID   `json:"profile_id"`
	UserID        uuid.UUID   `json:"user_id"`
	Active        bool        `json:"status"`
	DesiredGender Gender      `json:"desired_gender"`
	MinAge        int16       `json:"min_age"`
	MaxAge        int16       `json:"max_age"`
	Type          ProfileType `json:"profile_type"`
	VehicleType   VehicleType `json:"vehicle_type"`
}

// Rating accumulates scores for a user; created together with the user row
type Rating struct {
	ID        uuid.UUID `json:"rating_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rate      int       `json:"rate"`
	RateCount int       `json:"rate_count"`
}
