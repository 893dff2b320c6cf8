package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gender options offered during registration
var Genders = []string{"Male", "Female"}

// Denominations is the fixed set offered during registration
var Denominations = []string{
	"Baptist",
	"Catholic",
	"Lutheran",
	"Methodist",
	"Non-denominational",
	"Orthodox",
	"Pentecostal",
	"Presbyterian",
	"Other",
}

// AttendanceOptions describes how often a user attends church
var AttendanceOptions = []string{
	"Weekly",
	"Monthly",
	"Occasionally",
	"Seeking a church",
}

// ValidGender reports whether v is one of the offered genders
func ValidGender(v string) bool { return contains(Genders, v) }

// ValidDenomination reports whether v is one of the listed denominations
func ValidDenomination(v string) bool { return contains(Denominations, v) }

// ValidAttendance reports whether v is one of the attendance options
func ValidAttendance(v string) bool { return contains(AttendanceOptions, v) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// User represents a finalized dating profile
type User struct {
	ID               uuid.UUID
	TelegramID       int64
	Username         string
	FirstName        string
	Age              int
	Gender           string
	Location         string
	Denomination     string
	ChurchAttendance string
	Bio              string
	PhotoFileID      string
	VideoFileID      string
	// Verified is flipped only by the manual review process, never by the bot
	Verified     bool
	Banned       bool
	CreatedAt    time.Time
	LastActiveAt time.Time
}

// Wallet holds the balance ledger for a user, created together with the profile
type Wallet struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
}
