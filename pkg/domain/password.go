package domain

import (
	"time"

	"github.com/google/uuid"
)

// PasswordID uniquely identifies a generated password within a session.
type PasswordID uuid.UUID

// String returns the canonical uuid form of the id.
func (id PasswordID) String() string { return uuid.UUID(id).String() }

// Strength is the qualitative band derived from an entropy estimate. It only
// drives presentation and never gates behavior.
type Strength string

const (
	// StrengthWeak is used below 40 bits.
	StrengthWeak Strength = "weak"
	// StrengthMedium is used from 40 up to (excluding) 80 bits.
	StrengthMedium Strength = "medium"
	// StrengthStrong is used from 80 bits upwards.
	StrengthStrong Strength = "strong"
)

// MeterMax is the entropy value at which the strength meter is full.
const MeterMax = 128.0

// Score is the entropy estimate of a password together with its meter
// rendering values.
type Score struct {
	// Bits is length * log2(poolSize), rounded to one decimal place.
	Bits float64 `json:"bits"`
	// Meter is min(MeterMax, Bits).
	Meter float64 `json:"meter"`
	// Strength is the band Bits falls into.
	Strength Strength `json:"strength"`
}

// Percent maps Meter onto 0..100 for proportional meter bars.
func (s Score) Percent() float64 {
	return s.Meter / MeterMax * 100
}

// Password is a generated password together with its score.
type Password struct {
	// ID identifies the password within the session history.
	ID PasswordID `json:"id"`
	// Value is the final password text, after any readability filtering.
	Value string `json:"password"`
	// Requested is the length that was asked for. Value may be shorter when
	// the readability filter collapsed symbol runs.
	Requested int `json:"requested"`
	// Score is the entropy estimate computed right after generation.
	Score Score `json:"score"`
	// CreatedAt is when the password was generated.
	CreatedAt time.Time `json:"createdAt"`
}
