package models

import (
	"strings"
	"time"
)

// Kind identifies an entity type for validator dispatch.
type Kind string

const KindEncounterType Kind = "EncounterType"

// EncounterType describes the context of a clinical encounter, e.g. "Admission" or "Discharge".
type EncounterType struct {
	ID           int64      `db:"encounter_type_id" json:"-"`
	UUID         string     `db:"uuid" json:"uuid"`
	Name         string     `db:"name" json:"name"`
	Description  string     `db:"description" json:"description,omitempty"`
	Retired      bool       `db:"retired" json:"retired"`
	RetireReason string     `db:"retire_reason" json:"retireReason,omitempty"`
	DateCreated  time.Time  `db:"date_created" json:"dateCreated"`
	DateChanged  *time.Time `db:"date_changed" json:"dateChanged,omitempty"`
	DateRetired  *time.Time `db:"date_retired" json:"dateRetired,omitempty"`
}

// TrimmedName is the form of Name used for lookups and uniqueness.
func (e *EncounterType) TrimmedName() string {
	return strings.TrimSpace(e.Name)
}

// Retire soft-deletes the encounter type.
func (e *EncounterType) Retire(reason string, at time.Time) {
	e.Retired = true
	e.RetireReason = reason
	e.DateRetired = &at
}

func (e *EncounterType) Unretire() {
	e.Retired = false
	e.RetireReason = ""
	e.DateRetired = nil
}

// Clone returns a copy that shares no pointers with e.
func (e *EncounterType) Clone() *EncounterType {
	c := *e
	if e.DateChanged != nil {
		t := *e.DateChanged
		c.DateChanged = &t
	}
	if e.DateRetired != nil {
		t := *e.DateRetired
		c.DateRetired = &t
	}
	return &c
}
