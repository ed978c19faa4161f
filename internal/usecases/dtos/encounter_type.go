package dtos

import (
	"github.com/mufasadev/encounter-types/internal/domain/models"
)

// EncounterTypeDTO is the bound request for create, update and validate.
// Name is a pointer so an explicit null and a missing field both reach validation as blank.
type EncounterTypeDTO struct {
	UUID        string  `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Name        *string `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Retired     bool    `json:"retired,omitempty" yaml:"retired,omitempty"`
}

// NameValue returns the submitted name, or "" when it was null or missing.
func (d *EncounterTypeDTO) NameValue() string {
	if d.Name == nil {
		return ""
	}
	return *d.Name
}

// ToModel binds the DTO onto a new EncounterType without normalising anything.
func (d *EncounterTypeDTO) ToModel() *models.EncounterType {
	return &models.EncounterType{
		UUID:        d.UUID,
		Name:        d.NameValue(),
		Description: d.Description,
		Retired:     d.Retired,
	}
}

type RetireDTO struct {
	Reason string `json:"reason"`
}
