// Package seed reads encounter type seed files.
//
// A seed file is YAML of the form:
//
//	encounterTypes:
//	  - name: Admission
//	    description: Patient admitted to a ward
//	  - name: Discharge
//	    uuid: 0c7ae3a4-1b2f-4d1b-9a3c-9f6d2b0c1e55
package seed

import (
	"fmt"
	"github.com/mufasadev/encounter-types/internal/usecases/dtos"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

type File struct {
	EncounterTypes []dtos.EncounterTypeDTO `yaml:"encounterTypes"`
}

// Parse decodes a seed document. Unknown keys are rejected so typos do not silently drop data.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()

	return Parse(fh)
}
