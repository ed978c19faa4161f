package validators

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	"github.com/mufasadev/encounter-types/internal/validation"
	"pgregory.net/rapid"
	"strings"
	"testing"
)

var (
	blankName = rapid.StringOfN(rapid.SampledFrom([]rune{' ', '\t', '\n', '\r'}), 0, 12, -1)
	validName = rapid.StringMatching(`[ ]{0,3}[A-Za-z][A-Za-z0-9 ]{0,20}[A-Za-z0-9][ ]{0,3}`)
	uuidLike  = rapid.StringMatching(`u[0-9]{1,4}`)
)

func runValidator(t *rapid.T, dir *fakeDirectory, candidate *models.EncounterType) *validation.Errors {
	errs := validation.NewErrors(string(models.KindEncounterType))
	if err := NewEncounterTypeValidator(dir).Validate(context.Background(), candidate, errs); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	return errs
}

// TestProperty_BlankNameNeverConsultsDirectory: blank names always fail with error.name and no lookup.
func TestProperty_BlankNameNeverConsultsDirectory(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := blankName.Draw(t, "name")
		dir := newFakeDirectory(&models.EncounterType{Name: name, UUID: "other"})

		errs := runValidator(t, dir, &models.EncounterType{Name: name, UUID: uuidLike.Draw(t, "uuid")})

		if len(dir.lookups) != 0 {
			t.Fatalf("directory consulted for blank name %q", name)
		}
		if got := errs.Codes(); len(got) != 1 || got[0] != validation.CodeName || !errs.HasFieldErrors("name") {
			t.Fatalf("blank name %q: got errors %v", name, got)
		}
	})
}

// TestProperty_UnusedNamePasses: a valid name no other active record owns never produces an error.
func TestProperty_UnusedNamePasses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := validName.Draw(t, "name")
		other := validName.Draw(t, "other")
		if strings.TrimSpace(other) == strings.TrimSpace(name) {
			t.Skip("names collide")
		}
		dir := newFakeDirectory(&models.EncounterType{Name: strings.TrimSpace(other), UUID: "other"})

		errs := runValidator(t, dir, &models.EncounterType{Name: name, UUID: uuidLike.Draw(t, "uuid")})

		if errs.HasErrors() {
			t.Fatalf("name %q: unexpected errors %v", name, errs.Codes())
		}
	})
}

// TestProperty_RetiredOwnerNeverConflicts: names held only by retired records are free.
func TestProperty_RetiredOwnerNeverConflicts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := validName.Draw(t, "name")
		dir := newFakeDirectory(&models.EncounterType{Name: strings.TrimSpace(name), UUID: "retired", Retired: true})

		errs := runValidator(t, dir, &models.EncounterType{Name: name, UUID: uuidLike.Draw(t, "uuid")})

		if errs.HasErrors() {
			t.Fatalf("name %q held by a retired record: unexpected errors %v", name, errs.Codes())
		}
	})
}

// TestProperty_ActiveOwnerConflictsUnlessSelf: an active owner conflicts exactly when uuids differ or are unset.
func TestProperty_ActiveOwnerConflictsUnlessSelf(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := validName.Draw(t, "name")
		ownerUUID := uuidLike.Draw(t, "ownerUUID")
		candidateUUID := rapid.OneOf(rapid.Just(""), rapid.Just(ownerUUID), uuidLike).Draw(t, "candidateUUID")
		dir := newFakeDirectory(&models.EncounterType{Name: strings.TrimSpace(name), UUID: ownerUUID})

		errs := runValidator(t, dir, &models.EncounterType{Name: name, UUID: candidateUUID})

		self := candidateUUID != "" && candidateUUID == ownerUUID
		if self && errs.HasErrors() {
			t.Fatalf("self match reported as duplicate: %v", errs.Codes())
		}
		if !self {
			got := errs.FieldErrors("name")
			if len(got) != 1 || got[0].Code != validation.CodeDuplicateName || errs.Len() != 1 {
				t.Fatalf("candidate %q vs owner %q: got %v", candidateUUID, ownerUUID, errs.Codes())
			}
		}
	})
}
