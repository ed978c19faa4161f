package validation

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestErrorsSeparatesFieldAndGlobal(t *testing.T) {
	errs := NewErrors("EncounterType")
	errs.Reject(CodeGeneral, "")
	errs.RejectValue("name", CodeName, "")
	errs.RejectValue("name", CodeDuplicateName, "taken")

	assert.Equal(t, "EncounterType", errs.ObjectName())
	assert.True(t, errs.HasErrors())
	assert.Equal(t, 3, errs.Len())
	assert.True(t, errs.HasFieldErrors("name"))
	assert.False(t, errs.HasFieldErrors("description"))
	assert.Len(t, errs.FieldErrors("name"), 2)
	assert.Equal(t, []FieldError{{Code: CodeGeneral}}, errs.GlobalErrors())
	assert.Equal(t, []string{CodeGeneral, CodeName, CodeDuplicateName}, errs.Codes())
	assert.Equal(t, "error.general; name: error.name; name: encounterType.duplicate.name", errs.String())
}

func TestErrorsAllReturnsCopy(t *testing.T) {
	errs := NewErrors("EncounterType")
	errs.RejectValue("name", CodeName, "")

	all := errs.All()
	all[0].Code = "changed"

	assert.Equal(t, CodeName, errs.All()[0].Code)
}

func TestEmptyErrors(t *testing.T) {
	errs := NewErrors("EncounterType")

	assert.False(t, errs.HasErrors())
	assert.Zero(t, errs.Len())
	assert.Empty(t, errs.GlobalErrors())
	assert.Empty(t, errs.FieldErrors("name"))
	assert.Empty(t, errs.String())
}

func TestRejectIfEmptyOrWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		rejected bool
	}{
		{name: "empty", value: "", rejected: true},
		{name: "spaces", value: "   ", rejected: true},
		{name: "tabs and newlines", value: "\t\n ", rejected: true},
		{name: "text", value: "Admission", rejected: false},
		{name: "padded text", value: "  Admission ", rejected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := NewErrors("EncounterType")

			got := RejectIfEmptyOrWhitespace(errs, "name", tt.value, CodeName)

			assert.Equal(t, tt.rejected, got)
			assert.Equal(t, tt.rejected, errs.HasFieldErrors("name"))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "custom", Message(FieldError{Code: CodeDuplicateName, Message: "custom"}))
	assert.Equal(t, Messages[CodeName], Message(FieldError{Field: "name", Code: CodeName}))
	assert.Equal(t, "unknown.code", Message(FieldError{Code: "unknown.code"}))
}
