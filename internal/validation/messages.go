package validation

// Messages holds the default English text for each error code.
var Messages = map[string]string{
	CodeGeneral:       "Invalid Submission",
	CodeName:          "Name is required",
	CodeDuplicateName: "Specified Encounter Type name already exists, please specify another",
}

// Message resolves the text shown for e: its own message, then the code's default, then the code.
func Message(e FieldError) string {
	if e.Message != "" {
		return e.Message
	}
	if msg, ok := Messages[e.Code]; ok {
		return msg
	}
	return e.Code
}
