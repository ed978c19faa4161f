package http

const (
	EncounterTypeUUIDParam = "encounterTypeUUID"
	IncludeRetiredQuery    = "includeRetired"
)
