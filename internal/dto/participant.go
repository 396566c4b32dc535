package dto

// CreateParticipantRequest adds a single roster entry.
type CreateParticipantRequest struct {
	Name    string  `json:"name" validate:"required"`
	Role    *string `json:"role"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
}

// BulkParticipantsRequest adds many roster entries at once. Entries with a
// blank name are skipped, not rejected.
type BulkParticipantsRequest struct {
	Participants []CreateParticipantRequest `json:"participants"`
}

// UpdateParticipantRequest is a partial roster update.
type UpdateParticipantRequest struct {
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Company   *string `json:"company"`
	Email     *string `json:"email"`
	IsPresent *bool   `json:"is_present"`
}

// PresenceRequest toggles attendance.
type PresenceRequest struct {
	IsPresent *bool `json:"is_present" validate:"required"`
}
