package dto

// UpdateSessionStatusRequest moves a session through its lifecycle.
type UpdateSessionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
