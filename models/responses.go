package models

// MessageResponse is the body returned by endpoints that acknowledge an
// operation with human-readable text (register, logout, deletes).
type MessageResponse struct {
	Message string `json:"message"`
}
