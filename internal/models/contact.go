package models

// Contact is an append-only contact-form submission.
type Contact struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
