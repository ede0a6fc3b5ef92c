package models

import (
	"time"
)

// CustomerInfo holds delivery details keyed by email, upserted from the
// checkout form.
type CustomerInfo struct {
	BaseModel
	FullName string    `json:"fullName"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Dob      time.Time `json:"dob"`
}
