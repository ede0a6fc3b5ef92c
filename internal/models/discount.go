package models

import (
	"time"

	"github.com/lib/pq"
)

// TimeFrame restricts a discount to a time-of-day window inside its validity
// dates. Start and End are "HH:MM" strings.
type TimeFrame struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Discount is a promotion code with a validity window. No enforcement logic
// lives in this service; checkout applies the rules.
type Discount struct {
	BaseModel
	Code                 string         `gorm:"index" json:"code"`
	Type                 string         `json:"type"`
	Value                float64        `json:"value"`
	StartDate            time.Time      `json:"startDate"`
	EndDate              time.Time      `json:"endDate"`
	TimeFrame            TimeFrame      `gorm:"embedded;embeddedPrefix:time_frame_" json:"timeFrame"`
	MinimumOrderValue    float64        `json:"minimumOrderValue"`
	MinimumItems         int            `json:"minimumItems"`
	ApplicableCategories pq.StringArray `gorm:"type:text[]" json:"applicableCategories"`
	UsageLimit           int            `json:"usageLimit"`
}
