package models

// TestRun is one executed (or simulated) test run against a chip. Rows are
// created and optionally deleted, never updated in place.
type TestRun struct {
	BaseUUIDModel
	UserName  string `gorm:"type:varchar(255);not null" json:"user_name"`
	UserEmail string `gorm:"type:varchar(255);not null" json:"user_email"`
	Chip      string `gorm:"type:varchar(255);not null" json:"chip"`
	Snr       string `gorm:"type:text;not null"         json:"snr"` // comma-separated, stored opaque
	NumTests  int    `gorm:"type:int;not null"          json:"num_tests"`
	Date      string `gorm:"type:varchar(64);not null"  json:"date"`
	StartTime string `gorm:"type:varchar(64);not null"  json:"start_time"`
	EndTime   string `gorm:"type:varchar(64);not null"  json:"end_time"` // "-" while still running
	Status    string `gorm:"type:varchar(64);not null"  json:"status"`
}

func (TestRun) TableName() string {
	return "tests"
}
