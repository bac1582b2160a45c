package models

import "server/internal/apperrors"

// Request payloads keep the client vocabulary (UN, UEmail, snrValues, ...)
// and map it onto stored column names. Fields are pointers so that a JSON
// key being absent is distinguishable from a zero value; unknown extra
// keys are ignored by the parser.

type CreateTestRunRequest struct {
	UN        *string `json:"UN"`
	UEmail    *string `json:"UEmail"`
	Chip      *string `json:"chip"`
	SnrValues *string `json:"snrValues"`
	NumTests  *int    `json:"numTests"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Status    *string `json:"status"`
}

// Validate reports every missing required field at once, before any store
// access happens.
func (r *CreateTestRunRequest) Validate() error {
	var missing []string

	checks := []struct {
		name    string
		present bool
	}{
		{"UN", r.UN != nil},
		{"UEmail", r.UEmail != nil},
		{"chip", r.Chip != nil},
		{"snrValues", r.SnrValues != nil},
		{"numTests", r.NumTests != nil},
		{"date", r.Date != nil},
		{"startTime", r.StartTime != nil},
		{"endTime", r.EndTime != nil},
		{"status", r.Status != nil},
	}

	for _, check := range checks {
		if !check.present {
			missing = append(missing, check.name)
		}
	}

	if len(missing) > 0 {
		return &apperrors.ValidationError{Missing: missing}
	}
	return nil
}

// ToTestRun maps the client vocabulary onto the stored record. Only valid
// after Validate has passed.
func (r *CreateTestRunRequest) ToTestRun() *TestRun {
	return &TestRun{
		UserName:  *r.UN,
		UserEmail: *r.UEmail,
		Chip:      *r.Chip,
		Snr:       *r.SnrValues,
		NumTests:  *r.NumTests,
		Date:      *r.Date,
		StartTime: *r.StartTime,
		EndTime:   *r.EndTime,
		Status:    *r.Status,
	}
}

type AddUserRequest struct {
	Email *string `json:"email"`
}

func (r *AddUserRequest) Validate() error {
	if r.Email == nil {
		return &apperrors.ValidationError{Missing: []string{"email"}}
	}
	return nil
}

type VerifyEmailRequest struct {
	Email *string `json:"email"`
}

func (r *VerifyEmailRequest) Validate() error {
	if r.Email == nil {
		return &apperrors.ValidationError{Missing: []string{"email"}}
	}
	return nil
}
