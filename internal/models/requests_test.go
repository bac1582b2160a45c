package models

import (
	"errors"
	"server/internal/apperrors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func validCreateTestRunRequest() *CreateTestRunRequest {
	return &CreateTestRunRequest{
		UN:        strPtr("alice"),
		UEmail:    strPtr("a@x.com"),
		Chip:      strPtr("C1"),
		SnrValues: strPtr("1,2,3"),
		NumTests:  intPtr(3),
		Date:      strPtr("2024-01-01"),
		StartTime: strPtr("10:00"),
		EndTime:   strPtr("10:05"),
		Status:    strPtr("complete"),
	}
}

func TestCreateTestRunRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateTestRunRequest)
		missing string
	}{
		{name: "missing UN", mutate: func(r *CreateTestRunRequest) { r.UN = nil }, missing: "UN"},
		{name: "missing UEmail", mutate: func(r *CreateTestRunRequest) { r.UEmail = nil }, missing: "UEmail"},
		{name: "missing chip", mutate: func(r *CreateTestRunRequest) { r.Chip = nil }, missing: "chip"},
		{name: "missing snrValues", mutate: func(r *CreateTestRunRequest) { r.SnrValues = nil }, missing: "snrValues"},
		{name: "missing numTests", mutate: func(r *CreateTestRunRequest) { r.NumTests = nil }, missing: "numTests"},
		{name: "missing date", mutate: func(r *CreateTestRunRequest) { r.Date = nil }, missing: "date"},
		{name: "missing startTime", mutate: func(r *CreateTestRunRequest) { r.StartTime = nil }, missing: "startTime"},
		{name: "missing endTime", mutate: func(r *CreateTestRunRequest) { r.EndTime = nil }, missing: "endTime"},
		{name: "missing status", mutate: func(r *CreateTestRunRequest) { r.Status = nil }, missing: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validCreateTestRunRequest()
			tt.mutate(request)

			err := request.Validate()
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Contains(t, validationErr.Missing, tt.missing)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestCreateTestRunRequest_Validate_AllPresent(t *testing.T) {
	assert.NoError(t, validCreateTestRunRequest().Validate())
}

func TestCreateTestRunRequest_Validate_ReportsAllMissing(t *testing.T) {
	request := &CreateTestRunRequest{}

	err := request.Validate()
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Missing, 9)
}

func TestCreateTestRunRequest_ToTestRun(t *testing.T) {
	testRun := validCreateTestRunRequest().ToTestRun()

	assert.Equal(t, "alice", testRun.UserName)
	assert.Equal(t, "a@x.com", testRun.UserEmail)
	assert.Equal(t, "C1", testRun.Chip)
	assert.Equal(t, "1,2,3", testRun.Snr)
	assert.Equal(t, 3, testRun.NumTests)
	assert.Equal(t, "2024-01-01", testRun.Date)
	assert.Equal(t, "10:00", testRun.StartTime)
	assert.Equal(t, "10:05", testRun.EndTime)
	assert.Equal(t, "complete", testRun.Status)
	assert.Empty(t, testRun.ID, "id is assigned by the store, not the mapper")
}

func TestAddUserRequest_Validate(t *testing.T) {
	assert.Error(t, (&AddUserRequest{}).Validate())
	assert.NoError(t, (&AddUserRequest{Email: strPtr("a@x.com")}).Validate())
}

func TestVerifyEmailRequest_Validate(t *testing.T) {
	assert.Error(t, (&VerifyEmailRequest{}).Validate())
	assert.NoError(t, (&VerifyEmailRequest{Email: strPtr("a@x.com")}).Validate())
}

func TestNewInvitee_Defaults(t *testing.T) {
	user := NewInvitee("a@x.com")

	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, PlaceholderValue, user.Name)
	assert.Equal(t, DefaultUserRole, user.Role)
	assert.Equal(t, PlaceholderValue, user.LastOnline)
	assert.Empty(t, user.ID)
}
