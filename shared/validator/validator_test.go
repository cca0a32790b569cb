package validator_test

import (
	"strings"
	"testing"

	"frontdesk/shared/validator"
)

type guestTestStruct struct {
	Name   string `validate:"required,max=100"               json:"name"`
	Email  string `validate:"omitempty,email"                json:"email"`
	Age    int    `validate:"gte=0,lte=120"                  json:"age"`
	Status string `validate:"omitempty,oneof=Booked Checked" json:"status"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *guestTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &guestTestStruct{
				Name:  "Ravi Kumar",
				Email: "ravi@example.com",
				Age:   34,
			},
			expectError: false,
		},
		{
			name: "missing required name",
			data: &guestTestStruct{
				Email: "ravi@example.com",
				Age:   34,
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &guestTestStruct{
				Name:  "Ravi Kumar",
				Email: "not-an-email",
			},
			expectError: true,
		},
		{
			name: "empty email allowed",
			data: &guestTestStruct{
				Name: "Ravi Kumar",
			},
			expectError: false,
		},
		{
			name: "age out of range",
			data: &guestTestStruct{
				Name: "Ravi Kumar",
				Age:  150,
			},
			expectError: true,
		},
		{
			name: "invalid status",
			data: &guestTestStruct{
				Name:   "Ravi Kumar",
				Status: "Unknown",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Ravi Kumar","email":"ravi@example.com","age":34}`,
			expectError: false,
		},
		{
			name:        "invalid email",
			jsonBody:    `{"name":"Ravi Kumar","email":"not-an-email"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Ravi Kumar","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data guestTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "GRC-001",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "guest@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=120",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Validation messages should carry the JSON field name, not the Go one.
func TestValidationMessages(t *testing.T) {
	data := &guestTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "name") {
		t.Errorf("expected error message to reference the json field name, got: %s", errorMsg)
	}

	if !strings.Contains(errorMsg, "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
