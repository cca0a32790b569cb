package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared/coerce"
	"frontdesk/shared/validator"
)

func TestCreateBookingRequest_Coercion(t *testing.T) {
	body := `{
		"name": "  Ravi Kumar  ",
		"age": "34",
		"days": 2,
		"rate": "1500.50",
		"taxIncluded": "true",
		"vip": false,
		"temperature": "not-a-number",
		"checkInDate": "2026-09-01"
	}`

	req := dto.CreateBookingRequest{}
	err := validator.Validate(strings.NewReader(body), &req)
	require.NoError(t, err)

	assert.Equal(t, coerce.String("Ravi Kumar"), req.Name)
	assert.Equal(t, coerce.Number(34), req.Age)
	assert.Equal(t, coerce.Number(2), req.Days)
	assert.Equal(t, coerce.Number(1500.50), req.Rate)
	assert.Equal(t, coerce.Bool(true), req.TaxIncluded)
	assert.Equal(t, coerce.Bool(false), req.VIP)
	assert.Equal(t, coerce.Number(0), req.Temperature)
}

func TestCreateBookingRequest_NameRequired(t *testing.T) {
	req := dto.CreateBookingRequest{}
	err := validator.Validate(strings.NewReader(`{"city":"Chennai"}`), &req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Name:        "Ravi Kumar",
		City:        "Chennai",
		CheckInDate: "2026-09-01",
		BirthDate:   "1990-04-15",
		Rate:        1500.50,
		TaxIncluded: true,
		Status:      "Booked",
	}

	booking, err := req.ToModel("GRC-007", "reception", dto.GuestImages{})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "GRC-007", booking.GRCNo)
	assert.Equal(t, "Ravi Kumar", booking.Name)
	assert.Equal(t, "Chennai", booking.City)
	assert.Equal(t, 1500.50, booking.Rate)
	assert.True(t, booking.TaxIncluded)
	assert.Equal(t, "Booked", booking.Status)
	assert.Equal(t, "reception", booking.CreatedBy)
	assert.Equal(t, "reception", booking.ModifiedBy)
	assert.False(t, booking.BookingDate.IsZero())

	require.NotNil(t, booking.CheckInDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), booking.CheckInDate.UTC())

	require.NotNil(t, booking.BirthDate)
	assert.Nil(t, booking.CheckOutDate)
	assert.Nil(t, booking.Anniversary)
}

func TestCreateBookingRequest_ToModelInvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		Name:        "Ravi Kumar",
		CheckInDate: "next tuesday",
	}

	_, err := req.ToModel("GRC-007", "reception", dto.GuestImages{})
	assert.Error(t, err)
}

func TestCreateBookingRequest_ImagePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		uploaded string
		body     string
		expected string
	}{
		{
			name:     "uploaded file wins over body url",
			uploaded: "https://cdn.example.com/uploads/photo.jpg",
			body:     "https://cdn.example.com/old/photo.jpg",
			expected: "https://cdn.example.com/uploads/photo.jpg",
		},
		{
			name:     "body url used when nothing uploaded",
			uploaded: "",
			body:     "https://cdn.example.com/old/photo.jpg",
			expected: "https://cdn.example.com/old/photo.jpg",
		},
		{
			name:     "empty when neither provided",
			uploaded: "",
			body:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				Name:     "Ravi Kumar",
				PhotoURL: coerce.String(tt.body),
			}

			booking, err := req.ToModel("GRC-001", "reception", dto.GuestImages{Photo: tt.uploaded})
			require.NoError(t, err)

			assert.Equal(t, tt.expected, booking.PhotoURL)
		})
	}
}

func TestUpdateBookingRequest_UpdateFields(t *testing.T) {
	name := coerce.String("Jane Doe")
	rate := coerce.Number(2000)
	vip := coerce.Bool(true)
	checkOut := coerce.String("2026-09-05")

	req := dto.UpdateBookingRequest{
		Name:         &name,
		Rate:         &rate,
		VIP:          &vip,
		CheckOutDate: &checkOut,
	}

	fields, err := req.UpdateFields("reception")
	require.NoError(t, err)

	assert.Equal(t, name, fields["name"])
	assert.Equal(t, rate, fields["rate"])
	assert.Equal(t, vip, fields["vip"])
	assert.Equal(t, "reception", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")

	checkOutDate, ok := fields["check_out_date"].(*time.Time)
	require.True(t, ok)
	require.NotNil(t, checkOutDate)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), checkOutDate.UTC())

	// Absent fields must not appear at all.
	assert.NotContains(t, fields, "city")
	assert.NotContains(t, fields, "status")
	assert.NotContains(t, fields, "check_in_date")
}

func TestUpdateBookingRequest_IdentifiersNotWritable(t *testing.T) {
	body := `{"id": "forged", "grcNo": "GRC-999", "createdBy": "mallory", "name": "Jane"}`

	req := dto.UpdateBookingRequest{}
	err := validator.Validate(strings.NewReader(body), &req)
	require.NoError(t, err)

	fields, err := req.UpdateFields("reception")
	require.NoError(t, err)

	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "grc_no")
	assert.NotContains(t, fields, "created_by")
	assert.NotContains(t, fields, "created_at")
	assert.Equal(t, coerce.String("Jane"), fields["name"])
}

func TestUpdateBookingRequest_EmptyDateClearsColumn(t *testing.T) {
	empty := coerce.String("")
	req := dto.UpdateBookingRequest{Anniversary: &empty}

	fields, err := req.UpdateFields("reception")
	require.NoError(t, err)

	require.Contains(t, fields, "anniversary")

	cleared, ok := fields["anniversary"].(*time.Time)
	require.True(t, ok)
	assert.Nil(t, cleared)
}

func TestUpdateBookingRequest_EmptyBookingDateIsDropped(t *testing.T) {
	empty := coerce.String("")
	req := dto.UpdateBookingRequest{
		BookingDate: &empty,
		Anniversary: &empty,
	}

	fields, err := req.UpdateFields("reception")
	require.NoError(t, err)

	// booking_date is not nullable, so an empty value must not reach the
	// update map while other empty dates still clear.
	assert.NotContains(t, fields, "booking_date")
	require.Contains(t, fields, "anniversary")
}

func TestUpdateBookingRequest_IsEmpty(t *testing.T) {
	req := dto.UpdateBookingRequest{}
	assert.True(t, req.IsEmpty())

	name := coerce.String("Jane")
	req.Name = &name
	assert.False(t, req.IsEmpty())
}

func TestUpdateBookingRequest_SetImages(t *testing.T) {
	old := coerce.String("https://cdn.example.com/old/proof.jpg")
	req := dto.UpdateBookingRequest{IDProofImage: &old}

	req.SetImages(dto.GuestImages{
		Photo:   "https://cdn.example.com/uploads/photo.jpg",
		IDProof: "https://cdn.example.com/uploads/proof.jpg",
	})

	require.NotNil(t, req.PhotoURL)
	assert.Equal(t, coerce.String("https://cdn.example.com/uploads/photo.jpg"), *req.PhotoURL)

	require.NotNil(t, req.IDProofImage)
	assert.Equal(t, coerce.String("https://cdn.example.com/uploads/proof.jpg"), *req.IDProofImage)

	assert.Nil(t, req.IDProofImage2)
}
