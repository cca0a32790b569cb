package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 0",
			total:    0,
			limit:    10,
			expected: 0,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Name       string `db:"name"`
		City       string `db:"city"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	tests := []struct {
		name     string
		data     patch
		username string
		expected map[string]any
	}{
		{
			name: "populated fields are collected",
			data: patch{
				Name:       "John Doe",
				City:       "Chennai",
				EmptyField: "",
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			username: "reception",
			expected: map[string]any{
				"name": "John Doe",
				"city": "Chennai",
			},
		},
		{
			name:     "all zero values produce only audit fields",
			data:     patch{},
			username: "reception",
			expected: map[string]any{},
		},
		{
			name: "partial fields",
			data: patch{
				Name: "Jane Doe",
			},
			username: "admin",
			expected: map[string]any{
				"name": "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type patch struct {
		Name    *string `db:"name"`
		Rooms   *int    `db:"number_of_rooms"`
		Married *bool   `db:"married"`
		City    *string `db:"city"`
	}

	name := "John"
	rooms := 0
	married := false

	data := patch{
		Name:    &name,
		Rooms:   &rooms,
		Married: &married,
		City:    nil,
	}

	result := shared.TransformFields(data, "reception")

	// Set pointers carry through even when they point at zero values.
	expectedFields := map[string]any{
		"name":            "John",
		"number_of_rooms": 0,
		"married":         false,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}

	if _, exists := result["city"]; exists {
		t.Error("expected nil pointer field city to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "id", "guest_bookings")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be of type dto.Filter")
	}

	if filter.Field != "id" {
		t.Errorf("expected field to be id, got %s", filter.Field)
	}

	if filter.Value != "123" {
		t.Errorf("expected value to be 123, got %v", filter.Value)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
	}

	if filter.Table != "guest_bookings" {
		t.Errorf("expected table to be guest_bookings, got %s", filter.Table)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "booking:count",
			parts:    nil,
			expected: "booking:count",
		},
		{
			name:     "prefix with one part",
			prefix:   "booking:get",
			parts:    []string{"42"},
			expected: "booking:get:42",
		},
		{
			name:     "prefix with several parts",
			prefix:   "booking:guest",
			parts:    []string{"GRC-001", "v2"},
			expected: "booking:guest:GRC-001:v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	paramsA := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	paramsB := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Value: "Booked", Operator: dto.FilterOperatorEq},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", paramsA, filter)
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", paramsB, filter)

	if !strings.HasPrefix(keyA, "booking:gets:") {
		t.Errorf("expected key to start with prefix, got %s", keyA)
	}

	if keyA == keyB {
		t.Error("expected distinct pages to produce distinct cache keys")
	}

	keyA2 := shared.BuildCacheKeyWithQuery("booking:gets", paramsA, filter)
	if keyA != keyA2 {
		t.Errorf("expected identical queries to produce identical keys, got %s and %s", keyA, keyA2)
	}
}
