package dto_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt != createdAt.Format(constant.DateFormat) {
		t.Errorf("expected CreatedAt to be %s, got %s", createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	}

	if metadata.ModifiedAt != modifiedAt.Format(constant.DateFormat) {
		t.Errorf("expected ModifiedAt to be %s, got %s", modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "defaults applied when requested",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:           "no defaults when not requested",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "invalid page falls back to default",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "negative limit falls back to default",
			queryParams: map[string]string{
				"limit": "-5",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "lowercase sort direction is normalized",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: dto.SortDirDesc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(request, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		wantClause   string
		wantArgs     map[string]any
		clauseSubstr bool
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "Booked",
				Table:    "guest_bookings",
			},
			wantClause: "guest_bookings.status = :status",
			wantArgs:   map[string]any{"status": "Booked"},
		},
		{
			name: "like operator is case insensitive and wraps value",
			filter: dto.Filter{
				Field:    "name",
				Operator: dto.FilterOperatorLike,
				Value:    "john",
				Table:    "guest_bookings",
			},
			wantClause: "LOWER(guest_bookings.name) LIKE LOWER(:name)",
			wantArgs:   map[string]any{"name": "%john%"},
			clauseSubstr: true,
		},
		{
			name: "arg name disambiguates bind parameter",
			filter: dto.Filter{
				ArgName:  "search_city",
				Field:    "city",
				Operator: dto.FilterOperatorLike,
				Value:    "chennai",
			},
			wantClause: "LOWER(city) LIKE LOWER(:search_city)",
			wantArgs:   map[string]any{"search_city": "%chennai%"},
			clauseSubstr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if tt.clauseSubstr {
				if !strings.Contains(clause, tt.wantClause) {
					t.Errorf("expected clause to contain %q, got %q", tt.wantClause, clause)
				}
			} else if strings.TrimSpace(clause) != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_NestedSearchClause(t *testing.T) {
	// The shape built by the search endpoint: an OR group of substring
	// matches combined with exact-match filters under the outer AND.
	searchGroup := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{ArgName: "search_name", Field: "name", Operator: dto.FilterOperatorLike, Value: "john"},
			dto.Filter{ArgName: "search_grc_no", Field: "grc_no", Operator: dto.FilterOperatorLike, Value: "john"},
			dto.Filter{ArgName: "search_city", Field: "city", Operator: dto.FilterOperatorLike, Value: "john"},
		},
	}

	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			searchGroup,
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Booked"},
		},
	}

	clause, args := group.GetWhereClause()

	for _, fragment := range []string{
		"LOWER(name) LIKE LOWER(:search_name)",
		"LOWER(grc_no) LIKE LOWER(:search_grc_no)",
		"LOWER(city) LIKE LOWER(:search_city)",
		" OR ",
		"status = :status",
		" AND ",
	} {
		if !strings.Contains(clause, fragment) {
			t.Errorf("expected clause to contain %q, got %q", fragment, clause)
		}
	}

	if args["search_name"] != "%john%" {
		t.Errorf("expected search_name arg to be %%john%%, got %v", args["search_name"])
	}

	if args["status"] != "Booked" {
		t.Errorf("expected status arg to be Booked, got %v", args["status"])
	}
}

func TestFilterGroup_EmptyProducesNoClause(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()
	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
