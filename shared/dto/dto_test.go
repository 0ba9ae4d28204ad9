package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"hotelops/shared/constant"
	"hotelops/shared/dto"
	"hotelops/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt != createdAt.Format(constant.DateFormat) {
		t.Errorf("expected CreatedAt to be %s, got %s", createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	}

	if metadata.UpdatedAt != updatedAt.Format(constant.DateFormat) {
		t.Errorf("expected UpdatedAt to be %s, got %s", updatedAt.Format(constant.DateFormat), metadata.UpdatedAt)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		expected    dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "room_number",
				"sort_dir": "ASC",
			},
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "room_number",
				SortDir: "ASC",
			},
		},
		{
			name:        "absent parameters stay zero",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name: "invalid numbers are ignored",
			queryParams: map[string]string{
				"page":  "abc",
				"limit": "-3",
			},
			expected: dto.QueryParams{},
		},
		{
			name: "sort dir is upper-cased and validated",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			expected: dto.QueryParams{SortDir: "DESC"},
		},
		{
			name: "unknown sort dir is ignored",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}
