package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"
	"tripseat/shared/constant"
	"tripseat/shared/dto"
	"tripseat/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "guest",
		ModifiedBy: "system",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "guest", metadata.CreatedBy)
	assert.Equal(t, "system", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=date&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "date", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=-1&limit=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction is dropped",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/admin/bookings?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "status", Value: "OPEN", Operator: dto.FilterOperatorEq, Table: "trip_dates"},
		dto.Filter{Field: "capacity", Value: 5, Operator: dto.FilterOperatorGreaterEq},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(trip_dates.status = :status AND capacity >= :capacity)", where)
	assert.Equal(t, map[string]any{"status": "OPEN", "capacity": 5}, args)
}

func TestFilterGroup_In(t *testing.T) {
	group := dto.And(dto.Filter{Field: "status", Value: []string{"CREATED", "DEPOSIT_PAID"}, Operator: dto.FilterOperatorIn})

	where, args := group.GetWhereClause()

	assert.Equal(t, "(status IN (:status_0, :status_1) )", where)
	assert.Equal(t, "CREATED", args["status_0"])
	assert.Equal(t, "DEPOSIT_PAID", args["status_1"])
}

func TestFilterGroup_Add(t *testing.T) {
	group := dto.FilterGroup{}
	group.Add("status", "bookings", "")
	group.Add("trip_date_id", "bookings", "td-1")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.trip_date_id = :trip_date_id)", where)
	assert.Equal(t, "td-1", args["trip_date_id"])
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
