package domain_test

import (
	"math"
	"testing"
	"time"

	"bopLand/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBOP_AddChildrenSetsBackReference(t *testing.T) {
	bop := &domain.BOP{ID: 7, Sonda: "NSXX"}

	v := bop.AddValve("LICHOKE")
	p := bop.AddPreventer("TPIPERAM")

	assert.Equal(t, int64(7), v.BOPID)
	assert.Equal(t, int64(7), p.BOPID)
	require.Len(t, bop.Valves, 1)
	require.Len(t, bop.Preventers, 1)
	assert.Equal(t, "LICHOKE", bop.Valves[0].Acronym)
	assert.Equal(t, "TPIPERAM", bop.Preventers[0].Acronym)
}

func TestTest_AddTestedEquipmentSetsBackReference(t *testing.T) {
	test := &domain.Test{ID: 3}

	test.AddTestedValve(domain.Valve{ID: 10, BOPID: 1})
	test.AddTestedPreventer(domain.Preventer{ID: 20, BOPID: 1})

	require.Len(t, test.Valves, 1)
	require.Len(t, test.Preventers, 1)
	require.NotNil(t, test.Valves[0].TestID)
	require.NotNil(t, test.Preventers[0].TestID)
	assert.Equal(t, int64(3), *test.Valves[0].TestID)
	assert.Equal(t, int64(3), *test.Preventers[0].TestID)
}

func TestTest_Approve(t *testing.T) {
	test := &domain.Test{ID: 1, Status: domain.TestStatusCreated}
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	test.Approve(42, at)

	assert.True(t, test.IsApproved())
	assert.Equal(t, int64(42), *test.ApproverID)
	assert.Equal(t, at, *test.ApprovedAt)
}

func TestParseTestStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.TestStatus
		wantErr bool
	}{
		{"CRIADO", domain.TestStatusCreated, false},
		{"AGENDADO", domain.TestStatusScheduled, false},
		{"APROVADO", domain.TestStatusApproved, false},
		{"FALHO", domain.TestStatusFailed, false},
		{"aprovado", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTestStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageSize  int
		total     int64
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first of three", 1, 2, 5, 3, true, false},
		{"middle", 2, 2, 5, 3, true, true},
		{"last of three", 3, 2, 5, 3, false, true},
		{"exact fit", 2, 5, 10, 2, false, true},
		{"empty", 1, 3, 0, 0, false, false},
		{"page beyond end", 4, 2, 5, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewPagination(domain.PageRequest{Page: tt.page, PageSize: tt.pageSize}, tt.total)

			assert.Equal(t, tt.total, p.TotalRecords)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}

func TestPageRequest_Validate(t *testing.T) {
	assert.NoError(t, domain.PageRequest{Page: 1, PageSize: 1}.Validate())
	assert.ErrorIs(t, domain.PageRequest{Page: 0, PageSize: 3}.Validate(), domain.ErrInvalidPagination)
	assert.ErrorIs(t, domain.PageRequest{Page: 1, PageSize: 0}.Validate(), domain.ErrInvalidPagination)
	assert.ErrorIs(t, domain.PageRequest{Page: 1, PageSize: domain.MaxPageSize + 1}.Validate(), domain.ErrInvalidPagination)
	assert.Equal(t, 4, domain.PageRequest{Page: 3, PageSize: 2}.Offset())
}

func TestPageRequest_ValidateRejectsOffsetOverflow(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.PageRequest
		wantErr bool
	}{
		{"max page with size 2", domain.PageRequest{Page: math.MaxInt, PageSize: 2}, true},
		{"max page with max size", domain.PageRequest{Page: math.MaxInt, PageSize: domain.MaxPageSize}, true},
		{"last page that fits", domain.PageRequest{Page: math.MaxInt/2 + 1, PageSize: 2}, false},
		{"max page with size 1", domain.PageRequest{Page: math.MaxInt, PageSize: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPagination)
				return
			}
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tt.req.Offset(), 0)
		})
	}
}
