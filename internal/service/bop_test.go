package service_test

import (
	"context"
	"errors"
	"testing"

	"bopLand/internal/domain"
	"bopLand/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBOP_Success(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	input := &domain.CreateBOPInput{
		Sonda:      " NSXX ",
		Valves:     []string{"LICHOKE", "LOCHOKE"},
		Preventers: []string{"TPIPERAM"},
	}

	d.bops.On("Create", mock.Anything, mock.MatchedBy(func(bop *domain.BOP) bool {
		return bop.Sonda == "NSXX" && len(bop.Valves) == 2 && len(bop.Preventers) == 1
	})).
		Run(func(args mock.Arguments) {
			// Репозиторий проставляет ID как это делает БД
			bop := args.Get(1).(*domain.BOP)
			bop.ID = 1
			for i := range bop.Valves {
				bop.Valves[i].ID = int64(i + 1)
				bop.Valves[i].BOPID = 1
			}
			bop.Preventers[0].ID = 1
			bop.Preventers[0].BOPID = 1
		}).
		Return(nil)

	// Act
	result, err := svc.CreateBOP(context.Background(), input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "NSXX", result.Sonda)
	require.Len(t, result.Valves, 2)
	assert.Equal(t, "LICHOKE", result.Valves[0].Acronym)
	assert.Equal(t, "LOCHOKE", result.Valves[1].Acronym)
	require.Len(t, result.Preventers, 1)
	assert.Equal(t, "TPIPERAM", result.Preventers[0].Acronym)
}

func TestCreateBOP_Duplicate(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("Create", mock.Anything, mock.Anything).Return(storage.ErrAlreadyExists)

	// Act
	result, err := svc.CreateBOP(context.Background(), &domain.CreateBOPInput{Sonda: "NSXX"})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrBOPExists)
}

func TestCreateBOP_PersistenceError(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	// Act
	_, err := svc.CreateBOP(context.Background(), &domain.CreateBOPInput{Sonda: "NSXX"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestCreateBOP_InvalidInput(t *testing.T) {
	lat := -22.4

	tests := []struct {
		name  string
		input *domain.CreateBOPInput
	}{
		{"empty sonda", &domain.CreateBOPInput{Sonda: "  "}},
		{"blank valve", &domain.CreateBOPInput{Sonda: "NSXX", Valves: []string{""}}},
		{"latitude without longitude", &domain.CreateBOPInput{Sonda: "NSXX", Latitude: &lat}},
		{"latitude out of range", &domain.CreateBOPInput{Sonda: "NSXX", Latitude: float64Ptr(91), Longitude: float64Ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			svc := d.service()

			_, err := svc.CreateBOP(context.Background(), tt.input)

			requireDomainCode(t, err, domain.ErrorCodeInvalidInput)
			d.txMgr.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
		})
	}
}

func TestGetBOP_NotFound(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(99)).Return(nil, storage.ErrNotFound)

	// Act
	_, err := svc.GetBOP(context.Background(), 99)

	// Assert
	assert.ErrorIs(t, err, domain.ErrBOPNotFound)
}

func TestDeleteBOP_Success(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1, Sonda: "NSXX"}, nil)
	d.tests.On("CountByBOP", mock.Anything, int64(1)).Return(int64(0), nil)
	d.bops.On("Delete", mock.Anything, int64(1)).Return(nil)

	// Act
	err := svc.DeleteBOP(context.Background(), 1)

	// Assert
	require.NoError(t, err)
}

func TestDeleteBOP_NotFound(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(5)).Return(nil, storage.ErrNotFound)

	// Act
	err := svc.DeleteBOP(context.Background(), 5)

	// Assert
	assert.ErrorIs(t, err, domain.ErrBOPNotFound)
}

func TestDeleteBOP_ReferencedByTests(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1}, nil)
	d.tests.On("CountByBOP", mock.Anything, int64(1)).Return(int64(2), nil)

	// Act
	err := svc.DeleteBOP(context.Background(), 1)

	// Assert
	assert.ErrorIs(t, err, domain.ErrBOPHasTests)
	requireDomainCode(t, err, domain.ErrorCodeReferentialIntegrity)
	d.bops.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteBOP_ForeignKeyRace(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1}, nil)
	d.tests.On("CountByBOP", mock.Anything, int64(1)).Return(int64(0), nil)
	d.bops.On("Delete", mock.Anything, int64(1)).Return(storage.ErrReferentialIntegrity)

	// Act
	err := svc.DeleteBOP(context.Background(), 1)

	// Assert
	assert.ErrorIs(t, err, domain.ErrBOPHasTests)
}

func TestListBOPs_Pagination(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	page := domain.PageRequest{Page: 1, PageSize: 2}
	d.bops.On("List", mock.Anything, "ns", page).
		Return([]domain.BOP{{ID: 1, Sonda: "NSAA"}, {ID: 2, Sonda: "NSBB"}}, int64(5), nil)

	// Act
	result, err := svc.ListBOPs(context.Background(), &domain.ListBOPsInput{Sonda: "ns", PageRequest: page})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(5), result.Pagination.TotalRecords)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.True(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)
}

func TestListBOPs_InvalidPage(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	// Act
	_, err := svc.ListBOPs(context.Background(), &domain.ListBOPsInput{PageRequest: domain.PageRequest{Page: 0, PageSize: 3}})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
	d.bops.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}
