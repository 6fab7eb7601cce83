package service_test

import (
	"context"
	"testing"
	"time"

	"bopLand/internal/domain"
	"bopLand/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTest_Success(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	input := &domain.CreateTestInput{
		BOPID:        1,
		Name:         "t1",
		ValveIDs:     []int64{10},
		PreventerIDs: []int64{20},
	}

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1, Sonda: "NSXX"}, nil)
	d.equipment.On("GetValves", mock.Anything, int64(1), []int64{10}).
		Return([]domain.Valve{{ID: 10, Acronym: "LICHOKE", BOPID: 1}}, nil)
	d.equipment.On("GetPreventers", mock.Anything, int64(1), []int64{20}).
		Return([]domain.Preventer{{ID: 20, Acronym: "TPIPERAM", BOPID: 1}}, nil)
	d.tests.On("Create", mock.Anything, mock.MatchedBy(func(test *domain.Test) bool {
		return test.Name == "t1" && test.BOPID == 1 && test.Status == domain.TestStatusCreated
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Test).ID = 5
		}).
		Return(nil)
	d.equipment.On("LinkToTest", mock.Anything, int64(5), []int64{10}, []int64{20}).Return(nil)

	// Act
	result, err := svc.CreateTest(context.Background(), input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.ID)
	assert.Equal(t, domain.TestStatusCreated, result.Status)
	assert.Nil(t, result.ApproverID)
	assert.Nil(t, result.ApprovedAt)
	require.Len(t, result.Valves, 1)
	require.Len(t, result.Preventers, 1)
	assert.Equal(t, int64(5), *result.Valves[0].TestID)
	assert.Equal(t, int64(5), *result.Preventers[0].TestID)
}

func TestCreateTest_UnknownBOP(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(9)).Return(nil, storage.ErrNotFound)

	// Act
	_, err := svc.CreateTest(context.Background(), &domain.CreateTestInput{BOPID: 9, Name: "t1"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrUnknownBOP)
	requireDomainCode(t, err, domain.ErrorCodeInvalidReference)
	d.tests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTest_ValveFromAnotherBOP(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1}, nil)
	// клапан 30 принадлежит другому BOP и не находится в рамках bop_id=1
	d.equipment.On("GetValves", mock.Anything, int64(1), []int64{10, 30}).
		Return([]domain.Valve{{ID: 10, BOPID: 1}}, nil)
	d.equipment.On("GetPreventers", mock.Anything, int64(1), []int64(nil)).
		Return([]domain.Preventer{}, nil)

	// Act
	_, err := svc.CreateTest(context.Background(), &domain.CreateTestInput{
		BOPID:    1,
		Name:     "t1",
		ValveIDs: []int64{10, 30},
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrForeignEquipment)
	d.tests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTest_DuplicateIDs(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	// Act
	_, err := svc.CreateTest(context.Background(), &domain.CreateTestInput{
		BOPID:    1,
		Name:     "t1",
		ValveIDs: []int64{10, 10},
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrForeignEquipment)
	d.txMgr.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestCreateTest_EquipmentAlreadyTested(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1}, nil)
	d.equipment.On("GetValves", mock.Anything, int64(1), []int64{10}).
		Return([]domain.Valve{{ID: 10, BOPID: 1, TestID: int64Ptr(3)}}, nil)
	d.equipment.On("GetPreventers", mock.Anything, int64(1), []int64(nil)).
		Return([]domain.Preventer{}, nil)

	// Act
	_, err := svc.CreateTest(context.Background(), &domain.CreateTestInput{BOPID: 1, Name: "t2", ValveIDs: []int64{10}})

	// Assert
	assert.ErrorIs(t, err, domain.ErrEquipmentAlreadyTested)
}

func TestCreateTest_DuplicateName(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1}, nil)
	d.equipment.On("GetValves", mock.Anything, int64(1), []int64(nil)).Return([]domain.Valve{}, nil)
	d.equipment.On("GetPreventers", mock.Anything, int64(1), []int64(nil)).Return([]domain.Preventer{}, nil)
	d.tests.On("Create", mock.Anything, mock.Anything).Return(storage.ErrAlreadyExists)

	// Act
	_, err := svc.CreateTest(context.Background(), &domain.CreateTestInput{BOPID: 1, Name: "t1"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrTestExists)
}

func TestCreateTest_LinkConflict(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1}, nil)
	d.equipment.On("GetValves", mock.Anything, int64(1), []int64{10}).
		Return([]domain.Valve{{ID: 10, BOPID: 1}}, nil)
	d.equipment.On("GetPreventers", mock.Anything, int64(1), []int64(nil)).Return([]domain.Preventer{}, nil)
	d.tests.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.equipment.On("LinkToTest", mock.Anything, mock.Anything, []int64{10}, []int64(nil)).Return(storage.ErrConflict)

	// Act
	_, err := svc.CreateTest(context.Background(), &domain.CreateTestInput{BOPID: 1, Name: "t1", ValveIDs: []int64{10}})

	// Assert
	assert.ErrorIs(t, err, domain.ErrEquipmentAlreadyTested)
}

func TestDeleteTest_Success(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.tests.On("GetByID", mock.Anything, int64(5)).Return(&domain.Test{ID: 5, Status: domain.TestStatusCreated}, nil)
	d.equipment.On("UnlinkTest", mock.Anything, int64(5)).Return(nil)
	d.tests.On("Delete", mock.Anything, int64(5)).Return(nil)

	// Act
	err := svc.DeleteTest(context.Background(), 5)

	// Assert
	require.NoError(t, err)
}

func TestDeleteTest_Approved(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.tests.On("GetByID", mock.Anything, int64(5)).Return(&domain.Test{ID: 5, Status: domain.TestStatusApproved}, nil)

	// Act
	err := svc.DeleteTest(context.Background(), 5)

	// Assert
	assert.ErrorIs(t, err, domain.ErrTestApproved)
	d.equipment.AssertNotCalled(t, "UnlinkTest", mock.Anything, mock.Anything)
	d.tests.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteTest_NotFound(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.tests.On("GetByID", mock.Anything, int64(5)).Return(nil, storage.ErrNotFound)

	// Act
	err := svc.DeleteTest(context.Background(), 5)

	// Assert
	assert.ErrorIs(t, err, domain.ErrTestNotFound)
}

func TestApproveTest_Success(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.tests.On("GetByID", mock.Anything, int64(5)).Return(&domain.Test{ID: 5, Name: "t1", Status: domain.TestStatusCreated}, nil)
	d.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	d.tests.On("Approve", mock.Anything, mock.MatchedBy(func(test *domain.Test) bool {
		return test.ID == 5 &&
			test.Status == domain.TestStatusApproved &&
			test.ApproverID != nil && *test.ApproverID == 7 &&
			test.ApprovedAt != nil
	})).Return(nil)

	before := time.Now().UTC()

	// Act
	result, err := svc.ApproveTest(context.Background(), &domain.ApproveTestInput{TestID: 5, ApproverID: 7})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.TestStatusApproved, result.Status)
	assert.Equal(t, int64(7), *result.ApproverID)
	assert.False(t, result.ApprovedAt.Before(before))
}

func TestApproveTest_AlreadyApprovedIsIdempotent(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	approvedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &domain.Test{
		ID:         5,
		Status:     domain.TestStatusApproved,
		ApproverID: int64Ptr(7),
		ApprovedAt: &approvedAt,
	}
	d.tests.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	d.users.On("GetByID", mock.Anything, int64(8)).Return(&domain.User{ID: 8}, nil)

	// Act: другой пользователь повторно одобряет тест
	result, err := svc.ApproveTest(context.Background(), &domain.ApproveTestInput{TestID: 5, ApproverID: 8})

	// Assert: метаданные одобрения не меняются
	require.NoError(t, err)
	assert.Equal(t, int64(7), *result.ApproverID)
	assert.Equal(t, approvedAt, *result.ApprovedAt)
	d.tests.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
}

func TestApproveTest_AlreadyApprovedUnknownApprover(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	approvedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	d.tests.On("GetByID", mock.Anything, int64(5)).Return(&domain.Test{
		ID:         5,
		Status:     domain.TestStatusApproved,
		ApproverID: int64Ptr(7),
		ApprovedAt: &approvedAt,
	}, nil)
	d.users.On("GetByID", mock.Anything, int64(99)).Return(nil, storage.ErrNotFound)

	// Act
	_, err := svc.ApproveTest(context.Background(), &domain.ApproveTestInput{TestID: 5, ApproverID: 99})

	// Assert
	assert.ErrorIs(t, err, domain.ErrApproverNotFound)
	requireDomainCode(t, err, domain.ErrorCodeNotFound)
	d.tests.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
}

func TestApproveTest_ApproverNotFound(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.tests.On("GetByID", mock.Anything, int64(5)).Return(&domain.Test{ID: 5, Status: domain.TestStatusCreated}, nil)
	d.users.On("GetByID", mock.Anything, int64(7)).Return(nil, storage.ErrNotFound)

	// Act
	_, err := svc.ApproveTest(context.Background(), &domain.ApproveTestInput{TestID: 5, ApproverID: 7})

	// Assert
	assert.ErrorIs(t, err, domain.ErrApproverNotFound)
	requireDomainCode(t, err, domain.ErrorCodeNotFound)
}

func TestApproveTest_TestNotFound(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.tests.On("GetByID", mock.Anything, int64(5)).Return(nil, storage.ErrNotFound)

	// Act
	_, err := svc.ApproveTest(context.Background(), &domain.ApproveTestInput{TestID: 5, ApproverID: 7})

	// Assert
	assert.ErrorIs(t, err, domain.ErrTestNotFound)
}

func TestListTests_PassesFilters(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	status := domain.TestStatusApproved
	page := domain.PageRequest{Page: 2, PageSize: 3}
	expectedFilter := storage.TestFilter{Status: &status, BOPID: int64Ptr(1), ApproverID: int64Ptr(7)}

	d.tests.On("List", mock.Anything, expectedFilter, page).
		Return([]domain.Test{{ID: 4}}, int64(4), nil)

	// Act
	result, err := svc.ListTests(context.Background(), &domain.ListTestsInput{
		Status:      &status,
		BOPID:       int64Ptr(1),
		ApproverID:  int64Ptr(7),
		PageRequest: page,
	})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
}
