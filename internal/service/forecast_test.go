package service_test

import (
	"context"
	"errors"
	"testing"

	"bopLand/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestForecastByCoordinates_Success(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	expected := &domain.Forecast{City: "Campos dos Goytacazes", State: "RJ"}
	d.forecast.On("Forecast", mock.Anything, -22.46, -40.05).Return(expected, nil)

	// Act
	result, err := svc.ForecastByCoordinates(context.Background(), -22.46, -40.05)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestForecastByCoordinates_OutOfRange(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	// Act
	_, err := svc.ForecastByCoordinates(context.Background(), 120, 0)

	// Assert
	requireDomainCode(t, err, domain.ErrorCodeInvalidInput)
	d.forecast.AssertNotCalled(t, "Forecast", mock.Anything, mock.Anything, mock.Anything)
}

func TestForecastByCoordinates_ProviderFailure(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.forecast.On("Forecast", mock.Anything, 1.0, 2.0).Return(nil, errors.New("timeout"))

	// Act
	_, err := svc.ForecastByCoordinates(context.Background(), 1, 2)

	// Assert
	assert.ErrorIs(t, err, domain.ErrForecastUnavailable)
}

func TestForecastByBOP_UsesBOPCoordinates(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.BOP{ID: 1, Sonda: "NSXX", Latitude: float64Ptr(-22.5), Longitude: float64Ptr(-40.1)}, nil)
	d.forecast.On("Forecast", mock.Anything, -22.5, -40.1).Return(&domain.Forecast{City: "Macaé"}, nil)

	// Act
	result, err := svc.ForecastByBOP(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Macaé", result.City)
}

func TestForecastByBOP_MissingCoordinates(t *testing.T) {
	// Arrange
	d := newDeps(t)
	svc := d.service()

	d.bops.On("GetByID", mock.Anything, int64(1)).Return(&domain.BOP{ID: 1, Sonda: "NSZZ"}, nil)

	// Act
	_, err := svc.ForecastByBOP(context.Background(), 1)

	// Assert
	assert.ErrorIs(t, err, domain.ErrMissingCoordinates)
}
