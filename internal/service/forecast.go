package service

import (
	"bopLand/internal/domain"
	"bopLand/internal/logger"
	"bopLand/internal/storage"
	"context"

	"github.com/rs/zerolog/log"
)

// ForecastByCoordinates возвращает прогноз на 7 дней по координатам
func (s *Service) ForecastByCoordinates(ctx context.Context, lat, lon float64) (*domain.Forecast, error) {
	if !validCoordinates(lat, lon) {
		return nil, invalidInput("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	forecast, err := s.forecast.Forecast(ctx, lat, lon)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "service").
			Float64("latitude", lat).
			Float64("longitude", lon).
			Msg("forecast provider failed")
		return nil, domain.ErrForecastUnavailable
	}

	return forecast, nil
}

// ForecastByBOP возвращает прогноз по координатам сонды
func (s *Service) ForecastByBOP(outerCtx context.Context, bopID int64) (*domain.Forecast, error) {
	var bop *domain.BOP

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		bop, err = tx.BOPRepo().GetByID(ctx, bopID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opForecastByBOP, err)
	}

	if !bop.HasCoordinates() {
		return nil, domain.ErrMissingCoordinates
	}

	return s.ForecastByCoordinates(outerCtx, *bop.Latitude, *bop.Longitude)
}
