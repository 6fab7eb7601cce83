package gorm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"bopLand/internal/domain"
	"bopLand/internal/metrics"
)

// StartMetrics запускает сбор статистики пула и пересчёт gauge метрик из БД.
// Горутины завершаются по отмене ctx.
func StartMetrics(ctx context.Context, db *gorm.DB, interval time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	go metrics.StartDBStatsCollector(ctx, sqlDB, interval)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := ReconcileMetrics(ctx, db); err != nil {
					log.Error().Err(err).Msg("failed to reconcile metrics")
				}
			case <-ctx.Done():
				log.Info().Msg("stopping metrics reconciliation goroutine")
				return
			}
		}
	}()

	return nil
}

// ReconcileMetrics пересчитывает количество BOP, оборудования и тестов по статусу
func ReconcileMetrics(ctx context.Context, db *gorm.DB) error {
	type statusRow struct {
		Status string
		Count  int
	}

	db = db.WithContext(ctx)

	var bops int64
	if err := db.Model(&BOP{}).Count(&bops).Error; err != nil {
		return err
	}
	metrics.BOPCount.Set(float64(bops))

	var valves, preventers int64
	if err := db.Model(&Valve{}).Count(&valves).Error; err != nil {
		return err
	}
	if err := db.Model(&Preventer{}).Count(&preventers).Error; err != nil {
		return err
	}
	metrics.BOPEquipmentCount.WithLabelValues("valve").Set(float64(valves))
	metrics.BOPEquipmentCount.WithLabelValues("preventer").Set(float64(preventers))

	var rows []statusRow
	err := db.Raw(`SELECT status, COUNT(*) AS count FROM testes GROUP BY status`).Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}

	// Статусы без тестов выставляем в 0, чтобы не держать устаревшие значения
	for _, status := range []domain.TestStatus{
		domain.TestStatusCreated,
		domain.TestStatusScheduled,
		domain.TestStatusApproved,
		domain.TestStatusFailed,
	} {
		metrics.TestsByStatus.WithLabelValues(string(status)).Set(float64(counts[string(status)]))
	}

	log.Debug().
		Int64("bops", bops).
		Int64("valves", valves).
		Int64("preventers", preventers).
		Msg("reconciled metrics")

	return nil
}
