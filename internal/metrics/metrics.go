package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BOP Metrics
var (
	// BOPCreatedTotal - количество созданных BOP
	BOPCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bop_created_total",
		Help: "Total number of BOPs created",
	})

	// BOPDeletedTotal - количество удалённых BOP
	BOPDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bop_deleted_total",
		Help: "Total number of BOPs deleted",
	})

	// BOPCount - текущее количество BOP в базе
	BOPCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bop_count",
		Help: "Current number of BOPs",
	})

	// BOPEquipmentCount - количество оборудования по типу
	BOPEquipmentCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bop_equipment_count",
		Help: "Current number of BOP equipment items by kind",
	}, []string{"kind"})
)

// Test Metrics
var (
	// TestCreatedTotal - количество созданных тестов
	TestCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "test_created_total",
		Help: "Total number of BOP tests created",
	})

	// TestApprovedTotal - количество одобрений
	TestApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "test_approved_total",
		Help: "Total number of BOP tests approved",
	})

	// TestDeletedTotal - количество удалённых тестов
	TestDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "test_deleted_total",
		Help: "Total number of BOP tests deleted",
	})

	// TestsByStatus - текущее количество тестов по статусу
	TestsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tests_by_status",
		Help: "Current number of BOP tests by status",
	}, []string{"status"})

	// TestEquipmentTested - распределение количества оборудования в тесте
	TestEquipmentTested = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_equipment_tested",
		Help:    "Distribution of valves and preventers exercised per test",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
	})
)

// Auth Metrics
var (
	// LoginAttemptsTotal - попытки входа по результату
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"result"})

	// UserRegisteredTotal - количество регистраций
	UserRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_user_registered_total",
		Help: "Total number of registered users",
	})
)

// Forecast Metrics
var (
	// ForecastRequestsTotal - запросы к CPTEC по результату
	ForecastRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forecast_requests_total",
		Help: "Total number of upstream forecast requests",
	}, []string{"result"})

	// ForecastRequestDuration - время ответа CPTEC
	ForecastRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "forecast_request_duration_seconds",
		Help:    "Duration of upstream forecast request in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// HTTPResponseSize - размер ответа
	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "Size of HTTP response in bytes",
		Buckets: prometheus.ExponentialBuckets(100, 10, 8),
	}, []string{"method", "path"})
)

// Database Metrics
var (
	// DBTransactionDuration - время выполнения транзакций
	DBTransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transaction in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DBTransactionTotal - количество транзакций
	DBTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transaction_total",
		Help: "Total number of database transactions",
	}, []string{"status"})

	// DBConnectionPoolActive - активные соединения
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of active database connections",
	})

	// DBConnectionPoolIdle - idle соединения
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})
)

// Error Metrics
var (
	// DomainErrorsTotal - доменные ошибки по коду
	DomainErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_errors_total",
		Help: "Total number of domain errors",
	}, []string{"error_code"})
)
