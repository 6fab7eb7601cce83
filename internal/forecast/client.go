package forecast

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"bopLand/internal/domain"
	"bopLand/internal/metrics"
)

const forecastPath = "/XML/cidade/7dias/{lat}/{lon}/previsaoLatLon.xml"

// Client - клиент прогноза погоды CPTEC/INPE на 7 дней
type Client struct {
	http *resty.Client
}

var _ domain.ForecastProvider = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/xml"),
	}
}

// cptecCity - корневой элемент ответа CPTEC
type cptecCity struct {
	XMLName   xml.Name        `xml:"cidade"`
	Name      string          `xml:"nome"`
	State     string          `xml:"uf"`
	UpdatedAt string          `xml:"atualizacao"`
	Forecasts []cptecForecast `xml:"previsao"`
}

type cptecForecast struct {
	Day     string  `xml:"dia"`
	Weather string  `xml:"tempo"`
	Max     int     `xml:"maxima"`
	Min     int     `xml:"minima"`
	UV      float64 `xml:"iuv"`
}

// Forecast запрашивает прогноз по координатам
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*domain.Forecast, error) {
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"lat": strconv.FormatFloat(lat, 'f', -1, 64),
			"lon": strconv.FormatFloat(lon, 'f', -1, 64),
		}).
		Get(forecastPath)

	metrics.ForecastRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ForecastRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("forecast request: %w", err)
	}

	if resp.IsError() {
		metrics.ForecastRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("forecast request: unexpected status %d", resp.StatusCode())
	}

	city, err := decode(resp.Body())
	if err != nil {
		metrics.ForecastRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.ForecastRequestsTotal.WithLabelValues("success").Inc()

	days := make([]domain.ForecastDay, len(city.Forecasts))
	for i, f := range city.Forecasts {
		days[i] = domain.ForecastDay{
			Date:    f.Day,
			Weather: f.Weather,
			MaxTemp: f.Max,
			MinTemp: f.Min,
			UVIndex: f.UV,
		}
	}

	return &domain.Forecast{
		City:      city.Name,
		State:     city.State,
		UpdatedAt: city.UpdatedAt,
		Days:      days,
	}, nil
}

// decode разбирает XML; CPTEC отдаёт ISO-8859-1
func decode(body []byte) (*cptecCity, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))
	decoder.CharsetReader = charset.NewReaderLabel

	var city cptecCity
	if err := decoder.Decode(&city); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}

	return &city, nil
}
