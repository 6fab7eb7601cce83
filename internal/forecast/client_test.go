package forecast_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bopLand/internal/forecast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ответ CPTEC в ISO-8859-1: "S\xe3o" = "São"
const cptecResponse = "<?xml version='1.0' encoding='ISO-8859-1'?>" +
	"<cidade><nome>S\xe3o Jo\xe3o da Barra</nome><uf>RJ</uf><atualizacao>2025-03-01</atualizacao>" +
	"<previsao><dia>2025-03-01</dia><tempo>pn</tempo><maxima>31</maxima><minima>22</minima><iuv>12.0</iuv></previsao>" +
	"<previsao><dia>2025-03-02</dia><tempo>c</tempo><maxima>28</maxima><minima>21</minima><iuv>9.5</iuv></previsao>" +
	"</cidade>"

func TestClient_Forecast_Success(t *testing.T) {
	// Arrange
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(cptecResponse))
	}))
	defer srv.Close()

	client := forecast.NewClient(srv.URL, time.Second)

	// Act
	result, err := client.Forecast(context.Background(), -22.46391639, -40.05731667)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/XML/cidade/7dias/-22.46391639/-40.05731667/previsaoLatLon.xml", gotPath)
	assert.Equal(t, "São João da Barra", result.City)
	assert.Equal(t, "RJ", result.State)
	assert.Equal(t, "2025-03-01", result.UpdatedAt)
	require.Len(t, result.Days, 2)
	assert.Equal(t, "pn", result.Days[0].Weather)
	assert.Equal(t, 31, result.Days[0].MaxTemp)
	assert.Equal(t, 22, result.Days[0].MinTemp)
	assert.InDelta(t, 9.5, result.Days[1].UVIndex, 0.001)
}

func TestClient_Forecast_UpstreamError(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := forecast.NewClient(srv.URL, time.Second)

	// Act
	result, err := client.Forecast(context.Background(), 1, 2)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Forecast_MalformedXML(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<cidade><nome>broken"))
	}))
	defer srv.Close()

	client := forecast.NewClient(srv.URL, time.Second)

	// Act
	_, err := client.Forecast(context.Background(), 1, 2)

	// Assert
	assert.ErrorContains(t, err, "decode forecast")
}
