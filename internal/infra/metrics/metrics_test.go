package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "traiteur/internal/domain/errors"

	"github.com/labstack/echo/v4"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Middleware(t *testing.T) {
	recorder := NewRecorder()

	e := echo.New()
	e.Use(recorder.Middleware)
	e.GET("/customers/details/:id", func(c echo.Context) error {
		if c.Param("id") == "404" {
			return domainerrors.ErrCustomerNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/customers/details/1", "/customers/details/2", "/customers/details/404"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, counterValue(t, recorder.requests.WithLabelValues(http.MethodGet, "/customers/details/:id", "200")))
	assert.Equal(t, 1.0, counterValue(t, recorder.requests.WithLabelValues(http.MethodGet, "/customers/details/:id", "404")))
}

func counterValue(t *testing.T, counter interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()

	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))

	return metric.GetCounter().GetValue()
}

func TestRecorder_Handler(t *testing.T) {
	recorder := NewRecorder()
	recorder.requests.WithLabelValues(http.MethodGet, "/health", "200").Inc()

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `traiteur_http_requests_total{method="GET",route="/health",status="200"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
