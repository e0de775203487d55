package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-directory/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doctorsJSON = `[
	{"id": 1, "name": "Ann", "specialties": ["Cardiology"], "experience": 5, "fees": 500, "image": "https://example.com/ann.png"},
	{"id": 2, "name": "Bob", "specialties": ["Dermatology", "Cosmetology"], "experience": 10, "fees": 299.5},
	{"id": 3, "name": "Cid", "experience": 1, "fees": 100}
]`

func newTestRepository(t *testing.T, url string) (*doctorRepository, *logtest.Hook) {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	m := metrics.NewMetrics(prometheus.NewRegistry())
	repo := NewDoctorRepository(http.DefaultClient, url, log, m).(*doctorRepository)
	return repo, hook
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAll_DecodesRecordsInSourceOrder(t *testing.T) {
	srv := serve(t, http.StatusOK, doctorsJSON)
	repo, _ := newTestRepository(t, srv.URL)

	doctors := repo.FetchAll(context.Background())

	require.Len(t, doctors, 3)
	assert.Equal(t, 1, doctors[0].ID)
	assert.Equal(t, "Ann", doctors[0].Name)
	assert.Equal(t, []string{"Cardiology"}, doctors[0].Specialties)
	assert.Equal(t, "https://example.com/ann.png", doctors[0].Image)
	assert.True(t, decimal.RequireFromString("299.5").Equal(doctors[1].Fees))
	assert.Equal(t, 10, doctors[1].Experience)
	assert.Nil(t, doctors[2].Specialties)
	assert.Zero(t, testutil.ToFloat64(repo.metrics.SourceFetchFailures))
}

func TestFetchAll_FailuresYieldEmptyDirectory(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`},
		{"not found", http.StatusNotFound, ``},
		{"malformed body", http.StatusOK, `[{"id": 1, "name": `},
		{"object instead of array", http.StatusOK, `{"id": 1}`},
		{"wrong field type", http.StatusOK, `[{"id": "one"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			repo, hook := newTestRepository(t, srv.URL)

			doctors := repo.FetchAll(context.Background())

			require.NotNil(t, doctors)
			assert.Empty(t, doctors)
			assert.Equal(t, float64(1), testutil.ToFloat64(repo.metrics.SourceFetchFailures))
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		})
	}
}

func TestFetchAll_NullBodyIsEmpty(t *testing.T) {
	srv := serve(t, http.StatusOK, `null`)
	repo, _ := newTestRepository(t, srv.URL)

	doctors := repo.FetchAll(context.Background())

	require.NotNil(t, doctors)
	assert.Empty(t, doctors)
	assert.Zero(t, testutil.ToFloat64(repo.metrics.SourceFetchFailures))
}

func TestFetchAll_UnreachableSource(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo, _ := newTestRepository(t, url)

	doctors := repo.FetchAll(context.Background())

	require.NotNil(t, doctors)
	assert.Empty(t, doctors)
	assert.Equal(t, float64(1), testutil.ToFloat64(repo.metrics.SourceFetchFailures))
}

func TestFetchAll_CanceledContext(t *testing.T) {
	srv := serve(t, http.StatusOK, doctorsJSON)
	repo, _ := newTestRepository(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, repo.FetchAll(ctx))
}
