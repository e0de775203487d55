package bootstrap

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-directory/config"
	"doctor-directory/internal/delivery/http/handler"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sourceBody = `[
	{"id": 1, "name": "Ann", "specialties": ["Cardiology"], "experience": 5, "fees": 500},
	{"id": 2, "name": "Bob", "specialties": ["Dermatology"], "experience": 10, "fees": 300}
]`

func testConfig(sourceURL string) *config.Config {
	return &config.Config{
		App:    config.AppConfig{Port: "0", Env: "test", PagePath: "/doctors"},
		Log:    config.LogConfig{Level: "info"},
		Source: config.SourceConfig{URL: sourceURL},
		CORS:   config.CORSConfig{AllowedOrigin: "*"},
	}
}

func TestSetupLogger(t *testing.T) {
	log, err := setupLogger(config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	_, err = setupLogger(config.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}

func TestServe_LoadsSnapshotAndShutsDownCleanly(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, sourceBody)
	}))
	defer source.Close()

	log, _ := logtest.NewNullLogger()
	app := newApp(context.Background(), testConfig(source.URL), log)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Serve(ctx, listener)
	}()

	client := &http.Client{Transport: &http.Transport{}}
	resp, err := client.Get("http://" + listener.Addr().String() + "/api/v1/doctors?sort=fees&page=1")
	require.NoError(t, err)

	var body struct {
		Data struct {
			Total   int `json:"total"`
			Doctors []struct {
				Name string `json:"name"`
			} `json:"doctors"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	client.CloseIdleConnections()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/doctors?sort=fees", resp.Header.Get(handler.HeaderReplaceURL))
	assert.Equal(t, 2, body.Data.Total)
	require.Len(t, body.Data.Doctors, 2)
	assert.Equal(t, "Bob", body.Data.Doctors[0].Name)

	cancel()
	assert.NoError(t, <-done)
}

func TestNewApp_UnreachableSourceStartsEmpty(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer source.Close()

	log, hook := logtest.NewNullLogger()
	app := newApp(context.Background(), testConfig(source.URL), log)
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/specialties", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Specialties retrieved successfully","data":{"specialties":[],"total":0}}`, rec.Body.String())

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestServe_ListenerClosedReturnsError(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	app := &App{
		Config: testConfig("http://127.0.0.1:1"),
		Log:    log,
		Server: &http.Server{Handler: http.NotFoundHandler()},
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	listener.Close()

	err = app.Serve(context.Background(), listener)
	assert.Error(t, err)
}
