package remote

import (
	"net/http"
	"time"

	"doctor-directory/config"

	"github.com/sirupsen/logrus"
)

// fetchTimeout bounds the startup fetch, connection through body.
const fetchTimeout = 30 * time.Second

func NewHTTPClient(cfg config.SourceConfig, log *logrus.Logger) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 1

	client := &http.Client{
		Timeout:   fetchTimeout,
		Transport: transport,
	}

	log.WithField("url", cfg.URL).Info("Record source client configured")

	return client
}
