package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

var ErrUnexpectedStatus = errors.New("unexpected status from record source")

type doctorRepository struct {
	client    *http.Client
	sourceURL string
	log       *logrus.Logger
	metrics   *metrics.Metrics
}

func NewDoctorRepository(client *http.Client, sourceURL string, log *logrus.Logger, m *metrics.Metrics) domainRepo.DoctorRepository {
	return &doctorRepository{
		client:    client,
		sourceURL: sourceURL,
		log:       log,
		metrics:   m,
	}
}

// FetchAll issues one GET against the source. Failures are logged and
// reported as an empty directory; there is no retry.
func (r *doctorRepository) FetchAll(ctx context.Context) []entity.Doctor {
	doctors, err := r.fetch(ctx)
	if err != nil {
		r.log.WithField("url", r.sourceURL).Warnf("Failed to fetch doctors: %+v", err)
		r.metrics.SourceFetchFailures.Inc()
		return []entity.Doctor{}
	}
	return doctors
}

func (r *doctorRepository) fetch(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.sourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", r.sourceURL, err)
	}
	defer r.client.CloseIdleConnections()
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var doctors []entity.Doctor
	if err := json.NewDecoder(resp.Body).Decode(&doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	if doctors == nil {
		doctors = []entity.Doctor{}
	}

	r.log.Debugf("Fetched %d doctors from record source", len(doctors))
	return doctors, nil
}
