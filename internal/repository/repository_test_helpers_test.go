package repository

import (
	"context"
	"errors"
	"io"
	"testing"

	"doctor-listing/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func newTestLogger(t *testing.T) *logrus.Logger {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var errSupplierDown = errors.New("supplier down")

// stubDoctorRepository counts FindAll calls and returns fixed results
type stubDoctorRepository struct {
	doctors []entity.Doctor
	err     error
	calls   int
}

func (s *stubDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.doctors, nil
}
