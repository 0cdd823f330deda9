package repository

import (
	"context"
	"fmt"
	"os"

	"doctor-listing/internal/domain/entity"
	domainRepo "doctor-listing/internal/domain/repository"
	"doctor-listing/pkg/validator"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// doctorFile is the on-disk layout. JSON documents parse too, being valid YAML.
type doctorFile struct {
	Doctors []entity.Doctor `yaml:"doctors"`
}

type fileDoctorRepository struct {
	path      string
	log       *logrus.Logger
	validator *validator.CustomValidator
}

// NewFileDoctorRepository reads the record store from a YAML or JSON file on every FindAll
func NewFileDoctorRepository(path string, log *logrus.Logger, validator *validator.CustomValidator) domainRepo.DoctorRepository {
	return &fileDoctorRepository{
		path:      path,
		log:       log,
		validator: validator,
	}
}

func (r *fileDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read doctor file %s: %w", r.path, err)
	}

	var file doctorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse doctor file %s: %w", r.path, err)
	}

	doctors := make([]entity.Doctor, 0, len(file.Doctors))
	for i := range file.Doctors {
		if err := r.validator.Validate(&file.Doctors[i]); err != nil {
			r.log.WithFields(logrus.Fields{
				"file":   r.path,
				"index":  i,
				"errors": r.validator.FormatValidationErrors(err),
			}).Warn("Skipping invalid doctor record")
			continue
		}
		doctors = append(doctors, file.Doctors[i])
	}

	return doctors, nil
}
