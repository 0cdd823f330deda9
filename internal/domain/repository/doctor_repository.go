package repository

import (
	"context"

	"doctor-listing/internal/domain/entity"
)

// DoctorRepository supplies the record store for a page session
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
}
