package repository

import (
	"context"

	"doctor-listing/internal/domain/entity"
	domainRepo "doctor-listing/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository reads the record store from the doctors table
func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// SeedDoctors inserts doctors when the table is empty and reports how many rows were written
func SeedDoctors(ctx context.Context, db *gorm.DB, doctors []entity.Doctor) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Doctor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 || len(doctors) == 0 {
		return 0, nil
	}

	result := db.WithContext(ctx).Create(&doctors)
	return result.RowsAffected, result.Error
}
