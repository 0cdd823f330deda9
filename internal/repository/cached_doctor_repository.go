package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"doctor-listing/internal/domain/entity"
	domainRepo "doctor-listing/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisStoreKey holds the serialized record store
	RedisStoreKey = "doctors:store"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// cachedDoctorRepository keeps a copy of the wrapped record store in Redis.
// Redis failures never fail a read: the wrapped repository is used instead.
type cachedDoctorRepository struct {
	next        domainRepo.DoctorRepository
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewCachedDoctorRepository(next domainRepo.DoctorRepository, redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) domainRepo.DoctorRepository {
	return &cachedDoctorRepository{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (r *cachedDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	if doctors, ok := r.readCache(ctx); ok {
		return doctors, nil
	}

	doctors, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	r.writeCache(ctx, doctors)
	return doctors, nil
}

func (r *cachedDoctorRepository) readCache(ctx context.Context) ([]entity.Doctor, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	data, err := r.redisClient.Get(ctx, RedisStoreKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warnf("Failed to read doctor cache: %+v", err)
		}
		return nil, false
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		r.log.Warnf("Failed to decode doctor cache: %+v", err)
		return nil, false
	}

	r.log.Debugf("Doctor cache hit: %d records", len(doctors))
	return doctors, true
}

func (r *cachedDoctorRepository) writeCache(ctx context.Context, doctors []entity.Doctor) {
	data, err := json.Marshal(doctors)
	if err != nil {
		r.log.Warnf("Failed to encode doctor cache: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := r.redisClient.Set(ctx, RedisStoreKey, data, r.ttl).Err(); err != nil {
		r.log.Warnf("Failed to write doctor cache: %+v", err)
	}
}
