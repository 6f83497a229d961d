package repository

import (
	"context"
	"errors"
	"time"

	"jobhunt/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByVerificationToken matches on the stored token hash and only
	// returns a user whose verification has not yet expired. "Unknown" and
	// "expired" are indistinguishable to callers.
	FindByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	SavedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	SavedJobs(ctx context.Context, userID uuid.UUID) ([]entity.Job, error)
	AddSavedJob(ctx context.Context, userID, jobID uuid.UUID) error
	RemoveSavedJob(ctx context.Context, userID, jobID uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) FindByVerificationToken(ctx context.Context, tokenHash string, now time.Time) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("verification_token = ? AND verification_token_expires > ?", tokenHash, now).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SavedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("saved_jobs").
		Where("user_id = ?", userID).
		Pluck("job_id", &ids).Error
	return ids, err
}

func (r *userRepository) SavedJobs(ctx context.Context, userID uuid.UUID) ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.WithContext(ctx).
		Model(&entity.User{ID: userID}).
		Association("SavedJobs").
		Find(&jobs)
	return jobs, err
}

func (r *userRepository) AddSavedJob(ctx context.Context, userID, jobID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{ID: userID}).
		Association("SavedJobs").
		Append(&entity.Job{ID: jobID})
}

func (r *userRepository) RemoveSavedJob(ctx context.Context, userID, jobID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{ID: userID}).
		Association("SavedJobs").
		Delete(&entity.Job{ID: jobID})
}
