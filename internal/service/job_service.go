package service

import (
	"context"

	"jobhunt/internal/entity"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title       string
	Company     string
	Location    string
	Type        string
	Description string
	ApplyLink   string
	Salary      string
	CreatedBy   *uuid.UUID
}

// UpdateJobInput carries only the fields present in the request body.
type UpdateJobInput struct {
	Title       *string
	Company     *string
	Location    *string
	Type        *string
	Description *string
	ApplyLink   *string
	Salary      *string
}

type JobService struct {
	jobs  repository.JobRepository
	users repository.UserRepository
}

func NewJobService(jobs repository.JobRepository, users repository.UserRepository) *JobService {
	return &JobService{jobs: jobs, users: users}
}

func (s *JobService) Create(ctx context.Context, input CreateJobInput) (*entity.Job, error) {
	job := &entity.Job{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		Type:        input.Type,
		Description: input.Description,
		ApplyLink:   input.ApplyLink,
		Salary:      input.Salary,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, page, limit int) ([]entity.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	jobs, err := s.jobs.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]entity.Job, error) {
	return s.jobs.ListAll(ctx)
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *JobService) Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (*entity.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Company != nil {
		job.Company = *input.Company
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.ApplyLink != nil {
		job.ApplyLink = *input.ApplyLink
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}
	return s.jobs.Delete(ctx, id)
}

// SaveJob adds the job to the user's saved set and returns the updated id
// list. Saving the same job twice is rejected.
func (s *JobService) SaveJob(ctx context.Context, userID, jobID uuid.UUID) ([]uuid.UUID, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	saved, err := s.users.SavedJobIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range saved {
		if id == jobID {
			return nil, ErrJobAlreadySaved
		}
	}

	if err := s.users.AddSavedJob(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return append(saved, jobID), nil
}

// UnsaveJob removes the job from the user's saved set. Removing a job that
// was never saved is not an error.
func (s *JobService) UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) ([]uuid.UUID, error) {
	if err := s.users.RemoveSavedJob(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return s.users.SavedJobIDs(ctx, userID)
}

func (s *JobService) SavedJobs(ctx context.Context, userID uuid.UUID) ([]entity.Job, error) {
	return s.users.SavedJobs(ctx, userID)
}
