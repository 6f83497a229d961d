package dto

import (
	"time"

	"jobhunt/internal/entity"
)

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
	ApplyLink   string `json:"applyLink" validate:"required,url"`
	Salary      string `json:"salary" validate:"required"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title" validate:"omitempty"`
	Company     *string `json:"company" validate:"omitempty"`
	Location    *string `json:"location" validate:"omitempty"`
	Type        *string `json:"type" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	ApplyLink   *string `json:"applyLink" validate:"omitempty,url"`
	Salary      *string `json:"salary" validate:"omitempty"`
}

type JobResponse struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	ApplyLink   string    `json:"applyLink"`
	Salary      string    `json:"salary"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int64         `json:"total"`
}

type SavedJobsResponse struct {
	Message   string   `json:"message"`
	SavedJobs []string `json:"savedJobs"`
}

func JobResponseFromEntity(job *entity.Job) JobResponse {
	return JobResponse{
		ID:          job.ID.String(),
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Type:        job.Type,
		Description: job.Description,
		ApplyLink:   job.ApplyLink,
		Salary:      job.Salary,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func JobResponsesFromEntities(jobs []entity.Job) []JobResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, JobResponseFromEntity(&jobs[i]))
	}
	return responses
}
