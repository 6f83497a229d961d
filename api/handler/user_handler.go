package handler

import (
	"errors"
	"net/http"

	"jobhunt/api/middleware"
	"jobhunt/internal/dto"
	"jobhunt/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the per-account saved-jobs list.
type UserHandler struct {
	Jobs *service.JobService
}

func NewUserHandler(jobs *service.JobService) *UserHandler {
	return &UserHandler{Jobs: jobs}
}

func (h *UserHandler) SaveJob(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid job id"))
	}
	saved, err := h.Jobs.SaveJob(c.Request().Context(), user.ID, jobID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SavedJobsResponse{
		Message:   "Job saved successfully",
		SavedJobs: jobIDsToStrings(saved),
	})
}

func (h *UserHandler) UnsaveJob(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid job id"))
	}
	saved, err := h.Jobs.UnsaveJob(c.Request().Context(), user.ID, jobID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SavedJobsResponse{
		Message:   "Job removed from saved list",
		SavedJobs: jobIDsToStrings(saved),
	})
}

func (h *UserHandler) SavedJobs(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	jobs, err := h.Jobs.SavedJobs(c.Request().Context(), user.ID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobResponsesFromEntities(jobs))
}

func jobIDsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
