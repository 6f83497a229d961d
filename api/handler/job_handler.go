package handler

import (
	"errors"
	"net/http"

	"jobhunt/api/middleware"
	"jobhunt/internal/dto"
	"jobhunt/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type JobHandler struct {
	Service  *service.JobService
	Validate *validator.Validate
}

func NewJobHandler(svc *service.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{Service: svc, Validate: validate}
}

func (h *JobHandler) List(c echo.Context) error {
	page, limit := parsePageLimit(c)
	jobs, total, err := h.Service.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobListResponse{
		Jobs:  dto.JobResponsesFromEntities(jobs),
		Total: total,
	})
}

func (h *JobHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid job id"))
	}
	job, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobResponseFromEntity(job))
}

func (h *JobHandler) Create(c echo.Context) error {
	var req dto.CreateJobRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("all fields are required"))
	}

	input := service.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		ApplyLink:   req.ApplyLink,
		Salary:      req.Salary,
	}
	if user, ok := middleware.UserFromContext(c); ok {
		input.CreatedBy = &user.ID
	}

	job, err := h.Service.Create(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.JobResponseFromEntity(job))
}

func (h *JobHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid job id"))
	}
	var req dto.UpdateJobRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	input := service.UpdateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		ApplyLink:   req.ApplyLink,
		Salary:      req.Salary,
	}
	job, err := h.Service.Update(c.Request().Context(), id, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.JobResponseFromEntity(job))
}

func (h *JobHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid job id"))
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted"})
}

func (h *JobHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
