package handler

import (
	"net/http"

	"jobhunt/internal/dto"
	"jobhunt/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SupportHandler struct {
	Service  *service.SupportService
	Validate *validator.Validate
}

func NewSupportHandler(svc *service.SupportService, validate *validator.Validate) *SupportHandler {
	return &SupportHandler{Service: svc, Validate: validate}
}

func (h *SupportHandler) Contact(c echo.Context) error {
	var req dto.SupportRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	if err := h.Service.Forward(c.Request().Context(), req.Email, req.Message); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Support message sent"})
}
