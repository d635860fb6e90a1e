package handler

import (
	"net/http"

	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CollectionHandler serves the static catalogs registration forms render.
type CollectionHandler struct{}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler() *CollectionHandler {
	return &CollectionHandler{}
}

// SecurityQuestions returns the security question catalog in the requested
// language. English is the default; lang=de selects German.
func (h *CollectionHandler) SecurityQuestions(c echo.Context) error {
	questions := entity.SecurityQuestionsEN
	if c.QueryParam("lang") == "de" {
		questions = entity.SecurityQuestionsDE
	}

	return response.Success(c, http.StatusOK, questions, "Security questions retrieved successfully")
}

// ResearchInterests returns the predefined research interest tags.
func (h *CollectionHandler) ResearchInterests(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.ResearchInterests, "Research interests retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
