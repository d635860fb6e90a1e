package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionHandler_SecurityQuestions_DefaultsToEnglish(t *testing.T) {
	handler := NewCollectionHandler()

	c, rec := newTestContext(http.MethodGet, "/collection/securityQuestions", "")

	err := handler.SecurityQuestions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What primary school did you attend?")
}

func TestCollectionHandler_SecurityQuestions_German(t *testing.T) {
	handler := NewCollectionHandler()

	c, rec := newTestContext(http.MethodGet, "/collection/securityQuestions?lang=de", "")

	err := handler.SecurityQuestions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welche Grundschule haben Sie besucht?")
}

func TestCollectionHandler_ResearchInterests(t *testing.T) {
	handler := NewCollectionHandler()

	c, rec := newTestContext(http.MethodGet, "/collection/researchInterests", "")

	err := handler.ResearchInterests(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "VR")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	err := HealthCheck(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
