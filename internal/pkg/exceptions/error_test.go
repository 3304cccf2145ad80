package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomError_WrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrMongoDBFindDocument(cause)

	assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
	assert.Contains(t, err.DevMessage, "connection reset")
	assert.ErrorIs(t, err, cause)
	assert.Len(t, err.Locations, 1)
}

func TestBuildNewCustomError_KeepsInnerLocations(t *testing.T) {
	inner := ErrReportNotFound(nil, "abc")
	outer := ErrMongoDBTransaction(inner)

	assert.Equal(t, constvars.StatusInternalServerError, outer.StatusCode)
	assert.Len(t, outer.Locations, 2)
	assert.Contains(t, outer.DevMessage, inner.DevMessage)
}

func TestStatusCodeOf(t *testing.T) {
	assert.Equal(t, constvars.StatusConflict, StatusCodeOf(ErrReportAlreadyArchived(nil, "abc")))
	assert.Equal(t, constvars.StatusConflict, StatusCodeOf(fmt.Errorf("wrapped: %w", ErrReportLocked(nil, "abc"))))
	assert.Equal(t, constvars.StatusInternalServerError, StatusCodeOf(errors.New("plain")))
}

func TestAuthStatusCodes(t *testing.T) {
	assert.Equal(t, constvars.StatusForbidden, ErrTokenMissing(nil).StatusCode)
	assert.Equal(t, constvars.StatusUnauthorized, ErrTokenInvalidOrExpired(nil).StatusCode)
	assert.Equal(t, constvars.StatusForbidden, ErrRoleNotPermitted(nil).StatusCode)
}
