package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(target string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
}

func TestGetPaginationParams(t *testing.T) {
	assert.Equal(t, PaginationParams{Page: 1, PageSize: 20, Offset: 0}, paramsFor("/"))
	assert.Equal(t, PaginationParams{Page: 3, PageSize: 10, Offset: 20}, paramsFor("/?page=3&limit=10"))

	// Out-of-range values fall back to defaults.
	assert.Equal(t, PaginationParams{Page: 1, PageSize: 20, Offset: 0}, paramsFor("/?page=-1&limit=1000"))
	assert.Equal(t, PaginationParams{Page: 1, PageSize: 20, Offset: 0}, paramsFor("/?page=abc&limit=xyz"))
}
