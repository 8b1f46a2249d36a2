package handler

import (
	"net/http"
	"strconv"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
	"github.com/cimile-club/lineup-api/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CreatePlayerRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	// Send error response
	c.JSON(errResp.Status, errResp)
}

// RespondServiceError resolves a domain error into its registered response,
// falling back to InternalServerError for unregistered errors.
func RespondServiceError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}
	RespondError(c, err, sharedError.InternalServerError)
}

// PathID parses a numeric path parameter.
// Returns false (response already sent) when the value is not a positive integer.
func PathID(c *gin.Context, name string) (uint32, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}

// Pagination reads skip/limit query parameters with defaults.
func Pagination(c *gin.Context, defaultLimit int) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	return skip, limit
}
