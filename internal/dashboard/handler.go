package dashboard

import (
	"errors"
	"net/http"

	"github.com/JosephJoshua/posad/internal/auth"
	httperr "github.com/JosephJoshua/posad/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all dashboard API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/dashboard/went-bad", s.HandleWentBad)
	r.GET("/v1/dashboard/expiring-soon", s.HandleExpiringSoon)
}

// HandleWentBad handles GET /v1/dashboard/went-bad
// Query parameters: timeframe
func (s *Service) HandleWentBad(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		writeUnauthorized(c)
		return
	}

	var query WentBadQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidQuery(c, err)
		return
	}

	tf, err := ParseTimeframe(query.Timeframe)
	if err != nil {
		writeInvalidQuery(c, err)
		return
	}

	resp, err := s.WentBad(c.Request.Context(), uid, tf)
	if err != nil {
		writeServiceError(c, err, "Failed to build went-bad chart")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleExpiringSoon handles GET /v1/dashboard/expiring-soon
// Query parameters: limit
func (s *Service) HandleExpiringSoon(c *gin.Context) {
	uid, ok := auth.UserID(c)
	if !ok {
		writeUnauthorized(c)
		return
	}

	var query ExpiringSoonQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeInvalidQuery(c, err)
		return
	}

	resp, err := s.ExpiringSoon(c.Request.Context(), uid, query.Limit)
	if err != nil {
		writeServiceError(c, err, "Failed to list expiring products")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func writeUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{
		ErrorType: httperr.HttpUnauthorizedError,
		Message:   "authentication required",
	})
}

func writeInvalidQuery(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   "Invalid query parameters",
		Details:   err.Error(),
	})
}

func writeServiceError(c *gin.Context, err error, message string) {
	if errors.Is(err, ErrInvalidQuery) {
		writeInvalidQuery(c, err)
		return
	}

	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   message,
		Details:   err.Error(),
	})
}
