package products

import (
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/auth"
	httperr "github.com/JosephJoshua/posad/internal/core/errors"
	"github.com/JosephJoshua/posad/internal/core/storage"
	"github.com/gin-gonic/gin"
)

type sectionURI struct {
	SectionID string `uri:"section_id" binding:"required"`
}

type productURI struct {
	SectionID string `uri:"section_id" binding:"required"`
	ProductID string `uri:"product_id" binding:"required"`
}

// RegisterRoutes registers the product API on an authenticated router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/users", s.HandleRegisterUser)
	r.POST("/v1/users/me/messaging-tokens", s.HandleAddMessagingToken)

	r.GET("/v1/sections", s.HandleListSections)
	r.POST("/v1/sections", s.HandleAddSection)
	r.PATCH("/v1/sections/:section_id", s.HandleRenameSection)
	r.DELETE("/v1/sections/:section_id", s.HandleDeleteSection)

	r.GET("/v1/sections/:section_id/products", s.HandleListSectionProducts)
	r.POST("/v1/sections/:section_id/products", s.HandleAddProduct)
	r.PATCH("/v1/sections/:section_id/products/:product_id", s.HandleEditProduct)
	r.DELETE("/v1/sections/:section_id/products/:product_id", s.HandleDeleteProduct)
	r.POST("/v1/sections/:section_id/products/:product_id/complete", s.HandleCompleteProduct)
}

func (s *Service) HandleRegisterUser(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	var req v1.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := s.RegisterUser(c.Request.Context(), uid, req)
	if err != nil {
		writeError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Service) HandleAddMessagingToken(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	var req v1.MessagingTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := s.AddMessagingToken(c.Request.Context(), uid, req.Token); err != nil {
		writeError(c, err, "Failed to add messaging token")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) HandleListSections(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	sections, err := s.ListSectionsWithProducts(c.Request.Context(), uid)
	if err != nil {
		writeError(c, err, "Failed to list sections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (s *Service) HandleAddSection(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	var req v1.AddSectionRequest
	if !bindJSON(c, &req) {
		return
	}

	section, err := s.AddSection(c.Request.Context(), uid, req)
	if err != nil {
		writeError(c, err, "Failed to add section")
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (s *Service) HandleRenameSection(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	var uri sectionURI
	if !bindURI(c, &uri) {
		return
	}
	var req v1.EditSectionRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := s.RenameSection(c.Request.Context(), uid, uri.SectionID, req.Name); err != nil {
		writeError(c, err, "Failed to rename section")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) HandleDeleteSection(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	var uri sectionURI
	if !bindURI(c, &uri) {
		return
	}

	if err := s.DeleteSection(c.Request.Context(), uid, uri.SectionID); err != nil {
		writeError(c, err, "Failed to delete section")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) HandleListSectionProducts(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	var uri sectionURI
	if !bindURI(c, &uri) {
		return
	}

	products, err := s.ListSectionProducts(c.Request.Context(), uid, uri.SectionID)
	if err != nil {
		writeError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Service) HandleAddProduct(c *gin.Context) {
	uid, ok := requireUser(c)
	if !ok {
		return
	}

	var uri sectionURI
	if !bindURI(c, &uri) {
		return
	}
	var req v1.AddProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := s.AddProduct(c.Request.Context(), uid, uri.SectionID, req)
	if err != nil {
		writeError(c, err, "Failed to add product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Service) HandleEditProduct(c *gin.Context) {
	key, ok := productKey(c)
	if !ok {
		return
	}

	var req v1.EditProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := s.EditProduct(c.Request.Context(), key, req)
	if err != nil {
		writeError(c, err, "Failed to edit product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Service) HandleDeleteProduct(c *gin.Context) {
	key, ok := productKey(c)
	if !ok {
		return
	}

	if err := s.DeleteProduct(c.Request.Context(), key); err != nil {
		writeError(c, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) HandleCompleteProduct(c *gin.Context) {
	key, ok := productKey(c)
	if !ok {
		return
	}

	// The body is optional.
	var req v1.CompleteProductRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	product, err := s.CompleteProduct(c.Request.Context(), key, req.ConsumedAt)
	if err != nil {
		writeError(c, err, "Failed to complete product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func requireUser(c *gin.Context) (string, bool) {
	uid, ok := auth.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnauthorizedError,
			Message:   "authentication required",
		})
	}
	return uid, ok
}

func productKey(c *gin.Context) (v1.ProductKey, bool) {
	uid, ok := requireUser(c)
	if !ok {
		return v1.ProductKey{}, false
	}

	var uri productURI
	if !bindURI(c, &uri) {
		return v1.ProductKey{}, false
	}
	return v1.ProductKey{UserID: uid, SectionID: uri.SectionID, ProductID: uri.ProductID}, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("[Products] Invalid request body", "route", c.FullPath(), "error", err)
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid request body",
			Details:   err.Error(),
		})
		return false
	}
	return true
}

func bindURI(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindUri(dst); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid path parameters",
			Details:   err.Error(),
		})
		return false
	}
	return true
}

// writeError maps service errors onto HTTP status codes.
func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   message,
			Details:   err.Error(),
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   message,
			Details:   err.Error(),
		})
	case errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusConflict, httperr.ErrorResponse{
			ErrorType: httperr.HttpDuplicateError,
			Message:   message,
			Details:   err.Error(),
		})
	default:
		slog.Error("[Products] Request failed", "route", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
		})
	}
}
