package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	groundRepo "pitchbook/database/repository/ground"
	"pitchbook/models"
	"pitchbook/services/ground"
	"pitchbook/utils"
)

// GroundHandler maps HTTP requests onto the ground directory service.
type GroundHandler struct {
	Svc ground.GroundService
}

func NewGroundHandler(svc ground.GroundService) *GroundHandler {
	return &GroundHandler{Svc: svc}
}

// ListGrounds handles GET /api/grounds. Customers only see active grounds;
// admins pass ?all=true.
func (h *GroundHandler) ListGrounds(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	grounds, err := h.Svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondGroundError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grounds": grounds})
}

// GetGround handles GET /api/grounds/:id.
func (h *GroundHandler) GetGround(c *gin.Context) {
	g, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondGroundError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ground": g})
}

// CreateGround handles POST /api/admin/grounds.
func (h *GroundHandler) CreateGround(c *gin.Context) {
	var g models.Ground
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), &g)
	if err != nil {
		respondGroundError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ground": created})
}

// UpdateGround handles PUT /api/admin/grounds/:id.
func (h *GroundHandler) UpdateGround(c *gin.Context) {
	var g models.Ground
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	g.ID = c.Param("id")

	updated, err := h.Svc.Update(c.Request.Context(), &g)
	if err != nil {
		respondGroundError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ground": updated})
}

// UploadGroundPhoto handles POST /api/admin/grounds/:id/photo with a
// multipart "photo" field.
func (h *GroundHandler) UploadGroundPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing photo file", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read photo file", err.Error())
		return
	}
	defer file.Close()

	g, err := h.Svc.UploadPhoto(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		respondGroundError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ground": g})
}

func respondGroundError(c *gin.Context, err error) {
	if errors.Is(err, groundRepo.ErrGroundNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "ground not found"})
		return
	}
	utils.GetLogger().Error("ground operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
