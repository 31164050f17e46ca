package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"depistage-suite-core/internal/modules/screening/dto"
	"depistage-suite-core/internal/modules/screening/services"
)

type ScreeningController struct {
	service *services.ScreeningService
}

func NewScreeningController(service *services.ScreeningService) *ScreeningController {
	return &ScreeningController{
		service: service,
	}
}

// List - GET /api/screening
// Retourne la collection complète, du plus récent au plus ancien
func (c *ScreeningController) List(ctx *gin.Context) {
	records, err := c.service.List(ctx.Request.Context())
	if err != nil {
		c.renderError(ctx, err, "Erreur lors de la récupération des données")
		return
	}

	ctx.JSON(http.StatusOK, dto.ScreeningListResponse{Screenings: records})
}

// Create - POST /api/screening
// Reçoit les champs bruts du formulaire, la normalisation est au service
func (c *ScreeningController) Create(ctx *gin.Context) {
	var req dto.CreateScreeningRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"code":  "INVALID_REQUEST_FORMAT",
			"details": map[string]interface{}{
				"binding_error": err.Error(),
			},
		})
		return
	}

	if _, err := c.service.Create(ctx.Request.Context(), &req); err != nil {
		c.renderError(ctx, err, "Erreur lors de l'enregistrement")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// GetByID - GET /api/screening/:id
func (c *ScreeningController) GetByID(ctx *gin.Context) {
	record, err := c.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.renderError(ctx, err, "Erreur lors de la récupération des données")
		return
	}

	ctx.JSON(http.StatusOK, dto.ScreeningDetailResponse{Screening: *record})
}

// Update - PUT /api/screening/:id
// Remplacement intégral de l'enregistrement
func (c *ScreeningController) Update(ctx *gin.Context) {
	var req dto.UpdateScreeningRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"code":  "INVALID_REQUEST_FORMAT",
			"details": map[string]interface{}{
				"binding_error": err.Error(),
			},
		})
		return
	}

	updated, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		c.renderError(ctx, err, "Erreur lors de la modification. Veuillez réessayer.")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"screening": updated,
	})
}

// Delete - DELETE /api/screening/:id
func (c *ScreeningController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.renderError(ctx, err, "Erreur lors de la suppression")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Enregistrement supprimé avec succès",
	})
}

// renderError convertit une ServiceError en réponse HTTP. Le message
// utilisateur reste générique et localisé, le détail interne part dans les
// logs côté service.
func (c *ScreeningController) renderError(ctx *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := err.(*services.ServiceError); ok {
		var statusCode int
		switch serviceErr.Type {
		case "validation":
			statusCode = http.StatusBadRequest
		case "not_found":
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusInternalServerError
		}

		ctx.JSON(statusCode, gin.H{
			"error":   serviceErr.Message,
			"code":    serviceErr.Code,
			"details": serviceErr.Details,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error": fallbackMessage,
		"code":  "INTERNAL_ERROR",
	})
}
