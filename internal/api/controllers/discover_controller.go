package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"destinex/internal/coordinator"
	"destinex/internal/models"
	"destinex/internal/models/request_models"
	"destinex/internal/models/response_models"
	"destinex/pkg/utils"
)

type DiscoverController struct {
	engine *coordinator.Coordinator
}

func NewDiscoverController(engine *coordinator.Coordinator) *DiscoverController {
	return &DiscoverController{engine: engine}
}

// Search runs a categorized city search and returns the resulting view.
func (d *DiscoverController) Search(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	snap, err := d.engine.SubmitSearch(c.Request.Context(), req.City)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewViewResponse(snap), "Search complete")
}

// SwitchCategory switches the active tab; filters persist across switches.
func (d *DiscoverController) SwitchCategory(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	snap, err := d.engine.SwitchCategory(models.CategoryTag(req.Category))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewViewResponse(snap), "")
}

// UpdateFilters merges a partial criteria update into the current filters.
func (d *DiscoverController) UpdateFilters(c *gin.Context) {
	var req request_models.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch := models.CriteriaPatch{
		MinRating:   req.MinRating,
		MaxDistance: req.MaxDistance,
	}
	if req.PriceTier != nil {
		tier := models.PriceTier(*req.PriceTier)
		if normalized, ok := models.NormalizePriceTier(*req.PriceTier); ok {
			tier = normalized
		} else if tier != models.PriceTierAll {
			utils.RespondError(c, http.StatusBadRequest, "Unknown price tier")
			return
		}
		patch.PriceTier = &tier
	}

	snap, err := d.engine.UpdateFilters(patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewViewResponse(snap), "")
}

func (d *DiscoverController) ResetFilters(c *gin.Context) {
	snap, err := d.engine.ResetFilters()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewViewResponse(snap), "")
}

// View returns the current snapshot without changing anything.
func (d *DiscoverController) View(c *gin.Context) {
	utils.RespondSuccess(c, response_models.NewViewResponse(d.engine.Snapshot()), "")
}

func (d *DiscoverController) Leave(c *gin.Context) {
	d.engine.Leave()
	utils.RespondSuccess(c, nil, "Left discovery view")
}

// LastCity recalls the most recent successfully searched city.
func (d *DiscoverController) LastCity(c *gin.Context) {
	city, ok := d.engine.LastCity()
	if !ok {
		utils.RespondSuccess(c, gin.H{"city": ""}, "No previous search")
		return
	}
	utils.RespondSuccess(c, gin.H{"city": city}, "")
}
