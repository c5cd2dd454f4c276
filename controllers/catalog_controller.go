package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodie-finder/models"
	"foodie-finder/repositories"
	"foodie-finder/services"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetRestaurants godoc
// @Summary List restaurants
// @Tags Catalog
// @Produce json
// @Param cuisine query string false "Filter by cuisine"
// @Param location query string false "Filter by location"
// @Param featured query bool false "Only featured restaurants"
// @Success 200 {object} models.Response
// @Router /restaurants [get]
func (ctrl *CatalogController) GetRestaurants(c *gin.Context) {
	filter := repositories.RestaurantFilter{
		Cuisine:  c.Query("cuisine"),
		Location: c.Query("location"),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid featured flag"})
			return
		}
		filter.Featured = &featured
	}

	restaurants := ctrl.catalogService.GetRestaurants(filter)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Restaurants retrieved successfully", Data: restaurants})
}

// GetRestaurantByID godoc
// @Summary Get a restaurant
// @Tags Catalog
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (ctrl *CatalogController) GetRestaurantByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid restaurant id"})
		return
	}

	restaurant, err := ctrl.catalogService.GetRestaurantByID(id)
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Restaurant retrieved successfully", Data: restaurant})
}

// GetMenu godoc
// @Summary Get a restaurant's menu
// @Tags Catalog
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id}/menu [get]
func (ctrl *CatalogController) GetMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid restaurant id"})
		return
	}

	menu, err := ctrl.catalogService.GetMenu(id)
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Menu retrieved successfully", Data: menu})
}

// GetDeals godoc
// @Summary List deals
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /deals [get]
func (ctrl *CatalogController) GetDeals(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Deals retrieved successfully", Data: ctrl.catalogService.GetDeals()})
}

// GetPickupLocations godoc
// @Summary List pickup locations
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /pickup-locations [get]
func (ctrl *CatalogController) GetPickupLocations(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Pickup locations retrieved successfully", Data: ctrl.catalogService.GetPickupLocations()})
}
