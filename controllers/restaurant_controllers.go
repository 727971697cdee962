package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
	"restaurant-reservation-api/utils"
)

type RestaurantController struct {
	Repo *repositories.RestaurantRepository
}

func NewRestaurantController(repo *repositories.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GetAllRestaurants -> one page of restaurants
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	restaurants, meta, err := rc.Repo.GetAll(nil, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID -> detail of one restaurant
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	restaurant, err := rc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// CreateRestaurant -> new restaurant
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Address      string `json:"address"`
		PhoneNumber  string `json:"phone_number"`
		OpeningHours string `json:"opening_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:         req.Name,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		OpeningHours: req.OpeningHours,
	}

	created, err := rc.Repo.Create(&restaurant)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New restaurant created: %s (ID=%d)", created.Name, created.ID)
	setLocation(c, "/api/restaurants", created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", created)
}

// UpdateRestaurant -> full overwrite
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name         string `json:"name" binding:"required"`
		Address      string `json:"address"`
		PhoneNumber  string `json:"phone_number"`
		OpeningHours string `json:"opening_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := rc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	restaurant.Name = req.Name
	restaurant.Address = req.Address
	restaurant.PhoneNumber = req.PhoneNumber
	restaurant.OpeningHours = req.OpeningHours

	if err := rc.Repo.Update(restaurant); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchRestaurant -> partial update
func (rc *RestaurantController) PatchRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Address      *string `json:"address"`
		PhoneNumber  *string `json:"phone_number"`
		OpeningHours *string `json:"opening_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := rc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		restaurant.PhoneNumber = *req.PhoneNumber
	}
	if req.OpeningHours != nil {
		restaurant.OpeningHours = *req.OpeningHours
	}

	if err := rc.Repo.Update(restaurant); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteRestaurant -> removes the restaurant, detaching its reservations,
// employees, tables and menu items
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rc.Repo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %d deleted", id)
	c.Status(http.StatusNoContent)
}

// GetRestaurantRevenue -> sum of order totals across the restaurant's
// reservations
func (rc *RestaurantController) GetRestaurantRevenue(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	revenue, err := rc.Repo.CalculateRevenue(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant revenue", gin.H{"revenue": revenue})
}
