package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
	"restaurant-reservation-api/utils"
)

type MenuItemController struct {
	Repo        *repositories.MenuItemRepository
	Restaurants *repositories.RestaurantRepository
}

func NewMenuItemController(repo *repositories.MenuItemRepository, restaurants *repositories.RestaurantRepository) *MenuItemController {
	return &MenuItemController{Repo: repo, Restaurants: restaurants}
}

// GetAllMenuItems -> one page of menu items
func (mc *MenuItemController) GetAllMenuItems(c *gin.Context) {
	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	items, meta, err := mc.Repo.GetAll(nil, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID -> detail of one menu item
func (mc *MenuItemController) GetMenuItemByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := mc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetMenuItemsByRestaurant -> paginated menu of one restaurant
func (mc *MenuItemController) GetMenuItemsByRestaurant(c *gin.Context) {
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}

	exists, err := mc.Restaurants.Exists(restaurantID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant with the given ID does not exist"))
		return
	}

	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	filter := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("restaurant_id = ?", restaurantID)
	}
	items, meta, err := mc.Repo.GetAll(filter, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "Menu items of restaurant", items)
}

// CreateMenuItem -> new menu item; the restaurant must exist
func (mc *MenuItemController) CreateMenuItem(c *gin.Context) {
	var req struct {
		RestaurantID uint    `json:"restaurant_id" binding:"required"`
		Name         string  `json:"name" binding:"required"`
		Description  string  `json:"description"`
		Price        float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !mc.restaurantExists(c, req.RestaurantID) {
		return
	}

	item := models.MenuItem{
		RestaurantID: &req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	}

	created, err := mc.Repo.Create(&item)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New menu item created: %s (ID=%d)", created.Name, created.ID)
	setLocation(c, "/api/menu-items", created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", created)
}

// UpdateMenuItem -> full overwrite
func (mc *MenuItemController) UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantID uint    `json:"restaurant_id" binding:"required"`
		Name         string  `json:"name" binding:"required"`
		Description  string  `json:"description"`
		Price        float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if !mc.restaurantExists(c, req.RestaurantID) {
		return
	}

	item.RestaurantID = &req.RestaurantID
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price

	if err := mc.Repo.Update(item); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchMenuItem -> partial update
func (mc *MenuItemController) PatchMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantID *uint    `json:"restaurant_id"`
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.RestaurantID != nil {
		if !mc.restaurantExists(c, *req.RestaurantID) {
			return
		}
		item.RestaurantID = req.RestaurantID
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := mc.Repo.Update(item); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteMenuItem -> plain removal, menu items have no detachable children
func (mc *MenuItemController) DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := mc.Repo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %d deleted", id)
	c.Status(http.StatusNoContent)
}

func (mc *MenuItemController) restaurantExists(c *gin.Context, restaurantID uint) bool {
	exists, err := mc.Restaurants.Exists(restaurantID)
	if err != nil {
		respondRepoError(c, err)
		return false
	}
	if !exists {
		utils.RespondError(c, http.StatusUnprocessableEntity,
			errors.New("restaurant with the given ID does not exist"))
		return false
	}
	return true
}
