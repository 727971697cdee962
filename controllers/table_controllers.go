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

type TableController struct {
	Repo        *repositories.TableRepository
	Restaurants *repositories.RestaurantRepository
}

func NewTableController(repo *repositories.TableRepository, restaurants *repositories.RestaurantRepository) *TableController {
	return &TableController{Repo: repo, Restaurants: restaurants}
}

// GetAllTables -> one page of tables
func (tc *TableController) GetAllTables(c *gin.Context) {
	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	tables, meta, err := tc.Repo.GetAll(nil, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail of one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	table, err := tc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetTablesByRestaurant -> paginated tables belonging to a restaurant
func (tc *TableController) GetTablesByRestaurant(c *gin.Context) {
	restaurantID, ok := paramID(c, "restaurantId")
	if !ok {
		return
	}

	exists, err := tc.Restaurants.Exists(restaurantID)
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
	tables, meta, err := tc.Repo.GetAll(filter, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "Tables of restaurant", tables)
}

// CreateTable -> new table; capacity is bounded and the restaurant must exist
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
		Capacity     int  `json:"capacity" binding:"required,gte=1,lte=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !tc.restaurantExists(c, req.RestaurantID) {
		return
	}

	table := models.Table{
		RestaurantID: &req.RestaurantID,
		Capacity:     req.Capacity,
	}

	created, err := tc.Repo.Create(&table)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created (ID=%d, capacity=%d)", created.ID, created.Capacity)
	setLocation(c, "/api/tables", created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Table created", created)
}

// UpdateTable -> full overwrite
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
		Capacity     int  `json:"capacity" binding:"required,gte=1,lte=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if !tc.restaurantExists(c, req.RestaurantID) {
		return
	}

	table.RestaurantID = &req.RestaurantID
	table.Capacity = req.Capacity

	if err := tc.Repo.Update(table); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchTable -> partial update
func (tc *TableController) PatchTable(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantID *uint `json:"restaurant_id"`
		Capacity     *int  `json:"capacity" binding:"omitempty,gte=1,lte=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.RestaurantID != nil {
		if !tc.restaurantExists(c, *req.RestaurantID) {
			return
		}
		table.RestaurantID = req.RestaurantID
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}

	if err := tc.Repo.Update(table); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTable -> removes the table, detaching its reservations
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := tc.Repo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", id)
	c.Status(http.StatusNoContent)
}

func (tc *TableController) restaurantExists(c *gin.Context, restaurantID uint) bool {
	exists, err := tc.Restaurants.Exists(restaurantID)
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
