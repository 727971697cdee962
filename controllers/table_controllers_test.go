package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := NewTableController(
		repositories.NewTableRepository(db),
		repositories.NewRestaurantRepository(db),
	)
	router.GET("/tables", ctrl.GetAllTables)
	router.GET("/tables/:id", ctrl.GetTableByID)
	router.GET("/tables/restaurant/:restaurantId", ctrl.GetTablesByRestaurant)
	router.POST("/tables", ctrl.CreateTable)
	router.PUT("/tables/:id", ctrl.UpdateTable)
	router.PATCH("/tables/:id", ctrl.PatchTable)
	router.DELETE("/tables/:id", ctrl.DeleteTable)
	return router
}

func TestCreateTable(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Seating")
	router := setupTableRouter(db)

	w := performJSON(t, router, "POST", "/tables", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"capacity":      6,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 6, data["capacity"])
}

func TestCreateTableCapacityBounds(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Limits")
	router := setupTableRouter(db)

	for _, capacity := range []int{0, 11} {
		w := performJSON(t, router, "POST", "/tables", map[string]interface{}{
			"restaurant_id": restaurant.ID,
			"capacity":      capacity,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "capacity=%d", capacity)
	}
}

func TestCreateTableUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	router := setupTableRouter(db)

	w := performJSON(t, router, "POST", "/tables", map[string]interface{}{
		"restaurant_id": 999,
		"capacity":      4,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetTablesByRestaurant(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Mine")
	other := seedRestaurantRow(t, db, "Theirs")
	for _, restaurantID := range []uint{restaurant.ID, restaurant.ID, other.ID} {
		id := restaurantID
		table := models.Table{RestaurantID: &id, Capacity: 2}
		require.NoError(t, db.Create(&table).Error)
	}

	router := setupTableRouter(db)
	w := performJSON(t, router, "GET", fmt.Sprintf("/tables/restaurant/%d", restaurant.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Len(t, response["data"].([]interface{}), 2)

	w = performJSON(t, router, "GET", "/tables/restaurant/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
