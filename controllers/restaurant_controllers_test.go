package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
)

func setupRestaurantRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := NewRestaurantController(repositories.NewRestaurantRepository(db))
	router.GET("/restaurants", ctrl.GetAllRestaurants)
	router.GET("/restaurants/:id", ctrl.GetRestaurantByID)
	router.GET("/restaurants/:id/revenue", ctrl.GetRestaurantRevenue)
	router.POST("/restaurants", ctrl.CreateRestaurant)
	router.PUT("/restaurants/:id", ctrl.UpdateRestaurant)
	router.PATCH("/restaurants/:id", ctrl.PatchRestaurant)
	router.DELETE("/restaurants/:id", ctrl.DeleteRestaurant)
	return router
}

func TestRestaurantCRUD(t *testing.T) {
	db := newTestDB(t)
	router := setupRestaurantRouter(db)

	w := performJSON(t, router, "POST", "/restaurants", map[string]string{
		"name":          "Corner Bistro",
		"address":       "5 Main Street",
		"phone_number":  "555-0188",
		"opening_hours": "11:00-23:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeResponse(t, w)["data"].(map[string]interface{})
	id := uint(created["id"].(float64))

	w = performJSON(t, router, "GET", fmt.Sprintf("/restaurants/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Corner Bistro", decodeResponse(t, w)["data"].(map[string]interface{})["name"])

	w = performJSON(t, router, "PATCH", fmt.Sprintf("/restaurants/%d", id), map[string]string{
		"opening_hours": "10:00-22:00",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var updated models.Restaurant
	require.NoError(t, db.First(&updated, id).Error)
	assert.Equal(t, "10:00-22:00", updated.OpeningHours)
	assert.Equal(t, "Corner Bistro", updated.Name)

	w = performJSON(t, router, "DELETE", fmt.Sprintf("/restaurants/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performJSON(t, router, "GET", fmt.Sprintf("/restaurants/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantRevenueEndpoint(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Earning")
	reservation := seedReservationRow(t, db, nil, &restaurant.ID, nil, 2)
	for _, amount := range []float64{30, 12.5} {
		order := models.Order{ReservationID: &reservation.ID, OrderDate: time.Now(), TotalAmount: amount}
		require.NoError(t, db.Create(&order).Error)
	}

	router := setupRestaurantRouter(db)
	w := performJSON(t, router, "GET", fmt.Sprintf("/restaurants/%d/revenue", restaurant.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Restaurant revenue", response["message"])
	data := response["data"].(map[string]interface{})
	assert.InDelta(t, 42.5, data["revenue"].(float64), 0.001)

	w = performJSON(t, router, "GET", "/restaurants/999/revenue", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRestaurantRevenueEmpty(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Fresh Start")
	router := setupRestaurantRouter(db)

	w := performJSON(t, router, "GET", fmt.Sprintf("/restaurants/%d/revenue", restaurant.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Zero(t, data["revenue"].(float64))
}

func TestDeleteRestaurantDetachesDependents(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Folding")
	table := models.Table{RestaurantID: &restaurant.ID, Capacity: 2}
	require.NoError(t, db.Create(&table).Error)

	router := setupRestaurantRouter(db)
	w := performJSON(t, router, "DELETE", fmt.Sprintf("/restaurants/%d", restaurant.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var kept models.Table
	require.NoError(t, db.First(&kept, table.ID).Error)
	assert.Nil(t, kept.RestaurantID)
}
