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

func setupMenuItemRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := NewMenuItemController(
		repositories.NewMenuItemRepository(db),
		repositories.NewRestaurantRepository(db),
	)
	router.GET("/menu-items", ctrl.GetAllMenuItems)
	router.GET("/menu-items/:id", ctrl.GetMenuItemByID)
	router.GET("/menu-items/restaurant/:restaurantId", ctrl.GetMenuItemsByRestaurant)
	router.POST("/menu-items", ctrl.CreateMenuItem)
	router.PUT("/menu-items/:id", ctrl.UpdateMenuItem)
	router.PATCH("/menu-items/:id", ctrl.PatchMenuItem)
	router.DELETE("/menu-items/:id", ctrl.DeleteMenuItem)
	return router
}

func TestCreateMenuItem(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Menu Maker")
	router := setupMenuItemRouter(db)

	w := performJSON(t, router, "POST", "/menu-items", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"name":          "Risotto",
		"description":   "Mushroom risotto",
		"price":         14.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Risotto", data["name"])
}

func TestCreateMenuItemInvalidPrice(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Pricey")
	router := setupMenuItemRouter(db)

	w := performJSON(t, router, "POST", "/menu-items", map[string]interface{}{
		"restaurant_id": restaurant.ID,
		"name":          "Free Lunch",
		"price":         0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMenuItemUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	router := setupMenuItemRouter(db)

	w := performJSON(t, router, "POST", "/menu-items", map[string]interface{}{
		"restaurant_id": 999,
		"name":          "Orphan Dish",
		"price":         5.00,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetMenuItemsByRestaurant(t *testing.T) {
	db := newTestDB(t)
	restaurant := seedRestaurantRow(t, db, "Listed")
	other := seedRestaurantRow(t, db, "Unlisted")
	for i, restaurantID := range []uint{restaurant.ID, restaurant.ID, other.ID} {
		id := restaurantID
		item := models.MenuItem{RestaurantID: &id, Name: fmt.Sprintf("Dish %d", i), Price: 8.00}
		require.NoError(t, db.Create(&item).Error)
	}

	router := setupMenuItemRouter(db)
	w := performJSON(t, router, "GET", fmt.Sprintf("/menu-items/restaurant/%d", restaurant.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Menu items of restaurant", response["message"])
	assert.Len(t, response["data"].([]interface{}), 2)

	w = performJSON(t, router, "GET", "/menu-items/restaurant/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
