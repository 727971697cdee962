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

func setupOrderItemRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := NewOrderItemController(
		repositories.NewOrderItemRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewMenuItemRepository(db),
	)
	router.GET("/orders/:id/order-items", ctrl.GetOrderItems)
	router.GET("/orders/:id/order-items/:itemId", ctrl.GetOrderItemByID)
	router.POST("/orders/:id/order-items", ctrl.CreateOrderItem)
	router.PUT("/orders/:id/order-items/:itemId", ctrl.UpdateOrderItem)
	router.PATCH("/orders/:id/order-items/:itemId", ctrl.PatchOrderItem)
	router.DELETE("/orders/:id/order-items/:itemId", ctrl.DeleteOrderItem)
	return router
}

func seedOrderItemFixture(t *testing.T, db *gorm.DB) (models.Order, models.MenuItem) {
	t.Helper()
	restaurant := seedRestaurantRow(t, db, "Line Items")
	order := models.Order{OrderDate: time.Now(), TotalAmount: 0}
	require.NoError(t, db.Create(&order).Error)
	menuItem := models.MenuItem{RestaurantID: &restaurant.ID, Name: "Burger", Price: 9.90}
	require.NoError(t, db.Create(&menuItem).Error)
	return order, menuItem
}

func TestCreateOrderItem(t *testing.T) {
	db := newTestDB(t)
	order, menuItem := seedOrderItemFixture(t, db)
	router := setupOrderItemRouter(db)

	w := performJSON(t, router, "POST", fmt.Sprintf("/orders/%d/order-items", order.ID), map[string]interface{}{
		"menu_item_id": menuItem.ID,
		"quantity":     2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Order item created", response["message"])
	data := response["data"].(map[string]interface{})
	assert.EqualValues(t, order.ID, data["order_id"])
	assert.EqualValues(t, 2, data["quantity"])
}

func TestCreateOrderItemUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	_, menuItem := seedOrderItemFixture(t, db)
	router := setupOrderItemRouter(db)

	w := performJSON(t, router, "POST", "/orders/999/order-items", map[string]interface{}{
		"menu_item_id": menuItem.ID,
		"quantity":     1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderItemUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	order, _ := seedOrderItemFixture(t, db)
	router := setupOrderItemRouter(db)

	w := performJSON(t, router, "POST", fmt.Sprintf("/orders/%d/order-items", order.ID), map[string]interface{}{
		"menu_item_id": 999,
		"quantity":     1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateOrderItemZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	order, menuItem := seedOrderItemFixture(t, db)
	router := setupOrderItemRouter(db)

	w := performJSON(t, router, "POST", fmt.Sprintf("/orders/%d/order-items", order.ID), map[string]interface{}{
		"menu_item_id": menuItem.ID,
		"quantity":     0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderItemFromOtherOrder(t *testing.T) {
	db := newTestDB(t)
	order, menuItem := seedOrderItemFixture(t, db)
	otherOrder := models.Order{OrderDate: time.Now()}
	require.NoError(t, db.Create(&otherOrder).Error)
	item := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	router := setupOrderItemRouter(db)

	// Addressed through its own order the item resolves.
	w := performJSON(t, router, "GET", fmt.Sprintf("/orders/%d/order-items/%d", order.ID, item.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Through a different order it does not.
	w = performJSON(t, router, "GET", fmt.Sprintf("/orders/%d/order-items/%d", otherOrder.ID, item.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchOrderItemQuantity(t *testing.T) {
	db := newTestDB(t)
	order, menuItem := seedOrderItemFixture(t, db)
	item := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	router := setupOrderItemRouter(db)
	w := performJSON(t, router, "PATCH", fmt.Sprintf("/orders/%d/order-items/%d", order.ID, item.ID), map[string]interface{}{
		"quantity": 5,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	var updated models.OrderItem
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, menuItem.ID, updated.MenuItemID)
}

func TestDeleteOrderItem(t *testing.T) {
	db := newTestDB(t)
	order, menuItem := seedOrderItemFixture(t, db)
	item := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: 1}
	require.NoError(t, db.Create(&item).Error)

	router := setupOrderItemRouter(db)
	w := performJSON(t, router, "DELETE", fmt.Sprintf("/orders/%d/order-items/%d", order.ID, item.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetOrderItemsPaginated(t *testing.T) {
	db := newTestDB(t)
	order, menuItem := seedOrderItemFixture(t, db)
	for i := 0; i < 3; i++ {
		item := models.OrderItem{OrderID: order.ID, MenuItemID: menuItem.ID, Quantity: i + 1}
		require.NoError(t, db.Create(&item).Error)
	}

	router := setupOrderItemRouter(db)
	w := performJSON(t, router, "GET", fmt.Sprintf("/orders/%d/order-items?pageSize=2", order.ID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Len(t, response["data"].([]interface{}), 2)
	assert.NotEmpty(t, w.Header().Get("X-Pagination"))
}
