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

// OrderItemController serves the order-items collection nested under its
// order: /api/orders/:id/order-items.
type OrderItemController struct {
	Repo      *repositories.OrderItemRepository
	Orders    *repositories.OrderRepository
	MenuItems *repositories.MenuItemRepository
}

func NewOrderItemController(
	repo *repositories.OrderItemRepository,
	orders *repositories.OrderRepository,
	menuItems *repositories.MenuItemRepository,
) *OrderItemController {
	return &OrderItemController{Repo: repo, Orders: orders, MenuItems: menuItems}
}

// GetOrderItems -> paginated items of one order
func (oc *OrderItemController) GetOrderItems(c *gin.Context) {
	orderID, ok := oc.orderFromPath(c)
	if !ok {
		return
	}

	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	filter := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("order_id = ?", orderID)
	}
	items, meta, err := oc.Repo.GetAll(filter, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "Items of order", items)
}

// GetOrderItemByID -> one item, which must belong to the order in the path
func (oc *OrderItemController) GetOrderItemByID(c *gin.Context) {
	orderID, ok := oc.orderFromPath(c)
	if !ok {
		return
	}
	item, ok := oc.itemFromPath(c, orderID)
	if !ok {
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item detail", item)
}

// CreateOrderItem -> new line on the order; the menu item must exist
func (oc *OrderItemController) CreateOrderItem(c *gin.Context) {
	orderID, ok := oc.orderFromPath(c)
	if !ok {
		return
	}

	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,gte=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !oc.menuItemExists(c, req.MenuItemID) {
		return
	}

	item := models.OrderItem{
		OrderID:    orderID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
	}

	created, err := oc.Repo.Create(&item)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New order item created (ID=%d, order=%d)", created.ID, orderID)
	setLocation(c, c.Request.URL.Path, created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Order item created", created)
}

// UpdateOrderItem -> full overwrite of one line
func (oc *OrderItemController) UpdateOrderItem(c *gin.Context) {
	orderID, ok := oc.orderFromPath(c)
	if !ok {
		return
	}
	item, ok := oc.itemFromPath(c, orderID)
	if !ok {
		return
	}

	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,gte=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !oc.menuItemExists(c, req.MenuItemID) {
		return
	}

	item.MenuItemID = req.MenuItemID
	item.Quantity = req.Quantity

	if err := oc.Repo.Update(item); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchOrderItem -> partial update of one line
func (oc *OrderItemController) PatchOrderItem(c *gin.Context) {
	orderID, ok := oc.orderFromPath(c)
	if !ok {
		return
	}
	item, ok := oc.itemFromPath(c, orderID)
	if !ok {
		return
	}

	var req struct {
		MenuItemID *uint `json:"menu_item_id"`
		Quantity   *int  `json:"quantity" binding:"omitempty,gte=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.MenuItemID != nil {
		if !oc.menuItemExists(c, *req.MenuItemID) {
			return
		}
		item.MenuItemID = *req.MenuItemID
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if err := oc.Repo.Update(item); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteOrderItem -> removes one line
func (oc *OrderItemController) DeleteOrderItem(c *gin.Context) {
	orderID, ok := oc.orderFromPath(c)
	if !ok {
		return
	}
	item, ok := oc.itemFromPath(c, orderID)
	if !ok {
		return
	}

	if err := oc.Repo.Delete(item.ID); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order item %d deleted (order=%d)", item.ID, orderID)
	c.Status(http.StatusNoContent)
}

// orderFromPath resolves and verifies the parent order, responding 404
// when it does not exist.
func (oc *OrderItemController) orderFromPath(c *gin.Context) (uint, bool) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return 0, false
	}

	exists, err := oc.Orders.Exists(orderID)
	if err != nil {
		respondRepoError(c, err)
		return 0, false
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, errors.New("order with the given ID does not exist"))
		return 0, false
	}
	return orderID, true
}

// itemFromPath loads the addressed item and rejects items that belong to
// a different order than the one in the path.
func (oc *OrderItemController) itemFromPath(c *gin.Context, orderID uint) (*models.OrderItem, bool) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return nil, false
	}

	item, err := oc.Repo.GetByID(itemID)
	if err != nil {
		respondRepoError(c, err)
		return nil, false
	}
	if item.OrderID != orderID {
		utils.RespondError(c, http.StatusNotFound, errors.New("order item does not belong to the given order"))
		return nil, false
	}
	return item, true
}

func (oc *OrderItemController) menuItemExists(c *gin.Context, menuItemID uint) bool {
	exists, err := oc.MenuItems.Exists(menuItemID)
	if err != nil {
		respondRepoError(c, err)
		return false
	}
	if !exists {
		utils.RespondError(c, http.StatusUnprocessableEntity,
			errors.New("menu item with the given ID does not exist"))
		return false
	}
	return true
}
