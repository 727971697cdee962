package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
	"restaurant-reservation-api/utils"
)

type OrderController struct {
	Repo         *repositories.OrderRepository
	Reservations *repositories.ReservationRepository
	Employees    *repositories.EmployeeRepository
}

func NewOrderController(
	repo *repositories.OrderRepository,
	reservations *repositories.ReservationRepository,
	employees *repositories.EmployeeRepository,
) *OrderController {
	return &OrderController{Repo: repo, Reservations: reservations, Employees: employees}
}

// GetAllOrders -> one page of orders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	orders, meta, err := oc.Repo.GetAll(nil, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := oc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetOrdersByReservation -> paginated orders of one reservation. Orders
// detached by a reservation delete are not listed here; they keep
// existing with a NULL reservation reference.
func (oc *OrderController) GetOrdersByReservation(c *gin.Context) {
	reservationID, ok := paramID(c, "reservationId")
	if !ok {
		return
	}

	exists, err := oc.Reservations.Exists(reservationID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation with the given ID does not exist"))
		return
	}

	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	filter := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("reservation_id = ?", reservationID)
	}
	orders, meta, err := oc.Repo.GetAll(filter, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "Orders of reservation", orders)
}

// CreateOrder -> new order; the reservation and the employee must exist
// and belong to the same restaurant
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		ReservationID uint      `json:"reservation_id" binding:"required"`
		EmployeeID    uint      `json:"employee_id" binding:"required"`
		OrderDate     time.Time `json:"order_date" binding:"required"`
		TotalAmount   float64   `json:"total_amount" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !oc.checkReferences(c, &req.ReservationID, &req.EmployeeID) {
		return
	}

	order := models.Order{
		ReservationID: &req.ReservationID,
		EmployeeID:    &req.EmployeeID,
		OrderDate:     req.OrderDate,
		TotalAmount:   req.TotalAmount,
	}

	created, err := oc.Repo.Create(&order)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New order created (ID=%d, total=%.2f)", created.ID, created.TotalAmount)
	setLocation(c, "/api/orders", created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Order created", created)
}

// UpdateOrder -> full overwrite
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ReservationID uint      `json:"reservation_id" binding:"required"`
		EmployeeID    uint      `json:"employee_id" binding:"required"`
		OrderDate     time.Time `json:"order_date" binding:"required"`
		TotalAmount   float64   `json:"total_amount" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if !oc.checkReferences(c, &req.ReservationID, &req.EmployeeID) {
		return
	}

	order.ReservationID = &req.ReservationID
	order.EmployeeID = &req.EmployeeID
	order.OrderDate = req.OrderDate
	order.TotalAmount = req.TotalAmount

	if err := oc.Repo.Update(order); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchOrder -> partial update; when either reference changes, the
// resulting references are re-validated, the same-restaurant rule
// included when both are set
func (oc *OrderController) PatchOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ReservationID *uint      `json:"reservation_id"`
		EmployeeID    *uint      `json:"employee_id"`
		OrderDate     *time.Time `json:"order_date"`
		TotalAmount   *float64   `json:"total_amount" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.ReservationID != nil || req.EmployeeID != nil {
		reservationID := order.ReservationID
		if req.ReservationID != nil {
			reservationID = req.ReservationID
		}
		employeeID := order.EmployeeID
		if req.EmployeeID != nil {
			employeeID = req.EmployeeID
		}
		if !oc.checkReferences(c, reservationID, employeeID) {
			return
		}
	}

	if req.ReservationID != nil {
		order.ReservationID = req.ReservationID
	}
	if req.EmployeeID != nil {
		order.EmployeeID = req.EmployeeID
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}

	if err := oc.Repo.Update(order); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteOrder -> plain removal
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := oc.Repo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d deleted", id)
	c.Status(http.StatusNoContent)
}

// checkReferences enforces the order's referential rules: every
// reference that is set must point at an existing row, and when both
// are set the employee must work at the restaurant the reservation was
// made for. Violations come back as one 422 listing every problem.
func (oc *OrderController) checkReferences(c *gin.Context, reservationID, employeeID *uint) bool {
	var integrityErrors []string

	var reservation *models.Reservation
	if reservationID != nil {
		found, err := oc.Reservations.GetByID(*reservationID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				integrityErrors = append(integrityErrors, "reservation with the given ID does not exist")
			} else {
				respondRepoError(c, err)
				return false
			}
		}
		reservation = found
	}

	var employee *models.Employee
	if employeeID != nil {
		found, err := oc.Employees.GetByID(*employeeID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				integrityErrors = append(integrityErrors, "employee with the given ID does not exist")
			} else {
				respondRepoError(c, err)
				return false
			}
		}
		employee = found
	}

	if reservation != nil && employee != nil &&
		reservation.RestaurantID != nil && employee.RestaurantID != nil &&
		*reservation.RestaurantID != *employee.RestaurantID {
		integrityErrors = append(integrityErrors,
			"employee with the given ID is not in the same restaurant as the reservation with the given ID")
	}

	if len(integrityErrors) > 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New(strings.Join(integrityErrors, "; ")))
		return false
	}
	return true
}
