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

type ReservationController struct {
	Repo        *repositories.ReservationRepository
	Customers   *repositories.CustomerRepository
	Restaurants *repositories.RestaurantRepository
	Tables      *repositories.TableRepository
	Orders      *repositories.OrderRepository
	MenuItems   *repositories.MenuItemRepository
}

func NewReservationController(
	repo *repositories.ReservationRepository,
	customers *repositories.CustomerRepository,
	restaurants *repositories.RestaurantRepository,
	tables *repositories.TableRepository,
	orders *repositories.OrderRepository,
	menuItems *repositories.MenuItemRepository,
) *ReservationController {
	return &ReservationController{
		Repo:        repo,
		Customers:   customers,
		Restaurants: restaurants,
		Tables:      tables,
		Orders:      orders,
		MenuItems:   menuItems,
	}
}

// GetAllReservations -> one page of reservations
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	reservations, meta, err := rc.Repo.GetAll(nil, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> detail of one reservation
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	reservation, err := rc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// GetReservationsByCustomer -> paginated reservations of one customer
func (rc *ReservationController) GetReservationsByCustomer(c *gin.Context) {
	customerID, ok := paramID(c, "customerId")
	if !ok {
		return
	}

	exists, err := rc.Customers.Exists(customerID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if !exists {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer with the given ID does not exist"))
		return
	}

	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	filter := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("customer_id = ?", customerID)
	}
	reservations, meta, err := rc.Repo.GetAll(filter, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "Reservations of customer", reservations)
}

// GetReservationsWithDetails -> reservation/customer/restaurant projection
func (rc *ReservationController) GetReservationsWithDetails(c *gin.Context) {
	details, err := rc.Repo.GetReservationsWithDetails()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservations with details", details)
}

// GetReservationOrders -> the reservation's orders with their menu items
func (rc *ReservationController) GetReservationOrders(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	orders, err := rc.Orders.ListOrdersAndMenuItems(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Orders of reservation", orders)
}

// GetReservationMenuItems -> distinct menu items ordered on the reservation
func (rc *ReservationController) GetReservationMenuItems(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	items, err := rc.MenuItems.ListOrderedMenuItems(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu items of reservation", items)
}

// CreateReservation -> new reservation; customer, restaurant and table
// must all exist
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerID      uint      `json:"customer_id" binding:"required"`
		RestaurantID    uint      `json:"restaurant_id" binding:"required"`
		TableID         uint      `json:"table_id" binding:"required"`
		ReservationDate time.Time `json:"reservation_date" binding:"required"`
		PartySize       int       `json:"party_size" binding:"required,gte=1,lte=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !rc.checkReferences(c, req.CustomerID, req.RestaurantID, req.TableID) {
		return
	}

	reservation := models.Reservation{
		CustomerID:      &req.CustomerID,
		RestaurantID:    &req.RestaurantID,
		TableID:         &req.TableID,
		ReservationDate: req.ReservationDate,
		PartySize:       req.PartySize,
	}

	created, err := rc.Repo.Create(&reservation)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New reservation created (ID=%d, party=%d)", created.ID, created.PartySize)
	setLocation(c, "/api/reservations", created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", created)
}

// UpdateReservation -> full overwrite
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		CustomerID      uint      `json:"customer_id" binding:"required"`
		RestaurantID    uint      `json:"restaurant_id" binding:"required"`
		TableID         uint      `json:"table_id" binding:"required"`
		ReservationDate time.Time `json:"reservation_date" binding:"required"`
		PartySize       int       `json:"party_size" binding:"required,gte=1,lte=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if !rc.checkReferences(c, req.CustomerID, req.RestaurantID, req.TableID) {
		return
	}

	reservation.CustomerID = &req.CustomerID
	reservation.RestaurantID = &req.RestaurantID
	reservation.TableID = &req.TableID
	reservation.ReservationDate = req.ReservationDate
	reservation.PartySize = req.PartySize

	if err := rc.Repo.Update(reservation); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchReservation -> partial update
func (rc *ReservationController) PatchReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		CustomerID      *uint      `json:"customer_id"`
		RestaurantID    *uint      `json:"restaurant_id"`
		TableID         *uint      `json:"table_id"`
		ReservationDate *time.Time `json:"reservation_date"`
		PartySize       *int       `json:"party_size" binding:"omitempty,gte=1,lte=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	var integrityErrors []string
	if req.CustomerID != nil {
		if ok := rc.exists(c, rc.Customers.Exists, *req.CustomerID, "customer", &integrityErrors); !ok {
			return
		}
	}
	if req.RestaurantID != nil {
		if ok := rc.exists(c, rc.Restaurants.Exists, *req.RestaurantID, "restaurant", &integrityErrors); !ok {
			return
		}
	}
	if req.TableID != nil {
		if ok := rc.exists(c, rc.Tables.Exists, *req.TableID, "table", &integrityErrors); !ok {
			return
		}
	}
	if len(integrityErrors) > 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New(strings.Join(integrityErrors, "; ")))
		return
	}

	if req.CustomerID != nil {
		reservation.CustomerID = req.CustomerID
	}
	if req.RestaurantID != nil {
		reservation.RestaurantID = req.RestaurantID
	}
	if req.TableID != nil {
		reservation.TableID = req.TableID
	}
	if req.ReservationDate != nil {
		reservation.ReservationDate = *req.ReservationDate
	}
	if req.PartySize != nil {
		reservation.PartySize = *req.PartySize
	}

	if err := rc.Repo.Update(reservation); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteReservation -> removes the reservation, detaching its orders
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := rc.Repo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", id)
	c.Status(http.StatusNoContent)
}

// checkReferences verifies all three foreign keys and responds 422 with
// every violation at once instead of stopping at the first.
func (rc *ReservationController) checkReferences(c *gin.Context, customerID, restaurantID, tableID uint) bool {
	var integrityErrors []string
	if !rc.exists(c, rc.Customers.Exists, customerID, "customer", &integrityErrors) {
		return false
	}
	if !rc.exists(c, rc.Restaurants.Exists, restaurantID, "restaurant", &integrityErrors) {
		return false
	}
	if !rc.exists(c, rc.Tables.Exists, tableID, "table", &integrityErrors) {
		return false
	}

	if len(integrityErrors) > 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New(strings.Join(integrityErrors, "; ")))
		return false
	}
	return true
}

// exists runs one existence check, collecting a message on absence. It
// returns false only on an infrastructure error, which it reports itself.
func (rc *ReservationController) exists(c *gin.Context, check func(uint) (bool, error), id uint, name string, integrityErrors *[]string) bool {
	found, err := check(id)
	if err != nil {
		respondRepoError(c, err)
		return false
	}
	if !found {
		*integrityErrors = append(*integrityErrors, name+" with the given ID does not exist")
	}
	return true
}
