package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
	"restaurant-reservation-api/utils"
)

type CustomerController struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerController(repo *repositories.CustomerRepository) *CustomerController {
	return &CustomerController{Repo: repo}
}

// GetAllCustomers -> one page of customers plus the X-Pagination header
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	customers, meta, err := cc.Repo.GetAll(nil, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// GetCustomerByID -> detail of one customer
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	customer, err := cc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// CreateCustomer -> new customer record
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		FirstName   string `json:"first_name" binding:"required"`
		LastName    string `json:"last_name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	created, err := cc.Repo.Create(&customer)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", created.ID)
	setLocation(c, "/api/customers", created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Customer created", created)
}

// UpdateCustomer -> full overwrite of one customer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		FirstName   string `json:"first_name" binding:"required"`
		LastName    string `json:"last_name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.PhoneNumber = req.PhoneNumber

	if err := cc.Repo.Update(customer); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchCustomer -> partial update, only the fields present in the body
func (cc *CustomerController) PatchCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		Email       *string `json:"email" binding:"omitempty,email"`
		PhoneNumber *string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}

	if err := cc.Repo.Update(customer); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCustomer -> removes the customer, detaching their reservations
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := cc.Repo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Customer %d deleted", id)
	c.Status(http.StatusNoContent)
}

// FindCustomersWithLargeParties -> distinct customers with a reservation
// whose party size exceeds the threshold
func (cc *CustomerController) FindCustomersWithLargeParties(c *gin.Context) {
	minPartySize, ok := paramID(c, "minPartySize")
	if !ok {
		return
	}

	customers, err := cc.Repo.FindWithPartySizeLargerThan(int(minPartySize))
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customers with large parties", customers)
}
