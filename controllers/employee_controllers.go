package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-reservation-api/models"
	"restaurant-reservation-api/repositories"
	"restaurant-reservation-api/utils"
)

type EmployeeController struct {
	Repo        *repositories.EmployeeRepository
	Restaurants *repositories.RestaurantRepository
	Orders      *repositories.OrderRepository
}

func NewEmployeeController(
	repo *repositories.EmployeeRepository,
	restaurants *repositories.RestaurantRepository,
	orders *repositories.OrderRepository,
) *EmployeeController {
	return &EmployeeController{Repo: repo, Restaurants: restaurants, Orders: orders}
}

// GetAllEmployees -> one page of employees
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	pageNumber, pageSize, ok := listParams(c)
	if !ok {
		return
	}

	employees, meta, err := ec.Repo.GetAll(nil, pageNumber, pageSize)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.SetPaginationHeader(c, meta)
	utils.RespondJSON(c, http.StatusOK, "List of employees", employees)
}

// GetEmployeeByID -> detail of one employee
func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	employee, err := ec.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Employee detail", employee)
}

// ListManagers -> employees holding the manager position
func (ec *EmployeeController) ListManagers(c *gin.Context) {
	managers, err := ec.Repo.ListManagers()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of managers", managers)
}

// GetEmployeesWithDetails -> employee/restaurant join projection
func (ec *EmployeeController) GetEmployeesWithDetails(c *gin.Context) {
	details, err := ec.Repo.GetEmployeesWithDetails()
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Employees with details", details)
}

// GetAverageOrderAmount -> mean order total served by the employee
func (ec *EmployeeController) GetAverageOrderAmount(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	average, err := ec.Orders.CalculateAverageOrderAmount(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Average order amount", gin.H{"average_order_amount": average})
}

// CreateEmployee -> new employee; the referenced restaurant must exist
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req struct {
		RestaurantID uint                    `json:"restaurant_id" binding:"required"`
		FirstName    string                  `json:"first_name" binding:"required"`
		LastName     string                  `json:"last_name" binding:"required"`
		Position     models.EmployeePosition `json:"position" binding:"required,oneof=manager chef waiter bartender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !ec.restaurantExists(c, req.RestaurantID) {
		return
	}

	employee := models.Employee{
		RestaurantID: &req.RestaurantID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
	}

	created, err := ec.Repo.Create(&employee)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("New employee created (ID=%d, position=%s)", created.ID, created.Position)
	setLocation(c, "/api/employees", created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Employee created", created)
}

// UpdateEmployee -> full overwrite
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantID uint                    `json:"restaurant_id" binding:"required"`
		FirstName    string                  `json:"first_name" binding:"required"`
		LastName     string                  `json:"last_name" binding:"required"`
		Position     models.EmployeePosition `json:"position" binding:"required,oneof=manager chef waiter bartender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employee, err := ec.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if !ec.restaurantExists(c, req.RestaurantID) {
		return
	}

	employee.RestaurantID = &req.RestaurantID
	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Position = req.Position

	if err := ec.Repo.Update(employee); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PatchEmployee -> partial update
func (ec *EmployeeController) PatchEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		RestaurantID *uint                    `json:"restaurant_id"`
		FirstName    *string                  `json:"first_name"`
		LastName     *string                  `json:"last_name"`
		Position     *models.EmployeePosition `json:"position" binding:"omitempty,oneof=manager chef waiter bartender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	employee, err := ec.Repo.GetByID(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	if req.RestaurantID != nil {
		if !ec.restaurantExists(c, *req.RestaurantID) {
			return
		}
		employee.RestaurantID = req.RestaurantID
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}

	if err := ec.Repo.Update(employee); err != nil {
		respondRepoError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteEmployee -> removes the employee, detaching their orders
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ec.Repo.Delete(id); err != nil {
		respondRepoError(c, err)
		return
	}

	utils.InfoLogger.Printf("Employee %d deleted", id)
	c.Status(http.StatusNoContent)
}

// restaurantExists enforces the referenced restaurant, responding 422
// when the foreign key points at nothing.
func (ec *EmployeeController) restaurantExists(c *gin.Context, restaurantID uint) bool {
	exists, err := ec.Restaurants.Exists(restaurantID)
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
