package repositories

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-reservation-api/models"
)

type EmployeeRepository struct {
	*Repository[models.Employee]
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{newRepository[models.Employee](db, "Employee")}
}

// Delete nulls the employee reference on the employee's orders before
// removing the employee, in one transaction.
func (r *EmployeeRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.First(&employee, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Employee", id)
			}
			return err
		}

		if err := tx.Model(&models.Order{}).
			Where("employee_id = ?", id).
			Update("employee_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&employee).Error
	})
}

// ListManagers returns every employee holding the manager position.
func (r *EmployeeRepository) ListManagers() ([]models.Employee, error) {
	managers := []models.Employee{}
	err := r.DB.Where("position = ?", models.PositionManager).Find(&managers).Error
	return managers, err
}

// GetEmployeesWithDetails returns the employee/restaurant join projection.
func (r *EmployeeRepository) GetEmployeesWithDetails() ([]models.EmployeeDetails, error) {
	details := []models.EmployeeDetails{}
	err := r.DB.Model(&models.Employee{}).
		Select(`employees.id AS employee_id,
			employees.first_name AS employee_first_name,
			employees.last_name AS employee_last_name,
			employees.position AS employee_position,
			employees.restaurant_id AS restaurant_id,
			restaurants.name AS restaurant_name,
			restaurants.address AS restaurant_address,
			restaurants.phone_number AS restaurant_phone_number,
			restaurants.opening_hours AS restaurant_opening_hours`).
		Joins("LEFT JOIN restaurants ON restaurants.id = employees.restaurant_id").
		Scan(&details).Error
	return details, err
}
