package repository

import (
	"errors"
	"fmt"

	"github.com/demarillacizere/payment-api/models"
	"github.com/demarillacizere/payment-api/utils"
	"gorm.io/gorm"
)

// CustomersRepository persists customers through GORM
type CustomersRepository struct {
	db *gorm.DB
}

// NewCustomersRepository creates a customers repository backed by the given database handle
func NewCustomersRepository(db *gorm.DB) *CustomersRepository {
	return &CustomersRepository{db: db}
}

// FindAll returns every stored customer
func (r *CustomersRepository) FindAll() ([]Model, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	records := make([]Model, 0, len(customers))
	for i := range customers {
		records = append(records, &customers[i])
	}
	return records, nil
}

// FindByID returns the customer with the given id
func (r *CustomersRepository) FindByID(id uint) (Model, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("customer %d not found", id), err)
		}
		return nil, err
	}
	return &customer, nil
}

// Store persists a new customer and assigns its id
func (r *CustomersRepository) Store(model Model) error {
	return r.db.Create(model).Error
}

// Update persists mutations to an existing customer
func (r *CustomersRepository) Update(model Model) error {
	return r.db.Save(model).Error
}

// Remove deletes a customer
func (r *CustomersRepository) Remove(model Model) error {
	return r.db.Delete(model).Error
}
