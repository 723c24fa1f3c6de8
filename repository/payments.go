package repository

import (
	"errors"
	"fmt"

	"github.com/demarillacizere/payment-api/models"
	"github.com/demarillacizere/payment-api/utils"
	"gorm.io/gorm"
)

// PaymentsRepository persists payment transactions through GORM
type PaymentsRepository struct {
	db *gorm.DB
}

// NewPaymentsRepository creates a payments repository backed by the given database handle
func NewPaymentsRepository(db *gorm.DB) *PaymentsRepository {
	return &PaymentsRepository{db: db}
}

// FindAll returns every stored payment
func (r *PaymentsRepository) FindAll() ([]Model, error) {
	var payments []models.Payment
	if err := r.db.Find(&payments).Error; err != nil {
		return nil, err
	}
	records := make([]Model, 0, len(payments))
	for i := range payments {
		records = append(records, &payments[i])
	}
	return records, nil
}

// FindByID returns the payment with the given id
func (r *PaymentsRepository) FindByID(id uint) (Model, error) {
	var payment models.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("payment %d not found", id), err)
		}
		return nil, err
	}
	return &payment, nil
}

// Store persists a new payment and assigns its id
func (r *PaymentsRepository) Store(model Model) error {
	return r.db.Create(model).Error
}

// Update persists mutations to an existing payment
func (r *PaymentsRepository) Update(model Model) error {
	return r.db.Save(model).Error
}

// Remove deletes a payment
func (r *PaymentsRepository) Remove(model Model) error {
	return r.db.Delete(model).Error
}
