package repository

import (
	"errors"
	"fmt"

	"github.com/demarillacizere/payment-api/models"
	"github.com/demarillacizere/payment-api/utils"
	"gorm.io/gorm"
)

// MethodsRepository persists payment methods through GORM
type MethodsRepository struct {
	db *gorm.DB
}

// NewMethodsRepository creates a methods repository backed by the given database handle
func NewMethodsRepository(db *gorm.DB) *MethodsRepository {
	return &MethodsRepository{db: db}
}

// FindAll returns every stored method
func (r *MethodsRepository) FindAll() ([]Model, error) {
	var methods []models.Method
	if err := r.db.Find(&methods).Error; err != nil {
		return nil, err
	}
	records := make([]Model, 0, len(methods))
	for i := range methods {
		records = append(records, &methods[i])
	}
	return records, nil
}

// FindByID returns the method with the given id
func (r *MethodsRepository) FindByID(id uint) (Model, error) {
	var method models.Method
	if err := r.db.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("method %d not found", id), err)
		}
		return nil, err
	}
	return &method, nil
}

// Store persists a new method and assigns its id
func (r *MethodsRepository) Store(model Model) error {
	return r.db.Create(model).Error
}

// Update persists mutations to an existing method
func (r *MethodsRepository) Update(model Model) error {
	return r.db.Save(model).Error
}

// Remove deletes a method
func (r *MethodsRepository) Remove(model Model) error {
	return r.db.Delete(model).Error
}
