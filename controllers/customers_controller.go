package controllers

import (
	"github.com/demarillacizere/payment-api/models"
	"github.com/demarillacizere/payment-api/repository"
	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
)

// CustomerRequest represents the customer creation/update request
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// CustomersController serves the /v1/customers routes
type CustomersController struct {
	CrudController
}

// NewCustomersController creates a customers controller backed by the given repository
func NewCustomersController(repo repository.Repository) *CustomersController {
	return &CustomersController{CrudController{Repo: repo, Kind: RouteCustomers}}
}

// Create handles POST /v1/customers
func (ctl *CustomersController) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogInfo("Missing required fields upon customer create: %v", err)
		utils.Problem(c, "/errors/missing_fields", "Missing required fields", 400,
			`The "name" and "address" fields are required.`, "/v1/customers")
		return
	}

	customer := &models.Customer{
		Name:     utils.SanitizeString(req.Name),
		Address:  utils.SanitizeString(req.Address),
		IsActive: true,
	}

	ctl.storeModel(c, customer)
}

// Update handles PUT /v1/customers/:id
func (ctl *CustomersController) Update(c *gin.Context) {
	id, ok := ctl.parseID(c)
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogInfo("Missing required fields upon customer update: %v", err)
		utils.Problem(c, "/errors/missing_fields", "Missing required fields", 400,
			`The "name" and "address" fields are required.`, "/v1/customers/{id}")
		return
	}

	record, ok := ctl.fetchForUpdate(c, id)
	if !ok {
		return
	}

	customer := record.(*models.Customer)
	customer.Name = utils.SanitizeString(req.Name)
	customer.Address = utils.SanitizeString(req.Address)

	ctl.updateModel(c, customer)
}
