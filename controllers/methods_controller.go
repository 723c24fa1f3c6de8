package controllers

import (
	"github.com/demarillacizere/payment-api/models"
	"github.com/demarillacizere/payment-api/repository"
	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
)

// MethodRequest represents the method creation/update request
type MethodRequest struct {
	Name string `json:"name" binding:"required"`
}

// MethodsController serves the /v1/methods routes
type MethodsController struct {
	CrudController
}

// NewMethodsController creates a methods controller backed by the given repository
func NewMethodsController(repo repository.Repository) *MethodsController {
	return &MethodsController{CrudController{Repo: repo, Kind: RouteMethods}}
}

// Create handles POST /v1/methods
func (ctl *MethodsController) Create(c *gin.Context) {
	var req MethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogInfo("Missing required fields upon method create: %v", err)
		utils.Problem(c, "/errors/missing_fields", "Missing required fields", 400,
			`The "name" field is required.`, "/v1/methods")
		return
	}

	method := &models.Method{
		Name:     utils.SanitizeString(req.Name),
		IsActive: true,
	}

	ctl.storeModel(c, method)
}

// Update handles PUT /v1/methods/:id
func (ctl *MethodsController) Update(c *gin.Context) {
	id, ok := ctl.parseID(c)
	if !ok {
		return
	}

	var req MethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogInfo("Missing required fields upon method update: %v", err)
		utils.Problem(c, "/errors/missing_fields", "Missing required fields", 400,
			`The "name" field is required.`, "/v1/methods/{id}")
		return
	}

	record, ok := ctl.fetchForUpdate(c, id)
	if !ok {
		return
	}

	method := record.(*models.Method)
	method.Name = utils.SanitizeString(req.Name)

	ctl.updateModel(c, method)
}
