package controllers

import (
	"time"

	"github.com/demarillacizere/payment-api/models"
	"github.com/demarillacizere/payment-api/repository"
	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
)

// PaymentRequest represents the payment creation/update request
type PaymentRequest struct {
	CustomerID  uint    `json:"customer_id" binding:"required"`
	MethodID    uint    `json:"method_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"`
}

// PaymentsController serves the /v1/payments routes. A payment must
// reference an existing customer and method, so it resolves both before
// any record is written. Payments carry no active flag and expose no
// deactivate/reactivate routes.
type PaymentsController struct {
	CrudController
	customers repository.Repository
	methods   repository.Repository
}

// NewPaymentsController creates a payments controller with the
// repositories needed to resolve payment relations
func NewPaymentsController(payments, customers, methods repository.Repository) *PaymentsController {
	return &PaymentsController{
		CrudController: CrudController{Repo: payments, Kind: RoutePayments},
		customers:      customers,
		methods:        methods,
	}
}

// Create handles POST /v1/payments
func (ctl *PaymentsController) Create(c *gin.Context) {
	req, ok := ctl.bindRequest(c, "/v1/payments")
	if !ok {
		return
	}

	paymentDate, ok := ctl.parseDate(c, req.PaymentDate, "/v1/payments")
	if !ok {
		return
	}

	customer, method, ok := ctl.resolveRelations(c, req, "/v1/payments")
	if !ok {
		return
	}

	payment := &models.Payment{
		CustomerID:  customer.PrimaryID(),
		MethodID:    method.PrimaryID(),
		Amount:      req.Amount,
		PaymentDate: paymentDate,
	}

	ctl.storeModel(c, payment)
}

// Update handles PUT /v1/payments/:id
func (ctl *PaymentsController) Update(c *gin.Context) {
	id, ok := ctl.parseID(c)
	if !ok {
		return
	}

	req, ok := ctl.bindRequest(c, "/v1/payments/{id}")
	if !ok {
		return
	}

	paymentDate, ok := ctl.parseDate(c, req.PaymentDate, "/v1/payments/{id}")
	if !ok {
		return
	}

	customer, method, ok := ctl.resolveRelations(c, req, "/v1/payments/{id}")
	if !ok {
		return
	}

	record, ok := ctl.fetchForUpdate(c, id)
	if !ok {
		return
	}

	payment := record.(*models.Payment)
	payment.CustomerID = customer.PrimaryID()
	payment.MethodID = method.PrimaryID()
	payment.Amount = req.Amount
	payment.PaymentDate = paymentDate

	ctl.updateModel(c, payment)
}

func (ctl *PaymentsController) bindRequest(c *gin.Context, instance string) (PaymentRequest, bool) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogInfo("Missing required fields upon payment request: %v", err)
		utils.Problem(c, "/errors/missing_fields", "Missing required fields", 400,
			`The "customer_id", "method_id", "amount" and "payment_date" fields are required.`,
			instance)
		return PaymentRequest{}, false
	}
	return req, true
}

func (ctl *PaymentsController) parseDate(c *gin.Context, raw, instance string) (time.Time, bool) {
	paymentDate, err := time.Parse(models.PaymentDateFormat, raw)
	if err != nil {
		utils.LogInfo("Invalid payment date %q: %v", raw, err)
		utils.Problem(c, "/errors/invalid_payment_date", "Invalid payment date", 400,
			`The "payment_date" field must match the format "`+models.PaymentDateFormat+`".`,
			instance)
		return time.Time{}, false
	}
	return paymentDate, true
}

// resolveRelations looks up the referenced customer and method. Either
// lookup failing ends the request before any mutation is attempted.
func (ctl *PaymentsController) resolveRelations(c *gin.Context, req PaymentRequest, instance string) (repository.Model, repository.Model, bool) {
	customer, err := ctl.customers.FindByID(req.CustomerID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("Invalid customer id %d on payment request", req.CustomerID)
			utils.Problem(c, "/errors/invalid_customer_id", "Invalid customer ID", 404,
				req.CustomerID, instance)
			return nil, nil, false
		}
		utils.LogCritical("Failed to resolve customer %d: %v", req.CustomerID, err)
		utils.Problem(c, "/errors/internal_server_error_upon_create_payments",
			"Internal server error", 500, "", instance)
		return nil, nil, false
	}

	method, err := ctl.methods.FindByID(req.MethodID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("Invalid method id %d on payment request", req.MethodID)
			utils.Problem(c, "/errors/invalid_method_id", "Invalid payment method ID", 404,
				req.MethodID, instance)
			return nil, nil, false
		}
		utils.LogCritical("Failed to resolve method %d: %v", req.MethodID, err)
		utils.Problem(c, "/errors/internal_server_error_upon_create_payments",
			"Internal server error", 500, "", instance)
		return nil, nil, false
	}

	return customer, method, true
}
