package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/demarillacizere/payment-api/controllers"
	"github.com/demarillacizere/payment-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexEmptyStoreReturns404(t *testing.T) {
	env := newTestEnv()

	recorder, resp := env.perform(t, http.MethodGet, "/v1/methods", nil, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "/errors/no_methods_found", resp.Type)
	assert.Equal(t, "No records found", resp.Detail)
}

func TestIndexReturnsExactCount(t *testing.T) {
	env := newTestEnv()
	env.methods.seed(1, &models.Method{ID: 1, Name: "card", IsActive: true})
	env.methods.seed(2, &models.Method{ID: 2, Name: "cash", IsActive: true})
	env.methods.seed(3, &models.Method{ID: 3, Name: "transfer", IsActive: false})

	recorder, resp := env.perform(t, http.MethodGet, "/v1/methods", nil, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "", resp.Type)
	assert.Equal(t, "List of methods", resp.Title)
	assert.Equal(t, float64(3), resp.Detail)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "card", resp.Data[0]["name"])
	assert.Equal(t, true, resp.Data[0]["is_active"])
}

func TestRemoveMissingRecordReturns404(t *testing.T) {
	env := newTestEnv()

	recorder, resp := env.perform(t, http.MethodDelete, "/v1/methods/42", nil, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "/errors/no_methods_found_upon_removing", resp.Type)
	assert.Equal(t, float64(42), resp.Detail)
	assert.Zero(t, env.methods.removeCalls)
}

func TestRemoveDeletesRecord(t *testing.T) {
	env := newTestEnv()
	env.methods.seed(7, &models.Method{ID: 7, Name: "card", IsActive: true})

	recorder, resp := env.perform(t, http.MethodDelete, "/v1/methods/7", nil, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "method has been removed", resp.Title)
	assert.Equal(t, 1, env.methods.removeCalls)
	assert.NotContains(t, env.methods.records, uint(7))
}

func TestDeactivateMissingRecordReturns404(t *testing.T) {
	env := newTestEnv()

	recorder, resp := env.perform(t, http.MethodGet, "/v1/methods/deactivate/42", nil, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "/errors/no_methods_found_upon_deactivation", resp.Type)
	assert.Equal(t, float64(42), resp.Detail)
	assert.Zero(t, env.methods.updateCalls)
}

func TestReactivateMissingRecordReturns404(t *testing.T) {
	env := newTestEnv()

	recorder, resp := env.perform(t, http.MethodGet, "/v1/customers/reactivate/9", nil, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "/errors/no_customers_found_upon_reactivation", resp.Type)
	assert.Equal(t, float64(9), resp.Detail)
	assert.Zero(t, env.customers.updateCalls)
}

func TestDeactivateThenReactivateRestoresFlag(t *testing.T) {
	env := newTestEnv()
	method := &models.Method{ID: 1, Name: "card", IsActive: true}
	env.methods.seed(1, method)

	recorder, resp := env.perform(t, http.MethodGet, "/v1/methods/deactivate/1", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "method has been deactivated", resp.Title)
	assert.False(t, method.IsActive)

	recorder, resp = env.perform(t, http.MethodGet, "/v1/methods/reactivate/1", nil, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "method has been reactivated", resp.Title)
	assert.True(t, method.IsActive)
	assert.Equal(t, 2, env.methods.updateCalls)
}

func TestNonNumericIDRejected(t *testing.T) {
	env := newTestEnv()

	recorder, resp := env.perform(t, http.MethodDelete, "/v1/methods/abc", nil, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "/errors/invalid_method_id", resp.Type)
	assert.Zero(t, env.methods.removeCalls)
}

func TestStoreFailureReturns500WithSerializedModel(t *testing.T) {
	env := newTestEnv()
	env.methods.failStore = errors.New("connection refused")

	recorder, resp := env.perform(t, http.MethodPost, "/v1/methods",
		map[string]interface{}{"name": "card"}, nil)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "/errors/internal_server_error_upon_create_methods", resp.Type)
	detail, ok := resp.Detail.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "card", detail["name"])
}

func TestUpdateFailureReturns500(t *testing.T) {
	env := newTestEnv()
	env.methods.seed(1, &models.Method{ID: 1, Name: "card", IsActive: true})
	env.methods.failUpdate = errors.New("connection refused")

	recorder, resp := env.perform(t, http.MethodPut, "/v1/methods/1",
		map[string]interface{}{"name": "cash"}, nil)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "/errors/internal_server_error_upon_update_methods", resp.Type)
}

func TestRouteKindNames(t *testing.T) {
	assert.Equal(t, "methods", controllers.RouteMethods.Plural())
	assert.Equal(t, "method", controllers.RouteMethods.Singular())
	assert.Equal(t, "customers", controllers.RouteCustomers.Plural())
	assert.Equal(t, "customer", controllers.RouteCustomers.Singular())
	assert.Equal(t, "payments", controllers.RoutePayments.Plural())
	assert.Equal(t, "payment", controllers.RoutePayments.Singular())
}
