package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/demarillacizere/payment-api/controllers"
	"github.com/demarillacizere/payment-api/models"
	"github.com/demarillacizere/payment-api/repository"
	"github.com/demarillacizere/payment-api/routes"
	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRepository is an in-memory Repository used to drive the
// controllers without a database. It counts mutating calls so tests can
// assert that a rejected request never reached the store.
type fakeRepository struct {
	records     map[uint]repository.Model
	nextID      uint
	storeCalls  int
	updateCalls int
	removeCalls int
	failStore   error
	failUpdate  error
	failRemove  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: make(map[uint]repository.Model), nextID: 1}
}

func (f *fakeRepository) FindAll() ([]repository.Model, error) {
	records := make([]repository.Model, 0, len(f.records))
	for id := uint(1); id < f.nextID; id++ {
		if record, ok := f.records[id]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func (f *fakeRepository) FindByID(id uint) (repository.Model, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, utils.NotFoundError(fmt.Sprintf("record %d not found", id), nil)
	}
	return record, nil
}

func (f *fakeRepository) Store(model repository.Model) error {
	f.storeCalls++
	if f.failStore != nil {
		return f.failStore
	}
	id := f.nextID
	f.nextID++
	switch m := model.(type) {
	case *models.Method:
		m.ID = id
	case *models.Customer:
		m.ID = id
	case *models.Payment:
		m.ID = id
	}
	f.records[model.PrimaryID()] = model
	return nil
}

func (f *fakeRepository) Update(model repository.Model) error {
	f.updateCalls++
	if f.failUpdate != nil {
		return f.failUpdate
	}
	f.records[model.PrimaryID()] = model
	return nil
}

func (f *fakeRepository) Remove(model repository.Model) error {
	f.removeCalls++
	if f.failRemove != nil {
		return f.failRemove
	}
	delete(f.records, model.PrimaryID())
	return nil
}

// seed stores a record under a fixed id without touching the call counters
func (f *fakeRepository) seed(id uint, model repository.Model) {
	f.records[id] = model
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

// testEnv bundles the router and the fakes behind it
type testEnv struct {
	router    *gin.Engine
	methods   *fakeRepository
	customers *fakeRepository
	payments  *fakeRepository
}

func newTestEnv() *testEnv {
	methods := newFakeRepository()
	customers := newFakeRepository()
	payments := newFakeRepository()

	router := routes.SetupRouter(
		controllers.NewMethodsController(methods),
		controllers.NewCustomersController(customers),
		controllers.NewPaymentsController(payments, customers, methods),
		controllers.NewTokenController(testJWTSecret),
		testJWTSecret,
	)

	return &testEnv{router: router, methods: methods, customers: customers, payments: payments}
}

// envelope mirrors utils.Envelope for decoding responses
type envelope struct {
	Type     string                   `json:"type"`
	Title    string                   `json:"title"`
	Status   int                      `json:"status"`
	Detail   interface{}              `json:"detail"`
	Instance string                   `json:"instance"`
	Data     []map[string]interface{} `json:"data"`
}

// perform runs a request against the router and decodes the envelope
func (env *testEnv) perform(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)

	var resp envelope
	if recorder.Body.Len() > 0 {
		_ = json.Unmarshal(recorder.Body.Bytes(), &resp)
	}
	return recorder, resp
}

// bearerToken signs a token the payments group accepts
func bearerToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func authHeaders(t *testing.T) map[string]string {
	return map[string]string{"Authorization": bearerToken(t, testJWTSecret)}
}
