package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/services"
	"kharcha/internal/validator"
)

// --- mock expense service ---

type mockExpenseService struct {
	createFn     func(date string, amount decimal.Decimal, category models.Category, description, receiptPath, tags string) (*models.Expense, bool, error)
	getFn        func(id uint) (*models.Expense, error)
	listFn       func(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	updateFn     func(id uint, date string, amount decimal.Decimal, category models.Category, description string) (*models.Expense, error)
	deleteFn     func(id uint) error
	categorizeFn func(description, strategy string) (models.Category, error)
}

func (m *mockExpenseService) Create(date string, amount decimal.Decimal, category models.Category, description, receiptPath, tags string) (*models.Expense, bool, error) {
	if m.createFn != nil {
		return m.createFn(date, amount, category, description, receiptPath, tags)
	}
	return &models.Expense{}, false, nil
}

func (m *mockExpenseService) Get(id uint) (*models.Expense, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) List(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.listFn != nil {
		return m.listFn(page)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 50, 0)
	return &resp, nil
}

func (m *mockExpenseService) Update(id uint, date string, amount decimal.Decimal, category models.Category, description string) (*models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(id, date, amount, category, description)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockExpenseService) Categorize(description, strategy string) (models.Category, error) {
	if m.categorizeFn != nil {
		return m.categorizeFn(description, strategy)
	}
	return models.CategoryOther, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	r.POST("/expenses", handler.CreateExpense)
	r.GET("/expenses", handler.ListExpenses)
	r.GET("/expenses/:id", handler.GetExpenseByID)
	r.PUT("/expenses/:id", handler.UpdateExpense)
	r.DELETE("/expenses/:id", handler.DeleteExpense)
	r.POST("/categorize", handler.Categorize)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			createFn: func(date string, amount decimal.Decimal, category models.Category, desc, receiptPath, tags string) (*models.Expense, bool, error) {
				return &models.Expense{ID: 1, Date: date, Amount: amount, Category: category, Description: desc}, false, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, http.MethodPost, "/expenses", `{"date":"2024-01-15","amount":100.5,"category":"Food","description":"lunch"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		body := parseJSON(t, rec)
		if body["anomalous"] != false {
			t.Errorf("expected anomalous false, got %v", body["anomalous"])
		}
		expense := body["expense"].(map[string]interface{})
		if expense["category"] != "Food" {
			t.Errorf("expected category Food, got %v", expense["category"])
		}
	})

	t.Run("reports anomaly flag", func(t *testing.T) {
		svc := &mockExpenseService{
			createFn: func(date string, amount decimal.Decimal, category models.Category, desc, receiptPath, tags string) (*models.Expense, bool, error) {
				return &models.Expense{ID: 2, Amount: amount, Category: category}, true, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, http.MethodPost, "/expenses", `{"date":"2024-01-15","amount":99999,"category":"Food"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if parseJSON(t, rec)["anomalous"] != true {
			t.Error("expected anomalous true")
		}
	})

	t.Run("returns 400 on missing date", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, http.MethodPost, "/expenses", `{"amount":100}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid category", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, http.MethodPost, "/expenses", `{"date":"2024-01-15","amount":100,"category":"Groceries"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetExpenseByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			getFn: func(id uint) (*models.Expense, error) {
				return &models.Expense{ID: id, Category: models.CategoryFood}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, http.MethodGet, "/expenses/7", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockExpenseService{
			getFn: func(id uint) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, http.MethodGet, "/expenses/999", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, http.MethodGet, "/expenses/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, http.MethodDelete, "/expenses/1", "")
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockExpenseService{
			deleteFn: func(id uint) error { return apperrors.ErrExpenseNotFound },
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, http.MethodDelete, "/expenses/999", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_Categorize(t *testing.T) {
	t.Run("returns category", func(t *testing.T) {
		svc := &mockExpenseService{
			categorizeFn: func(description, strategy string) (models.Category, error) {
				return models.CategoryFood, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, http.MethodPost, "/categorize", `{"description":"dinner"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["category"] != "Food" {
			t.Errorf("expected Food, got %s", rec.Body.String())
		}
	})

	t.Run("returns 400 on invalid strategy", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, http.MethodPost, "/categorize", `{"description":"dinner","strategy":"neural"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}
