package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/services"
)

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
// A blank category is inferred from the description.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"omitempty,expense_category"`
	Description string          `json:"description"`
	ReceiptPath string          `json:"receipt_path"`
	Tags        string          `json:"tags"`
}

// UpdateExpenseRequest represents the request payload for updating an expense
type UpdateExpenseRequest struct {
	Date        string          `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"omitempty,expense_category"`
	Description string          `json:"description"`
}

// CategorizeRequest represents the request payload for ad-hoc categorization
type CategorizeRequest struct {
	Description string `json:"description"`
	Strategy    string `json:"strategy" binding:"omitempty,categorize_strategy"`
}

// CreateExpense handles recording a new expense. The anomaly flag in the
// response is advisory; the insert always proceeds.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, anomalous, err := h.expenseService.Create(
		req.Date,
		req.Amount,
		models.Category(req.Category),
		req.Description,
		req.ReceiptPath,
		req.Tags,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense, "anomalous": anomalous})
}

// ListExpenses handles the paginated retrieval of expenses
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.expenseService.List(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpenseByID handles the retrieval of a specific expense
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.Get(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an expense
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Update(
		id,
		req.Date,
		req.Amount,
		models.Category(req.Category),
		req.Description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.Delete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// Categorize handles ad-hoc categorization of a description
func (h *ExpenseHandler) Categorize(c *gin.Context) {
	var req CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.expenseService.Categorize(req.Description, req.Strategy)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
