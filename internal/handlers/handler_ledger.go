package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/middleware"
	"github.com/SscSPs/expense_tracker_app/internal/platform/excel"
	"github.com/gin-gonic/gin"
)

// LedgerHandler serves one side of the ledger. The income and expense route
// groups are two instances of it, differing only in entry type, the request
// shape they bind and the noun used in messages.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	entryType     domain.EntryType
	noun          string
}

// registerIncomeRoutes sets up the income routes behind the access guard.
func registerIncomeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &LedgerHandler{ledgerService: services.Ledger, entryType: domain.Income, noun: "Income"}

	income := rg.Group("/income")
	{
		income.POST("/add", h.AddIncome)
		income.GET("", h.List)
		income.GET("/download", h.DownloadExcel)
		income.DELETE("/:id", h.Delete)
	}
}

// registerExpenseRoutes sets up the expense routes behind the access guard.
func registerExpenseRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &LedgerHandler{ledgerService: services.Ledger, entryType: domain.Expense, noun: "Expense"}

	expense := rg.Group("/expense")
	{
		expense.POST("/add", h.AddExpense)
		expense.GET("", h.List)
		expense.GET("/download", h.DownloadExcel)
		expense.DELETE("/:id", h.Delete)
	}
}

// AddIncome godoc
// @Summary Record an income entry
// @Description Validates and persists an income entry for the authenticated user.
// @Tags income
// @Accept json
// @Produce json
// @Param income body dto.AddIncomeRequest true "Income details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/add [post]
func (h *LedgerHandler) AddIncome(c *gin.Context) {
	var req dto.AddIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing Required Fields"})
		return
	}
	h.addEntry(c, dto.AddEntryRequest{
		Icon:   req.Icon,
		Label:  req.Source,
		Amount: req.Amount,
		Date:   req.Date,
	})
}

// AddExpense godoc
// @Summary Record an expense entry
// @Description Validates and persists an expense entry for the authenticated user.
// @Tags expense
// @Accept json
// @Produce json
// @Param expense body dto.AddExpenseRequest true "Expense details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense/add [post]
func (h *LedgerHandler) AddExpense(c *gin.Context) {
	var req dto.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing Required Fields"})
		return
	}
	h.addEntry(c, dto.AddEntryRequest{
		Icon:   req.Icon,
		Label:  req.Category,
		Amount: req.Amount,
		Date:   req.Date,
	})
}

func (h *LedgerHandler) addEntry(c *gin.Context, req dto.AddEntryRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.AddEntry(c.Request.Context(), userID, h.entryType, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing Required Fields"})
			return
		}
		logger.Error("Failed to add ledger entry", slog.String("error", err.Error()), slog.String("entry_type", string(h.entryType)))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add " + h.noun})
		return
	}

	logger.Info("Ledger entry added", slog.String("entry_id", entry.EntryID), slog.String("entry_type", string(h.entryType)))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(*entry))
}

// List godoc
// @Summary List the user's entries of this type
// @Description Returns all income or expense entries for the authenticated user, newest date first.
// @Tags income
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income [get]
func (h *LedgerHandler) List(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), userID, h.entryType)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()), slog.String("entry_type", string(h.entryType)))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch " + h.noun + " entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponseSlice(entries))
}

// DownloadExcel godoc
// @Summary Download the user's entries as a spreadsheet
// @Description Streams an xlsx workbook with one row per entry.
// @Tags income
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/download [get]
func (h *LedgerHandler) DownloadExcel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), userID, h.entryType)
	if err != nil {
		logger.Error("Failed to list ledger entries for export", slog.String("error", err.Error()), slog.String("entry_type", string(h.entryType)))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch " + h.noun + " entries"})
		return
	}

	buf, err := excel.EntriesWorkbook(h.entryType, entries)
	if err != nil {
		logger.Error("Failed to build workbook", slog.String("error", err.Error()), slog.String("entry_type", string(h.entryType)))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate spreadsheet"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+excel.Filename(h.entryType)+`"`)
	c.Data(http.StatusOK, excel.ContentType, buf.Bytes())
}

// Delete godoc
// @Summary Delete an entry
// @Description Removes one entry owned by the authenticated user.
// @Tags income
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.DeleteEntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /income/{id} [delete]
func (h *LedgerHandler) Delete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entryID := c.Param("id")
	if err := h.ledgerService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: h.noun + " Not Found"})
			return
		}
		logger.Error("Failed to delete ledger entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete " + h.noun})
		return
	}

	logger.Info("Ledger entry deleted", slog.String("entry_id", entryID), slog.String("entry_type", string(h.entryType)))
	c.JSON(http.StatusOK, dto.DeleteEntryResponse{Message: h.noun + " Deleted Successfully"})
}
