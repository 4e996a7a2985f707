package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledger masters.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers ledger routes nested under a company.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/ledgers")
	{
		ledgers.POST("", h.createLedger)
		ledgers.GET("", h.listLedgers)
		ledgers.GET("/:ledger_id", h.getLedger)
		ledgers.PUT("/:ledger_id", h.updateLedger)
		ledgers.DELETE("/:ledger_id", h.deactivateLedger)
		ledgers.GET("/:ledger_id/statement", h.getLedgerStatement)
	}
}

// createLedger godoc
// @Summary Create a new ledger
// @Description Creates a ledger under the company's chart of accounts
// @Tags ledgers
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param ledger body dto.CreateLedgerRequest true "Ledger details"
// @Success 201 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create ledger"
// @Security BearerAuth
// @Router /companies/{company_id}/ledgers [post]
func (h *ledgerHandler) createLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), companyID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create ledger")
		return
	}

	logger.Info("Ledger created successfully", slog.String("ledger_id", ledger.LedgerID))
	c.JSON(http.StatusCreated, dto.ToLedgerResponse(*ledger))
}

// listLedgers godoc
// @Summary List a company's ledgers
// @Description Lists ledgers, optionally filtered by comma-separated ledger types
// @Tags ledgers
// @Produce json
// @Param company_id path string true "Company ID"
// @Param types query string false "Comma-separated ledger types"
// @Success 200 {object} dto.ListLedgersResponse
// @Failure 400 {object} map[string]string "Invalid type filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list ledgers"
// @Security BearerAuth
// @Router /companies/{company_id}/ledgers [get]
func (h *ledgerHandler) listLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var typeFilter []domain.LedgerType
	if typesParam := c.Query("types"); typesParam != "" {
		for _, t := range strings.Split(typesParam, ",") {
			typeFilter = append(typeFilter, domain.LedgerType(strings.TrimSpace(t)))
		}
	}

	ledgers, err := h.ledgerService.ListLedgers(c.Request.Context(), companyID, typeFilter, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list ledgers")
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgersResponse{Ledgers: dto.ToLedgerResponseSlice(ledgers)})
}

// getLedger godoc
// @Summary Get a ledger by ID
// @Tags ledgers
// @Produce json
// @Param company_id path string true "Company ID"
// @Param ledger_id path string true "Ledger ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /companies/{company_id}/ledgers/{ledger_id} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	ledgerID := c.Param("ledger_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ledger, err := h.ledgerService.GetLedgerByID(c.Request.Context(), companyID, ledgerID, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(*ledger))
}

// updateLedger godoc
// @Summary Update a ledger
// @Description Updates a ledger's name or opening balance; the type is immutable
// @Tags ledgers
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param ledger_id path string true "Ledger ID"
// @Param ledger body dto.UpdateLedgerRequest true "Fields to update"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /companies/{company_id}/ledgers/{ledger_id} [put]
func (h *ledgerHandler) updateLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	ledgerID := c.Param("ledger_id")

	var req dto.UpdateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ledger, err := h.ledgerService.UpdateLedger(c.Request.Context(), companyID, ledgerID, req, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(*ledger))
}

// deactivateLedger godoc
// @Summary Deactivate a ledger
// @Description Soft-deletes a ledger; historic entries keep referencing it
// @Tags ledgers
// @Param company_id path string true "Company ID"
// @Param ledger_id path string true "Ledger ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /companies/{company_id}/ledgers/{ledger_id} [delete]
func (h *ledgerHandler) deactivateLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	ledgerID := c.Param("ledger_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.ledgerService.DeactivateLedger(c.Request.Context(), companyID, ledgerID, userID); err != nil {
		handleServiceError(c, logger, err, "Failed to deactivate ledger")
		return
	}

	c.Status(http.StatusNoContent)
}

// getLedgerStatement godoc
// @Summary Get a ledger statement
// @Description Returns a ledger's entries over a period with running balances
// @Tags ledgers
// @Produce json
// @Param company_id path string true "Company ID"
// @Param ledger_id path string true "Ledger ID"
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.LedgerStatement
// @Failure 400 {object} map[string]string "Invalid dates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Ledger not found"
// @Security BearerAuth
// @Router /companies/{company_id}/ledgers/{ledger_id}/statement [get]
func (h *ledgerHandler) getLedgerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	ledgerID := c.Param("ledger_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fromStr := c.Query("fromDate")
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		logger.Warn("Invalid fromDate", slog.String("fromDate", fromStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
		return
	}
	toStr := c.DefaultQuery("toDate", time.Now().Format("2006-01-02"))
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		logger.Warn("Invalid toDate", slog.String("toDate", toStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
		return
	}

	statement, err := h.ledgerService.GetLedgerStatement(c.Request.Context(), companyID, ledgerID, from, to, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to generate ledger statement")
		return
	}

	c.JSON(http.StatusOK, statement)
}

// handleServiceError translates service-layer errors to HTTP responses.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidInput):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
