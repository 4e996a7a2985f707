package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers report routes nested under a company.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Generates the grouped balance sheet as of a date, including the profit-or-loss balancing figure and the grand total in words
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOfStr := c.DefaultQuery("asOf", time.Now().Format("2006-01-02"))
	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("as_of", asOfStr))
	logger.Info("Received request for balance sheet")

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), companyID, asOf, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, asOf))
}

// getProfitAndLoss godoc
// @Summary Generate a profit and loss statement
// @Description Generates the grouped P&L for a period, including the net profit or loss balancing figure
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request for profit and loss",
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")))

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), companyID, from, to, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to generate profit and loss")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, from, to))
}

// getTrialBalance godoc
// @Summary Generate a trial balance
// @Description Generates per-ledger period totals with footer sums
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param fromDate query string true "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request for trial balance",
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")))

	report, err := h.reportingService.TrialBalance(c.Request.Context(), companyID, from, to, userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to generate trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report, from, to))
}

// parsePeriod reads the fromDate/toDate query parameters shared by the
// period reports. It writes the error response itself when parsing fails.
func parsePeriod(c *gin.Context, logger *slog.Logger) (from, to time.Time, ok bool) {
	fromStr := c.Query("fromDate")
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		logger.Warn("Invalid fromDate", slog.String("fromDate", fromStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	toStr := c.DefaultQuery("toDate", time.Now().Format("2006-01-02"))
	to, err = time.Parse("2006-01-02", toStr)
	if err != nil {
		logger.Warn("Invalid toDate", slog.String("toDate", toStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
