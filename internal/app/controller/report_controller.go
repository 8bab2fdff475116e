package controller

import (
	"fmt"
	"net/http"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// DownloadMonthlyReport streams the monthly revenue report as an xlsx file
// GET /api/v1/reports/monthly?month=YYYY-MM
func (ctrl *ReportController) DownloadMonthlyReport(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	month := monthKeyFromQuery(c)

	buf, filename, err := ctrl.reportService.MonthlyRevenueReport(month)
	if err != nil {
		log.Error("Failed to generate monthly report", err, map[string]interface{}{
			"month": month,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "generate monthly report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
