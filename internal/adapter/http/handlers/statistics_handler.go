package handlers

import (
	"net/http"
	"time"

	"budget_tracker/internal/adapter/http/dto/response"
	"budget_tracker/internal/adapter/http/middleware"
	"budget_tracker/internal/usecase"
	"budget_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMonth = pkg.NewDomainErrorSimple("INVALID_MONTH", "月份格式错误，请使用YYYY-MM格式", http.StatusBadRequest)

type StatisticsHandler struct {
	usecase usecase.IStatisticsUseCase
	now     func() time.Time
}

func NewStatisticsHandler(uc usecase.IStatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{usecase: uc, now: time.Now}
}

// GetStatistics godoc
// @Summary      Budget totals
// @Description  Total of budgets created in the month (current UTC month unless ?month=YYYY-MM) and total of approved budgets.
// @Tags         statistics
// @Produce      json
// @Param        month  query     string  false  "Reference month, YYYY-MM"
// @Success      200    {object}  response.StatisticsResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      401    {object}  pkg.HTTPError
// @Router       /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	reference := h.now().UTC()
	if raw := c.Query("month"); raw != "" {
		month, err := time.Parse("2006-01", raw)
		if err != nil {
			writeError(c, errInvalidMonth)
			return
		}
		reference = month
	}

	stats, err := h.usecase.Summary(c.Request.Context(), middleware.IdentityFrom(c), reference)
	if err != nil {
		appErr := mapAccessError(err)
		if appErr == nil {
			appErr = internalError(err)
		}
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromStatistics(stats))
}
