package response

import "budget_tracker/internal/usecase"

type StatisticsResponse struct {
	Month         string  `json:"month"`
	MonthlyTotal  float64 `json:"monthly_total"`
	ApprovedTotal float64 `json:"approved_total"`
}

func FromStatistics(s usecase.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Month:         s.Month.Format("2006-01"),
		MonthlyTotal:  s.MonthlyTotal,
		ApprovedTotal: s.ApprovedTotal,
	}
}
