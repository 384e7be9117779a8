package dto

import (
	"github.com/dividazero/dividazero-api/internal/domain/ledger"
	"github.com/dividazero/dividazero-api/pkg/format"
)

// SummaryResponse representa os totais do painel
type SummaryResponse struct {
	TodayTotal                float64            `json:"today_total"`
	TodayTotalFormatted       string             `json:"today_total_formatted"`
	MonthTotal                float64            `json:"month_total"`
	MonthTotalFormatted       string             `json:"month_total_formatted"`
	TotalOutstanding          float64            `json:"total_outstanding"`
	TotalOutstandingFormatted string             `json:"total_outstanding_formatted"`
	TopDebtors                []CustomerResponse `json:"top_debtors"`
}

// ToSummaryResponse converte um ledger.Summary para SummaryResponse
func ToSummaryResponse(s ledger.Summary, topDebtors []CustomerResponse) SummaryResponse {
	return SummaryResponse{
		TodayTotal:                s.TodayTotal,
		TodayTotalFormatted:       format.Currency(s.TodayTotal),
		MonthTotal:                s.MonthTotal,
		MonthTotalFormatted:       format.Currency(s.MonthTotal),
		TotalOutstanding:          s.TotalOutstanding,
		TotalOutstandingFormatted: format.Currency(s.TotalOutstanding),
		TopDebtors:                topDebtors,
	}
}
