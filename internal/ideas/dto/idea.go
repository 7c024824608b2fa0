package dto

import (
	"golang-stock-ideas/internal/entity"
)

// CreateIdeaRequest is the DTO for creating a draft stock idea.
type CreateIdeaRequest struct {
	UserID            string               `json:"userId"`
	StockSymbol       string               `json:"stockSymbol"`
	StockName         string               `json:"stockName"`
	StockExchange     string               `json:"stockExchange" enums:"NSE,BSE"`
	Term              string               `json:"term" enums:"short,mid,long"`
	Recommendation    string               `json:"recommendation" enums:"BUY,SELL,HOLD"`
	Date              string               `json:"date"`
	EntryPrice        float64              `json:"entryPrice"`
	TargetPrice       float64              `json:"targetPrice"`
	Stoploss          float64              `json:"stoploss"`
	PotentialLeftPct  float64              `json:"potentialLeftPct"`
	DurationText      string               `json:"durationText"`
	Reason            string               `json:"reason"`
	CreatedBy         string               `json:"createdBy"`
	CMP               *float64             `json:"cmp,omitempty"`
	ChangePct         *float64             `json:"changePct,omitempty"`
	EntryRangeMin     *float64             `json:"entryRangeMin,omitempty"`
	EntryRangeMax     *float64             `json:"entryRangeMax,omitempty"`
	ImageURL          *string              `json:"imageUrl,omitempty"`
	ResearchReportURL *string              `json:"researchReportUrl,omitempty"`
	Actions           []entity.TradeAction `json:"actions"`
	Alerts            []string             `json:"alerts"`
}

// UpdateIdeaRequest is the DTO for editing a stock idea. Omitted fields are left unchanged.
type UpdateIdeaRequest struct {
	UserID            *string               `json:"userId,omitempty"`
	StockSymbol       *string               `json:"stockSymbol,omitempty"`
	StockName         *string               `json:"stockName,omitempty"`
	StockExchange     *string               `json:"stockExchange,omitempty" enums:"NSE,BSE"`
	Term              *string               `json:"term,omitempty" enums:"short,mid,long"`
	Recommendation    *string               `json:"recommendation,omitempty" enums:"BUY,SELL,HOLD"`
	Date              *string               `json:"date,omitempty"`
	EntryPrice        *float64              `json:"entryPrice,omitempty"`
	TargetPrice       *float64              `json:"targetPrice,omitempty"`
	Stoploss          *float64              `json:"stoploss,omitempty"`
	PotentialLeftPct  *float64              `json:"potentialLeftPct,omitempty"`
	DurationText      *string               `json:"durationText,omitempty"`
	Reason            *string               `json:"reason,omitempty"`
	CMP               *float64              `json:"cmp,omitempty"`
	ChangePct         *float64              `json:"changePct,omitempty"`
	EntryRangeMin     *float64              `json:"entryRangeMin,omitempty"`
	EntryRangeMax     *float64              `json:"entryRangeMax,omitempty"`
	ImageURL          *string               `json:"imageUrl,omitempty"`
	ResearchReportURL *string               `json:"researchReportUrl,omitempty"`
	Actions           *[]entity.TradeAction `json:"actions,omitempty"`
	Alerts            *[]string             `json:"alerts,omitempty"`
	// Clear lists optional fields to unset, e.g. ["cmp", "entryRangeMin"].
	Clear []string `json:"clear,omitempty"`
}

// ArchiveIdeaRequest is the DTO carrying the exit details of an idea.
type ArchiveIdeaRequest struct {
	ExitPrice    float64 `json:"exitPrice"`
	ExitDate     string  `json:"exitDate"`
	ExitTime     string  `json:"exitTime"`
	ProfitEarned *string `json:"profitEarned,omitempty"`
}

// ListIdeasQuery holds the query parameters of the list endpoint.
type ListIdeasQuery struct {
	IncludeArchived bool   `query:"includeArchived"`
	State           string `query:"state"`
	Term            string `query:"term"`
	PageSize        int    `query:"pageSize"`
}

// IdeaResponse is the DTO for API responses containing a stock idea and its derived lifecycle data.
type IdeaResponse struct {
	*entity.StockIdea
	State          string               `json:"state" enums:"DRAFT,PUBLISHED,AMENDED,ARCHIVED"`
	ModifiedFlags  entity.ModifiedFlags `json:"modifiedFlags"`
	OutsideBuyZone bool                 `json:"outsideBuyZone"`
	RecentUpdates  []string             `json:"recentUpdates"`
}
