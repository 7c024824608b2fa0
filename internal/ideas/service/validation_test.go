package service

import (
	"testing"

	"golang-stock-ideas/internal/entity"
	"golang-stock-ideas/internal/ideas/mapper"
	"golang-stock-ideas/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationField(t *testing.T, err error) string {
	t.Helper()
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	return validationErr.Field
}

func TestValidateIdea(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.StockIdea)
		field  string
	}{
		{name: "valid", mutate: func(*entity.StockIdea) {}},
		{name: "missing symbol", mutate: func(s *entity.StockIdea) { s.Symbol = " " }, field: mapper.FieldSymbol},
		{name: "unknown exchange", mutate: func(s *entity.StockIdea) { s.Exchange = "NYSE" }, field: mapper.FieldExchange},
		{name: "negative stoploss", mutate: func(s *entity.StockIdea) { s.Stoploss = -1 }, field: mapper.FieldStoploss},
		{name: "inverted range", mutate: func(s *entity.StockIdea) { s.EntryRangeMin = ptr(110.0) }, field: mapper.FieldEntryRangeMin},
		{
			name: "duplicate action id",
			mutate: func(s *entity.StockIdea) {
				s.Actions = []entity.TradeAction{
					{ID: "a", Kind: entity.TradeActionAveraging},
					{ID: "a", Kind: entity.TradeActionAveraging},
				}
			},
			field: "actions[1].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idea := sampleIdea()
			tt.mutate(idea)
			err := ValidateIdea(idea)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.field, validationField(t, err))
		})
	}
}

func TestValidateIdea_NegativePricesReportedInFieldOrder(t *testing.T) {
	idea := sampleIdea()
	idea.EntryPrice = -1
	idea.TargetPrice = -2
	idea.Stoploss = -3

	for i := 0; i < 20; i++ {
		assert.Equal(t, mapper.FieldEntryPrice, validationField(t, ValidateIdea(idea)))
	}

	idea.EntryPrice = 1
	assert.Equal(t, mapper.FieldTargetPrice, validationField(t, ValidateIdea(idea)))
}
