package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/cortes-stock/internal/domain/entity"
)

func change(v int64) *entity.StockEvent {
	return &entity.StockEvent{QuantityChange: decimal.NewFromInt(v)}
}

func TestSum(t *testing.T) {
	assert.True(t, Sum(nil).IsZero(), "libro vacío suma cero")

	sum := Sum([]*entity.StockEvent{change(100), change(-30), change(5)})
	assert.True(t, decimal.NewFromInt(75).Equal(sum))
}

func TestReconcile(t *testing.T) {
	record := &entity.StockRecord{ID: "st1", Quantity: decimal.NewFromInt(75)}

	report := Reconcile(record, decimal.NewFromInt(75))
	assert.True(t, report.Consistent)
	assert.True(t, report.Drift.IsZero())

	report = Reconcile(record, decimal.NewFromInt(70))
	assert.False(t, report.Consistent)
	assert.True(t, decimal.NewFromInt(5).Equal(report.Drift))
	assert.Equal(t, "st1", report.StockID)
}
