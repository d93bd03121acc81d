package ledger

import "github.com/shopspring/decimal"

// Balance sums the values of txs at full precision. An empty log has a zero
// balance and the result does not depend on the order of txs.
func Balance(txs []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		total = total.Add(tx.Value)
	}
	return total
}

// Round rounds d to two fraction digits for presentation.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CanApply reports whether adding delta to balance keeps it non-negative.
func CanApply(balance, delta decimal.Decimal) bool {
	return !balance.Add(delta).IsNegative()
}
