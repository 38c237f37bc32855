package belanja

import "github.com/shopspring/decimal"

// Amount is an exact monetary value.
//
// It deliberately carries no currency: the application runs under a
// single session currency, and amounts are only ever formatted under
// that currency, never converted. See FormatCurrency.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsPositive() bool    { return a.value.IsPositive() }
func (a Amount) IsZero() bool        { return a.value.IsZero() }

// Mul returns the amount multiplied by a quantity, exactly.
func (a Amount) Mul(q Quantity) Amount { return Amount{value: a.value.Mul(q.value)} }

// Add returns the exact sum of two amounts.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }

// String returns the plain decimal representation, without currency or
// locale treatment.
func (a Amount) String() string { return a.value.String() }

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}
func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return a.value.UnmarshalJSON(decimalBytes)
}
