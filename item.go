package belanja

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prasetyo/belanja/date"
)

// Unit enumerates the measurement units an item can be recorded in.
// The value doubles as the short display symbol.
type Unit string

const (
	Kilogram   Unit = "kg"
	Gram       Unit = "g"
	Liter      Unit = "L"
	Milliliter Unit = "ml"
	Meter      Unit = "m"
	Centimeter Unit = "cm"
	Piece      Unit = "pcs"
	Pack       Unit = "pack"
	Box        Unit = "box"
	Dozen      Unit = "dz"
)

// Units lists every valid unit, in display order.
func Units() []Unit {
	return []Unit{Kilogram, Gram, Liter, Milliliter, Meter, Centimeter, Piece, Pack, Box, Dozen}
}

// ParseUnit parses a unit symbol.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units() {
		if Unit(s) == u {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown unit %q (want one of kg, g, L, ml, m, cm, pcs, pack, box, dz)", s)
}

// Item is one recorded purchase line. Once added to a List an item is
// never mutated; it can only be deleted. Total is computed once, at
// creation, as Quantity times Price.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
	Unit     Unit     `json:"unit"`
	Price    Amount   `json:"price"`
	Total    Amount   `json:"total"`
	Date     date.Date `json:"date"`
}

// Draft describes an item before validation. Amounts are in the session
// currency, which is not recorded on the item.
type Draft struct {
	Name     string
	Quantity Quantity
	Unit     Unit
	Price    Amount
	Date     date.Date
}

// newItem validates the draft and builds the item, assigning a fresh
// identifier and computing the total.
func newItem(d Draft) (Item, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Item{}, &ValidationError{Field: "name"}
	}
	if d.Date.IsZero() {
		return Item{}, &ValidationError{Field: "date"}
	}
	if !d.Quantity.IsPositive() {
		return Item{}, &ValidationError{Field: "quantity"}
	}
	if !d.Price.IsPositive() {
		return Item{}, &ValidationError{Field: "price"}
	}
	unit := d.Unit
	if unit == "" {
		unit = Piece
	}
	return Item{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: d.Quantity,
		Unit:     unit,
		Price:    d.Price,
		Total:    d.Price.Mul(d.Quantity),
		Date:     d.Date,
	}, nil
}
