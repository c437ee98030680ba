package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrPriceNotFinite is returned by ParsePrice for NaN and infinite values.
var ErrPriceNotFinite = errors.New("price must be a finite number")

// Game represents a single entry in the game catalog.
//
// Name is the lookup key used for removal. It is compared case-sensitively
// and is not required to be unique. Genre is free text. Price may be any
// finite float, negative values included.
type Game struct {
	// Name is the game title.
	Name string

	// Genre is a free-form genre label.
	Genre string

	// Price is the purchase price.
	Price float64
}

// NewGame creates a new Game.
func NewGame(name, genre string, price float64) Game {
	return Game{
		Name:  name,
		Genre: genre,
		Price: price,
	}
}

// PriceText returns the price in the shortest decimal form that parses
// back to the same value.
//
// Example:
//
//	NewGame("Go", "Strategy", 5).PriceText()    // "5"
//	NewGame("Chess", "Strategy", 9.99).PriceText() // "9.99"
func (g Game) PriceText() string {
	return FormatPrice(g.Price)
}

// FormatPrice formats a price for storage and display.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// ParsePrice converts user supplied text to a price.
//
// Surrounding whitespace is ignored. Text that strconv.ParseFloat rejects is
// an error, and so are NaN and the infinities since they cannot be ordered.
func ParsePrice(text string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrPriceNotFinite
	}
	return price, nil
}
