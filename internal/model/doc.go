// Package model defines the core data structures used throughout
// the game-manager application.
//
// # Game
//
// Game is one catalog entry. Prices typed by the user go through ParsePrice:
//
//	price, err := model.ParsePrice("9.99")
//	game := model.NewGame("Chess", "Strategy", price)
//
// # Catalog
//
// Catalog is the ordered collection of games persisted in one store.
// Insertion order is preserved and names are not required to be unique:
//
//	var c model.Catalog
//	c.Append(model.NewGame("Chess", "Strategy", 9.99))
//	c.Append(model.NewGame("Go", "Strategy", 5))
//
//	cheapest, ok := c.Cheapest() // Go, true
//	for g := range c.All() {
//	    fmt.Println(g.Name)
//	}
package model
