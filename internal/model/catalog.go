package model

import "iter"

// Catalog is the ordered collection of games held in one store.
//
// The zero value is an empty catalog ready to use. Games keep the order in
// which they were appended, and that order decides both which duplicate a
// removal hits and which game wins a price tie.
type Catalog struct {
	Games []Game
}

// NewCatalog creates a catalog holding the given games in order.
func NewCatalog(games ...Game) Catalog {
	return Catalog{Games: append([]Game(nil), games...)}
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	return len(c.Games)
}

// Append adds a game to the end of the catalog.
func (c *Catalog) Append(g Game) {
	c.Games = append(c.Games, g)
}

// IndexOf returns the position of the first game whose name equals name
// exactly, or -1 when there is none.
func (c *Catalog) IndexOf(name string) int {
	for i, g := range c.Games {
		if g.Name == name {
			return i
		}
	}
	return -1
}

// RemoveAt removes and returns the game at index i.
// It panics if i is out of range.
func (c *Catalog) RemoveAt(i int) Game {
	g := c.Games[i]
	c.Games = append(c.Games[:i:i], c.Games[i+1:]...)
	return g
}

// All returns an iterator over the games in stored order.
func (c *Catalog) All() iter.Seq[Game] {
	games := c.Games
	return func(yield func(Game) bool) {
		for _, g := range games {
			if !yield(g) {
				return
			}
		}
	}
}

// MostExpensive returns the game with the highest price.
// On ties the earliest game wins. ok is false for an empty catalog.
func (c *Catalog) MostExpensive() (g Game, ok bool) {
	return c.extreme(func(candidate, best float64) bool { return candidate > best })
}

// Cheapest returns the game with the lowest price.
// On ties the earliest game wins. ok is false for an empty catalog.
func (c *Catalog) Cheapest() (g Game, ok bool) {
	return c.extreme(func(candidate, best float64) bool { return candidate < best })
}

// extreme scans once and only replaces the current pick on a strict
// improvement, so the first game holding the extreme price is kept.
func (c *Catalog) extreme(better func(candidate, best float64) bool) (Game, bool) {
	if len(c.Games) == 0 {
		return Game{}, false
	}
	best := c.Games[0]
	for _, g := range c.Games[1:] {
		if better(g.Price, best.Price) {
			best = g
		}
	}
	return best, true
}
