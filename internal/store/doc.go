// Package store persists the game catalog in a single document file.
//
// Every operation loads the whole document, works on the in-memory
// catalog and, for mutations only, writes the whole document back:
//
//	s := store.New("games.xml")
//	if err := s.Init(); err != nil {
//	    return err
//	}
//
//	if _, err := s.Add("Chess", "Strategy", "9.99"); err != nil {
//	    // errors.Is(err, store.ErrInvalidInput) for a bad price
//	}
//
//	games, err := s.List()
//	for g := range games {
//	    fmt.Println(g.Name, g.PriceText())
//	}
//
//	cheapest, err := s.Cheapest() // errors.Is(err, store.ErrEmptyCatalog) when empty
//
// # Document formats
//
// The format follows the file extension: ".json" is JSON, ".yaml" and
// ".yml" are YAML, anything else is XML. The XML layout is
//
//	<GameList>
//	  <Game>
//	    <Name>Chess</Name>
//	    <Genre>Strategy</Genre>
//	    <Price>9.99</Price>
//	  </Game>
//	</GameList>
//
// # Errors
//
// Business outcomes are reported with ErrInvalidInput, ErrNotFound and
// ErrEmptyCatalog. Anything that goes wrong reading, decoding or writing the
// file matches ErrStorage and carries the operation and path in a
// *StorageError.
//
// The store assumes it is the only writer of its file.
package store
