package catalog

import "github.com/avolkov/lotomart/internal/domain"

// Catalog is the static game list. Prices are in currency units, numbers
// are picked from [1, MaxNumber].
type Catalog struct {
	games []domain.Game
}

func New() *Catalog {
	return &Catalog{
		games: []domain.Game{
			{ID: "loto7", Name: "LOTO 7", Price: 300, MaxNumber: 37, PickCount: 7},
			{ID: "loto6", Name: "LOTO 6", Price: 200, MaxNumber: 43, PickCount: 6},
			{ID: "miniloto", Name: "MINI LOTO", Price: 200, MaxNumber: 31, PickCount: 5},
		},
	}
}

func (c *Catalog) Games() []domain.Game {
	games := make([]domain.Game, len(c.games))
	copy(games, c.games)
	return games
}

// Game returns the game with the given id, or false when unknown.
func (c *Catalog) Game(id string) (domain.Game, bool) {
	for _, g := range c.games {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Game{}, false
}
