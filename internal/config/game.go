package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	PresetClassic      = "classic"
	PresetBeginner     = "beginner"
	PresetIntermediate = "intermediate"
	PresetExpert       = "expert"
)

var Presets = map[string]mines.GameParams{
	PresetClassic:      {Width: 10, Height: 10, MineCount: 15},
	PresetBeginner:     {Width: 9, Height: 9, MineCount: 10},
	PresetIntermediate: {Width: 16, Height: 16, MineCount: 40},
	PresetExpert:       {Width: 30, Height: 16, MineCount: 99},
}

type GameParamsDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ParseGameParams decodes a query string such as
// "width=16&height=16&mine_count=40".
func ParseGameParams(query string) (mines.GameParams, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid game params %q: %w", query, err)
	}
	var dto GameParamsDTO
	if err := decoder.Decode(&dto, values); err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid game params %q: %w", query, err)
	}
	return mines.GameParams(dto), nil
}

// Rand returns the source boards are generated from. A configured seed
// makes every board reproducible.
func (c Config) Rand() *rand.Rand {
	if c.Seed != nil {
		return rand.New(rand.NewPCG(*c.Seed, *c.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
