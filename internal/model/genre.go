package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genre is one of the fixed music genre tags a venue or artist can list.
type Genre string

const (
	GenreAlternative    Genre = "Alternative"
	GenreBlues          Genre = "Blues"
	GenreClassical      Genre = "Classical"
	GenreCountry        Genre = "Country"
	GenreElectronic     Genre = "Electronic"
	GenreFolk           Genre = "Folk"
	GenreFunk           Genre = "Funk"
	GenreHipHop         Genre = "Hip-Hop"
	GenreHeavyMetal     Genre = "Heavy Metal"
	GenreInstrumental   Genre = "Instrumental"
	GenreJazz           Genre = "Jazz"
	GenreMusicalTheatre Genre = "Musical Theatre"
	GenrePop            Genre = "Pop"
	GenrePunk           Genre = "Punk"
	GenreRB             Genre = "R&B"
	GenreReggae         Genre = "Reggae"
	GenreRocknRoll      Genre = "Rock n Roll"
	GenreSoul           Genre = "Soul"
	GenreOther          Genre = "Other"
)

// AllGenres lists every valid genre in display order.
var AllGenres = []Genre{
	GenreAlternative, GenreBlues, GenreClassical, GenreCountry, GenreElectronic,
	GenreFolk, GenreFunk, GenreHipHop, GenreHeavyMetal, GenreInstrumental,
	GenreJazz, GenreMusicalTheatre, GenrePop, GenrePunk, GenreRB,
	GenreReggae, GenreRocknRoll, GenreSoul, GenreOther,
}

var genreSet = func() map[Genre]bool {
	m := make(map[Genre]bool, len(AllGenres))
	for _, g := range AllGenres {
		m[g] = true
	}
	return m
}()

// IsValidGenre reports whether s names a known genre.  The match is exact.
func IsValidGenre(s string) bool {
	return genreSet[Genre(s)]
}

// Genres is an ordered genre list persisted as a JSON array column.
type Genres []string

// Value implements driver.Valuer.  A nil list is stored as [].
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*g = Genres{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("genres: unsupported column type %T", src)
	}
	if len(raw) == 0 {
		*g = Genres{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("genres: %w", err)
	}
	*g = out
	return nil
}
