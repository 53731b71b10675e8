// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package database

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tomtom215/vortax/internal/logging"
	"github.com/tomtom215/vortax/internal/models"
)

const seedMediaBase = "https://cdn.vortax.example"

type seedEntry struct {
	title       string
	description string
	genres      []string
	cast        []string
	views       int64
	trending    bool
	latest      bool
	seasons     int
}

var seedMovies = []seedEntry{
	{"the hollow house", "A family moves into a house that remembers every guest.", []string{"horror", "mystery"}, []string{"Ada Marsh", "Leon Pike"}, 15400, true, false, 0},
	{"midnight static", "A radio host starts receiving calls from tomorrow.", []string{"thriller", "science fiction"}, []string{"Noor Haddad"}, 9800, false, true, 0},
	{"laugh track", "A failing sitcom writer swaps lives with his own character.", []string{"comedy"}, []string{"Bea Lindqvist", "Omar Reyes"}, 21000, true, true, 0},
	{"iron meridian", "An elite crew races to stop a train carrying a stolen warhead.", []string{"action", "adventure"}, []string{"Jon Ward"}, 18750, true, false, 0},
	{"letters to june", "Two strangers fall in love through a misdelivered letter.", []string{"romance", "drama"}, []string{"Clara Ong", "Felix Hart"}, 12200, false, false, 0},
	{"paper kingdoms", "An animated fable about a fox who folds cities out of paper.", []string{"animation", "family", "fantasy"}, []string{}, 8600, false, true, 0},
	{"the last ledger", "A forensic accountant follows the money into a cartel.", []string{"crime", "thriller"}, []string{"Ruth Akande"}, 11050, false, false, 0},
	{"frozen frontier", "A documentary crew spends a winter at the edge of the Arctic.", []string{"documentary"}, []string{}, 4300, false, false, 0},
	{"dust and iron", "A retired marshal rides out for one last job.", []string{"western", "action"}, []string{"Hank Doyle"}, 6900, false, false, 0},
	{"echoes of verdun", "Brothers on opposite sides of a trench war.", []string{"war", "history", "drama"}, []string{"Paul Mercier"}, 7700, false, false, 0},
	{"bassline", "A street drummer gets one shot at the big stage.", []string{"music", "drama"}, []string{"Tia Brooks"}, 5200, false, true, 0},
	{"scream season", "A horror comedy about a summer camp that refuses to close.", []string{"horror", "comedy"}, []string{"Maya Lund", "Dev Patel"}, 13900, true, false, 0},
}

var seedShows = []seedEntry{
	{"station eleven nights", "Survivors of a blackout keep a travelling theatre alive.", []string{"drama", "science fiction"}, []string{"Iris Kane"}, 17300, true, false, 2},
	{"the office of lost things", "Comedy about the staff of a city lost-and-found.", []string{"comedy"}, []string{"Sam Okafor", "Lia Chen"}, 22400, true, true, 3},
	{"hollow creek", "Every autumn, someone in town goes missing.", []string{"horror", "mystery"}, []string{"Grace Wu"}, 14100, false, true, 1},
	{"blue precinct", "Detectives in a coastal city work cases nobody else wants.", []string{"crime", "drama"}, []string{"Marco Bell"}, 16800, false, false, 4},
	{"dragonmere", "Rival houses fight for a throne guarded by the last dragon.", []string{"fantasy", "adventure"}, []string{"Elin Storm", "Kit Rowe"}, 25600, true, false, 2},
	{"wild planet diaries", "A documentary series following animal families for a year.", []string{"documentary", "family"}, []string{}, 7400, false, false, 1},
	{"signal lost", "A submarine crew loses contact with the surface.", []string{"thriller", "war"}, []string{"Anders Holm"}, 9900, false, true, 1},
	{"heartline", "Paramedics juggle emergencies and romance on the night shift.", []string{"romance", "drama"}, []string{"Zoe Park"}, 11700, false, false, 3},
}

// SeedCatalog inserts a small sample catalog when both catalog tables are empty.
// It reports whether anything was inserted.
func (db *DB) SeedCatalog(ctx context.Context) (bool, error) {
	counts, err := db.CountRows(ctx)
	if err != nil {
		return false, err
	}
	if counts[tableMovies] > 0 || counts[tableTVShows] > 0 {
		return false, nil
	}

	titleCase := cases.Title(language.English)

	for _, e := range seedMovies {
		title := titleCase.String(e.title)
		m := &models.Movie{
			Title:       title,
			Description: e.description,
			Genres:      e.genres,
			Cast:        e.cast,
			IsTrending:  e.trending,
			IsLatest:    e.latest,
			URL:         seedMediaBase + "/movies/" + slug(e.title),
			VideoURL:    seedMediaBase + "/stream/" + slug(e.title) + ".m3u8",
			Thumbnail:   seedMediaBase + "/thumbs/" + slug(e.title) + ".jpg",
			Views:       e.views,
		}
		if err := db.CreateMovie(ctx, m); err != nil {
			return false, fmt.Errorf("failed to seed movie %q: %w", title, err)
		}
	}

	for _, e := range seedShows {
		title := titleCase.String(e.title)
		s := &models.TVShow{
			Title:       title,
			Description: e.description,
			Genres:      e.genres,
			Cast:        e.cast,
			IsTrending:  e.trending,
			IsLatest:    e.latest,
			URL:         seedMediaBase + "/shows/" + slug(e.title),
			Thumbnail:   seedMediaBase + "/thumbs/" + slug(e.title) + ".jpg",
			Views:       e.views,
			Seasons:     seedSeasons(e.title, e.seasons),
		}
		if err := db.CreateTVShow(ctx, s); err != nil {
			return false, fmt.Errorf("failed to seed tv show %q: %w", title, err)
		}
	}

	logging.Info().
		Int("movies", len(seedMovies)).
		Int("tv_shows", len(seedShows)).
		Msg("Seeded sample catalog")
	return true, nil
}

func seedSeasons(title string, n int) []models.Season {
	seasons := make([]models.Season, 0, n)
	for s := 1; s <= n; s++ {
		episodes := make([]models.Episode, 0, 3)
		for e := 1; e <= 3; e++ {
			episodes = append(episodes, models.Episode{
				EpisodeNumber: e,
				Title:         fmt.Sprintf("Episode %d", e),
				URL:           fmt.Sprintf("%s/stream/%s/s%02de%02d.m3u8", seedMediaBase, slug(title), s, e),
			})
		}
		seasons = append(seasons, models.Season{SeasonNumber: s, Episodes: episodes})
	}
	return seasons
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
