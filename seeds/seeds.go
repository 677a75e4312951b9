package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE interactions, user_preferences, books, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting books")
	if err := seedBooks(ctx, pool); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}

	log.Println("[seed] inserting preferences")
	if err := seedPreferences(ctx, pool); err != nil {
		return fmt.Errorf("seed preferences: %w", err)
	}

	log.Println("[seed] inserting interactions")
	if err := seedInteractions(ctx, pool, rng, 150); err != nil {
		return fmt.Errorf("seed interactions: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

var seedNames = []string{
	"Ada Lang", "Ben Okoro", "Carla Mendes", "Dev Patel", "Elin Sato",
	"Franka Diaz", "Giles Moreau", "Hana Kovacs", "Ivo Brandt", "June Park",
	"Kofi Mensah", "Lena Voss", "Marco Ruiz", "Nora Silva", "Omar Haddad",
	"Priya Nair", "Quentin Roy", "Rosa Marin", "Sami Virtanen", "Tess Walsh",
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	rows := []string{}
	args := []any{}

	for i, name := range seedNames {
		email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"

		base := i * 2
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, name, email)
	}

	query := "INSERT INTO users (name, email) VALUES " + strings.Join(rows, ", ")
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert users: %w", err)
	}
	return nil
}

type seedBook struct {
	title, author, genre, description string
}

var seedCatalog = []seedBook{
	{"The Winter Keep", "Ann Wren", "Fantasy", "A knight guards a cursed fortress through an endless northern winter."},
	{"The Summer Keep", "Ann Wren", "Fantasy", "The cursed fortress thaws and the knight learns who laid the curse."},
	{"Ash and Ivy", "Ann Wren", "['Fantasy', 'Adventure']", "Two thieves cross a burned kingdom carrying a seed that remembers the forest."},
	{"Harbor Letters", "Bo Hart", "Romance", "Two strangers exchange letters across a harbor town for a year without meeting."},
	{"The Quiet Orchard", "Bo Hart", "Romance", "A widowed gardener and a traveling beekeeper restore an orchard and each other."},
	{"The Lighthouse Blinks Twice", "Cy Odum", "Horror", "A keeper realizes the light signals something beneath the water, not above it."},
	{"Teeth of the House", "Cy Odum", "Horror", "A family inherits a house whose doors close slightly faster every night."},
	{"Ninety Soups", "Di Pell", "Cooking", "Ninety soups for slow evenings, with notes on patience and good bread."},
	{"Salt and Smoke", "Di Pell", "Cooking", "Curing, smoking, and preserving for small kitchens."},
	{"The Cartographer's Daughter", "Elif Aydin", "['Mystery', 'Historical']", "A mapmaker's daughter traces a forged map to a drowned village."},
	{"Five Minutes of Static", "Elif Aydin", "Mystery", "A radio operator hears a confession on a dead frequency and cannot let it go."},
	{"Orbital Decay", "Finn Marsh", "Science Fiction", "A salvage crew finds a derelict station still keeping a schedule."},
	{"The Last Terraformer", "Finn Marsh", "Science Fiction", "On a half-finished world, the last engineer decides what finished means."},
	{"Glass Gardens", "Finn Marsh", "['Science Fiction', 'Adventure']", "Domed cities trade seeds like currency and a botanist holds the rarest one."},
	{"Walking the Old Roads", "Greta Lindqvist", "Travel", "A year of walking pilgrimage routes nobody maintains anymore."},
	{"Trains I Have Slept On", "Greta Lindqvist", "Travel", "Night trains, border crossings, and the strangers who share compartments."},
	{"A Field Guide to Doubt", "Hal Morrow", "Philosophy", "Essays on being usefully unsure in a confident century."},
	{"The Patient Machine", "Hal Morrow", "['Philosophy', 'Science']", "What slow computation teaches about thinking well."},
	{"Riverbone", "Ida Keane", "Fantasy", "A river god loses its name and hires a clerk to find it."},
	{"The Ninth Winter", "Ida Keane", "['Fantasy', 'Mystery']", "A village's winters arrive numbered and the ninth is missing."},
	{"Correct Horse", "Jan Bakker", "Humor", "Misadventures in software, security, and other human errors."},
	{"The Bread of Yesterday", "Karin Holt", "Historical", "Three generations of bakers survive a century of occupation and peace."},
	{"Maps Without Borders", "Karin Holt", "Historical", "Cartography as politics, from empires to apps."},
	{"Dead Reckoning", "Liam Boyce", "Thriller", "A navigator wakes on a ship whose crew insists the voyage never happened."},
	{"The Long Favor", "Liam Boyce", "Thriller", "Repaying a twenty-year-old debt means breaking someone out."},
	{"Small Gods of the City", "Mara Ionescu", "['Fantasy', 'Urban']", "Neighborhood deities fight gentrification with minor miracles."},
	{"The Interview", "Noel Tanaka", "Drama", "A disgraced journalist gets one last interview and it is with herself."},
	{"Concrete Meadows", "Noel Tanaka", "Drama", "A demolition crew votes to save the building they were hired to raze."},
	{"Counting by Starlight", "Ona Petrov", "Science", "How astronomers measured the universe before computers."},
	{"The Honest Atom", "Ona Petrov", "Science", "A plain-language tour of the particles that refuse to behave."},
}

func seedBooks(ctx context.Context, pool *pgxpool.Pool) error {
	rows := []string{}
	args := []any{}

	for i, b := range seedCatalog {
		base := i * 4
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, b.title, b.author, b.genre, b.description)
	}

	query := "INSERT INTO books (title, author, genre, description) VALUES " + strings.Join(rows, ", ")
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert books: %w", err)
	}
	return nil
}

func seedPreferences(ctx context.Context, pool *pgxpool.Pool) error {
	// A few onboarded users with declared genre tastes; the rest rely on
	// their interaction history.
	prefs := map[int64]string{
		2:  "Fantasy, Mystery",
		5:  "['Romance', 'Drama']",
		9:  "Science Fiction",
		14: "Horror, Thriller",
	}

	for userID, genres := range prefs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO user_preferences (user_id, preferred_genres) VALUES ($1, $2)`,
			userID, genres,
		); err != nil {
			return fmt.Errorf("insert preference for user %d: %w", userID, err)
		}
	}
	return nil
}

func seedInteractions(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	statuses := []string{"read", "reading", "wishlist"}
	statusWeights := []float64{0.6, 0.2, 0.2}

	for i := 0; i < n; i++ {
		userID := int64(rng.Intn(len(seedNames)) + 1)
		bookID := int64(rng.Intn(len(seedCatalog)) + 1)
		status := weightedChoice(rng, statuses, statusWeights)

		var rating any
		if status == "read" && rng.Float64() < 0.8 {
			// Skew toward the upper half of the scale, like real shelves.
			rating = float64(rng.Intn(7)+4) / 2.0 // 2.0 .. 5.0 in half steps
		}

		if _, err := pool.Exec(ctx,
			`INSERT INTO interactions (user_id, book_id, rating, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, book_id) DO NOTHING`,
			userID, bookID, rating, status,
		); err != nil {
			return fmt.Errorf("insert interaction %d: %w", i, err)
		}
	}
	return nil
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
