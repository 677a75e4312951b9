package engine

import (
	"testing"

	"github.com/shelfwise/recommendation-service/internal/domain"
)

// A roster user with no interactions and no preferred genres gets the
// catalog by average rating, unrated books at the neutral 4.0, ties by
// ascending id.
func TestColdStartByAverageRating(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 1, Title: "Low", Genre: "Fantasy"},
		{ID: 2, Title: "High", Genre: "Romance"},
		{ID: 3, Title: "Unrated", Genre: "Horror"},
	}
	snap := Snapshot{
		Catalog: catalog,
		Roster:  []int64{1, 2, 9},
		Interactions: []domain.Interaction{
			{UserID: 1, BookID: 1, Rating: rating(3.0), Status: domain.StatusRead},
			{UserID: 2, BookID: 1, Rating: rating(3.0), Status: domain.StatusRead},
			{UserID: 1, BookID: 2, Rating: rating(5.0), Status: domain.StatusRead},
		},
	}

	got, err := e.Recommend(snap, 9, 5, nil)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	want := []domain.ScoredBook{
		{BookID: 2, Score: 5.0},
		{BookID: 3, Score: 4.0},
		{BookID: 1, Score: 3.0},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestColdStartTiesBreakByID(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 7, Genre: "Fantasy"},
		{ID: 3, Genre: "Horror"},
		{ID: 5, Genre: "Romance"},
	}
	snap := Snapshot{Catalog: catalog, Roster: []int64{1}}

	got, err := e.Recommend(snap, 1, 5, nil)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	// All unrated, all neutral 4.0: ids ascending.
	for i, want := range []int64{3, 5, 7} {
		if got[i].BookID != want {
			t.Errorf("position %d: expected book %d, got %d", i, want, got[i].BookID)
		}
	}
}

// Preferred genres with no overlapping user fall through to a plain genre
// match over the catalog.
func TestColdStartPreferredGenresOnly(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 1, Genre: "Epic Fantasy"},
		{ID: 2, Genre: "Romance"},
		{ID: 3, Genre: "['Fantasy', 'Adventure']"},
	}
	snap := Snapshot{Catalog: catalog, Roster: []int64{1}}

	got, err := e.Recommend(snap, 1, 5, []string{"Fantasy"})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected only the two fantasy books, got %v", got)
	}
	if got[0].BookID != 1 || got[1].BookID != 3 {
		t.Errorf("expected books [1 3], got %v", got)
	}
}

// A user who liked books covering two of the preferred genres anchors the
// first fallback rung: their highly rated preferred-genre books come back,
// ranked by the rating they gave.
func TestColdStartKindredUsers(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 1, Genre: "Fantasy"},
		{ID: 2, Genre: "Mystery"},
		{ID: 3, Genre: "Romance"},
		{ID: 4, Genre: "Fantasy"},
	}
	snap := Snapshot{
		Catalog: catalog,
		Roster:  []int64{7, 42},
		Interactions: []domain.Interaction{
			{UserID: 7, BookID: 1, Rating: rating(5.0), Status: domain.StatusRead},
			{UserID: 7, BookID: 2, Rating: rating(4.5), Status: domain.StatusRead},
			{UserID: 7, BookID: 3, Rating: rating(5.0), Status: domain.StatusRead},
		},
	}

	got, err := e.Recommend(snap, 42, 5, []string{"Fantasy", "Mystery"})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	// Book 3 is romance and book 4 was never liked; neither qualifies.
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %v", got)
	}
	if got[0].BookID != 1 || got[0].Score != 5.0 {
		t.Errorf("expected book 1 at 5.0 first, got %v", got[0])
	}
	if got[1].BookID != 2 || got[1].Score != 4.5 {
		t.Errorf("expected book 2 at 4.5 second, got %v", got[1])
	}
}

// One shared genre is not enough to count a user as kindred.
func TestColdStartSingleGenreOverlapFallsThrough(t *testing.T) {
	e := New(DefaultConfig())
	catalog := []domain.Book{
		{ID: 1, Genre: "Fantasy"},
		{ID: 2, Genre: "Mystery"},
	}
	snap := Snapshot{
		Catalog: catalog,
		Roster:  []int64{7, 42},
		Interactions: []domain.Interaction{
			{UserID: 7, BookID: 1, Rating: rating(5.0), Status: domain.StatusRead},
		},
	}

	got, err := e.Recommend(snap, 42, 5, []string{"Fantasy", "Mystery"})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	// Falls through to the plain genre match: both books qualify, book 1 by
	// its 5.0 average, book 2 at the neutral 4.0.
	if len(got) != 2 || got[0].BookID != 1 || got[1].BookID != 2 {
		t.Errorf("expected genre-match fallback [1 2], got %v", got)
	}
}
