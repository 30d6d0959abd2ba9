package matcher

import (
	"testing"

	"github.com/harwood/mediamap/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestScore(t *testing.T) {
	t.Run("exact title and year", func(t *testing.T) {
		score := Score("The Movie", intPtr(2010), catalog.SearchResult{
			Title: "The Movie",
			Year:  intPtr(2010),
		})
		assert.GreaterOrEqual(t, score, AutoMatchScore)
		assert.LessOrEqual(t, score, 100)
	})

	t.Run("exact year scores at least as high as mismatched year", func(t *testing.T) {
		exact := Score("The Movie", intPtr(2010), catalog.SearchResult{
			Title: "The Movie",
			Year:  intPtr(2010),
		})
		mismatch := Score("The Movie", intPtr(2010), catalog.SearchResult{
			Title: "The Movie",
			Year:  intPtr(1997),
		})
		assert.GreaterOrEqual(t, exact, mismatch)
	})

	t.Run("year within one gets partial bonus", func(t *testing.T) {
		near := Score("The Movie", intPtr(2010), catalog.SearchResult{
			Title: "The Movie",
			Year:  intPtr(2011),
		})
		far := Score("The Movie", intPtr(2010), catalog.SearchResult{
			Title: "The Movie",
			Year:  intPtr(2015),
		})
		assert.Greater(t, near, far)
	})

	t.Run("popularity cannot rescue a title mismatch", func(t *testing.T) {
		score := Score("The Movie", intPtr(2010), catalog.SearchResult{
			Title:     "Completely Different Film",
			Year:      intPtr(2010),
			VoteCount: 10_000_000,
		})
		assert.Less(t, score, AutoMatchScore)
	})

	t.Run("case and punctuation insensitive", func(t *testing.T) {
		a := Score("the movie", nil, catalog.SearchResult{Title: "The Movie"})
		b := Score("The.Movie!", nil, catalog.SearchResult{Title: "the movie"})
		assert.Equal(t, a, b)
	})
}

func TestRank(t *testing.T) {
	t.Run("discards candidates below minimum score", func(t *testing.T) {
		candidates := Rank("The Movie", intPtr(2010), []catalog.SearchResult{
			{ExternalID: 1, Title: "The Movie", Year: intPtr(2010)},
			{ExternalID: 2, Title: "Totally Unrelated Thing Entirely", Year: intPtr(1950)},
		})

		require.Len(t, candidates, 1)
		assert.Equal(t, 1, candidates[0].ExternalID)
		for _, c := range candidates {
			assert.GreaterOrEqual(t, c.Score, MinScore)
		}
	})

	t.Run("sorted by score descending", func(t *testing.T) {
		candidates := Rank("The Movie", intPtr(2010), []catalog.SearchResult{
			{ExternalID: 1, Title: "The Movie Part Two", Year: intPtr(2012)},
			{ExternalID: 2, Title: "The Movie", Year: intPtr(2010)},
		})

		require.Len(t, candidates, 2)
		assert.Equal(t, 2, candidates[0].ExternalID)
		assert.GreaterOrEqual(t, candidates[0].Score, candidates[1].Score)
	})

	t.Run("ties break by popularity then title", func(t *testing.T) {
		candidates := Rank("The Movie", intPtr(2010), []catalog.SearchResult{
			{ExternalID: 1, Title: "The Movie", Year: intPtr(2010), Popularity: 1},
			{ExternalID: 2, Title: "The Movie", Year: intPtr(2010), Popularity: 50},
		})

		require.Len(t, candidates, 2)
		assert.Equal(t, 2, candidates[0].ExternalID)

		candidates = Rank("The Movie", intPtr(2010), []catalog.SearchResult{
			{ExternalID: 3, Title: "The Movie", Year: intPtr(2010)},
			{ExternalID: 4, Title: "The Movie", Year: intPtr(2010)},
		})

		require.Len(t, candidates, 2)
		// identical scores and popularity order alphabetically; identical
		// titles keep input order via the stable sort
		assert.Equal(t, 3, candidates[0].ExternalID)
	})

	t.Run("empty results", func(t *testing.T) {
		assert.Empty(t, Rank("The Movie", nil, nil))
	})
}

func TestAutoMatch(t *testing.T) {
	t.Run("promotes strong top candidate", func(t *testing.T) {
		candidates := Rank("The Movie", intPtr(2010), []catalog.SearchResult{
			{ExternalID: 1, Title: "The Movie", Year: intPtr(2010)},
		})

		best, ok := AutoMatch(candidates)
		require.True(t, ok)
		assert.Equal(t, 1, best.ExternalID)
		assert.GreaterOrEqual(t, best.Score, AutoMatchScore)
	})

	t.Run("no best match below auto threshold", func(t *testing.T) {
		weak := []Candidate{{ExternalID: 1, Score: AutoMatchScore - 1}}
		_, ok := AutoMatch(weak)
		assert.False(t, ok)
	})

	t.Run("empty candidates", func(t *testing.T) {
		_, ok := AutoMatch(nil)
		assert.False(t, ok)
	})
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "The Movie", "The Movie", 1},
		{"empty", "", "The Movie", 0},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"separator noise", "the.movie", "The Movie", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity(tt.a, tt.b), 0.001)
		})
	}

	t.Run("partial overlap between zero and one", func(t *testing.T) {
		got := similarity("the movie returns", "the movie")
		assert.Greater(t, got, 0.0)
		assert.Less(t, got, 1.0)
	})
}
