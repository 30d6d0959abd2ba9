package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/harwood/mediamap/pkg/catalog"
)

const (
	// MinScore is the score below which a candidate is discarded entirely
	MinScore = 30
	// AutoMatchScore is the score a top candidate needs to become the best match
	// without human input
	AutoMatchScore = 40

	titleWeight      = 70
	yearExactBonus   = 20
	yearNearBonus    = 10
	yearUnknownBonus = 10
	popularityWeight = 10
)

// Candidate is a proposed catalog match for a discovered folder
type Candidate struct {
	ExternalID int     `json:"externalID"`
	Title      string  `json:"title"`
	Year       *int    `json:"year,omitempty"`
	PosterPath *string `json:"posterPath,omitempty"`
	Score      int     `json:"score"`
	Popularity float32 `json:"-"`
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// Rank scores catalog results against a parsed title and optional year and
// returns candidates ordered by score descending. Results scoring below
// MinScore are dropped. Ties break by popularity, then title, so output is
// deterministic for a fixed input.
func Rank(parsedTitle string, parsedYear *int, results []catalog.SearchResult) []Candidate {
	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		score := Score(parsedTitle, parsedYear, r)
		if score < MinScore {
			continue
		}

		candidates = append(candidates, Candidate{
			ExternalID: r.ExternalID,
			Title:      r.Title,
			Year:       r.Year,
			PosterPath: r.PosterPath,
			Score:      score,
			Popularity: r.Popularity,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].Popularity != candidates[j].Popularity {
			return candidates[i].Popularity > candidates[j].Popularity
		}
		return candidates[i].Title < candidates[j].Title
	})

	return candidates
}

// AutoMatch returns the best match for a ranked candidate list, or false when
// the top score does not clear the auto-match bar.
func AutoMatch(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 || candidates[0].Score < AutoMatchScore {
		return Candidate{}, false
	}
	return candidates[0], true
}

// Score combines title similarity, year agreement, and a small popularity
// bump into a confidence score in [0,100].
func Score(parsedTitle string, parsedYear *int, result catalog.SearchResult) int {
	sim := similarity(parsedTitle, result.Title)
	score := int(math.Round(sim * titleWeight))

	score += yearBonus(parsedYear, result.Year)

	// vote count is a tiebreaker only; capped well below the title weight
	pop := math.Log10(float64(result.VoteCount) + 1)
	if pop > popularityWeight {
		pop = popularityWeight
	}
	score += int(pop)

	if score > 100 {
		score = 100
	}
	return score
}

func yearBonus(parsed, candidate *int) int {
	if parsed == nil {
		// nothing to agree or disagree with
		return yearUnknownBonus
	}
	if candidate == nil {
		return 0
	}

	switch diff := *parsed - *candidate; {
	case diff == 0:
		return yearExactBonus
	case diff == 1 || diff == -1:
		return yearNearBonus
	default:
		return 0
	}
}

// similarity is a token-set ratio between two titles in [0,1], case and
// punctuation insensitive.
func similarity(a, b string) float64 {
	aTokens := tokenize(a)
	bTokens := tokenize(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	aSet := make(map[string]struct{}, len(aTokens))
	for _, t := range aTokens {
		aSet[t] = struct{}{}
	}

	bSet := make(map[string]struct{}, len(bTokens))
	matches := 0
	for _, t := range bTokens {
		if _, seen := bSet[t]; seen {
			continue
		}
		bSet[t] = struct{}{}
		if _, ok := aSet[t]; ok {
			matches++
		}
	}

	union := len(aSet) + len(bSet) - matches
	return float64(matches) / float64(union)
}

func tokenize(s string) []string {
	s = nonWord.ReplaceAllString(strings.ToLower(s), " ")
	return strings.Fields(s)
}
