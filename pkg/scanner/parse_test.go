package scanner

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFolderName(t *testing.T) {
	tests := []struct {
		name        string
		folder      string
		wantTitle   string
		wantYear    *int
		wantQuality *string
	}{
		{
			name:        "dot separated with year and resolution",
			folder:      "The.Movie.2010.1080p",
			wantTitle:   "The Movie",
			wantYear:    intPtr(2010),
			wantQuality: strPtr("1080p"),
		},
		{
			name:      "unparsable falls back to raw name",
			folder:    "Unknown Release Folder",
			wantTitle: "Unknown Release Folder",
		},
		{
			name:      "parenthesized year",
			folder:    "The Movie (2010)",
			wantTitle: "The Movie",
			wantYear:  intPtr(2010),
		},
		{
			name:        "full release name",
			folder:      "Some.Film.2018.2160p.BluRay.x265-GROUP",
			wantTitle:   "Some Film",
			wantYear:    intPtr(2018),
			wantQuality: strPtr("2160p"),
		},
		{
			name:        "source tag without resolution",
			folder:      "Another_Film_1999_DVDRip",
			wantTitle:   "Another Film",
			wantYear:    intPtr(1999),
			wantQuality: strPtr("dvdrip"),
		},
		{
			name:      "year inside the title",
			folder:    "2001.A.Space.Odyssey.1968",
			wantTitle: "2001 A Space Odyssey",
			wantYear:  intPtr(1968),
		},
		{
			name:      "lowercase release name gets title cased",
			folder:    "the.quiet.place.2018",
			wantTitle: "The Quiet Place",
			wantYear:  intPtr(2018),
		},
		{
			name:      "mixed case preserved",
			folder:    "RoboCop.1987",
			wantTitle: "RoboCop",
			wantYear:  intPtr(1987),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFolderName(tt.folder)
			assert.Equal(t, tt.wantTitle, got.Title)

			if tt.wantYear == nil {
				assert.Nil(t, got.Year)
			} else {
				require.NotNil(t, got.Year)
				assert.Equal(t, *tt.wantYear, *got.Year)
			}

			if tt.wantQuality == nil {
				assert.Nil(t, got.Quality)
			} else {
				require.NotNil(t, got.Quality)
				assert.Equal(t, *tt.wantQuality, *got.Quality)
			}
		})
	}
}

func TestParseFolderNameSnapshot(t *testing.T) {
	folders := []string{
		"The.Movie.2010.1080p",
		"Unknown Release Folder",
		"Some.Film.2018.2160p.BluRay.x265-GROUP",
		"A Film [2005] [720p]",
		"weird---name___2020",
	}

	results := make([]ParsedName, 0, len(folders))
	for _, f := range folders {
		results = append(results, ParseFolderName(f))
	}

	snaps.MatchJSON(t, results)
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
