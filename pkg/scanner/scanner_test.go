package scanner

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	inLibrary map[string]bool
	err       error
}

func (f fakeLookup) HasFolder(_ context.Context, folderPath string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.inLibrary[folderPath], nil
}

type failingFS struct{}

func (failingFS) Open(string) (fs.File, error) { return nil, fs.ErrPermission }

func TestScan(t *testing.T) {
	ctx := context.Background()

	t.Run("discovers media folders with descriptors", func(t *testing.T) {
		root := fstest.MapFS{
			"The.Movie.2010.1080p/movie.mkv":        &fstest.MapFile{Data: make([]byte, 100)},
			"The.Movie.2010.1080p/movie.srt":        &fstest.MapFile{Data: make([]byte, 10)},
			"Unknown Release Folder/something.mp4":  &fstest.MapFile{Data: make([]byte, 50)},
			"Not Media/readme.txt":                  &fstest.MapFile{Data: make([]byte, 5)},
			"stray-file.mkv":                        &fstest.MapFile{},
			"Already There (1999)/already.mkv":      &fstest.MapFile{},
		}

		s := New(FileSystem{Path: "/media/movies", FS: root})
		descriptors, err := s.Scan(ctx, fakeLookup{inLibrary: map[string]bool{
			"/media/movies/Already There (1999)": true,
		}})
		require.NoError(t, err)
		require.Len(t, descriptors, 2)

		byName := map[string]FolderDescriptor{}
		for _, d := range descriptors {
			byName[d.FolderName] = d
		}

		movie, ok := byName["The.Movie.2010.1080p"]
		require.True(t, ok)
		assert.Equal(t, "/media/movies/The.Movie.2010.1080p", movie.FolderPath)
		assert.Equal(t, "/media/movies", movie.RootFolder)
		assert.Equal(t, "The Movie", movie.ParsedTitle)
		require.NotNil(t, movie.ParsedYear)
		assert.Equal(t, 2010, *movie.ParsedYear)
		require.NotNil(t, movie.ParsedQuality)
		assert.Equal(t, "1080p", *movie.ParsedQuality)
		assert.Equal(t, 2, movie.FileCount)
		assert.Equal(t, int64(110), movie.TotalSizeBytes)

		unknown, ok := byName["Unknown Release Folder"]
		require.True(t, ok)
		assert.Equal(t, "Unknown Release Folder", unknown.ParsedTitle)
		assert.Nil(t, unknown.ParsedYear)
	})

	t.Run("multiple roots", func(t *testing.T) {
		movies := fstest.MapFS{"A.Movie.2001/a.mkv": &fstest.MapFile{}}
		more := fstest.MapFS{"B.Movie.2002/b.mp4": &fstest.MapFile{}}

		s := New(
			FileSystem{Path: "/media/movies", FS: movies},
			FileSystem{Path: "/media/more", FS: more},
		)
		descriptors, err := s.Scan(ctx, fakeLookup{})
		require.NoError(t, err)
		assert.Len(t, descriptors, 2)
	})

	t.Run("lookup error keeps the folder", func(t *testing.T) {
		root := fstest.MapFS{"A.Movie.2001/a.mkv": &fstest.MapFile{}}

		s := New(FileSystem{Path: "/media/movies", FS: root})
		descriptors, err := s.Scan(ctx, fakeLookup{err: errors.New("index offline")})
		require.NoError(t, err)
		assert.Len(t, descriptors, 1)
	})

	t.Run("empty root", func(t *testing.T) {
		s := New(FileSystem{Path: "/media/movies", FS: fstest.MapFS{}})
		descriptors, err := s.Scan(ctx, fakeLookup{})
		require.NoError(t, err)
		assert.Empty(t, descriptors)
	})

	t.Run("unreadable root is skipped", func(t *testing.T) {
		good := fstest.MapFS{"A.Movie.2001/a.mkv": &fstest.MapFile{}}

		s := New(
			FileSystem{Path: "/media/broken", FS: failingFS{}},
			FileSystem{Path: "/media/movies", FS: good},
		)
		descriptors, err := s.Scan(ctx, fakeLookup{})
		require.NoError(t, err)
		assert.Len(t, descriptors, 1)
	})

	t.Run("all roots unreadable", func(t *testing.T) {
		s := New(
			FileSystem{Path: "/media/broken", FS: failingFS{}},
			FileSystem{Path: "/media/also-broken", FS: failingFS{}},
		)
		descriptors, err := s.Scan(ctx, fakeLookup{})
		assert.ErrorIs(t, err, ErrNoRootsAvailable)
		assert.Empty(t, descriptors)
	})

	t.Run("no roots configured", func(t *testing.T) {
		s := New()
		descriptors, err := s.Scan(ctx, fakeLookup{})
		require.NoError(t, err)
		assert.Empty(t, descriptors)
	})
}
