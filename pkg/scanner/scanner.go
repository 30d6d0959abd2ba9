package scanner

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/harwood/mediamap/pkg/logger"
)

var videoExtensions = []string{".mp4", ".avi", ".mkv", ".m4v", ".iso", ".ts", ".m2ts"}

// ErrNoRootsAvailable is returned when every configured root folder is unreadable
var ErrNoRootsAvailable = errors.New("no root folders could be read")

// FileSystem pairs a configured root folder path with its filesystem
type FileSystem struct {
	Path string
	FS   fs.FS
}

// FolderDescriptor is the normalized description of one unmapped media folder
type FolderDescriptor struct {
	FolderPath     string  `json:"folderPath"`
	FolderName     string  `json:"folderName"`
	RootFolder     string  `json:"rootFolder"`
	ParsedTitle    string  `json:"parsedTitle"`
	ParsedYear     *int    `json:"parsedYear,omitempty"`
	ParsedQuality  *string `json:"parsedQuality,omitempty"`
	FileCount      int     `json:"fileCount"`
	TotalSizeBytes int64   `json:"totalSizeBytes"`
}

// TotalSize renders the folder's total size for display
func (d FolderDescriptor) TotalSize() string {
	return humanize.Bytes(uint64(d.TotalSizeBytes))
}

// LibraryLookup reports whether a folder is already represented in the library
type LibraryLookup interface {
	HasFolder(ctx context.Context, folderPath string) (bool, error)
}

// Scanner discovers media folders under configured roots that are not yet in
// the library
type Scanner struct {
	roots []FileSystem
}

func New(roots ...FileSystem) Scanner {
	return Scanner{roots: roots}
}

// Scan walks every root and returns a descriptor per candidate media folder.
// An unreadable root is logged and skipped; the returned error is non-nil only
// when no root could be read at all.
func (s Scanner) Scan(ctx context.Context, lookup LibraryLookup) ([]FolderDescriptor, error) {
	log := logger.FromCtx(ctx)

	descriptors := []FolderDescriptor{}
	readable := 0
	for _, root := range s.roots {
		entries, err := fs.ReadDir(root.FS, ".")
		if err != nil {
			log.Warnw("skipping unreadable root folder", "root", root.Path, "error", err)
			continue
		}
		readable++

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			folderPath := filepath.Join(root.Path, entry.Name())
			inLibrary, err := lookup.HasFolder(ctx, folderPath)
			if err != nil {
				log.Warnw("library lookup failed, keeping folder", "folder", folderPath, "error", err)
			}
			if inLibrary {
				log.Debugw("folder already in library", "folder", folderPath)
				continue
			}

			descriptor, ok := s.describe(ctx, root, entry.Name())
			if !ok {
				continue
			}

			descriptors = append(descriptors, descriptor)
		}
	}

	if readable == 0 && len(s.roots) > 0 {
		return descriptors, ErrNoRootsAvailable
	}

	return descriptors, nil
}

// describe walks one candidate folder, counting files and sizes. Folders
// without any video content are not media folders and are dropped.
func (s Scanner) describe(ctx context.Context, root FileSystem, name string) (FolderDescriptor, bool) {
	log := logger.FromCtx(ctx)

	var fileCount int
	var totalSize int64
	var hasVideo bool

	err := fs.WalkDir(root.FS, name, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree doesn't invalidate the folder
			return fs.SkipDir
		}
		if d.IsDir() {
			return nil
		}

		fileCount++
		if info, err := d.Info(); err == nil {
			totalSize += info.Size()
		}
		if isVideoFile(path) {
			hasVideo = true
		}

		return nil
	})
	if err != nil {
		log.Debugw("failed to walk folder", "folder", name, "error", err)
		return FolderDescriptor{}, false
	}

	if !hasVideo {
		log.Debugw("skipping folder with no video files", "folder", name)
		return FolderDescriptor{}, false
	}

	parsed := ParseFolderName(name)
	return FolderDescriptor{
		FolderPath:     filepath.Join(root.Path, name),
		FolderName:     name,
		RootFolder:     root.Path,
		ParsedTitle:    parsed.Title,
		ParsedYear:     parsed.Year,
		ParsedQuality:  parsed.Quality,
		FileCount:      fileCount,
		TotalSizeBytes: totalSize,
	}, true
}

func isVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range videoExtensions {
		if ext == e {
			return true
		}
	}

	return false
}
