// Package dirsize enumerates a directory tree and sums the sizes of the
// regular files in it.
package dirsize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eunmann/parbench/internal/logctx"
	"github.com/eunmann/parbench/pkg/parallel"
)

// ErrNotDirectory is returned by Walk when the root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Entry is one location discovered beneath the walk root.
type Entry struct {
	Path string
}

// Size returns the entry's size in bytes if it is a regular file and zero
// otherwise. Symlinks are not followed. An entry that can no longer be
// stat'ed counts as zero.
func (e Entry) Size() uint64 {
	info, err := os.Lstat(e.Path)
	if err != nil || !info.Mode().IsRegular() {
		return 0
	}
	return uint64(info.Size())
}

// IsRegular reports whether the entry is currently a regular file.
func (e Entry) IsRegular() bool {
	info, err := os.Lstat(e.Path)
	return err == nil && info.Mode().IsRegular()
}

// Walk enumerates every file, directory, and symlink beneath root in
// traversal order. The root itself is not included. A symlinked root is
// resolved and walked; symlinked directories below it are not descended
// into. Entry paths are under the resolved root.
//
// Any error, including one partway through the tree, abandons the walk and
// no entries are returned.
func Walk(ctx context.Context, root string) ([]Entry, error) {
	log := logctx.FromContext(ctx)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walk %s: %w", root, ErrNotDirectory)
	}
	start, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	dirs := 0
	err = filepath.WalkDir(start, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walk %s: %w", path, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if path == start {
			return nil
		}
		if d.IsDir() {
			dirs++
		}
		entries = append(entries, Entry{Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("root", root).
		Str("walk_root", start).
		Int("entries_count", len(entries)).
		Int("dirs_count", dirs).
		Msg("walk complete")

	return entries, nil
}

// resolveRoot returns root itself unless it is a symlink, in which case the
// link chain is resolved. WalkDir does not descend through a symlinked root.
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return "", fmt.Errorf("walk %s: %w", root, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("walk %s: %w", root, err)
	}
	return resolved, nil
}

func sumSizes(entries []Entry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Size()
	}
	return total
}

func addUint64(a, b uint64) uint64 { return a + b }

// TotalSize returns the combined size of the regular files among entries.
// Addition is associative and commutative on uint64, so every mode returns
// the same total.
func TotalSize(mode parallel.Mode, entries []Entry) uint64 {
	return parallel.MapReduce(mode, entries, 0, sumSizes, addUint64)
}

// Summary describes a set of entries.
type Summary struct {
	Entries      int
	RegularFiles int
	Bytes        uint64
}

func summarizeChunk(entries []Entry) Summary {
	s := Summary{Entries: len(entries)}
	for _, e := range entries {
		info, err := os.Lstat(e.Path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		s.RegularFiles++
		s.Bytes += uint64(info.Size())
	}
	return s
}

func mergeSummary(a, b Summary) Summary {
	return Summary{
		Entries:      a.Entries + b.Entries,
		RegularFiles: a.RegularFiles + b.RegularFiles,
		Bytes:        a.Bytes + b.Bytes,
	}
}

// Summarize counts entries and regular files and sums their sizes.
func Summarize(mode parallel.Mode, entries []Entry) Summary {
	return parallel.MapReduce(mode, entries, Summary{}, summarizeChunk, mergeSummary)
}
