// Package benchutil provides synthetic directory trees for benchmarks and testing.
package benchutil

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// TreeConfig configures synthetic tree generation.
type TreeConfig struct {
	// NumFiles is the total number of regular files to create.
	NumFiles int
	// Shape is one of TreeShapes. Unknown shapes fall back to balanced.
	Shape string
	// MaxDepth is the maximum directory depth below the root.
	MaxDepth int
	// MaxFileSize is the exclusive upper bound of a file's size in bytes.
	// Files are sparse, so large sizes do not consume disk.
	MaxFileSize int64
	// Seed for reproducible generation. 0 = use default seed.
	Seed int64
}

// DefaultTreeConfig returns a reasonable default configuration.
func DefaultTreeConfig(numFiles int) TreeConfig {
	return TreeConfig{
		NumFiles:    numFiles,
		Shape:       "balanced",
		MaxDepth:    4,
		MaxFileSize: 64 * 1024,
		Seed:        BenchmarkSeed,
	}
}

// Tree describes what GenerateTree created.
type Tree struct {
	Root  string
	Files int
	Dirs  int
	// Bytes is the sum of all file sizes.
	Bytes uint64
}

// Entries returns the number of paths beneath the root.
func (t Tree) Entries() int {
	return t.Files + t.Dirs
}

// GenerateTree creates cfg.NumFiles files beneath root and returns their
// totals. root must exist.
func GenerateTree(root string, cfg TreeConfig) (Tree, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = BenchmarkSeed
	}
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 1
	}
	if cfg.MaxFileSize < 1 {
		cfg.MaxFileSize = 1
	}
	rng := rand.New(rand.NewSource(seed))

	tree := Tree{Root: root}
	dirs := make(map[string]struct{})

	for i := 0; i < cfg.NumFiles; i++ {
		rel := dirFor(cfg, i)
		dir := filepath.Join(root, rel)
		if _, ok := dirs[dir]; !ok {
			created, err := mkdirCount(root, rel)
			if err != nil {
				return Tree{}, err
			}
			tree.Dirs += created
			dirs[dir] = struct{}{}
		}

		size := rng.Int63n(cfg.MaxFileSize)
		path := filepath.Join(dir, fmt.Sprintf("file_%06d.dat", i))
		if err := writeSparse(path, size); err != nil {
			return Tree{}, err
		}
		tree.Files++
		tree.Bytes += uint64(size)
	}

	return tree, nil
}

// dirFor returns the relative directory the i-th file is placed in.
func dirFor(cfg TreeConfig, i int) string {
	switch cfg.Shape {
	case "deep_narrow":
		branch := i % 4
		depth := 1 + i%cfg.MaxDepth
		path := ""
		for d := 0; d < depth; d++ {
			path = filepath.Join(path, fmt.Sprintf("%c%d", 'a'+byte(branch), d))
		}
		return path
	case "wide_shallow":
		return fmt.Sprintf("dir%05d", i/5)
	default:
		const fanout = 8
		path := ""
		n := i
		for d := 0; d < cfg.MaxDepth; d++ {
			path = filepath.Join(path, fmt.Sprintf("%c", 'a'+byte(n%fanout)))
			n /= fanout
		}
		return path
	}
}

// mkdirCount creates rel beneath root and returns how many directories were new.
func mkdirCount(root, rel string) (int, error) {
	created := 0
	cur := root
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		cur = filepath.Join(cur, part)
		err := os.Mkdir(cur, 0o755)
		switch {
		case err == nil:
			created++
		case errors.Is(err, fs.ErrExist):
		default:
			return 0, fmt.Errorf("create dir %s: %w", cur, err)
		}
	}
	return created, nil
}

func writeSparse(path string, size int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return fmt.Errorf("size file %s: %w", path, err)
	}
	return f.Close()
}
