package benchutil

import (
	"io/fs"
	"path/filepath"
	"testing"
)

func TestGenerateTreeCounts(t *testing.T) {
	for _, shape := range TreeShapes {
		t.Run(shape, func(t *testing.T) {
			root := t.TempDir()
			cfg := DefaultTreeConfig(200)
			cfg.Shape = shape

			tree, err := GenerateTree(root, cfg)
			if err != nil {
				t.Fatalf("GenerateTree error: %v", err)
			}
			if tree.Files != 200 {
				t.Errorf("Files = %d, want 200", tree.Files)
			}

			var files, dirs int
			var bytes uint64
			err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if path == root {
					return nil
				}
				if d.IsDir() {
					dirs++
					return nil
				}
				info, err := d.Info()
				if err != nil {
					return err
				}
				files++
				bytes += uint64(info.Size())
				return nil
			})
			if err != nil {
				t.Fatalf("walk error: %v", err)
			}

			if files != tree.Files || dirs != tree.Dirs || bytes != tree.Bytes {
				t.Errorf("on disk files=%d dirs=%d bytes=%d, reported %+v", files, dirs, bytes, tree)
			}
			if tree.Entries() != files+dirs {
				t.Errorf("Entries() = %d, want %d", tree.Entries(), files+dirs)
			}
		})
	}
}

func TestGenerateTreeReproducible(t *testing.T) {
	cfg := DefaultTreeConfig(50)

	a, err := GenerateTree(t.TempDir(), cfg)
	if err != nil {
		t.Fatalf("GenerateTree error: %v", err)
	}
	b, err := GenerateTree(t.TempDir(), cfg)
	if err != nil {
		t.Fatalf("GenerateTree error: %v", err)
	}

	if a.Bytes != b.Bytes || a.Dirs != b.Dirs {
		t.Errorf("same seed produced different trees: %+v vs %+v", a, b)
	}
}
