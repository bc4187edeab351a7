package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/galaxy"
)

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universe.txt")
	want := &catalog.Catalog{Galaxies: []galaxy.Galaxy{{GX: 0, GY: 7}}}
	if err := catalog.WriteFile(path, want); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cat, err := loadCatalog(path, nil)
	if err != nil {
		t.Fatalf("loadCatalog failed: %v", err)
	}
	if len(cat.Galaxies) != 1 || cat.Galaxies[0] != want.Galaxies[0] {
		t.Fatalf("unexpected catalog: %+v", cat.Galaxies)
	}
}

func TestLoadCatalogMissingFileNoDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := loadCatalog(path, nil)
	if err == nil {
		t.Fatalf("missing catalog with no database fallback must fail")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error %v does not wrap fs.ErrNotExist", err)
	}
}
