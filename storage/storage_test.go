package storage

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
)

// newTestStore opens a throwaway SQLite store with the schema and seed data
// applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := log.New()
	logger.SetOutput(io.Discard)
	s, err := New(Config{SQLitePath: filepath.Join(t.TempDir(), "test.db")}, logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return s
}

func TestInitSeedsDomains(t *testing.T) {
	s := newTestStore(t)
	domains, err := s.ListDomains(context.Background())
	if err != nil {
		t.Fatalf("list domains: %v", err)
	}
	if len(domains) != len(seedDomains) {
		t.Fatalf("expected %d seeded domains, got %d", len(seedDomains), len(domains))
	}
	if domains[0].Slug != "housing" {
		t.Fatalf("expected first domain slug 'housing', got %q", domains[0].Slug)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("second init: %v", err)
	}
	domains, err := s.ListDomains(context.Background())
	if err != nil {
		t.Fatalf("list domains: %v", err)
	}
	if len(domains) != len(seedDomains) {
		t.Fatalf("expected seed to run once, got %d domains", len(domains))
	}
}

func TestInitSeedsPackingTree(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	areas, err := s.ListPackingAreas(ctx)
	if err != nil {
		t.Fatalf("list areas: %v", err)
	}
	if len(areas) != 1 {
		t.Fatalf("expected 1 seeded area, got %d", len(areas))
	}
	boxes, err := s.ListPackingBoxes(ctx, areas[0].ID)
	if err != nil {
		t.Fatalf("list boxes: %v", err)
	}
	if len(boxes) != 2 {
		t.Fatalf("expected 2 seeded boxes, got %d", len(boxes))
	}
}
