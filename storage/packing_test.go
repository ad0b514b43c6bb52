package storage

import (
	"context"
	"errors"
	"testing"

	"pdm-api/domain"
)

// buildPackingTree creates an area with one box holding two items and returns
// the three ids.
func buildPackingTree(t *testing.T, s *Store) (areaID, boxID, itemID int64) {
	t.Helper()
	ctx := context.Background()

	area, err := s.CreatePackingArea(ctx, domain.NewPackingAreaInput{UserID: 1, Name: "Garage"})
	if err != nil {
		t.Fatalf("create area: %v", err)
	}
	box, err := s.CreatePackingBox(ctx, domain.NewPackingBoxInput{AreaID: area.ID, Label: "Tools"})
	if err != nil {
		t.Fatalf("create box: %v", err)
	}
	item, err := s.CreatePackingItem(ctx, domain.NewPackingItemInput{BoxID: box.ID, Name: "Drill"})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if _, err := s.CreatePackingItem(ctx, domain.NewPackingItemInput{BoxID: box.ID, Name: "Screwdrivers"}); err != nil {
		t.Fatalf("create item: %v", err)
	}
	return area.ID, box.ID, item.ID
}

func TestCreatePackingItemDefaults(t *testing.T) {
	s := newTestStore(t)
	_, boxID, _ := buildPackingTree(t, s)

	item, err := s.CreatePackingItem(context.Background(), domain.NewPackingItemInput{BoxID: boxID, Name: "Extension cord"})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", item.Quantity)
	}
	if item.Fragile != 0 {
		t.Fatalf("expected default fragile 0, got %d", item.Fragile)
	}
}

func TestDeletePackingBoxCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, boxID, itemID := buildPackingTree(t, s)

	if err := s.DeletePackingBox(ctx, boxID); err != nil {
		t.Fatalf("delete box: %v", err)
	}
	if _, err := s.GetPackingBox(ctx, boxID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected box gone, got %v", err)
	}
	if _, err := s.GetPackingItem(ctx, itemID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected item gone, got %v", err)
	}
}

func TestDeletePackingAreaCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	areaID, boxID, itemID := buildPackingTree(t, s)

	if err := s.DeletePackingArea(ctx, areaID); err != nil {
		t.Fatalf("delete area: %v", err)
	}
	if _, err := s.GetPackingArea(ctx, areaID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected area gone, got %v", err)
	}
	if _, err := s.GetPackingBox(ctx, boxID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected box gone, got %v", err)
	}
	if _, err := s.GetPackingItem(ctx, itemID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected item gone, got %v", err)
	}
}

func TestDeletePackingAreaLeavesOtherAreasAlone(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	firstArea, _, _ := buildPackingTree(t, s)
	_, otherBoxID, otherItemID := buildPackingTree(t, s)

	if err := s.DeletePackingArea(ctx, firstArea); err != nil {
		t.Fatalf("delete area: %v", err)
	}
	if _, err := s.GetPackingBox(ctx, otherBoxID); err != nil {
		t.Fatalf("unrelated box was affected: %v", err)
	}
	if _, err := s.GetPackingItem(ctx, otherItemID); err != nil {
		t.Fatalf("unrelated item was affected: %v", err)
	}
}
