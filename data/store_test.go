package data

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"pvdiscs.dev/track"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "discs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBurnReplacesHeldDisc(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	holder := uuid.New()

	if _, err := s.HeldDisc(ctx, holder); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank holder: got %v, want ErrNotFound", err)
	}

	first, err := s.BurnDisc(ctx, holder, "https://example.com/a", "Track A")
	if err != nil {
		t.Fatalf("burn: %v", err)
	}
	second, err := s.BurnDisc(ctx, holder, "https://example.com/b", "Track B")
	if err != nil {
		t.Fatalf("burn again: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("reburning should produce a new disc id")
	}

	held, err := s.HeldDisc(ctx, holder)
	if err != nil {
		t.Fatalf("held: %v", err)
	}
	if held.ID != second.ID || held.Name != "Track B" || held.URL != "https://example.com/b" {
		t.Errorf("held disc: got %+v, want %+v", held, second)
	}
	if held.Fingerprint != track.Fingerprint("https://example.com/b") {
		t.Errorf("fingerprint not stored")
	}
	if !held.BurnedAt.Equal(second.BurnedAt) {
		t.Errorf("burned at: got %v, want %v", held.BurnedAt, second.BurnedAt)
	}
}

func TestEraseDisc(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	holder := uuid.New()

	erased, err := s.EraseDisc(ctx, holder)
	if err != nil || erased {
		t.Fatalf("erase blank: got (%v, %v), want (false, nil)", erased, err)
	}

	if _, err := s.BurnDisc(ctx, holder, "https://example.com/a", "Track A"); err != nil {
		t.Fatalf("burn: %v", err)
	}
	erased, err = s.EraseDisc(ctx, holder)
	if err != nil || !erased {
		t.Fatalf("erase: got (%v, %v), want (true, nil)", erased, err)
	}
	if _, err := s.HeldDisc(ctx, holder); !errors.Is(err, ErrNotFound) {
		t.Errorf("after erase: got %v, want ErrNotFound", err)
	}
}

func TestSearchAndNames(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Blue Monday", "Blue Danube", "Red Rain", "100% Pure"} {
		if _, err := s.BurnDisc(ctx, uuid.New(), "https://example.com/"+name, name); err != nil {
			t.Fatalf("burn %q: %v", name, err)
		}
	}

	discs, err := s.SearchDiscs(ctx, "blue", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(discs) != 2 || discs[0].Name != "Blue Danube" || discs[1].Name != "Blue Monday" {
		t.Errorf("search blue: got %v", discNames(discs))
	}

	discs, err = s.SearchDiscs(ctx, "blue", 1)
	if err != nil || len(discs) != 1 {
		t.Errorf("search limit: got %d discs, err %v", len(discs), err)
	}

	discs, err = s.SearchDiscs(ctx, "%", 10)
	if err != nil {
		t.Fatalf("search percent: %v", err)
	}
	if len(discs) != 1 || discs[0].Name != "100% Pure" {
		t.Errorf("search %%: got %v", discNames(discs))
	}

	names, err := s.DiscNames(ctx, "Blue", 10)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 2 || names[0] != "Blue Danube" || names[1] != "Blue Monday" {
		t.Errorf("names Blue: got %v", names)
	}

	names, err = s.DiscNames(ctx, "Green", 10)
	if err != nil || len(names) != 0 {
		t.Errorf("names Green: got %v, err %v", names, err)
	}
}

func TestDiscsByTrack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.BurnDisc(ctx, uuid.New(), "https://Example.com/song/", "one")
	s.BurnDisc(ctx, uuid.New(), "https://example.com/song", "two")
	s.BurnDisc(ctx, uuid.New(), "https://example.com/other", "three")

	discs, err := s.DiscsByTrack(ctx, "https://example.com/song")
	if err != nil {
		t.Fatalf("by track: %v", err)
	}
	if len(discs) != 2 {
		t.Errorf("by track: got %v, want the two copies of song", discNames(discs))
	}
}

func TestGrants(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	player := uuid.New()

	for _, node := range []string{"pv.addon.discs.burn", "pv.addon.discs.*", "pv.addon.discs.burn"} {
		if err := s.Grant(ctx, player, node); err != nil {
			t.Fatalf("grant %s: %v", node, err)
		}
	}

	nodes, err := s.Grants(ctx, player)
	if err != nil {
		t.Fatalf("grants: %v", err)
	}
	if len(nodes) != 2 || nodes[0] != "pv.addon.discs.*" || nodes[1] != "pv.addon.discs.burn" {
		t.Errorf("grants: got %v", nodes)
	}

	revoked, err := s.Revoke(ctx, player, "pv.addon.discs.*")
	if err != nil || !revoked {
		t.Errorf("revoke: got (%v, %v)", revoked, err)
	}
	revoked, err = s.Revoke(ctx, player, "pv.addon.discs.*")
	if err != nil || revoked {
		t.Errorf("revoke twice: got (%v, %v)", revoked, err)
	}

	nodes, _ = s.Grants(ctx, uuid.New())
	if len(nodes) != 0 {
		t.Errorf("stranger grants: got %v", nodes)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discs.db")
	ctx := context.Background()
	holder := uuid.New()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.BurnDisc(ctx, holder, "https://example.com/a", "Track A"); err != nil {
		t.Fatalf("burn: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if _, err := s.HeldDisc(ctx, holder); err != nil {
		t.Errorf("held after reopen: %v", err)
	}
}

func discNames(discs []*Disc) []string {
	names := make([]string, len(discs))
	for i, d := range discs {
		names[i] = d.Name
	}
	return names
}
