package kv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"trackfit-companion/internal/checklist"
	repo "trackfit-companion/internal/checklist/repository"
	"trackfit-companion/internal/checklist/repository/kv"
	"trackfit-companion/pkg/kvstore/memory"
	"trackfit-companion/pkg/log"
)

func TestStorageKey(t *testing.T) {
	if got := kv.StorageKey("42"); got != "trackfit:checklist:42" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	r := kv.New(store, log.NewNop())

	items := []checklist.Item{
		{ID: "a", Title: "Run 5k", Phases: checklist.Phases{true, false, false}},
		{ID: "b", Title: "Stretch", Phases: checklist.Phases{true, true, true}},
	}
	if err := r.SaveItems(ctx, "u1", items); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}

	raw, _, _ := store.Get(ctx, "trackfit:checklist:u1")
	want := `[{"id":"a","title":"Run 5k","phases":[true,false,false]},{"id":"b","title":"Stretch","phases":[true,true,true]}]`
	if raw != want {
		t.Errorf("unexpected stored layout:\n got %s\nwant %s", raw, want)
	}

	got, found, err := r.LoadItems(ctx, "u1")
	if err != nil || !found {
		t.Fatalf("LoadItems: found=%v err=%v", found, err)
	}
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadItems(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		seed      bool
		want      []checklist.Item
		wantFound bool
		wantErr   error
	}{
		{name: "absent", seed: false},
		{
			name:      "short phases are padded",
			raw:       `[{"id":"a","title":"Run","phases":[true]}]`,
			seed:      true,
			want:      []checklist.Item{{ID: "a", Title: "Run", Phases: checklist.Phases{true, false, false}}},
			wantFound: true,
		},
		{
			name:      "extra phases are dropped",
			raw:       `[{"id":"a","title":"Run","phases":[true,true,true,false]}]`,
			seed:      true,
			want:      []checklist.Item{{ID: "a", Title: "Run", Phases: checklist.Phases{true, true, true}}},
			wantFound: true,
		},
		{name: "malformed", raw: `{not json`, seed: true, wantFound: true, wantErr: repo.ErrFailedToDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New()
			if tt.seed {
				_ = store.Set(ctx, kv.StorageKey("u"), tt.raw)
			}

			got, found, err := kv.New(store, log.NewNop()).LoadItems(ctx, "u")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found != tt.wantFound {
				t.Errorf("found: expected %v, got %v", tt.wantFound, found)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveItemsFailure(t *testing.T) {
	store := memory.New()
	store.SetErr = errors.New("quota exceeded")

	err := kv.New(store, log.NewNop()).SaveItems(context.Background(), "u", nil)
	if !errors.Is(err, repo.ErrFailedToSave) {
		t.Errorf("expected ErrFailedToSave, got %v", err)
	}
}
