package database

import (
	"context"
	"reflect"
	"testing"

	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

func TestSettingsUpsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "theme"); ok {
		t.Fatal("expected missing setting before first write")
	}
	if err := db.SetSetting(ctx, "theme", "default"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	got, ok := db.GetSetting(ctx, "theme")
	if !ok || got != "dracula" {
		t.Errorf("GetSetting = %q, %v; want dracula, true", got, ok)
	}
}

func TestViewStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	cols := columns.Defaults()
	cols[1].Visible = false
	cols[3].Pinned = true
	saved := ViewState{
		Sorts: []query.SortKey{
			{Key: models.FieldValue, Direction: query.Desc},
			{Key: models.FieldDealName, Direction: query.Asc},
		},
		Columns: cols,
	}
	if err := db.SaveViewState(ctx, saved); err != nil {
		t.Fatalf("SaveViewState failed: %v", err)
	}

	got := db.LoadViewState(ctx)
	if got.Schema != config.ViewStateSchema {
		t.Errorf("loaded schema = %d, want %d", got.Schema, config.ViewStateSchema)
	}
	if !reflect.DeepEqual(got.Sorts, saved.Sorts) {
		t.Errorf("loaded sorts = %+v, want %+v", got.Sorts, saved.Sorts)
	}
	if !reflect.DeepEqual(got.Columns, saved.Columns) {
		t.Errorf("loaded columns = %+v, want %+v", got.Columns, saved.Columns)
	}
}

func TestLoadViewStateMissing(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if got := db.LoadViewState(ctx); !reflect.DeepEqual(got, ViewState{}) {
		t.Errorf("LoadViewState on empty store = %+v, want zero", got)
	}
}

func TestLoadViewStateCorruptPayload(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if err := db.SetSetting(ctx, config.ViewStateKey, "{not json"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got := db.LoadViewState(ctx); !reflect.DeepEqual(got, ViewState{}) {
		t.Errorf("LoadViewState on corrupt payload = %+v, want zero", got)
	}
}

func TestLoadViewStateUnknownSchema(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if err := db.SetSetting(ctx, config.ViewStateKey, `{"schema":99,"sortConfigs":[{"key":"value","direction":"desc"}]}`); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got := db.LoadViewState(ctx); !reflect.DeepEqual(got, ViewState{}) {
		t.Errorf("LoadViewState on unknown schema = %+v, want zero", got)
	}
}
