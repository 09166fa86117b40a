package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

// ViewState is the persisted snapshot of the grid's view preferences.
// The schema tag lets future shapes be recognized and stale ones discarded
// instead of half-parsed.
type ViewState struct {
	Schema  int                    `json:"schema"`
	Sorts   []query.SortKey        `json:"sortConfigs"`
	Columns []columns.ColumnConfig `json:"columns"`
}

// SaveViewState stores the snapshot. Callers treat the write as
// fire-and-forget: the error is for logging, never for aborting the UI
// transition that triggered it.
func (d *Database) SaveViewState(ctx context.Context, vs ViewState) error {
	vs.Schema = config.ViewStateSchema
	raw, err := json.Marshal(vs)
	if err != nil {
		return fmt.Errorf("marshal view state: %w", err)
	}
	return d.SetSetting(ctx, config.ViewStateKey, string(raw))
}

// LoadViewState returns the stored snapshot, or the zero snapshot when
// nothing was stored, the payload does not parse, or it carries an unknown
// schema. Load never fails: a broken snapshot degrades to defaults.
func (d *Database) LoadViewState(ctx context.Context) ViewState {
	raw, ok := d.GetSetting(ctx, config.ViewStateKey)
	if !ok {
		return ViewState{}
	}
	var vs ViewState
	if err := json.Unmarshal([]byte(raw), &vs); err != nil {
		return ViewState{}
	}
	if vs.Schema != config.ViewStateSchema {
		return ViewState{}
	}
	return vs
}
