package query

import "github.com/akyairhashvil/dealgrid/internal/models"

// CycleSort advances the sort config for a header click on key.
//
// A plain click replaces the whole config: an unsorted column becomes the
// single ascending key, a second click flips it descending, a third clears
// the config. A shift click edits the key within the existing multi-key
// config instead: append ascending, flip to descending, then remove.
func CycleSort(sorts []SortKey, key models.Field, shift bool) []SortKey {
	if !shift {
		for _, s := range sorts {
			if s.Key != key {
				continue
			}
			if s.Direction == Asc {
				return []SortKey{{Key: key, Direction: Desc}}
			}
			return nil
		}
		return []SortKey{{Key: key, Direction: Asc}}
	}

	out := append([]SortKey(nil), sorts...)
	for i, s := range out {
		if s.Key != key {
			continue
		}
		if s.Direction == Asc {
			out[i].Direction = Desc
			return out
		}
		return append(out[:i], out[i+1:]...)
	}
	return append(out, SortKey{Key: key, Direction: Asc})
}

// SortDirection reports the active direction for a column header, if any.
func SortDirection(sorts []SortKey, key models.Field) (Direction, bool) {
	for _, s := range sorts {
		if s.Key == key {
			return s.Direction, true
		}
	}
	return "", false
}
