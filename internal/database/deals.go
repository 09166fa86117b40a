package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/google/uuid"
)

const dealColumns = `id, deal_name, company, owner, status, value, probability,
	expected_close_date, last_activity, source, notes`

// GetDeals returns every deal in insertion order, activities attached.
func (d *Database) GetDeals(ctx context.Context) ([]models.Deal, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+dealColumns+" FROM deals ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, wrapDealErr("list", "", err)
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, wrapDealErr("scan", "", err)
		}
		deals = append(deals, deal)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDealErr("list", "", err)
	}

	for i := range deals {
		activities, err := d.GetActivities(ctx, deals[i].ID)
		if err != nil {
			return nil, err
		}
		deals[i].Activities = activities
	}
	return deals, nil
}

// GetDeal fetches a single deal by id.
func (d *Database) GetDeal(ctx context.Context, id string) (models.Deal, error) {
	row := d.DB.QueryRowContext(ctx,
		"SELECT "+dealColumns+" FROM deals WHERE id = ?", id)
	deal, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return models.Deal{}, wrapDealErr("get", id, ErrDealNotFound)
	}
	if err != nil {
		return models.Deal{}, wrapDealErr("get", id, err)
	}
	deal.Activities, err = d.GetActivities(ctx, id)
	if err != nil {
		return models.Deal{}, err
	}
	return deal, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(r rowScanner) (models.Deal, error) {
	var deal models.Deal
	err := r.Scan(&deal.ID, &deal.DealName, &deal.Company, &deal.Owner,
		&deal.Status, &deal.Value, &deal.Probability,
		&deal.ExpectedCloseDate, &deal.LastActivity, &deal.Source, &deal.Notes)
	return deal, err
}

// InsertDeal appends a deal at the end of the insertion order. A missing id
// gets a fresh uuid. Returns the stored deal.
func (d *Database) InsertDeal(ctx context.Context, deal models.Deal) (models.Deal, error) {
	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	_, err := d.DB.ExecContext(ctx, `INSERT INTO deals
		(id, deal_name, company, owner, status, value, probability,
		 expected_close_date, last_activity, source, notes, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM deals))`,
		deal.ID, deal.DealName, deal.Company, deal.Owner, deal.Status,
		deal.Value, deal.Probability, deal.ExpectedCloseDate,
		deal.LastActivity, deal.Source, deal.Notes)
	if err != nil {
		return models.Deal{}, wrapDealErr("insert", deal.ID, err)
	}
	for _, a := range deal.Activities {
		if err := d.AddActivity(ctx, deal.ID, a); err != nil {
			return models.Deal{}, err
		}
	}
	return deal, nil
}

// UpdateDeal writes a deal's scalar fields back. Activities are immutable
// and only appended through AddActivity.
func (d *Database) UpdateDeal(ctx context.Context, deal models.Deal) error {
	res, err := d.DB.ExecContext(ctx, `UPDATE deals SET
		deal_name = ?, company = ?, owner = ?, status = ?, value = ?,
		probability = ?, expected_close_date = ?, last_activity = ?,
		source = ?, notes = ? WHERE id = ?`,
		deal.DealName, deal.Company, deal.Owner, deal.Status, deal.Value,
		deal.Probability, deal.ExpectedCloseDate, deal.LastActivity,
		deal.Source, deal.Notes, deal.ID)
	if err != nil {
		return wrapDealErr("update", deal.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrapDealErr("update", deal.ID, ErrDealNotFound)
	}
	return nil
}

// DeleteDeals removes the given deals and their activity logs.
func (d *Database) DeleteDeals(ctx context.Context, ids []string) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapDealErr("delete", "", err)
	}
	defer tx.Rollback()
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, "DELETE FROM activities WHERE deal_id = ?", id); err != nil {
			return wrapDealErr("delete", id, err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM deals WHERE id = ?", id); err != nil {
			return wrapDealErr("delete", id, err)
		}
	}
	return tx.Commit()
}

// DuplicateDeal copies a deal under a fresh id with a " (Copy)" name suffix,
// appended at the end of the insertion order.
func (d *Database) DuplicateDeal(ctx context.Context, id string) (models.Deal, error) {
	deal, err := d.GetDeal(ctx, id)
	if err != nil {
		return models.Deal{}, err
	}
	deal.ID = uuid.NewString()
	deal.DealName += " (Copy)"
	copies := make([]models.Activity, len(deal.Activities))
	for i, a := range deal.Activities {
		a.ID = uuid.NewString()
		copies[i] = a
	}
	deal.Activities = copies
	return d.InsertDeal(ctx, deal)
}

// GetActivities returns a deal's activity log in chronological display order.
func (d *Database) GetActivities(ctx context.Context, dealID string) ([]models.Activity, error) {
	rows, err := d.DB.QueryContext(ctx,
		`SELECT id, type, description, date, user FROM activities
		 WHERE deal_id = ? ORDER BY position ASC, id ASC`, dealID)
	if err != nil {
		return nil, wrapDealErr("list activities", dealID, err)
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.Date, &a.User); err != nil {
			return nil, wrapDealErr("scan activity", dealID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AddActivity appends one activity to a deal's log.
func (d *Database) AddActivity(ctx context.Context, dealID string, a models.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := d.DB.ExecContext(ctx, `INSERT INTO activities
		(id, deal_id, type, description, date, user, position)
		VALUES (?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM activities WHERE deal_id = ?))`,
		a.ID, dealID, a.Type, a.Description, a.Date, a.User, dealID)
	return wrapDealErr("add activity", dealID, err)
}

// CountDeals reports how many deals exist.
func (d *Database) CountDeals(ctx context.Context) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM deals").Scan(&n)
	if err != nil {
		return 0, wrapDealErr("count", "", err)
	}
	return n, nil
}
