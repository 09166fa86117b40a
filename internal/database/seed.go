package database

import (
	"context"

	"github.com/akyairhashvil/dealgrid/internal/models"
)

var demoActivities = []models.Activity{
	{ID: "a1", Type: models.ActivityCall, Description: "Follow up call with decision maker", Date: "2024-01-22", User: "Steven Scott"},
	{ID: "a2", Type: models.ActivityEmail, Description: "Send proposal draft", Date: "2024-01-20", User: "Sam Jones"},
	{ID: "a3", Type: models.ActivityMeeting, Description: "Demo meeting scheduled", Date: "2024-01-18", User: "Robert Thompson"},
	{ID: "a4", Type: models.ActivityCall, Description: "Discovery call completed", Date: "2024-01-15", User: "Steven Scott"},
	{ID: "a5", Type: models.ActivityEmail, Description: "Requirements gathering", Date: "2024-01-12", User: "Sam Jones"},
	{ID: "a6", Type: models.ActivityMeeting, Description: "Initial consultation", Date: "2024-01-10", User: "Robert Thompson"},
}

func withIDs(prefix string, activities []models.Activity) []models.Activity {
	out := make([]models.Activity, len(activities))
	for i, a := range activities {
		a.ID = prefix + "-" + a.ID
		out[i] = a
	}
	return out
}

// DemoDeals is the starter pipeline for an empty database.
func DemoDeals() []models.Deal {
	return []models.Deal{
		{
			ID: "1", DealName: "Google", Company: "Google", Owner: "Steven Scott",
			Status: models.StatusQualified, Value: 70000, Probability: 75,
			ExpectedCloseDate: "2024-10-12", LastActivity: "2024-01-20", Source: "Website",
			Notes:      "Strong interest in our enterprise package",
			Activities: withIDs("1", demoActivities[0:3]),
		},
		{
			ID: "2", DealName: "Apple deal", Company: "Apple", Owner: "Sam Jones",
			Status: models.StatusProposal, Value: 55000, Probability: 60,
			ExpectedCloseDate: "2024-11-09", LastActivity: "2024-01-19", Source: "Referral",
			Activities: withIDs("2", demoActivities[1:4]),
		},
		{
			ID: "3", DealName: "Amazon deal", Company: "Amazon", Owner: "Robert Thompson",
			Status: models.StatusProposal, Value: 100000, Probability: 100,
			ExpectedCloseDate: "2024-08-22", LastActivity: "2024-01-18", Source: "Cold Call",
			Activities: withIDs("3", demoActivities),
		},
		{
			ID: "4", DealName: "Amazon deal", Company: "Amazon", Owner: "Robert Thompson",
			Status: models.StatusWon, Value: 55000, Probability: 25,
			ExpectedCloseDate: "2024-10-11", LastActivity: "2024-01-17", Source: "LinkedIn",
			Activities: withIDs("4", demoActivities[0:2]),
		},
		{
			ID: "5", DealName: "Apple deal", Company: "Apple", Owner: "kian jack",
			Status: models.StatusWon, Value: 30000, Probability: 80,
			ExpectedCloseDate: "2024-08-16", LastActivity: "2024-01-21", Source: "Trade Show",
			Activities: withIDs("5", demoActivities[2:5]),
		},
	}
}

// SeedIfEmpty inserts the demo pipeline into a database with no deals.
func (d *Database) SeedIfEmpty(ctx context.Context) error {
	n, err := d.CountDeals(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, deal := range DemoDeals() {
		if _, err := d.InsertDeal(ctx, deal); err != nil {
			return err
		}
	}
	return nil
}
