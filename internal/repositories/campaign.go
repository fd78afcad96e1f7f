package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/sqlite"
)

var ErrCampaignNotFound = errors.NewSentinel("campaign not found")

// CampaignRepository persists generated campaign plans. The plan is stored
// as a JSON document next to the columns used for listing and lookup.
type CampaignRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewCampaignRepository(db *sqlite.Database, logger *slog.Logger) *CampaignRepository {
	return &CampaignRepository{
		db:     db,
		logger: logger.With("source", "CampaignRepository"),
	}
}

// CampaignSummary is the listing projection of a stored campaign.
type CampaignSummary struct {
	ID         string    `db:"id" json:"id"`
	Seed       int64     `db:"seed" json:"seed"`
	Difficulty string    `db:"difficulty" json:"difficulty"`
	ThemeID    string    `db:"theme_id" json:"themeId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// Insert stores a freshly generated plan.
func (r *CampaignRepository) Insert(ctx context.Context, plan *models.CampaignPlan) error {
	document, err := json.Marshal(plan)
	if err != nil {
		return errors.Wrap(err, "marshal campaign plan", slog.String("id", plan.ID))
	}

	stmt := `INSERT INTO campaigns (id, seed, difficulty, theme_id, plan, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`
	if _, err = r.db.ReadWrite.ExecContext(ctx, stmt,
		plan.ID, plan.Seed, plan.Difficulty, plan.ThemeID, string(document),
		plan.CreatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return errors.Wrap(err, "insert campaign", slog.String("id", plan.ID))
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "stored campaign", slog.String("id", plan.ID))
	return nil
}

// Get loads a stored plan by id.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*models.CampaignPlan, error) {
	var document string
	stmt := `SELECT plan FROM campaigns WHERE id = ?`
	if err := r.db.ReadOnly.QueryRowxContext(ctx, stmt, id).Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrCampaignNotFound, "get campaign", slog.String("id", id))
		}
		return nil, errors.Wrap(err, "query campaign", slog.String("id", id))
	}

	var plan models.CampaignPlan
	if err := json.Unmarshal([]byte(document), &plan); err != nil {
		return nil, errors.Wrap(err, "unmarshal campaign plan", slog.String("id", id))
	}
	return &plan, nil
}

// Latest lists the most recently stored campaigns, newest first.
func (r *CampaignRepository) Latest(ctx context.Context, limit int) ([]CampaignSummary, error) {
	var summaries []CampaignSummary
	stmt := `SELECT id, seed, difficulty, theme_id, created_at
	FROM campaigns
	ORDER BY created_at DESC, id DESC
	LIMIT ?`
	if err := r.db.ReadOnly.SelectContext(ctx, &summaries, stmt, limit); err != nil {
		return nil, errors.Wrap(err, "list campaigns")
	}
	return summaries, nil
}
