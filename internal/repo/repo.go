package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrNotFound = errors.New("not found")

// HealthProfile is the stored body data of one user. Lengths are cm, weights kg.
type HealthProfile struct {
	UserID        int       `json:"-"`
	Gender        string    `json:"gender"`
	BirthYear     int       `json:"birth_year"`
	HeightCm      float64   `json:"height_cm"`
	WeightKg      float64   `json:"weight_kg"`
	ActivityLevel string    `json:"activity_level"`
	Goal          string    `json:"goal"`
	BodyFrame     string    `json:"body_frame"`
	BodyFat       *float64  `json:"body_fat,omitempty"`
	Neck          *float64  `json:"neck,omitempty"`
	Waist         *float64  `json:"waist,omitempty"`
	Hip           *float64  `json:"hip,omitempty"`
	Wrist         *float64  `json:"wrist,omitempty"`
	Shoulder      *float64  `json:"shoulder,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type HistoryEntry struct {
	ID              uuid.UUID       `json:"id"`
	UserID          int             `json:"-"`
	Kind            string          `json:"kind"`
	Summary         []string        `json:"summary"`
	Recommendations []string        `json:"recommendations"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfile(ctx context.Context, userID int) (HealthProfile, error)
	SaveProfile(ctx context.Context, p HealthProfile) error
	SaveHistory(ctx context.Context, e HistoryEntry) error
	ListHistory(ctx context.Context, userID, limit int) ([]HistoryEntry, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

// GetByLogin returns the user id and password hash, or ErrNotFound.
func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", ErrNotFound
	}
	return id, hash, err
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID int) (HealthProfile, error) {
	p := HealthProfile{UserID: userID}
	query := `SELECT gender, birth_year, height_cm, weight_kg, activity_level, goal, body_frame,
		body_fat, neck, waist, hip, wrist, shoulder, updated_at
		FROM health_profiles WHERE user_id=$1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.Gender, &p.BirthYear, &p.HeightCm, &p.WeightKg, &p.ActivityLevel, &p.Goal, &p.BodyFrame,
		&p.BodyFat, &p.Neck, &p.Waist, &p.Hip, &p.Wrist, &p.Shoulder, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return HealthProfile{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) SaveProfile(ctx context.Context, p HealthProfile) error {
	query := `INSERT INTO health_profiles (user_id, gender, birth_year, height_cm, weight_kg, activity_level,
		goal, body_frame, body_fat, neck, waist, hip, wrist, shoulder, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
		ON CONFLICT (user_id) DO UPDATE SET
		gender=EXCLUDED.gender, birth_year=EXCLUDED.birth_year, height_cm=EXCLUDED.height_cm,
		weight_kg=EXCLUDED.weight_kg, activity_level=EXCLUDED.activity_level, goal=EXCLUDED.goal,
		body_frame=EXCLUDED.body_frame, body_fat=EXCLUDED.body_fat, neck=EXCLUDED.neck,
		waist=EXCLUDED.waist, hip=EXCLUDED.hip, wrist=EXCLUDED.wrist, shoulder=EXCLUDED.shoulder,
		updated_at=now()`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Gender, p.BirthYear, p.HeightCm, p.WeightKg, p.ActivityLevel,
		p.Goal, p.BodyFrame, p.BodyFat, p.Neck, p.Waist, p.Hip, p.Wrist, p.Shoulder)
	return err
}

func (r *PostgresRepository) SaveHistory(ctx context.Context, e HistoryEntry) error {
	query := `INSERT INTO history (id, user_id, kind, summary, recommendations, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Kind, pq.Array(e.Summary), pq.Array(e.Recommendations), []byte(e.Payload), e.CreatedAt)
	return err
}

// ListHistory returns the newest entries first.
func (r *PostgresRepository) ListHistory(ctx context.Context, userID, limit int) ([]HistoryEntry, error) {
	query := `SELECT id, kind, summary, recommendations, payload, created_at
		FROM history WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HistoryEntry{}
	for rows.Next() {
		e := HistoryEntry{UserID: userID}
		var payload []byte
		if err := rows.Scan(&e.ID, &e.Kind, pq.Array(&e.Summary), pq.Array(&e.Recommendations), &payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Payload = payload
		out = append(out, e)
	}
	return out, rows.Err()
}
