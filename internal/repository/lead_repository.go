package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgLeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) LeadRepository {
	return &pgLeadRepository{pool: pool}
}

const leadColumns = `id, name, first_name, last_name, title, company, company_logo, avatar,
	status, confidence, email, phone, linkedin, location, tech_stack, ai_insight,
	mutual_connection, created_at, updated_at, user_id`

func scanLead(row pgx.Row) (*Lead, error) {
	l := &Lead{}
	var techStack *string
	err := row.Scan(
		&l.ID, &l.Name, &l.FirstName, &l.LastName, &l.Title, &l.Company,
		&l.CompanyLogo, &l.Avatar, &l.Status, &l.Confidence, &l.Email, &l.Phone,
		&l.Linkedin, &l.Location, &techStack, &l.AIInsight, &l.MutualConnection,
		&l.CreatedAt, &l.UpdatedAt, &l.UserID,
	)
	if err != nil {
		return nil, err
	}
	l.TechStack = unmarshalTechStack(techStack)
	return l, nil
}

func (r *pgLeadRepository) FindByUserID(ctx context.Context, userID int) ([]*Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *pgLeadRepository) FindByID(ctx context.Context, id int) (*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	l, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *pgLeadRepository) Create(ctx context.Context, lead *Lead) error {
	query := `
		INSERT INTO leads (name, first_name, last_name, title, company, company_logo, avatar,
			status, confidence, email, phone, linkedin, location, tech_stack, ai_insight,
			mutual_connection, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		lead.Name, lead.FirstName, lead.LastName, lead.Title, lead.Company,
		lead.CompanyLogo, lead.Avatar, lead.Status, lead.Confidence, lead.Email,
		lead.Phone, lead.Linkedin, lead.Location, marshalTechStack(lead.TechStack),
		lead.AIInsight, lead.MutualConnection, lead.UserID,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

// Update writes every mutable column. user_id and created_at are never part
// of the SET list; updated_at is always refreshed.
func (r *pgLeadRepository) Update(ctx context.Context, lead *Lead) error {
	query := `
		UPDATE leads
		SET name = $1, first_name = $2, last_name = $3, title = $4, company = $5,
			company_logo = $6, avatar = $7, status = $8, confidence = $9, email = $10,
			phone = $11, linkedin = $12, location = $13, tech_stack = $14,
			ai_insight = $15, mutual_connection = $16, updated_at = now()
		WHERE id = $17
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query,
		lead.Name, lead.FirstName, lead.LastName, lead.Title, lead.Company,
		lead.CompanyLogo, lead.Avatar, lead.Status, lead.Confidence, lead.Email,
		lead.Phone, lead.Linkedin, lead.Location, marshalTechStack(lead.TechStack),
		lead.AIInsight, lead.MutualConnection, lead.ID,
	).Scan(&lead.UpdatedAt)
}

func (r *pgLeadRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

func (r *pgLeadRepository) MarkStaleProcessingFailed(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads
		SET status = 'failed', updated_at = now()
		WHERE status = 'processing' AND updated_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
