package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type projectRepository struct {
	db *database.DB
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO projects (id, name, total_budget, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.ID, p.Name, p.TotalBudget, p.Status).
		Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return project.Project{}, project.ErrNameExists
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, total_budget, status, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.TotalBudget, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by ID: %w", err)
	}

	income, err := r.listIncome(ctx, []string{p.ID})
	if err != nil {
		return project.Project{}, err
	}
	p.IncomeHistory = income[p.ID]

	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, total_budget, status, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	var ids []string
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.TotalBudget, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	rows.Close()

	if len(projects) == 0 {
		return projects, nil
	}

	income, err := r.listIncome(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].IncomeHistory = income[projects[i].ID]
	}

	return projects, nil
}

func (r *projectRepository) listIncome(ctx context.Context, projectIDs []string) (map[string][]project.IncomeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, amount, comment, created_at
		FROM project_income
		WHERE project_id = ANY($1)
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query project income: %w", err)
	}
	defer rows.Close()

	income := make(map[string][]project.IncomeEntry)
	for rows.Next() {
		var e project.IncomeEntry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Amount, &e.Comment, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income entry: %w", err)
		}
		income[e.ProjectID] = append(income[e.ProjectID], e)
	}

	return income, nil
}

// Delete implements project.ProjectRepository.
// Income entries go with the project; payroll rows keep their object_id
// pointing at a row that no longer exists, which the aggregator treats
// as unattributed spend.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM project_income WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete project income: %w", err)
	}

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// AddIncome implements project.ProjectRepository.
func (r *projectRepository) AddIncome(ctx context.Context, entry project.IncomeEntry) (project.IncomeEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO project_income (id, project_id, amount, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, entry.ID, entry.ProjectID, entry.Amount, entry.Comment).
		Scan(&entry.CreatedAt)

	if err != nil {
		return project.IncomeEntry{}, fmt.Errorf("failed to add income entry: %w", err)
	}

	return entry, nil
}

// IncreaseBudget implements project.ProjectRepository.
func (r *projectRepository) IncreaseBudget(ctx context.Context, projectID string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET total_budget = total_budget + $1, updated_at = $2
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, amount, time.Now(), projectID)
	if err != nil {
		return fmt.Errorf("failed to increase project budget: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}
