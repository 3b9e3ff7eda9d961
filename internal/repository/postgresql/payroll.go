package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

const payrollColumns = `
	p.id, p.employee_id, p.object_id, p.object_name, p.amount, p.calculated_salary,
	p.date, p.month, p.type, p.status, p.payment_status, p.comment,
	p.created_at, p.updated_at,
	e.name AS employee_name`

const payrollFrom = `
	FROM payrolls p
	LEFT JOIN employees e ON e.id = p.employee_id`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.ObjectID, &p.ObjectName, &p.Amount, &p.CalculatedSalary,
		&p.Date, &p.Month, &p.Type, &p.Status, &p.PaymentStatus, &p.Comment,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payrolls (
			id, employee_id, object_id, object_name, amount, calculated_salary,
			date, month, type, status, payment_status, comment
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.ObjectID, p.ObjectName, p.Amount, p.CalculatedSalary,
		p.Date, p.Month, p.Type, p.Status, p.PaymentStatus, p.Comment,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollColumns + payrollFrom + ` WHERE p.id = $1`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by ID: %w", err)
	}

	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.ObjectID != nil && *filter.ObjectID != "" {
		baseWhere += fmt.Sprintf(" AND p.object_id = $%d", argIdx)
		args = append(args, *filter.ObjectID)
		argIdx++
	}
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `SELECT` + payrollColumns + payrollFrom + `
		WHERE ` + baseWhere + `
		ORDER BY p.date DESC, p.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, p)
	}

	return records, nil
}

// Approve implements payroll.PayrollRepository.
// Already approved records pass through unchanged, so a double click on
// the approve button is harmless.
func (r *payrollRepository) Approve(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $1, payment_status = $2, updated_at = $3
		WHERE id = $4 AND status <> $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, payroll.StatusApproved, payroll.PaymentPaid, time.Now(), id).Scan(&updatedID)
	if err != nil && err != pgx.ErrNoRows {
		return payroll.Payroll{}, fmt.Errorf("failed to approve payroll: %w", err)
	}

	// No rows means either not found or already approved; GetByID
	// distinguishes the two.
	return r.GetByID(ctx, id)
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payrolls WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}
