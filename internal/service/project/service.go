package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/database"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/money"
	"github.com/dost-electric/workforce-backend-go/internal/repository/postgresql"
	"github.com/dost-electric/workforce-backend-go/internal/service/stats"
	"github.com/jackc/pgx/v5"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	payroll.PayrollRepository
	activitylog.LogRepository
}

func NewProjectService(
	db *database.DB,
	projectRepository project.ProjectRepository,
	payrollRepository payroll.PayrollRepository,
	logRepository activitylog.LogRepository,
) project.ProjectService {
	return &ProjectServiceImpl{
		db:                 db,
		ProjectRepository:  projectRepository,
		PayrollRepository:  payrollRepository,
		LogRepository:      logRepository,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest, performer string) (project.ProjectResponse, error) {
	status := project.Status(req.Status)
	if status == "" {
		status = project.StatusActive
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:        req.Name,
		TotalBudget: req.TotalBudget.Decimal,
		Status:      status,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	s.recordActivity(ctx, fmt.Sprintf("Object created: %s", created.Name), performer)

	return project.ToResponse(created), nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return project.ToResponseList(projects), nil
}

// Delete implements project.ProjectService.
// Removal spans the income rows and the project row, so both go in one
// transaction.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string, performer string) error {
	existing, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.ProjectRepository.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.recordActivity(ctx, fmt.Sprintf("Object deleted: %s", existing.Name), performer)
	return nil
}

// AddIncome implements project.ProjectService.
// The income row and the budget bump commit or roll back together, so
// the ledger can never drift from the stored total.
func (s *ProjectServiceImpl) AddIncome(ctx context.Context, req project.AddIncomeRequest, performer string) (project.ProjectResponse, error) {
	existing, err := s.ProjectRepository.GetByID(ctx, req.ProjectID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.ProjectRepository.AddIncome(txCtx, project.IncomeEntry{
			ProjectID: req.ProjectID,
			Amount:    req.Amount.Decimal,
			Comment:   req.Comment,
		}); err != nil {
			return err
		}

		return s.ProjectRepository.IncreaseBudget(txCtx, req.ProjectID, req.Amount.Decimal)
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	refreshed, err := s.ProjectRepository.GetByID(ctx, req.ProjectID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	s.recordActivity(ctx, fmt.Sprintf("Income added to %s: %s", existing.Name, req.Amount.String()), performer)

	return project.ToResponse(refreshed), nil
}

// Stats implements project.ProjectService.
func (s *ProjectServiceImpl) Stats(ctx context.Context, id string) (project.ProjectStatsResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectStatsResponse{}, err
	}

	payouts, err := s.PayrollRepository.List(ctx, payroll.Filter{ObjectID: &id})
	if err != nil {
		return project.ProjectStatsResponse{}, err
	}

	ps := stats.ComputeProjectStats(p, payouts)

	breakdown := make([]project.EmployeeExpense, 0)
	for _, t := range stats.ProjectEmployeeBreakdown(id, payouts) {
		breakdown = append(breakdown, project.EmployeeExpense{
			EmployeeID:   t.EmployeeID,
			EmployeeName: t.EmployeeName,
			Total:        money.FromDecimal(t.Total),
		})
	}

	return project.ProjectStatsResponse{
		ProjectID:             p.ID,
		Name:                  p.Name,
		Spent:                 money.FromDecimal(ps.Spent),
		Budget:                money.FromDecimal(ps.Budget),
		Balance:               money.FromDecimal(ps.Balance),
		Pct:                   ps.Pct,
		IsOverBudget:          ps.IsOverBudget,
		DistinctEmployeeCount: ps.DistinctEmployeeCount,
		Breakdown:             breakdown,
	}, nil
}

func (s *ProjectServiceImpl) recordActivity(ctx context.Context, action string, performer string) {
	if _, err := s.LogRepository.Create(ctx, activitylog.Log{Action: action, Performer: performer}); err != nil {
		slog.Error("Failed to record activity", "action", action, "error", err)
	}
}
