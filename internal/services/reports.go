package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/janolinej/internal/dbx"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"github.com/dmitrijs2005/janolinej/internal/store"
)

// ProfitMargin is the share of the active budget reported as estimated profit.
const ProfitMargin = 0.3

// ReportService computes the aggregate counters of the store.
type ReportService interface {
	Statistics(ctx context.Context) (models.Statistics, error)
}

type reportService struct {
	repos store.RepositoryManager
	db    DB
}

func NewReportService(repos store.RepositoryManager, db DB) ReportService {
	return &reportService{repos: repos, db: db}
}

// Statistics reads the four counters inside one transaction so they describe
// the same state.
func (s *reportService) Statistics(ctx context.Context) (models.Statistics, error) {
	var st models.Statistics

	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if st.TotalClients, err = s.repos.Clients(tx).Count(ctx); err != nil {
			return err
		}
		projects := s.repos.Projects(tx)
		if st.TotalProjects, err = projects.Count(ctx); err != nil {
			return err
		}
		if st.ActiveProjects, err = projects.CountByStatus(ctx, models.StatusInProgress); err != nil {
			return err
		}
		st.ActiveBudget, err = projects.SumBudgetByStatus(ctx, models.StatusInProgress)
		return err
	})
	if err != nil {
		return models.Statistics{}, fmt.Errorf("statistics: %w", err)
	}
	return st, nil
}

// NewReport derives the report figures from st. The average divides the
// active budget by the total project count, not the active count.
func NewReport(st models.Statistics) models.Report {
	r := models.Report{
		Statistics:      st,
		EstimatedProfit: st.ActiveBudget * ProfitMargin,
	}
	if st.TotalProjects > 0 {
		total := float64(st.TotalProjects)
		r.CompletionRate = float64(st.TotalProjects-st.ActiveProjects) / total * 100
		r.AverageBudget = st.ActiveBudget / total
	}
	return r
}
