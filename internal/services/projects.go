package services

import (
	"context"

	"github.com/dmitrijs2005/janolinej/internal/common"
	"github.com/dmitrijs2005/janolinej/internal/logging"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"github.com/dmitrijs2005/janolinej/internal/store"
)

// ProjectService lists and registers projects.
type ProjectService interface {
	List(ctx context.Context) ([]models.ProjectView, error)
	Register(ctx context.Context, p models.NewProject) (int64, error)
}

type projectService struct {
	repos store.RepositoryManager
	db    DB
	log   logging.Logger
}

func NewProjectService(repos store.RepositoryManager, db DB, log logging.Logger) ProjectService {
	return &projectService{repos: repos, db: db, log: log}
}

// List returns every project with its client name, ordered by status text.
func (s *projectService) List(ctx context.Context) ([]models.ProjectView, error) {
	return s.repos.Projects(s.db).ListWithClient(ctx)
}

// Register inserts p with the default status. The client id is not checked.
func (s *projectService) Register(ctx context.Context, p models.NewProject) (int64, error) {
	id, err := s.repos.Projects(s.db).Create(ctx, p)
	if err != nil {
		logWriteFailure(ctx, s.log, "project registration failed", err)
		return 0, err
	}
	s.log.Info(ctx, "project registered", "id", id, "client_id", p.ClientID)
	return id, nil
}

func logWriteFailure(ctx context.Context, log logging.Logger, msg string, err error) {
	reason := "unknown"
	if r := common.Reason(err); r != nil {
		reason = r.Error()
	}
	log.Error(ctx, msg, "reason", reason, "err", err)
}
