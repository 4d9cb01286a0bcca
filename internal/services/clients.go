package services

import (
	"context"

	"github.com/dmitrijs2005/janolinej/internal/logging"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"github.com/dmitrijs2005/janolinej/internal/store"
)

// ClientService lists and registers clients.
type ClientService interface {
	List(ctx context.Context) ([]models.Client, error)
	Register(ctx context.Context, c models.NewClient) (int64, error)
}

type clientService struct {
	repos store.RepositoryManager
	db    DB
	log   logging.Logger
}

func NewClientService(repos store.RepositoryManager, db DB, log logging.Logger) ClientService {
	return &clientService{repos: repos, db: db, log: log}
}

// List returns every client ordered by name.
func (s *clientService) List(ctx context.Context) ([]models.Client, error) {
	return s.repos.Clients(s.db).List(ctx)
}

// Register inserts c. Field values are stored as given, empty or not.
func (s *clientService) Register(ctx context.Context, c models.NewClient) (int64, error) {
	id, err := s.repos.Clients(s.db).Create(ctx, c)
	if err != nil {
		logWriteFailure(ctx, s.log, "client registration failed", err)
		return 0, err
	}
	s.log.Info(ctx, "client registered", "id", id)
	return id, nil
}
