package models

// Status is the free-text lifecycle label of a project.
type Status string

const (
	StatusActive     Status = "Ativo"
	StatusInProgress Status = "Em Andamento"
	StatusPlanning   Status = "Planejamento"
	StatusDone       Status = "Concluído"
)

// DefaultStatus is written for every project registered through the client.
const DefaultStatus = StatusActive

// Known reports whether s is one of the statuses the business uses.
func (s Status) Known() bool {
	switch s {
	case StatusActive, StatusInProgress, StatusPlanning, StatusDone:
		return true
	}
	return false
}

// Project is a contracted job. ClientID may be nil or point at a client that
// does not exist; dates are free text.
type Project struct {
	ID          int64
	Name        string
	Description string
	ClientID    *int64
	Status      Status
	StartDate   string
	EndDate     string
	Budget      float64
}

// ProjectView is a project joined with its client's name. ClientName is nil
// when the reference is missing or dangling.
type ProjectView struct {
	Project
	ClientName *string
}

// NewProject carries the operator-supplied fields of a project registration.
type NewProject struct {
	Name        string
	Description string
	ClientID    int64
	StartDate   string
	EndDate     string
	Budget      float64
}
