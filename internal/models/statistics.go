package models

// Statistics are the aggregate counters of the store. Active means a status
// of exactly StatusInProgress.
type Statistics struct {
	TotalClients   int
	TotalProjects  int
	ActiveProjects int
	ActiveBudget   float64
}

// Report is derived from Statistics for the reports screen.
type Report struct {
	Statistics
	CompletionRate  float64 // percent
	AverageBudget   float64
	EstimatedProfit float64
}
