package cli

import (
	"context"
)

// dashboardProjects is how many rows of the status-ordered project list the
// dashboard shows.
const dashboardProjects = 3

// Dashboard prints the statistics summary and the first projects of the list.
func (a *App) Dashboard(ctx context.Context) error {
	a.setScreen(ctx, ScreenDashboard)

	st, err := a.reportService.Statistics(ctx)
	if err != nil {
		a.log.Error(ctx, "dashboard statistics failed", "err", err)
		a.println("❌ Erro ao carregar o dashboard!")
		return nil
	}

	a.println("\n" + a.format.heading("📊 DASHBOARD - RESUMO DO SISTEMA"))
	a.println(rule("-", 50))
	a.printf("👥 Total de Clientes: %d\n", st.TotalClients)
	a.printf("🏗️ Total de Projetos: %d\n", st.TotalProjects)
	a.printf("⚡ Projetos Ativos: %d\n", st.ActiveProjects)
	a.printf("💰 Faturamento em Andamento: R$ %s\n", a.format.money(st.ActiveBudget))
	a.println(rule("-", 50))

	projects, err := a.projectService.List(ctx)
	if err != nil {
		a.log.Error(ctx, "dashboard projects failed", "err", err)
		a.println("❌ Erro ao carregar os projetos!")
		return nil
	}
	if len(projects) > dashboardProjects {
		projects = projects[:dashboardProjects]
	}

	a.println("\n" + a.format.heading("📋 ÚLTIMOS PROJETOS:"))
	for _, p := range projects {
		a.printf("  %s %s - %s (R$ %s)\n", statusMarker(p.Status), p.Name, clientLabel(p), a.format.money(p.Budget))
	}
	return nil
}
