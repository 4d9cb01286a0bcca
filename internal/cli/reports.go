package cli

import (
	"context"

	"github.com/dmitrijs2005/janolinej/internal/services"
)

// Reports is the reports screen of the main menu. Failures are reported to
// the operator and do not end the session.
func (a *App) Reports(ctx context.Context) error {
	a.setScreen(ctx, ScreenReports)
	if err := a.PrintReport(ctx); err != nil {
		a.log.Debug(ctx, "reports screen left after failure")
	}
	return nil
}

// PrintReport prints the general statistics and the financial figures
// derived from them.
func (a *App) PrintReport(ctx context.Context) error {
	st, err := a.reportService.Statistics(ctx)
	if err != nil {
		a.log.Error(ctx, "report statistics failed", "err", err)
		a.println("❌ Erro ao gerar relatórios!")
		return err
	}
	r := services.NewReport(st)

	a.println("\n" + a.format.heading("📋 RELATÓRIOS DO SISTEMA"))
	a.println(rule("=", 50))

	a.println("📈 ESTATÍSTICAS GERAIS:")
	a.printf("   • Total de Clientes: %d\n", r.TotalClients)
	a.printf("   • Total de Projetos: %d\n", r.TotalProjects)
	a.printf("   • Projetos Ativos: %d\n", r.ActiveProjects)
	if r.TotalProjects > 0 {
		a.printf("   • Taxa de Conclusão: %s\n", a.format.percent(r.CompletionRate))
	} else {
		a.println("   • Taxa de Conclusão: 0%")
	}

	a.println("\n💰 INFORMAÇÕES FINANCEIRAS:")
	a.printf("   • Faturamento em Andamento: R$ %s\n", a.format.money(r.ActiveBudget))
	a.printf("   • Custo Médio por Projeto: R$ %s\n", a.format.money(r.AverageBudget))
	a.printf("   • Lucro Estimado (30%%): R$ %s\n", a.format.money(r.EstimatedProfit))
	return nil
}
