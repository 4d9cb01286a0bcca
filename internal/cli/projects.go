package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/janolinej/internal/common"
	"github.com/dmitrijs2005/janolinej/internal/models"
)

const numberInputError = "❌ Erro: ID deve ser número e orçamento deve ser valor!"

// Projects runs the projects sub-menu until the operator goes back.
func (a *App) Projects(ctx context.Context) error {
	a.setScreen(ctx, ScreenProjects)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.println("\n" + a.format.heading("🏗️ GERENCIAMENTO DE PROJETOS"))
		a.println("1. 📋 Listar Projetos")
		a.println("2. ➕ Cadastrar Novo Projeto")
		a.println("3. ↩️ Voltar")

		opt, err := a.option()
		if err != nil {
			return err
		}

		switch opt {
		case "1":
			a.listProjects(ctx)
		case "2":
			if err := a.registerProject(ctx); err != nil {
				return err
			}
		case "3":
			return nil
		default:
			a.println("❌ Opção inválida!")
		}
	}
}

func (a *App) listProjects(ctx context.Context) {
	projects, err := a.projectService.List(ctx)
	if err != nil {
		a.log.Error(ctx, "list projects failed", "err", err)
		a.println("❌ Erro ao listar projetos!")
		return
	}

	a.println("\n📋 LISTA DE PROJETOS:")
	a.println(rule("-", 120))
	a.println(strings.Join([]string{
		padRight("NOME", 25), padRight("CLIENTE", 20), padRight("STATUS", 15),
		padRight("ORÇAMENTO", 12), padRight("INÍCIO", 12), padRight("TÉRMINO", 12),
	}, " "))
	a.println(rule("-", 120))
	for _, p := range projects {
		if !p.Status.Known() {
			a.log.Debug(ctx, "unrecognized project status", "id", p.ID, "status", string(p.Status))
		}
		a.println(strings.Join([]string{
			statusMarker(p.Status),
			padRight(p.Name, 23),
			padRight(clientLabel(p), 19),
			padRight(string(p.Status), 14),
			"R$",
			padRight(a.format.wholeMoney(p.Budget), 8),
			padRight(p.StartDate, 11),
			padRight(p.EndDate, 11),
		}, " "))
	}
	a.println(rule("-", 120))
}

// registerProject reads a project. The client id is parsed as soon as it is
// entered; a bad id or budget aborts the registration before anything is
// stored.
func (a *App) registerProject(ctx context.Context) error {
	a.println("\n➕ CADASTRAR NOVO PROJETO")
	a.println(rule("-", 40))

	var p models.NewProject
	var err error
	if p.Name, err = a.prompt("Nome do Projeto: "); err != nil {
		return err
	}
	if p.Description, err = a.prompt("Descrição: "); err != nil {
		return err
	}

	clients, err := a.clientService.List(ctx)
	if err != nil {
		a.log.Error(ctx, "list clients failed", "err", err)
	}
	a.println("\n👥 CLIENTES DISPONÍVEIS:")
	for _, c := range clients {
		a.printf("ID: %d - %s\n", c.ID, c.Name)
	}

	raw, err := a.prompt("\nID do Cliente: ")
	if err != nil {
		return err
	}
	if p.ClientID, err = parseClientID(raw); err != nil {
		a.rejectNumber(ctx, err)
		return nil
	}
	if p.StartDate, err = a.prompt("Data Início (YYYY-MM-DD): "); err != nil {
		return err
	}
	if p.EndDate, err = a.prompt("Data Término (YYYY-MM-DD): "); err != nil {
		return err
	}
	if raw, err = a.prompt("Orçamento (R$): "); err != nil {
		return err
	}
	if p.Budget, err = parseBudget(raw); err != nil {
		a.rejectNumber(ctx, err)
		return nil
	}

	if _, err := a.projectService.Register(ctx, p); err != nil {
		a.println("❌ Erro ao cadastrar projeto!")
		return nil
	}
	a.println("✅ Projeto cadastrado com sucesso!")
	return nil
}

func (a *App) rejectNumber(ctx context.Context, err error) {
	a.log.Warn(ctx, "project input rejected", "err", err)
	a.println(numberInputError)
}

func parseClientID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: client id %q", common.ErrInvalidNumber, s)
	}
	return id, nil
}

// parseBudget accepts any finite decimal, surrounded by blanks or not.
func parseBudget(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: budget %q", common.ErrInvalidNumber, s)
	}
	return v, nil
}
