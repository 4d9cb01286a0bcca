package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/janolinej/internal/models"
)

// Clients runs the clients sub-menu until the operator goes back.
func (a *App) Clients(ctx context.Context) error {
	a.setScreen(ctx, ScreenClients)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.println("\n" + a.format.heading("👥 GERENCIAMENTO DE CLIENTES"))
		a.println("1. 📋 Listar Clientes")
		a.println("2. ➕ Cadastrar Novo Cliente")
		a.println("3. ↩️ Voltar")

		opt, err := a.option()
		if err != nil {
			return err
		}

		switch opt {
		case "1":
			a.listClients(ctx)
		case "2":
			if err := a.registerClient(ctx); err != nil {
				return err
			}
		case "3":
			return nil
		default:
			a.println("❌ Opção inválida!")
		}
	}
}

func (a *App) listClients(ctx context.Context) {
	clients, err := a.clientService.List(ctx)
	if err != nil {
		a.log.Error(ctx, "list clients failed", "err", err)
		a.println("❌ Erro ao listar clientes!")
		return
	}

	a.println("\n📋 LISTA DE CLIENTES:")
	a.println(rule("-", 90))
	a.println(strings.Join([]string{
		padRight("ID", 3), padRight("NOME", 25), padRight("CNPJ/CPF", 20), padRight("TELEFONE", 15), "EMAIL",
	}, " "))
	a.println(rule("-", 90))
	for _, c := range clients {
		a.println(strings.Join([]string{
			padRight(strconv.FormatInt(c.ID, 10), 3),
			padRight(c.Name, 25),
			padRight(c.TaxID, 20),
			padRight(c.Phone, 15),
			c.Email,
		}, " "))
	}
	a.println(rule("-", 90))
}

// registerClient reads the four client fields and stores them as typed.
func (a *App) registerClient(ctx context.Context) error {
	a.println("\n➕ CADASTRAR NOVO CLIENTE")
	a.println(rule("-", 40))

	var c models.NewClient
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Nome/Razão Social: ", &c.Name},
		{"CNPJ/CPF: ", &c.TaxID},
		{"Telefone: ", &c.Phone},
		{"Email: ", &c.Email},
	}
	for _, f := range fields {
		v, err := a.prompt(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if _, err := a.clientService.Register(ctx, c); err != nil {
		a.println("❌ Erro ao cadastrar cliente!")
		return nil
	}
	a.println("✅ Cliente cadastrado com sucesso!")
	return nil
}
