package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/janolinej/internal/common"
)

const demoCredentials = "admin@email.com / 123456"

// Login shows the welcome banner and asks for credentials until they match
// a seeded account. Failed attempts are unlimited.
func (a *App) Login(ctx context.Context) error {
	a.setScreen(ctx, ScreenLogin)

	a.println(a.format.heading("🏗️  BEM-VINDO AO SISTEMA JANOL.INEJ"))
	a.println(rule("=", 60))
	if a.loginHint {
		a.println("💡 Dica: Use " + demoCredentials + " para login")
		a.println(rule("=", 60))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.println("\n🔐 FAÇA SEU LOGIN")
		email, err := a.prompt("Email: ")
		if err != nil {
			return err
		}
		password, err := GetPassword(a.reader, "Senha: ", a.out, a.ttyFd)
		if err != nil {
			return err
		}

		u, err := a.authService.Authenticate(ctx, email, password)
		if err == nil {
			a.user = u
			a.printf("\n✅ Login realizado com sucesso! Bem-vindo, %s!\n", u.Name)
			return nil
		}

		if errors.Is(err, common.ErrorUnauthorized) {
			a.println("❌ Email ou senha incorretos!")
		} else {
			a.println("❌ Erro ao acessar o sistema!")
		}
		if a.loginHint {
			a.println("💡 Tente: " + demoCredentials)
		}
	}
}
