package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// mainMenu is the command surface the main menu dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type mainMenu interface {
	showMenu(ctx context.Context)
	Dashboard(ctx context.Context) error
	Clients(ctx context.Context) error
	Projects(ctx context.Context) error
	Reports(ctx context.Context) error
}

// runMainMenu shows the menu, reads an option and dispatches it until the
// operator picks exit. Every other input, invalid ones included, is followed
// by an Enter prompt. Errors from the screens end the loop; screens handle
// their own service failures and only return input errors.
func runMainMenu(ctx context.Context, m mainMenu, in *bufio.Reader, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.showMenu(ctx)
		opt, err := GetOption(in, "\nEscolha uma opção: ", out)
		if err != nil {
			return err
		}

		switch opt {
		case "1":
			err = m.Dashboard(ctx)
		case "2":
			err = m.Clients(ctx)
		case "3":
			err = m.Projects(ctx)
		case "4":
			err = m.Reports(ctx)
		case "5":
			fmt.Fprintln(out, "\n👋 Obrigado por usar o Sistema Janol.Inej!")
			fmt.Fprintln(out, "💡 Empresa Elétrica - Serviços de Qualidade")
			return nil
		default:
			fmt.Fprintln(out, "❌ Opção inválida!")
		}
		if err != nil {
			return err
		}

		if _, err := GetSimpleText(in, "\nPressione Enter para continuar...", out); err != nil {
			return err
		}
	}
}

func (a *App) showMenu(ctx context.Context) {
	a.setScreen(ctx, ScreenMenu)

	a.println("\n" + rule("=", 60))
	a.println(a.format.heading("🏗️  SISTEMA JANOL.INEJ - EMPRESA ELÉTRICA"))
	if a.user != nil {
		a.printf("👤 Usuário: %s (%s)\n", a.user.Name, a.user.Role)
	}
	a.println(rule("=", 60))
	a.println("1. 📊 Dashboard")
	a.println("2. 👥 Clientes")
	a.println("3. 🏗️ Projetos")
	a.println("4. 📋 Relatórios")
	a.println("5. 🚪 Sair")
	a.println(rule("=", 60))
}
