package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pydt-client/internal/client"
	"github.com/MKhiriev/go-pydt-client/internal/presenter"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mineStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func newStatusCmd(open runtimeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Poll once and print the games of every account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				if err := rt.Presenter.Refresh(cmd.Context()); err != nil {
					return fmt.Errorf("poll games: %w", err)
				}
				renderMenu(cmd.OutOrStdout(), rt.Presenter.Menu())
				return nil
			})
		},
	}
}

func renderMenu(w io.Writer, m presenter.Menu) {
	var b strings.Builder

	b.WriteString(headerStyle.Render("State: "+m.State.String()) + "\n\n")

	if len(m.Games) == 0 {
		b.WriteString(dimStyle.Render("No games in progress") + "\n")
	}
	for _, g := range m.Games {
		line := fmt.Sprintf("%-10s %s", g.GameID, g.Label())
		if g.MyTurn {
			line = mineStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if len(m.Accounts) > 0 {
		b.WriteString("\n" + headerStyle.Render("Accounts") + "\n")
	}
	for _, a := range m.Accounts {
		if a.Error != "" {
			b.WriteString(failStyle.Render(a.Name+": "+a.Error) + "\n")
			continue
		}
		b.WriteString(a.Name + "\n")
	}

	if m.Session != nil {
		b.WriteString("\n" + fmt.Sprintf("Watching %s for %s\n", m.Session.SaveDir, m.Session.GameName))
	}

	_, _ = io.WriteString(w, b.String())
}
