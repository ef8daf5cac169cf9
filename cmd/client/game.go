package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pydt-client/internal/client"
)

func newGameCmd(open runtimeOpener) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "game",
		Short: "Join or leave games",
	}
	cmd.PersistentFlags().StringVarP(&account, "account", "a", "", "Account to act as (default: the selected account)")

	join := &cobra.Command{
		Use:   "join <game id or url>",
		Short: "Join a game that has not started yet",
		Args:  cobra.ExactArgs(1),
	}
	var password string
	join.Flags().StringVarP(&password, "password", "p", "", "Game password")
	join.RunE = func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, open, func(rt *client.Runtime) error {
			game, err := rt.Services.GameService.Join(cmd.Context(), account, args[0], password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "joined %s\n", game.DisplayName)
			return err
		})
	}

	leave := &cobra.Command{
		Use:   "leave <game id or url>",
		Short: "Leave a game that has not started yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				game, err := rt.Services.GameService.Leave(cmd.Context(), account, args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "left %s\n", game.DisplayName)
				return err
			})
		},
	}

	cmd.AddCommand(join, leave)
	return cmd
}
