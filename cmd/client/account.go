package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pydt-client/internal/client"
	"github.com/MKhiriev/go-pydt-client/internal/service"
)

func newAccountCmd(open runtimeOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the local roster of PYDT accounts",
	}

	cmd.AddCommand(
		newAccountAddCmd(open),
		newAccountRemoveCmd(open),
		newAccountListCmd(open),
		newAccountSelectCmd(open),
	)

	return cmd
}

func newAccountAddCmd(open runtimeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "add [token]",
		Short: "Validate a token and add its account (reads the token from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := tokenArg(cmd, args)
			if err != nil {
				return err
			}

			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				account, err := rt.Services.AccountService.ValidateAndAdd(cmd.Context(), token)
				if errors.Is(err, service.ErrInvalidToken) {
					return errors.New("invalid token")
				}
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %s (steam id %s)\n", account.Name, account.SteamID)
				return err
			})
		},
	}
}

func tokenArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read token from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func newAccountRemoveCmd(open runtimeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an account and its cached profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				if err := rt.Services.AccountService.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return err
			})
		},
	}
}

func newAccountListCmd(open runtimeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				accounts, err := rt.Services.AccountService.List(cmd.Context())
				if err != nil {
					return err
				}
				selected, _, err := rt.Services.AccountService.Selected(cmd.Context())
				if err != nil {
					return err
				}

				for _, a := range accounts {
					marker := " "
					if a.Name == selected.Name {
						marker = "*"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, a.Name, a.SteamID)
				}
				return nil
			})
		},
	}
}

func newAccountSelectCmd(open runtimeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "select <name>",
		Short: "Make an account the default for game commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				return rt.Services.AccountService.Select(cmd.Context(), args[0])
			})
		},
	}
}
