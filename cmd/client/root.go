package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pydt-client/internal/client"
	"github.com/MKhiriev/go-pydt-client/internal/config"
	"github.com/MKhiriev/go-pydt-client/models"
)

const role = "pydt-client"

// runtimeOpener builds the dependency graph for a command from its parsed
// flags.
type runtimeOpener func(cmd *cobra.Command) (*client.Runtime, error)

func openRuntime(cmd *cobra.Command) (*client.Runtime, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return client.NewRuntime(cmd.Context(), cfg, role)
}

func newRootCmd(info models.AppBuildInfo, open runtimeOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pydt",
		Short: "Play Your Damn Turn client: polls your games and moves turn saves",
		Long: "pydt watches your Play Your Damn Turn games, downloads the save when it is your turn, " +
			"waits for you to save the played turn in the hotseat folder and uploads it.",
		SilenceUsage: true,
	}
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRunCmd(info, open),
		newStatusCmd(open),
		newPlayCmd(open),
		newAccountCmd(open),
		newGameCmd(open),
		newVersionCmd(info),
	)

	return rootCmd
}

// withRuntime opens the runtime for the duration of fn.
func withRuntime(cmd *cobra.Command, open runtimeOpener, fn func(rt *client.Runtime) error) (err error) {
	rt, err := open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(rt)
}
