package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pydt-client/internal/client"
	"github.com/MKhiriev/go-pydt-client/internal/tui"
	"github.com/MKhiriev/go-pydt-client/models"
)

func newRunCmd(info models.AppBuildInfo, open runtimeOpener) *cobra.Command {
	var headless bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the client with the terminal tray",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				var ui client.UI
				if !headless {
					ui = tui.New(rt.Presenter, rt.Services.AccountService, rt.Logs, info, rt.Logger)
				}

				app, err := client.NewApp(rt.Services, ui, rt.Config.Workers, rt.Logger)
				if err != nil {
					return err
				}
				return app.Run(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&headless, "headless", false, "Run without the terminal tray, only log")

	return cmd
}
