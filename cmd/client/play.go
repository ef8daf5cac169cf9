package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pydt-client/internal/client"
	"github.com/MKhiriev/go-pydt-client/models"
)

const sessionCheckInterval = time.Second

func newPlayCmd(open runtimeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "play <game id>",
		Short: "Download the save of a game and upload it once you have played the turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return withRuntime(cmd, open, func(rt *client.Runtime) error {
				w := cmd.OutOrStdout()
				stopNotices := rt.Notices.OnNotify(func(n models.Notification) {
					_, _ = fmt.Fprintf(w, "%s: %s\n", n.Title, n.Message)
				})
				defer stopNotices()

				if err := rt.Presenter.Refresh(ctx); err != nil {
					return fmt.Errorf("poll games: %w", err)
				}
				session, err := rt.Presenter.Activate(ctx, args[0])
				if err != nil {
					return err
				}

				if session.Downloaded != "" {
					_, _ = fmt.Fprintf(w, "Save placed at %s\n", session.Downloaded)
				}
				_, _ = fmt.Fprintf(w, "Play the turn and save it in %s\n", session.SaveDir)

				ticker := time.NewTicker(sessionCheckInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						rt.Presenter.CancelWatch()
						return nil
					case <-ticker.C:
						active, ok := rt.Services.TransferService.ActiveSession()
						if !ok || active.GameID != session.GameID {
							return nil
						}
					}
				}
			})
		},
	}
}
