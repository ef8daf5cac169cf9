package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pydt-client/models"
)

func newVersionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
			_, _ = fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
			_, err := fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
			return err
		},
	}
}
