package main

import (
	"os"

	"github.com/MKhiriev/go-pydt-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := newRootCmd(info, openRuntime).Execute(); err != nil {
		os.Exit(1)
	}
}
