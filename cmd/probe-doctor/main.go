package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/probe-doctor/internal/adapter"
	"github.com/MKhiriev/probe-doctor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	a := newApp(info, os.Stdout, os.Stderr)

	if err := newRootCmd(a).Execute(); err != nil {
		// the report already explained a failed probe
		if !errors.Is(err, adapter.ErrProbeFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
