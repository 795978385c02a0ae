package main

import (
	"os"

	"github.com/w4/1p/internal/cli"
)

// set via -ldflags at release time
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{
		Version: orNA(buildVersion),
		Commit:  orNA(buildCommit),
		Date:    orNA(buildDate),
	}))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
