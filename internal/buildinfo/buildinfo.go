// Package buildinfo exposes version metadata injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/janolinej/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/janolinej/internal/buildinfo.buildDate=2024-01-01 \
//	  -X github.com/dmitrijs2005/janolinej/internal/buildinfo.buildCommit=abc123"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the version, date and commit to w, one per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
