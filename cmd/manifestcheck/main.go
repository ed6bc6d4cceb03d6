// Command manifestcheck is a linter that checks scoped classes are
// consulted through advertised manifests.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/goliatone/go-scoped/pkg/manifestcheck"
)

func main() {
	singlechecker.Main(manifestcheck.Analyzer)
}
