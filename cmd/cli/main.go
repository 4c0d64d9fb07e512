// workdigest - Work-item digest tool
//
// workdigest turns tab-delimited work-item rows pasted from a
// spreadsheet into a grouped, copy-ready digest: meetings with their
// times, deployments with live dates, personal tasks with target
// dates.
package main

import (
	"os"

	"workdigest/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
