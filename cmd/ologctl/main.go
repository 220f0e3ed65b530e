package main

import (
	"github.com/sligara7/phoebus-golog/internal/cli"
	"github.com/sligara7/phoebus-golog/internal/common/logtrace"
)

func init() {
	logtrace.InitConsoleLogger()
}

func main() {
	cli.Execute()
}
