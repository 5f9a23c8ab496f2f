package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/govuksite/cmd/govuksite/commands"
	foundation "git.home.luguber.info/inful/govuksite/internal/foundation/errors"
	"git.home.luguber.info/inful/govuksite/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("govuksite"),
		kong.Description("Assemble the GOV.UK design-system site configuration for a documentation build."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default(), Stdout: os.Stdout}
	if err := parser.Run(global, cli); err != nil {
		foundation.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
