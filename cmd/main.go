// cmd/main.go

//	@title			Pub Invoicing API
//	@version		1.0
//	@description	Renders beer order invoices and checks orders against a budget.
//	@BasePath		/

package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := newApp(os.Stdout)

	exitOnError(app.Run(os.Args))
}

// exitOnError prints err to cli.ErrWriter and exits with status 1 through
// cli.OsExiter. A nil err is a no-op.
func exitOnError(err error) {
	if err == nil {
		return
	}

	_ = zap.L().Sync()
	cli.HandleExitCoder(cli.Exit(err.Error(), 1))
}
