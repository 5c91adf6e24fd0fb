// Command rxserver runs the X11 Core Protocol display server implemented in
// internal/server. Flag parsing follows the teacher's declared
// urfave/cli/v2 dependency; config-file loading follows noisetorch's
// BurntSushi/toml config.go. Neither touches core protocol semantics,
// which live entirely in internal/server and internal/wire.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/PerikiyoXD/rxserver/internal/server"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "rxserver",
		Usage:   "an X11 Core Protocol (v11) display server",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to an optional TOML config file",
			},
			&cli.IntFlag{
				Name:  "display",
				Usage: "X display number; listens on TCP port 6000+N",
			},
			&cli.StringFlag{
				Name:  "unix-socket-dir",
				Usage: "directory for the additional Unix domain socket listener",
			},
			&cli.StringFlag{
				Name:  "vendor",
				Usage: "vendor string reported in the Setup reply",
			},
			&cli.UintFlag{
				Name:  "release",
				Usage: "release number reported in the Setup reply",
			},
			&cli.StringFlag{
				Name:  "cookie-file",
				Usage: "path to a MIT-MAGIC-COOKIE-1 value; omit to accept unauthenticated clients",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log Info-level messages as well as errors (the server itself logs only errors, and never per-request protocol errors)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	fc, err := loadFileConfig(c.String("config"))
	if err != nil {
		return err
	}
	cfg, err := buildConfig(fc, c.Int("display"), c.String("unix-socket-dir"), c.String("vendor"), c.String("cookie-file"), c.Uint("release"))
	if err != nil {
		return err
	}
	var logger server.Logger = server.QuietLogger{}
	if c.Bool("verbose") {
		logger = server.StdLogger{}
	}
	cfg.Logger = logger

	eng := server.New(cfg)

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()

	fmt.Printf("rxserver %s: listening on display %d\n", version, cfg.Display)
	return eng.Serve(stop)
}
