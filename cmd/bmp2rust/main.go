package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/bmp2rust"
	"github.com/bodgit/bmp2rust/monochrome"
	"github.com/bodgit/bmp2rust/rust"
	"github.com/urfave/cli/v2"
)

const (
	exitOK = iota
	exitError
	exitInvalidPixel
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// valueFlags are the flags that consume the following argument
var valueFlags = map[string]struct{}{
	"threshold":      {},
	"bytes-per-line": {},
}

// reorder moves any flags found after the image path in front of it so
// "bmp2rust icon.bmp --threshold 128" parses the same as
// "bmp2rust --threshold 128 icon.bmp".
func reorder(args []string) []string {
	if len(args) == 0 {
		return args
	}

	flags := []string{}
	positional := []string{}

	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case len(arg) > 1 && arg[0] == '-':
			flags = append(flags, arg)
			name := strings.TrimLeft(arg, "-")
			if _, ok := valueFlags[name]; ok && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	out := append([]string{args[0]}, flags...)
	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

func exitCode(err error) int {
	var pe *monochrome.InvalidPixelError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &pe):
		return exitInvalidPixel
	default:
		return exitError
	}
}

const helpTemplate = `NAME:
   {{.Name}} - {{.Usage}}

USAGE:
   {{.UsageText}}

VERSION:
   {{.Version}}

OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
`

// newApp builds the application. Help, version and usage errors are all
// written to stderr so stdout only ever receives a complete literal.
func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "bmp2rust"
	app.Usage = "Convert a 1-bit bitmap into a packed Rust byte array"
	app.UsageText = "bmp2rust [options] <image-file> [--threshold N]"
	app.Version = "1.0.0"
	app.Writer = stderr
	app.ErrWriter = stderr
	app.CustomAppHelpTemplate = helpTemplate

	app.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		fmt.Fprintf(c.App.ErrWriter, "Incorrect Usage. %v\n\n", err)
		cli.HelpPrinter(c.App.ErrWriter, helpTemplate, c.App)
		return &bmp2rust.UsageError{Message: err.Error()}
	}

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "threshold",
			Usage: "black/white threshold, accepted but not applied",
		},
		&cli.IntFlag{
			Name:  "bytes-per-line",
			Value: rust.DefaultBytesPerLine,
			Usage: "bytes on each line of the array, 0 for a single line",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.HelpPrinter(c.App.ErrWriter, helpTemplate, c.App)
			return &bmp2rust.UsageError{Message: "no image file specified"}
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(c.App.ErrWriter)
		}

		converter := bmp2rust.New(logger,
			bmp2rust.WithThreshold(c.Int("threshold")),
			bmp2rust.WithBytesPerLine(c.Int("bytes-per-line")),
		)

		return converter.Convert(c.Args().First(), stdout)
	}

	return app
}

func run(args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).Run(reorder(args))

	var ue *bmp2rust.UsageError
	if err != nil && !errors.As(err, &ue) {
		fmt.Fprintln(stderr, err)
	}

	return exitCode(err)
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
