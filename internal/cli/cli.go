package cli

import (
	"context"
	"io"

	"github.com/alecthomas/kong"
)

// CLI is the top-level command line of arith.
type CLI struct {
	Log     logConfig       `embed:"" group:"log" prefix:"log-"`
	Profile profileConfig   `embed:"" group:"profile"`
	Config  kong.ConfigFlag `help:"Load flag defaults from a YAML file." placeholder:"FILE"`

	Eval   Eval   `cmd:"" default:"withargs" help:"Evaluate expressions. Put -- before an expression that begins with '-'."`
	Tokens Tokens `cmd:"" help:"Print the tokens of an expression."`
	Repl   Repl   `cmd:"" help:"Evaluate expressions interactively."`
}

// Streams are the standard streams available to commands.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// TTY reports whether In is an interactive terminal.
	TTY bool
}

// Run parses args and executes the selected command. The exit function is
// called when parsing requests termination, e.g. after printing help.
func Run(ctx context.Context, exit func(code int), s *Streams, args ...string) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var paths []string
	if p := configPath(); p != "" {
		paths = append(paths, p)
	}

	parser, err := kong.New(&cli,
		kong.Name("arith"),
		kong.Description("Evaluate arithmetic expressions."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(s.Out, s.Err),
		kong.ExplicitGroups([]kong.Group{cli.Log.group(), cli.Profile.group()}),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.Bind(s),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Configuration(loadYAML, paths...),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx, s.Err)
	defer cli.Profile.start(ctx)()

	return ktx.Run(&cli)
}
