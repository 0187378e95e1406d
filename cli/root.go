package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Options configure the command-line interface.
type Options struct {
	Output io.Writer
}

type CLI struct {
	rootCmd *cobra.Command
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cmd := &cobra.Command{
		Use:           "interest",
		Short:         "Compound interest calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(opts.Output)

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewCalculateCmd(NewReporter(opts.Output)))

	return &CLI{rootCmd: cmd}
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}
