// Package commands implements the command line interface of javelin.
package commands

import (
	"context"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/javelin/internal/engine/registry"
)

// Built-in operations registered next to the application's own.
const (
	commandHelp    = "help"
	commandVersion = "version"
)

// CLI represents the command line interface for javelin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	args    []string
}

// Application represents the application logic interface.
type Application interface {
	Commands() *registry.Registry
}

// New creates a new CLI instance with the given app.
//
// Flag parsing is disabled: the single "--name" token is handed to the
// registry unchanged.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:                "javelin --<command>",
		Short:              "Build and run a Java source tree",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.RunE = c.dispatch

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	if slices.ContainsFunc(c.args, isCompletionRequest) {
		// cobra routes these to its hidden completion command instead of RunE.
		return c.dispatch(c.rootCmd, c.args)
	}
	return c.rootCmd.Execute()
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	c.args = args
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) dispatch(cmd *cobra.Command, args []string) error {
	commands := c.app.Commands()
	commands.MustRegister(commandHelp, func(context.Context) error {
		printHelp(cmd.OutOrStdout(), commands)
		return nil
	})
	commands.MustRegister(commandVersion, func(context.Context) error {
		printVersion(cmd.OutOrStdout())
		return nil
	})

	err := commands.Dispatch(cmd.Context(), args)
	if err != nil {
		report(cmd.ErrOrStderr(), commands, args, err)
	}
	return err
}
