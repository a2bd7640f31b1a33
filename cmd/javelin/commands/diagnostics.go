package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/javelin/internal/build"
	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/engine/registry"
)

const example = "Example: javelin --build"

var descriptions = map[string]string{
	"build":        "Compile the sources into the output directory",
	"buildRelease": "Compile without debug information, stopping at the first error",
	"clean":        "Remove the output directory",
	"run":          "Launch the compiled entry point",
	commandHelp:    "Show this help",
	commandVersion: "Print the application version",
}

// report writes the human-readable diagnostic for a failed dispatch.
func report(w io.Writer, commands *registry.Registry, args []string, err error) {
	var b strings.Builder

	switch {
	case errors.Is(err, domain.ErrNoCommand):
		b.WriteString("Please specify the command you wish to run!\n")
		b.WriteString(example + "\n")

	case errors.Is(err, domain.ErrTooManyArguments):
		b.WriteString("Too many arguments!\n")
		b.WriteString(example + "\n")

	case errors.Is(err, domain.ErrMissingPrefix):
		b.WriteString("The command name must be prefixed with two dashes!\n")
		b.WriteString(example + "\n")

	case errors.Is(err, domain.ErrCommandNotFound):
		name, _ := registry.CommandName(err)
		fmt.Fprintf(&b, "Failed to find the specified command '%s'.\n", name)
		b.WriteString("Make sure the command you wish to execute meets the following requirements:\n")
		b.WriteString("\t- It is registered with javelin\n")
		b.WriteString("\t- Its name matches exactly, including case\n")
		b.WriteString("\t- It does not take any arguments\n")
		fmt.Fprintf(&b, "Available commands: %s\n", commands)

	case errors.Is(err, domain.ErrInvocationFault), errors.Is(err, domain.ErrCommandFailed):
		fmt.Fprintf(&b, "Error while executing %s: %v\n", args[0], registry.Cause(err))

	default:
		fmt.Fprintf(&b, "Error: %v\n", err)
	}

	_, _ = io.WriteString(w, b.String())
}

func printHelp(w io.Writer, commands *registry.Registry) {
	var b strings.Builder
	b.WriteString("Usage: javelin --<command>\n\nCommands:\n")
	for _, name := range commands.Names() {
		fmt.Fprintf(&b, "  %-16s %s\n", registry.Prefix+name, descriptions[name])
	}
	_, _ = io.WriteString(w, b.String())
}

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "javelin version %s\n", build.Version)
}
