// Command daffodil parses and unparses the built-in seed schemas
// against real files, and can self-test the runtime's seed scenarios.
// It follows the same Command/CommandRegistry shape as the generic
// glint CLI, extended with a selftest command wired to the scenario
// package.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// Command is implemented by every daffodil subcommand.
type Command interface {
	Name() string
	DefineFlags(fs *flag.FlagSet)
	Execute(args []string) int
}

// CommandRegistry holds all available subcommands.
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry builds the registry with every subcommand
// registered.
func NewCommandRegistry() *CommandRegistry {
	r := &CommandRegistry{commands: make(map[string]Command)}
	r.Register(&parseCmd{})
	r.Register(&unparseCmd{})
	r.Register(&selftestCmd{})
	return r
}

func (r *CommandRegistry) Register(cmd Command) { r.commands[cmd.Name()] = cmd }

func (r *CommandRegistry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Exit codes, per the three-way band original_source's CLI keeps
// (0 success, 1 usage error, 2 processing error) — see SPEC_FULL §3.
const (
	exitSuccess       = 0
	exitUsageError    = 1
	exitProcessingErr = 2
)

// version is reported by -V/--version, per spec §6.3.
const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		printUsage()
		if len(args) == 0 {
			return exitUsageError
		}
		return exitSuccess
	}
	if args[0] == "-V" || args[0] == "--version" {
		fmt.Println("daffodil", version)
		return exitSuccess
	}

	registry := NewCommandRegistry()
	cmdName := args[0]
	cmd, ok := registry.Get(cmdName)
	if !ok {
		fmt.Fprintf(os.Stderr, "daffodil: unknown command %q\n", cmdName)
		printUsage()
		return exitUsageError
	}

	fs := flag.NewFlagSet("daffodil "+cmdName, flag.ContinueOnError)
	cmd.DefineFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return exitUsageError
	}

	return cmd.Execute(fs.Args())
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: daffodil [-V|--version] <command> [flags] [args...]

commands:
  parse     parse a binary file against a built-in seed schema
  unparse   unparse an XML infoset back into a binary file
  selftest  run the built-in seed scenarios and report pass/fail

use "daffodil <command> -h" for flags specific to a command.`)
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("daffodil: ")
}
