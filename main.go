package main

import (
	"fmt"
	"os"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	commands "github.com/Guerrilla-Interactive/eventgen-go-cli/app/commands/args"
	"github.com/rs/zerolog/log"
)

// Define Version (will be set via linker flags during build)
var Version = "v0.1.0"

// commandRegistryCheckerBridge implements cli.CommandRegistryChecker using the commands package.
// This avoids a direct import cycle.
type commandRegistryCheckerBridge struct{}

func (b commandRegistryCheckerBridge) CommandExists(name string) bool {
	return commands.CommandExists(name)
}

func (b commandRegistryCheckerBridge) IsBoolFlag(command, flag string) bool {
	return commands.IsBoolFlag(command, flag)
}

func main() {
	parsedArgs := cli.ParseCommandLineArgs(os.Args[1:], commandRegistryCheckerBridge{})

	// --version takes precedence over everything else
	if parsedArgs.VersionRequested {
		fmt.Printf("%s %s\n", app.Name, Version)
		os.Exit(0)
	}

	level := cli.LogLevel(parsedArgs, commands.ConfiguredLogLevel(parsedArgs))
	if err := cli.InitLogger(cli.LogConfig{Level: level}); err != nil {
		fmt.Fprintln(os.Stderr, app.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}

	if len(parsedArgs.Errors) > 0 {
		fmt.Fprintln(os.Stderr, app.ErrorStyle.Render("✗ Error parsing arguments:"))
		for _, err := range parsedArgs.Errors {
			fmt.Fprintf(os.Stderr, "  - %v\n", err)
		}
		os.Exit(1)
	}

	if parsedArgs.CommandName == "" {
		if len(parsedArgs.Variables) > 0 && !parsedArgs.HelpRequested {
			fmt.Fprintln(os.Stderr, app.ErrorStyle.Render(fmt.Sprintf("✗ Unknown command '%s'", parsedArgs.Variables[0])))
			fmt.Fprintf(os.Stderr, "Run `%s --help` for usage.\n", app.Name)
			os.Exit(1)
		}
		commands.GeneralHelp(os.Stdout, Version)
		os.Exit(0)
	}

	if parsedArgs.HelpRequested {
		commands.CommandHelp(os.Stdout, parsedArgs.CommandName)
		os.Exit(0)
	}

	executeAndExit(parsedArgs)
}

// executeAndExit runs the parsed command and exits with its status.
func executeAndExit(parsedArgs cli.CommandArgs) {
	cmd, _ := commands.GetCommand(parsedArgs.CommandName)
	log.Debug().Str("command", cmd.Name()).Strs("variables", parsedArgs.Variables).
		Interface("flags", parsedArgs.Flags).Interface("bool_flags", parsedArgs.BoolFlags).Msg("executing")

	if err := cmd.Execute(parsedArgs); err != nil {
		fmt.Fprintln(os.Stderr, app.ErrorStyle.Render(fmt.Sprintf("✗ %s: %v", parsedArgs.CommandName, err)))
		os.Exit(1)
	}
	os.Exit(0)
}
