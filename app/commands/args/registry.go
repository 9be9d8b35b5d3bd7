package args

import (
	"fmt"
	"sort"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
)

// ArgDef is an alias for cli.ArgDef
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "make:event").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<Name|Folder/Name>").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered CLI commands.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. Each command registers
// itself from an init() function in its own file.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns every registered command sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// IsBoolFlag reports whether flag is a switch of the named command.
func IsBoolFlag(command, flag string) bool {
	cmd, found := commandRegistry[command]
	if !found {
		return false
	}
	for _, f := range cmd.ExpectedFlags() {
		if f.HasValue {
			continue
		}
		if f.Name == flag || (f.ShortName != "" && f.ShortName == flag) {
			return true
		}
	}
	return false
}
