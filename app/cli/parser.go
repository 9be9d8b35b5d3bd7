package cli

import (
	"strings"

	"github.com/pkg/errors"
)

// CommandRegistryChecker tells the parser which command names exist and which
// of a command's flags are switches. This avoids a dependency cycle between
// the cli and commands packages.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
	IsBoolFlag(command, flag string) bool
}

// ArgDef defines the structure for an expected positional argument.
type ArgDef struct {
	Name        string // e.g., "listener", "event"
	Description string // Help text for the argument
	Required    bool   // Whether the argument is mandatory
}

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "handle")
	ShortName   string // Short name (e.g., "c"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	Required    bool   // Whether the flag is mandatory
}

// GlobalFlags are accepted by every command.
var GlobalFlags = []FlagDef{
	{Name: "help", ShortName: "h", Description: "Show help for the command."},
	{Name: "version", Description: "Print the version and exit."},
	{Name: "debug", Description: "Log every decision taken while editing files."},
	{Name: "verbose", Description: "Log informational messages."},
	{Name: "dry-run", Description: "Print the changes as a unified diff instead of writing them."},
	{Name: "no-input", Description: "Never prompt for missing arguments."},
	{Name: "root", Description: "Project root to use instead of detecting it.", HasValue: true},
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string          // Original arguments, program name excluded
	CommandName      string            // The command specified (e.g., "make:listener")
	Variables        []string          // Positional arguments other than the command name
	Flags            map[string]string // Flags with a value (e.g., --root=./app -> map["root"]="./app")
	BoolFlags        map[string]bool   // Switches (e.g., --handle -> map["handle"]=true)
	HelpRequested    bool              // If a help flag (--help, -h) was detected
	VersionRequested bool              // If a version flag (--version) was detected
	Errors           []error           // Any parsing errors encountered
}

// Bool reports whether any of names was given as a switch.
func (a CommandArgs) Bool(names ...string) bool {
	for _, n := range names {
		if a.BoolFlags[n] {
			return true
		}
	}
	return false
}

// Value returns the value of the first of names that was given one.
func (a CommandArgs) Value(names ...string) (string, bool) {
	for _, n := range names {
		if v, ok := a.Flags[n]; ok {
			return v, true
		}
	}
	return "", false
}

// Arg returns the i-th positional argument, or "" when there are fewer.
func (a CommandArgs) Arg(i int) string {
	if i < 0 || i >= len(a.Variables) {
		return ""
	}
	return a.Variables[i]
}

func isGlobalBoolFlag(name string) bool {
	for _, f := range GlobalFlags {
		if !f.HasValue && (f.Name == name || (f.ShortName != "" && f.ShortName == name)) {
			return true
		}
	}
	return false
}

// ParseCommandLineArgs processes the raw command-line arguments using a command registry checker.
//
// The command is the first positional argument naming a registered command;
// flags may appear before or after it. A long flag takes the following
// argument as its value unless it is a known switch, the value starts with
// "-" or the value is the command itself. Everything after "--" is
// positional.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	commandIndex := -1
	for i, arg := range rawArgs {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") && registry.CommandExists(arg) {
			parsed.CommandName = arg
			commandIndex = i
			break
		}
	}

	isBool := func(name string) bool {
		return isGlobalBoolFlag(name) || registry.IsBoolFlag(parsed.CommandName, name)
	}
	valueAt := func(next int) (string, bool) {
		if next >= len(rawArgs) || next == commandIndex || strings.HasPrefix(rawArgs[next], "-") {
			return "", false
		}
		return rawArgs[next], true
	}
	setValue := func(display, name, value string) {
		if _, exists := parsed.Flags[name]; exists {
			parsed.Errors = append(parsed.Errors, errors.Errorf("flag provided more than once: %s", display))
		}
		parsed.Flags[name] = value
	}
	setBool := func(display, name string) {
		if _, exists := parsed.BoolFlags[name]; exists {
			parsed.Errors = append(parsed.Errors, errors.Errorf("boolean flag provided more than once: %s", display))
		}
		parsed.BoolFlags[name] = true
	}

	for i := 0; i < len(rawArgs); i++ {
		arg := rawArgs[i]
		switch {
		case i == commandIndex:
			continue
		case arg == "--":
			parsed.Variables = append(parsed.Variables, rawArgs[i+1:]...)
			return parsed
		case arg == "--version":
			parsed.VersionRequested = true
		case strings.HasPrefix(arg, "--"):
			flagName, flagValue, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			if flagName == "" {
				parsed.Errors = append(parsed.Errors, errors.Errorf("invalid flag format: %s", arg))
				continue
			}
			if !hasValue && !isBool(flagName) {
				if v, ok := valueAt(i + 1); ok {
					flagValue, hasValue = v, true
					i++
				}
			}
			if hasValue {
				setValue("--"+flagName, flagName, flagValue)
			} else {
				setBool("--"+flagName, flagName)
			}
			if flagName == "help" {
				parsed.HelpRequested = true
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagChars := strings.TrimPrefix(arg, "-")
			valueConsumed := false
			for j, flagChar := range flagChars {
				flagName := string(flagChar)
				if flagName == "h" {
					parsed.HelpRequested = true
				}
				if j == len(flagChars)-1 && !isBool(flagName) {
					if v, ok := valueAt(i + 1); ok {
						setValue("-"+flagName, flagName, v)
						valueConsumed = true
						continue
					}
				}
				setBool("-"+flagName, flagName)
			}
			if valueConsumed {
				i++
			}
		case arg == "-":
			parsed.Errors = append(parsed.Errors, errors.Errorf("invalid flag format: %s", arg))
		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}
