package args

import (
	"fmt"
	"io"
	"strings"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/screens/shared"
)

const helpWidth = 72

func flagUsage(flag FlagDef) string {
	usage := "--" + flag.Name
	if flag.ShortName != "" {
		usage += ", -" + flag.ShortName
	}
	if flag.HasValue {
		usage += " <value>"
	}
	return usage
}

// printDefinition prints one "  name  description" row, wrapping long
// descriptions under the description column.
func printDefinition(w io.Writer, name, description string) {
	lines := strings.Split(shared.WrapText(description, helpWidth-20), "\n")
	fmt.Fprintf(w, "  %-18s %s\n", name, lines[0])
	for _, l := range lines[1:] {
		fmt.Fprintf(w, "  %-18s %s\n", "", l)
	}
}

func printGlobalFlags(w io.Writer) {
	fmt.Fprintln(w, "\nGlobal Flags:")
	for _, flag := range cli.GlobalFlags {
		printDefinition(w, flagUsage(flag), flag.Description)
	}
}

// GeneralHelp prints the command overview.
func GeneralHelp(w io.Writer, version string) {
	fmt.Fprintln(w, app.TitleStyle.Render(app.Name)+" "+app.PathStyle.Render(version))
	fmt.Fprintf(w, "Usage: %s <command> [arguments...] [--flags...]\n", app.Name)
	fmt.Fprintln(w, shared.WrapText("Scaffolds CodeIgniter 4 event and listener classes and keeps app/Config/Events.php in sync.", helpWidth))

	allCmds := GetAllCommands()
	if len(allCmds) > 0 {
		fmt.Fprintln(w, "\nAvailable Commands:")
		for _, cmd := range allCmds {
			printDefinition(w, cmd.Name(), cmd.Description())
		}
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a specific command.\n", app.Name)
	}
	printGlobalFlags(w)
}

// CommandHelp prints usage, arguments and flags of one command. It returns
// false when the command is unknown.
func CommandHelp(w io.Writer, commandName string) bool {
	cmd, found := GetCommand(commandName)
	if !found {
		return false
	}

	fmt.Fprintf(w, "Usage: %s %s %s\n\n", app.Name, cmd.Name(), cmd.Usage())
	fmt.Fprintln(w, shared.Indent(shared.WrapText(cmd.Description(), helpWidth), "  "))

	if args := cmd.ExpectedArgs(); len(args) > 0 {
		fmt.Fprintln(w, "\nArguments:")
		for _, arg := range args {
			description := arg.Description
			if arg.Required {
				description += " (required)"
			}
			printDefinition(w, arg.Name, description)
		}
	}

	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		fmt.Fprintln(w, "\nFlags:")
		for _, flag := range flags {
			description := flag.Description
			if flag.Required {
				description += " (required)"
			}
			printDefinition(w, flagUsage(flag), description)
		}
	}
	printGlobalFlags(w)
	return true
}
