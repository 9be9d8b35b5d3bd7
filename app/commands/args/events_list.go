package args

import (
	"path/filepath"
	"strings"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	commands_pkg "github.com/Guerrilla-Interactive/eventgen-go-cli/app/commands"
)

// EventsListCommand prints the listen([...]) registrations.
type EventsListCommand struct{}

func init() {
	RegisterCommand(&EventsListCommand{})
}

func (c *EventsListCommand) Name() string {
	return "events:list"
}

func (c *EventsListCommand) Description() string {
	return "Lists the events and listeners registered in the events config file."
}

func (c *EventsListCommand) Usage() string {
	return ""
}

func (c *EventsListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *EventsListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *EventsListCommand) Execute(args cli.CommandArgs) error {
	p, err := ResolveProject(args)
	if err != nil {
		return err
	}
	m, found, err := commands_pkg.ListRegistrations(p.Layout)
	if err != nil {
		return err
	}

	if p.Detected {
		env.Console.Info("%s", strings.TrimRight(app.SummarizeProject(p.Info.Name, p.Info.FrameworkVersion, p.Info.Markers), "\n"))
	}

	rel := p.Layout.EventsFile
	if r, err := filepath.Rel(p.Root, rel); err == nil {
		rel = r
	}
	if !found || len(m.Entries) == 0 {
		env.Console.Muted("No listeners registered in %s", rel)
		return nil
	}

	env.Console.Info("%s", app.TitleStyle.Render("Registered listeners")+" "+app.PathStyle.Render(rel))
	for _, e := range m.Entries {
		env.Console.Info("  %s", app.HighlightStyle.Render(e.Event))
		for _, l := range e.Listeners {
			env.Console.Info("    ┗ %s", l)
		}
	}
	return nil
}
