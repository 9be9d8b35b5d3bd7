package args

import (
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	commands_pkg "github.com/Guerrilla-Interactive/eventgen-go-cli/app/commands"
	"github.com/rs/zerolog/log"
)

// MakeEventCommand creates an event class.
type MakeEventCommand struct{}

func init() {
	RegisterCommand(&MakeEventCommand{})
}

func (c *MakeEventCommand) Name() string {
	return "make:event"
}

func (c *MakeEventCommand) Description() string {
	return "Creates an event class under the events namespace."
}

func (c *MakeEventCommand) Usage() string {
	return "<Name|Folder/Name>"
}

func (c *MakeEventCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "event", Description: "Event name (e.g. UserRegistered or User/Registered)", Required: true},
	}
}

func (c *MakeEventCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *MakeEventCommand) Execute(args cli.CommandArgs) error {
	event, err := requireName(args, 0, c.ExpectedArgs()[0], "UserRegistered")
	if err != nil {
		return err
	}
	p, err := ResolveProject(args)
	if err != nil {
		return err
	}

	change, err := commands_pkg.MakeEvent(p.Layout, event, dryRun(args))
	if err != nil {
		return err
	}
	log.Info().Str("event", event.FQCN(p.Layout.EventsPrefix)).Str("status", change.Status).Msg("event stub")
	reportChanges(p.Root, []commands_pkg.FileChange{change})
	return nil
}
