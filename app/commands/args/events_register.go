package args

import (
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	commands_pkg "github.com/Guerrilla-Interactive/eventgen-go-cli/app/commands"
)

// EventsRegisterCommand adds a listener to an event in the events config
// file without creating any class.
type EventsRegisterCommand struct{}

func init() {
	RegisterCommand(&EventsRegisterCommand{})
}

func (c *EventsRegisterCommand) Name() string {
	return "events:register"
}

func (c *EventsRegisterCommand) Description() string {
	return "Registers an existing listener for an event in the events config file."
}

func (c *EventsRegisterCommand) Usage() string {
	return "<Listener> <Event>"
}

func (c *EventsRegisterCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "listener", Description: "Listener name", Required: true},
		{Name: "event", Description: "Event name", Required: true},
	}
}

func (c *EventsRegisterCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

func (c *EventsRegisterCommand) Execute(args cli.CommandArgs) error {
	defs := c.ExpectedArgs()
	listener, err := requireName(args, 0, defs[0], "SendWelcomeMail")
	if err != nil {
		return err
	}
	event, err := requireName(args, 1, defs[1], "UserRegistered")
	if err != nil {
		return err
	}
	p, err := ResolveProject(args)
	if err != nil {
		return err
	}

	change, res, err := commands_pkg.Register(p.Layout, event, listener, commands_pkg.UpdateOptions{DryRun: dryRun(args)})
	if err != nil {
		return err
	}
	reportChanges(p.Root, []commands_pkg.FileChange{change})
	if res.Diff != "" {
		env.Console.Info("")
		env.Console.Diff(res.Diff)
	}
	return nil
}
