package args

import (
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	commands_pkg "github.com/Guerrilla-Interactive/eventgen-go-cli/app/commands"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// MakeListenerCommand creates a listener (and its event when missing) and
// registers the pair in the events config file.
type MakeListenerCommand struct{}

func init() {
	RegisterCommand(&MakeListenerCommand{})
}

func (c *MakeListenerCommand) Name() string {
	return "make:listener"
}

func (c *MakeListenerCommand) Description() string {
	return "Creates a listener, creates its event if needed and registers both in the events config file."
}

func (c *MakeListenerCommand) Usage() string {
	return "<Listener> <Event> [--handle] [--copy]"
}

func (c *MakeListenerCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "listener", Description: "Listener name (e.g. SendWelcomeMail or Mail/SendWelcome)", Required: true},
		{Name: "event", Description: "Event the listener handles (e.g. UserRegistered)", Required: true},
	}
}

func (c *MakeListenerCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "handle", Description: "Generate a handle() method instead of __invoke().", HasValue: false},
		{Name: "copy", ShortName: "c", Description: "Copy the listener class name to the clipboard.", HasValue: false},
	}
}

func (c *MakeListenerCommand) Execute(args cli.CommandArgs) error {
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

	shape := commands_pkg.ShapeInvokable
	if args.Bool("handle") {
		shape = commands_pkg.ShapeHandle
	}
	changes, err := commands_pkg.MakeListener(p.Layout, listener, event, shape, dryRun(args))
	if err != nil {
		reportChanges(p.Root, changes)
		return err
	}

	change, res, err := commands_pkg.Register(p.Layout, event, listener, commands_pkg.UpdateOptions{DryRun: dryRun(args)})
	if err != nil {
		reportChanges(p.Root, changes)
		return err
	}
	changes = append(changes, change)
	reportChanges(p.Root, changes)
	if res.Diff != "" {
		env.Console.Info("")
		env.Console.Diff(res.Diff)
	}

	fqcn := listener.FQCN(p.Layout.ListenersPrefix)
	log.Info().Str("listener", fqcn).Str("event", event.FQCN(p.Layout.EventsPrefix)).
		Str("shape", shape.String()).Msg("listener registered")
	if args.Bool("copy", "c") {
		if err := env.CopyText(fqcn); err != nil {
			return errors.Wrap(err, "failed to copy to clipboard")
		}
		env.Console.Muted("Copied %s to the clipboard", fqcn)
	}
	return nil
}
