package args

import (
	"path/filepath"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	config "github.com/Guerrilla-Interactive/eventgen-go-cli/internal"
	"github.com/pkg/errors"
)

// ConfigInitCommand writes a .eventgen.yaml with the default layout.
type ConfigInitCommand struct{}

func init() {
	RegisterCommand(&ConfigInitCommand{})
}

func (c *ConfigInitCommand) Name() string {
	return "config:init"
}

func (c *ConfigInitCommand) Description() string {
	return "Writes " + config.FileName + " with the default project layout."
}

func (c *ConfigInitCommand) Usage() string {
	return "[--force]"
}

func (c *ConfigInitCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ConfigInitCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "force", ShortName: "f", Description: "Overwrite an existing config file.", HasValue: false},
	}
}

func (c *ConfigInitCommand) Execute(args cli.CommandArgs) error {
	p, err := ResolveProject(args)
	if err != nil {
		return err
	}
	path := config.Path(p.Root)
	rel := config.FileName
	if r, err := filepath.Rel(p.Root, path); err == nil {
		rel = r
	}

	if dryRun(args) {
		env.Console.Info("Would write %s", rel)
		return nil
	}
	if _, err := config.SaveConfig(p.Root, config.Default(), args.Bool("force", "f")); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			env.Console.Warn("%s already exists, use --force to overwrite it", rel)
		}
		return err
	}
	env.Console.Success("Created %s", rel)
	return nil
}
