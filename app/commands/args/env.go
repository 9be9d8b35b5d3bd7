package args

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/cli"
	commands_pkg "github.com/Guerrilla-Interactive/eventgen-go-cli/app/commands"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/project"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/screens/prompt"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/screens/shared"
	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/utils"
	config "github.com/Guerrilla-Interactive/eventgen-go-cli/internal"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Env is everything a command reaches outside the process for. Tests swap
// it out with SetEnv.
type Env struct {
	Console    shared.Console
	Getwd      func() (string, error)
	IsTerminal func() bool
	Ask        func(label, placeholder string) (string, error)
	CopyText   func(text string) error
}

// DefaultEnv talks to the real terminal, working directory and clipboard.
func DefaultEnv() Env {
	return Env{
		Console: shared.Console{Out: os.Stdout},
		Getwd:   os.Getwd,
		IsTerminal: func() bool {
			in, out := os.Stdin.Fd(), os.Stdout.Fd()
			return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
				(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
		},
		Ask: func(label, placeholder string) (string, error) {
			return prompt.Ask(label, placeholder)
		},
		CopyText: clipboard.WriteAll,
	}
}

var env = DefaultEnv()

// SetEnv replaces the environment and returns a func restoring the old one.
func SetEnv(e Env) (restore func()) {
	old := env
	env = e
	return func() { env = old }
}

// Project is the resolved project a command works on.
type Project struct {
	Root     string
	Detected bool
	Info     project.ProjectInfo
	Config   config.Config
	Layout   commands_pkg.Layout
}

// ResolveProject finds the project root (--root, or the nearest CodeIgniter
// root above the working directory, or the working directory itself) and
// loads its configuration.
func ResolveProject(args cli.CommandArgs) (Project, error) {
	var p Project
	if root, ok := args.Value("root"); ok && strings.TrimSpace(root) != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return p, errors.Wrapf(err, "resolving --root %s", root)
		}
		p.Root = abs
		if info, found := project.DetectProject(abs); found && info.RootPath == abs {
			p.Info, p.Detected = info, true
		}
	} else {
		cwd, err := env.Getwd()
		if err != nil {
			return p, errors.Wrap(err, "could not determine working directory")
		}
		if info, found := project.DetectProject(cwd); found {
			p.Root, p.Info, p.Detected = info.RootPath, info, true
		} else {
			p.Root = cwd
			log.Warn().Str("dir", cwd).Msg("no CodeIgniter project found above the working directory, using it as root")
		}
	}

	cfg, err := config.LoadConfig(p.Root)
	if err != nil {
		return p, err
	}
	p.Config = cfg
	p.Layout = commands_pkg.NewLayout(p.Root, cfg)
	log.Debug().Str("root", p.Root).Bool("detected", p.Detected).Strs("markers", p.Info.Markers).
		Str("events_file", p.Layout.EventsFile).Msg("project resolved")
	return p, nil
}

// requireArg returns the i-th positional argument. When it is missing the
// user is prompted, unless --no-input is set or there is no terminal.
func requireArg(args cli.CommandArgs, i int, def ArgDef, placeholder string) (string, error) {
	if v := strings.TrimSpace(args.Arg(i)); v != "" {
		return v, nil
	}
	if args.Bool("no-input") || !env.IsTerminal() {
		return "", errors.Wrap(commands_pkg.ErrMissingArgument, def.Name)
	}
	v, err := env.Ask(def.Description, placeholder)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", def.Name)
	}
	if strings.TrimSpace(v) == "" {
		return "", errors.Wrap(commands_pkg.ErrMissingArgument, def.Name)
	}
	return v, nil
}

// requireName is requireArg followed by ParseQualifiedName.
func requireName(args cli.CommandArgs, i int, def ArgDef, placeholder string) (commands_pkg.QualifiedName, error) {
	raw, err := requireArg(args, i, def, placeholder)
	if err != nil {
		return commands_pkg.QualifiedName{}, err
	}
	q, err := commands_pkg.ParseQualifiedName(raw)
	if err != nil {
		return q, errors.Wrap(err, def.Name)
	}
	return q, nil
}

func dryRun(args cli.CommandArgs) bool { return args.Bool("dry-run") }

// reportChanges prints one status line per file followed by a tree of the
// files touched.
func reportChanges(root string, changes []commands_pkg.FileChange) {
	labels := make(map[string]string, len(changes))
	for _, c := range changes {
		rel := c.Path
		if r, err := filepath.Rel(root, c.Path); err == nil {
			rel = r
		}
		switch c.Status {
		case commands_pkg.StatusCreated:
			env.Console.Success("Created %s", rel)
		case commands_pkg.StatusUpdated:
			env.Console.Success("Updated %s", rel)
		case commands_pkg.StatusExists:
			env.Console.Warn("Already exists: %s", rel)
		case commands_pkg.StatusUnchanged:
			env.Console.Muted("Unchanged: %s", rel)
		case commands_pkg.StatusWouldCreate, commands_pkg.StatusWouldUpdate:
			env.Console.Info("Would %s %s", strings.TrimPrefix(c.Status, "would "), rel)
		}
		if c.Status != "" {
			labels[c.Path] = c.Status
		}
	}
	if len(labels) > 0 {
		env.Console.Info("")
		env.Console.Info("%s", strings.TrimRight(shared.Indent(utils.RenderTouchedFiles(root, labels), "  "), "\n"))
	}
}

// ConfiguredLogLevel returns log_level from the project config, or "" when
// there is none. It does not log, so it can run before the logger is set up.
func ConfiguredLogLevel(args cli.CommandArgs) string {
	root, ok := args.Value("root")
	if !ok || strings.TrimSpace(root) == "" {
		cwd, err := env.Getwd()
		if err != nil {
			return ""
		}
		root = cwd
		if info, found := project.DetectProject(cwd); found {
			root = info.RootPath
		}
	}
	cfg, err := config.LoadConfig(root)
	if err != nil {
		return ""
	}
	return cfg.LogLevel
}
