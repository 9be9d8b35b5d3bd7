package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockRegistryChecker provides a mock implementation for testing.
type MockRegistryChecker struct {
	KnownCommands map[string][]string // command -> switches
}

// CommandExists checks if a command name exists in the mock registry.
func (m MockRegistryChecker) CommandExists(name string) bool {
	_, exists := m.KnownCommands[name]
	return exists
}

func (m MockRegistryChecker) IsBoolFlag(command, flag string) bool {
	for _, f := range m.KnownCommands[command] {
		if f == flag {
			return true
		}
	}
	return false
}

func TestParseCommandLineArgs(t *testing.T) {
	mockRegistry := MockRegistryChecker{
		KnownCommands: map[string][]string{
			"make:event":      nil,
			"make:listener":   {"handle", "copy", "c"},
			"events:register": nil,
			"events:list":     nil,
			"config:init":     {"force", "f"},
		},
	}

	testCases := []struct {
		name     string
		args     []string
		expected CommandArgs
	}{
		{
			name: "No Args",
			args: []string{},
			expected: CommandArgs{
				Variables: []string{},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
			},
		},
		{
			name: "Version Flag",
			args: []string{"--version"},
			expected: CommandArgs{
				VersionRequested: true,
				Variables:        []string{},
				Flags:            map[string]string{},
				BoolFlags:        map[string]bool{},
			},
		},
		{
			name: "General Help Flag",
			args: []string{"--help"},
			expected: CommandArgs{
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"help": true},
			},
		},
		{
			name: "Command Specific Help",
			args: []string{"make:event", "-h"},
			expected: CommandArgs{
				CommandName:   "make:event",
				HelpRequested: true,
				Variables:     []string{},
				Flags:         map[string]string{},
				BoolFlags:     map[string]bool{"h": true},
			},
		},
		{
			name: "Listener With Switches",
			args: []string{"make:listener", "SendWelcomeMail", "User/Registered", "--handle", "-c"},
			expected: CommandArgs{
				CommandName: "make:listener",
				Variables:   []string{"SendWelcomeMail", "User/Registered"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"handle": true, "c": true},
			},
		},
		{
			name: "Switch Before Positionals",
			args: []string{"make:listener", "--dry-run", "Audit", "Login"},
			expected: CommandArgs{
				CommandName: "make:listener",
				Variables:   []string{"Audit", "Login"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"dry-run": true},
			},
		},
		{
			name: "Value Flag Before Command",
			args: []string{"--root", "./site", "events:list"},
			expected: CommandArgs{
				CommandName: "events:list",
				Variables:   []string{},
				Flags:       map[string]string{"root": "./site"},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Value Flag Does Not Swallow Command",
			args: []string{"--root", "events:list"},
			expected: CommandArgs{
				CommandName: "events:list",
				Variables:   []string{},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{"root": true},
			},
		},
		{
			name: "Explicit Value",
			args: []string{"events:register", "Audit", "Login", "--root=/srv/app"},
			expected: CommandArgs{
				CommandName: "events:register",
				Variables:   []string{"Audit", "Login"},
				Flags:       map[string]string{"root": "/srv/app"},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Double Dash Ends Flags",
			args: []string{"make:event", "--", "-Weird"},
			expected: CommandArgs{
				CommandName: "make:event",
				Variables:   []string{"-Weird"},
				Flags:       map[string]string{},
				BoolFlags:   map[string]bool{},
			},
		},
		{
			name: "Unknown Command",
			args: []string{"unknowncmd", "arg1"},
			expected: CommandArgs{
				Variables: []string{"unknowncmd", "arg1"},
				Flags:     map[string]string{},
				BoolFlags: map[string]bool{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ParseCommandLineArgs(tc.args, mockRegistry)

			assert.Equal(t, tc.expected.CommandName, actual.CommandName)
			assert.Equal(t, tc.expected.Variables, actual.Variables)
			assert.Equal(t, tc.expected.Flags, actual.Flags)
			assert.Equal(t, tc.expected.BoolFlags, actual.BoolFlags)
			assert.Equal(t, tc.expected.HelpRequested, actual.HelpRequested)
			assert.Equal(t, tc.expected.VersionRequested, actual.VersionRequested)
			assert.Empty(t, actual.Errors)
		})
	}
}

func TestParseCommandLineArgsDuplicateFlags(t *testing.T) {
	mockRegistry := MockRegistryChecker{KnownCommands: map[string][]string{"make:event": nil}}

	actual := ParseCommandLineArgs([]string{"make:event", "X", "--debug", "--debug"}, mockRegistry)
	assert.Len(t, actual.Errors, 1)

	actual = ParseCommandLineArgs([]string{"--root=a", "make:event", "--root=b"}, mockRegistry)
	assert.Len(t, actual.Errors, 1)
	assert.Equal(t, "b", actual.Flags["root"])
}

func TestCommandArgsAccessors(t *testing.T) {
	args := CommandArgs{
		Variables: []string{"Audit"},
		Flags:     map[string]string{"root": "/srv"},
		BoolFlags: map[string]bool{"c": true},
	}
	assert.True(t, args.Bool("copy", "c"))
	assert.False(t, args.Bool("handle"))

	v, ok := args.Value("root")
	assert.True(t, ok)
	assert.Equal(t, "/srv", v)
	_, ok = args.Value("missing")
	assert.False(t, ok)

	assert.Equal(t, "Audit", args.Arg(0))
	assert.Equal(t, "", args.Arg(1))
}
