package eventsfile

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsConfig = `<?php

namespace Config;

use App\Events\{
    Registered,
};
use App\Events\Listeners\{
    Welcome,
};
use CodeIgniter\Events\Events;

listen([
    Registered::class => [
        Welcome::class,
    ],
]);

Events::on('pre_system', static function (): void {
    // [ not a bracket ]
});
`

func TestMergeMappingAddsListenerSorted(t *testing.T) {
	got, err := MergeMapping(eventsConfig, "Registered", "Notify", `App\Events`)
	require.NoError(t, err)

	m, found, err := ParseListenBlock(got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"Notify", "Welcome"}, m.Listeners("Registered"))
	assert.Contains(t, got, "listen([\n    Registered::class => [\n        Notify::class,\n        Welcome::class,\n    ],\n]);")
}

func TestMergeMappingOrdersNewEventFirst(t *testing.T) {
	src := "listen([\n    Banana::class => [\n        X::class,\n    ],\n]);\n"
	got, err := MergeMapping(src, "Apple", "Y", "")
	require.NoError(t, err)
	want := "listen([\n" +
		"    Apple::class => [\n        Y::class,\n    ],\n" +
		"    Banana::class => [\n        X::class,\n    ],\n" +
		"]);\n"
	assert.Equal(t, want, got)
}

func TestMergeMappingKeyOrdering(t *testing.T) {
	src := "listen([Zebra::class => [A::class], apple::class => [B::class]]);"
	got, err := MergeMapping(src, "Banana", "C", "")
	require.NoError(t, err)

	m, _, err := ParseListenBlock(got)
	require.NoError(t, err)
	var keys []string
	for _, e := range m.Entries {
		keys = append(keys, e.Event)
	}
	assert.Equal(t, []string{"apple", "Banana", "Zebra"}, keys)
}

func TestMergeMappingIsIdempotent(t *testing.T) {
	once, err := MergeMapping(eventsConfig, "Registered", "Notify", `App\Events`)
	require.NoError(t, err)
	twice, err := MergeMapping(once, "Registered", "Notify", `App\Events`)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestMergeMappingIsCommutative(t *testing.T) {
	ab, err := MergeMapping(eventsConfig, "Registered", "Alpha", "")
	require.NoError(t, err)
	ab, err = MergeMapping(ab, "Registered", "Beta", "")
	require.NoError(t, err)

	ba, err := MergeMapping(eventsConfig, "Registered", "Beta", "")
	require.NoError(t, err)
	ba, err = MergeMapping(ba, "Registered", "Alpha", "")
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestMergeMappingNeverDuplicates(t *testing.T) {
	got, err := MergeMapping(eventsConfig, "registered", "WELCOME", "")
	require.NoError(t, err)
	m, _, err := ParseListenBlock(got)
	require.NoError(t, err)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, []string{"Welcome"}, m.Entries[0].Listeners)
}

func TestMergeMappingKeepsTextOutsideBlock(t *testing.T) {
	got, err := MergeMapping(eventsConfig, "Login", "Audit", "")
	require.NoError(t, err)

	blk, err := FindListenBlock(eventsConfig)
	require.NoError(t, err)
	newBlk, err := FindListenBlock(got)
	require.NoError(t, err)

	assert.Equal(t, eventsConfig[:blk.Range.Start], got[:newBlk.Range.Start])
	assert.Equal(t, eventsConfig[blk.Range.End:], got[newBlk.Range.End:])
}

func TestMergeMappingStripsListenerNamespaces(t *testing.T) {
	src := "listen([\n    \\App\\Events\\Registered::class => [\\App\\Events\\Listeners\\Welcome::class],\n]);"
	got, err := MergeMapping(src, "Registered", "Notify", "")
	require.NoError(t, err)
	want := "listen([\n    \\App\\Events\\Registered::class => [\n        Notify::class,\n        Welcome::class,\n    ],\n]);"
	assert.Equal(t, want, got)
}

func TestMergeMappingFoldsRepeatedKeys(t *testing.T) {
	src := "listen([A::class => [X::class], A::class => [Y::class]]);"
	got, err := MergeMapping(src, "A", "Z", "")
	require.NoError(t, err)
	assert.Equal(t, "listen([\n    A::class => [\n        X::class,\n        Y::class,\n        Z::class,\n    ],\n]);", got)
}

func TestMergeMappingInsertsAfterEventsImport(t *testing.T) {
	src := "<?php\n\nuse App\\Events\\{\n    Registered,\n};\nuse CodeIgniter\\Events\\Events;\n"
	got, err := MergeMapping(src, "Registered", "Welcome", `App\Events`)
	require.NoError(t, err)
	want := "<?php\n\nuse App\\Events\\{\n    Registered,\n};\n\n" +
		"listen([\n    Registered::class => [\n        Welcome::class,\n    ],\n]);" +
		"\nuse CodeIgniter\\Events\\Events;\n"
	assert.Equal(t, want, got)
}

func TestMergeMappingInsertsAfterLaterAnchor(t *testing.T) {
	src := "<?php\n\nuse App\\Events\\{\n    Registered,\n};\n\nuse App\\Events\\Listeners\\{\n    Welcome,\n};\n\nuse CodeIgniter\\Events\\Events;\n"
	want := "<?php\n\nuse App\\Events\\{\n    Registered,\n};\n\nuse App\\Events\\Listeners\\{\n    Welcome,\n};\n\n" +
		"listen([\n    Registered::class => [\n        Welcome::class,\n    ],\n]);" +
		"\n\nuse CodeIgniter\\Events\\Events;\n"

	for _, anchors := range [][]string{
		{`App\Events`, `App\Events\Listeners`},
		{`App\Events\Listeners`, `App\Events`},
	} {
		got, err := MergeMapping(src, "Registered", "Welcome", anchors...)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMergeMappingSeesThroughHeredocs(t *testing.T) {
	src := "<?php\n\n$banner = <<<TXT\nDon't panic\nTXT;\n\nlisten([\n    Registered::class => [\n        Welcome::class,\n    ],\n]);\n"
	got, err := MergeMapping(src, "Registered", "Notify", "")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "listen(["))
	assert.Contains(t, got, "$banner = <<<TXT\nDon't panic\nTXT;\n")
	assert.Contains(t, got, "    Registered::class => [\n        Notify::class,\n        Welcome::class,\n    ],")

	again, err := MergeMapping(got, "Registered", "Notify", "")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestMergeMappingSeesThroughInlineHTML(t *testing.T) {
	src := "<?php ?>\n<p>Don't</p>\n<?php\nlisten([\n    Login::class => [\n        Audit::class,\n    ],\n]);\n"
	got, err := MergeMapping(src, "Login", "Notify", "")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "listen(["))
	assert.Contains(t, got, "        Audit::class,\n        Notify::class,\n")
}

func TestMergeMappingKeepsQualifiedKeysApart(t *testing.T) {
	src := "listen([\n    \\App\\Events\\User\\Registered::class => [A::class],\n]);"

	got, err := MergeMapping(src, `App\Events\Admin\Registered`, "B")
	require.NoError(t, err)
	want := "listen([\n" +
		"    \\App\\Events\\User\\Registered::class => [\n        A::class,\n    ],\n" +
		"    App\\Events\\Admin\\Registered::class => [\n        B::class,\n    ],\n" +
		"]);"
	assert.Equal(t, want, got)

	got, err = MergeMapping(src, `App\Events\User\Registered`, "B")
	require.NoError(t, err)
	assert.Equal(t, "listen([\n    \\App\\Events\\User\\Registered::class => [\n        A::class,\n        B::class,\n    ],\n]);", got)
}

func TestSameKey(t *testing.T) {
	assert.True(t, sameKey("Registered", `App\Events\User\Registered`))
	assert.True(t, sameKey(`\App\Events\Registered`, `app\events\registered`))
	assert.False(t, sameKey(`App\Events\User\Registered`, `App\Events\Admin\Registered`))
	assert.False(t, sameKey("Login", "Logout"))
}

func TestMergeMappingAppendsWithoutAnchor(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "listen([\n    E::class => [\n        L::class,\n    ],\n]);\n"},
		{"trailing newline", "<?php\n", "<?php\n\nlisten([\n    E::class => [\n        L::class,\n    ],\n]);\n"},
		{"no trailing newline", "<?php", "<?php\n\nlisten([\n    E::class => [\n        L::class,\n    ],\n]);\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MergeMapping(tc.src, "E", "L", `App\Events`)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindListenBlockSkipsFunctionDefinitions(t *testing.T) {
	src := "<?php\nfunction listen(array $map): void {}\n$x->listen([1]);\n"
	blk, err := FindListenBlock(src)
	require.NoError(t, err)
	assert.Nil(t, blk)
}

func TestFindListenBlockRejectsUnsupportedEntries(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"string key", "listen(['user.login' => [Audit::class]]);"},
		{"closure listener", "listen([Login::class => [static fn () => true]]);"},
		{"unbalanced", "listen([Login::class => [Audit::class]);"},
		{"missing semicolon", "listen([Login::class => [Audit::class]])\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FindListenBlock(tc.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBlockNotRecognized))

			out, err := MergeMapping(tc.src, "Login", "Audit", "")
			require.Error(t, err)
			assert.Equal(t, tc.src, out)
		})
	}
}

func TestParseListenBlockAbsent(t *testing.T) {
	m, found, err := ParseListenBlock("<?php\n")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, m.Entries)
}
