package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectProjectWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "spark"), "#!/usr/bin/env php\n")
	writeFile(t, filepath.Join(root, "composer.json"),
		`{"name": "acme/shop", "require": {"php": "^8.1", "codeigniter4/framework": "^4.5"}}`)
	nested := filepath.Join(root, "app", "Controllers", "Admin")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	info, found := DetectProject(nested)
	require.True(t, found)
	assert.Equal(t, root, info.RootPath)
	assert.Equal(t, "acme/shop", info.Name)
	assert.Equal(t, "^4.5", info.FrameworkVersion)
	assert.Equal(t, []string{"spark", "composer.json"}, info.Markers)
	assert.Equal(t, "^8.1", info.Dependencies["php"])
}

func TestDetectProjectByEventsConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app", "Config", "Events.php"), "<?php\n")

	info, found := DetectProject(root)
	require.True(t, found)
	assert.Equal(t, filepath.Base(root), info.Name)
	assert.Equal(t, []string{"app/Config/Events.php"}, info.Markers)
	assert.Empty(t, info.FrameworkVersion)
}

func TestDetectProjectIgnoresUnrelatedComposer(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "composer.json"), `{"require": {"laravel/framework": "^11"}}`)

	info, found := DetectProject(root)
	if found {
		// Only an ancestor of the temp dir can match.
		assert.NotEqual(t, root, info.RootPath)
	}
}

func TestFrameworkConstraint(t *testing.T) {
	v, ok := frameworkConstraint(map[string]interface{}{
		"require": map[string]interface{}{"codeigniter4/appstarter": "dev-develop"},
	})
	assert.True(t, ok)
	assert.Equal(t, "dev-develop", v)

	_, ok = frameworkConstraint(nil)
	assert.False(t, ok)
}
