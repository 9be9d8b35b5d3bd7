package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFileTree(t *testing.T) {
	tree := BuildFileTree([]string{"app/Events/Login.php", "app/Events/Listeners/Audit.php"})

	events := tree.Children["app"].Children["Events"]
	assert.False(t, events.IsFile)
	assert.True(t, events.Children["Login.php"].IsFile)
	assert.Equal(t, "app/Events/Listeners/Audit.php", events.Children["Listeners"].Children["Audit.php"].Path)
}

func TestRenderTouchedFiles(t *testing.T) {
	root := filepath.FromSlash("/srv/site")
	got := RenderTouchedFiles(root, map[string]string{
		filepath.Join(root, "app", "Events", "Login.php"):         "created",
		filepath.Join(root, "app", "Config", "Events.php"):        "updated",
		filepath.Join(root, "app", "Events", "Listeners", "A.php"): "",
	})

	want := "┗ 📂 app\n" +
		"   ┣ 📂 Config\n" +
		"   ┃  ┗ 📜 Events.php (updated)\n" +
		"   ┗ 📂 Events\n" +
		"      ┣ 📂 Listeners\n" +
		"      ┃  ┗ 📜 A.php\n" +
		"      ┗ 📜 Login.php (created)\n"
	assert.Equal(t, want, got)
}
