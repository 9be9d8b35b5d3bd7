package project

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ProjectInfo stores information about a detected project
type ProjectInfo struct {
	RootPath         string            // Absolute path to project root
	Name             string            // composer.json name, or the directory name
	Markers          []string          // Files that identified the root (spark, composer.json, ...)
	FrameworkVersion string            // Version constraint of the framework package, if any
	Dependencies     map[string]string // composer.json "require"
}

const (
	sparkFile        = "spark"
	composerFile     = "composer.json"
	eventsConfigFile = "app/Config/Events.php"
)

// Composer packages that identify a CodeIgniter 4 application, in lookup order.
var knownPackages = []string{
	"codeigniter4/framework",
	"codeigniter4/appstarter",
	"codeigniter4/codeigniter4",
}

// DetectProject walks up from startPath to the first directory that looks
// like a CodeIgniter 4 application root: it has a spark launcher, an
// app/Config/Events.php, or a composer.json requiring the framework.
func DetectProject(startPath string) (ProjectInfo, bool) {
	currentPath, err := filepath.Abs(startPath)
	if err != nil {
		return ProjectInfo{}, false
	}
	for {
		var markers []string
		if fileExists(filepath.Join(currentPath, sparkFile)) {
			markers = append(markers, sparkFile)
		}
		if fileExists(filepath.Join(currentPath, filepath.FromSlash(eventsConfigFile))) {
			markers = append(markers, eventsConfigFile)
		}
		hasComposer, composerData := checkForComposerJSON(currentPath)
		frameworkVersion, requiresFramework := frameworkConstraint(composerData)
		if requiresFramework {
			markers = append(markers, composerFile)
		}

		if len(markers) > 0 {
			return createProjectInfo(currentPath, markers, composerData, hasComposer, frameworkVersion), true
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}
	return ProjectInfo{}, false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// checkForComposerJSON looks for composer.json and returns its decoded
// content. An unreadable or invalid file counts as absent.
func checkForComposerJSON(dir string) (bool, map[string]interface{}) {
	data, err := os.ReadFile(filepath.Join(dir, composerFile))
	if err != nil {
		return false, nil
	}
	var pkgInfo map[string]interface{}
	if err := json.Unmarshal(data, &pkgInfo); err != nil {
		return false, nil
	}
	return true, pkgInfo
}

func requireMap(composerData map[string]interface{}) map[string]string {
	out := make(map[string]string)
	deps, _ := composerData["require"].(map[string]interface{})
	for name, version := range deps {
		v, _ := version.(string)
		out[name] = v
	}
	return out
}

// frameworkConstraint returns the version constraint of the first known
// framework package required by composerData.
func frameworkConstraint(composerData map[string]interface{}) (string, bool) {
	if composerData == nil {
		return "", false
	}
	deps := requireMap(composerData)
	for _, name := range knownPackages {
		if v, ok := deps[name]; ok {
			return v, true
		}
	}
	return "", false
}

func createProjectInfo(rootPath string, markers []string, composerData map[string]interface{}, hasComposer bool, frameworkVersion string) ProjectInfo {
	info := ProjectInfo{
		RootPath:         rootPath,
		Name:             filepath.Base(rootPath),
		Markers:          markers,
		FrameworkVersion: frameworkVersion,
		Dependencies:     map[string]string{},
	}
	if hasComposer {
		if name, ok := composerData["name"].(string); ok && name != "" {
			info.Name = name
		}
		info.Dependencies = requireMap(composerData)
	}
	return info
}
