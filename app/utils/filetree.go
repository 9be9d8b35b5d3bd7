package utils

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FileNode represents a node in the file tree.
type FileNode struct {
	Name     string
	Path     string // Full file path (only set on file nodes)
	IsFile   bool
	Children map[string]*FileNode
}

// addChild adds (or retrieves) a child node.
func (n *FileNode) addChild(name string, isFile bool) *FileNode {
	if n.Children == nil {
		n.Children = make(map[string]*FileNode)
	}
	if child, ok := n.Children[name]; ok {
		return child
	}
	child := &FileNode{
		Name:   name,
		IsFile: isFile,
	}
	n.Children[name] = child
	return child
}

// BuildFileTree builds a tree structure from a slice of file paths.
func BuildFileTree(paths []string) *FileNode {
	root := &FileNode{Name: "", Children: make(map[string]*FileNode)}
	for _, fullPath := range paths {
		parts := strings.Split(filepath.ToSlash(fullPath), "/")
		current := root
		for i, part := range parts {
			if part == "" {
				continue
			}
			isFile := i == len(parts)-1
			child := current.addChild(part, isFile)
			if isFile {
				child.Path = fullPath
			}
			current = child
		}
	}
	return root
}

// StatusFunc returns the label shown after a file, or "" for none.
type StatusFunc func(path string) string

// RenderFileTree renders the file tree as a string using branch characters.
// With skipSelf the node's own line is omitted. status is consulted for file
// nodes only.
func RenderFileTree(node *FileNode, prefix string, isLast bool, skipSelf bool, status StatusFunc) string {
	var line string
	if !skipSelf && node.Name != "" {
		branch := "┣"
		if isLast {
			branch = "┗"
		}
		icon := "📜"
		if !node.IsFile {
			icon = "📂"
		}
		displayName := node.Name
		if node.IsFile && status != nil {
			if label := status(node.Path); label != "" {
				displayName += " (" + label + ")"
			}
		}
		line = fmt.Sprintf("%s%s %s %s\n", prefix, branch, icon, displayName)
	}

	newPrefix := prefix
	if node.Name != "" && !skipSelf {
		if isLast {
			newPrefix += "   "
		} else {
			newPrefix += "┃  "
		}
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	result := line
	for i, name := range names {
		result += RenderFileTree(node.Children[name], newPrefix, i == len(names)-1, false, status)
	}
	return result
}

// RenderTouchedFiles renders paths relative to root as a tree, labelling each
// file with its entry in labels.
func RenderTouchedFiles(root string, labels map[string]string) string {
	rel := make([]string, 0, len(labels))
	relLabels := make(map[string]string, len(labels))
	for p, label := range labels {
		r, err := filepath.Rel(root, p)
		if err != nil || strings.HasPrefix(r, "..") {
			r = p
		}
		rel = append(rel, r)
		relLabels[r] = label
	}
	return RenderFileTree(BuildFileTree(rel), "", true, true, func(path string) string {
		return relLabels[path]
	})
}
