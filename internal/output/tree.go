package output

import (
	"slices"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	statusColumn = 36
)

// FileEntry is one line of a file tree.
type FileEntry struct {
	Path   string
	Status string
}

type treeNode struct {
	name     string
	status   string
	isDir    bool
	children []*treeNode
}

// RenderFileTree renders generated files as a tree rooted at root, with each
// file's status aligned in a column. Directories sort before files.
func RenderFileTree(root string, files []FileEntry) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, isDir: true}
	for _, f := range files {
		parts := strings.Split(f.Path, "/")
		cur := top
		for i, part := range parts {
			leaf := i == len(parts)-1
			idx := slices.IndexFunc(cur.children, func(n *treeNode) bool { return n.name == part })
			if idx < 0 {
				cur.children = append(cur.children, &treeNode{name: part, isDir: !leaf})
				idx = len(cur.children) - 1
			}
			cur = cur.children[idx]
			if leaf {
				cur.status = f.Status
			}
		}
	}
	sortTree(top)

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(strings.TrimSuffix(root, "/") + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, top, "")
	return sb.String()
}

func sortTree(n *treeNode) {
	slices.SortFunc(n.children, func(a, b *treeNode) int {
		if a.isDir != b.isDir {
			if a.isDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	for _, c := range n.children {
		sortTree(c)
	}
}

func renderChildren(sb *strings.Builder, n *treeNode, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1
		connector, next := treeEdge, treeVert
		if last {
			connector, next = treeLast, treeSpace
		}

		line := prefix + connector + c.name
		if c.isDir {
			line += "/"
		}
		if c.status != "" {
			pad := max(statusColumn-len([]rune(line)), 2)
			line += strings.Repeat(" ", pad) + StatusStyle(c.status).Render(c.status)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		if c.isDir {
			renderChildren(sb, c, prefix+next)
		}
	}
}
