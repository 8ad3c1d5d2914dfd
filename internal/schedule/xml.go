package schedule

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/gyeh/mbsfacts/internal/model"
)

// xmlNode is a generic element tree; MBS XML exports differ in nesting and
// namespaces, so parsing works on local names rather than a fixed schema.
type xmlNode struct {
	XMLName  xml.Name
	Content  string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// ParseXML reads an MBS XML export. Any element owning an ItemNum-like child
// is treated as one item record. Records without a usable item number are
// skipped.
func ParseXML(path string) ([]model.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read xml: %w", err)
	}

	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}

	var items []model.Item
	collectItems(&root, &items)
	return items, nil
}

// collectItems walks the tree depth-first appending item records. A node
// claimed as a record is not descended into again.
func collectItems(node *xmlNode, items *[]model.Item) {
	if isItemRecord(node) {
		fields := make(map[string]string, len(fieldAliases))
		for _, fa := range fieldAliases {
			fields[fa.field] = findField(node, fa.aliases)
		}
		if it, ok := itemFromFields(fields); ok {
			*items = append(*items, it)
		}
		return
	}
	for i := range node.Children {
		collectItems(&node.Children[i], items)
	}
}

// isItemRecord reports whether the node has a direct ItemNum-like child.
func isItemRecord(node *xmlNode) bool {
	for i := range node.Children {
		if matchesAlias(node.Children[i].XMLName.Local, itemNumAliases) {
			return true
		}
	}
	return false
}

// findField searches descendants for the first element whose local name
// matches any alias, trying aliases in priority order.
func findField(node *xmlNode, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := findLocal(node, alias); ok {
			return v
		}
	}
	return ""
}

func findLocal(node *xmlNode, name string) (string, bool) {
	for i := range node.Children {
		child := &node.Children[i]
		if strings.EqualFold(child.XMLName.Local, name) {
			return strings.TrimSpace(child.Content), true
		}
		if v, ok := findLocal(child, name); ok {
			return v, true
		}
	}
	return "", false
}
