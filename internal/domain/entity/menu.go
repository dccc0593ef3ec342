package entity

import (
	"encoding/json"

	"storefront/internal/errors"
)

// MenuNodeKind discriminates the two menu-node variants.
type MenuNodeKind string

const (
	// MenuNodeLink is a leaf node pointing at a page.
	MenuNodeLink MenuNodeKind = "link"
	// MenuNodeSubmenu is an inner node grouping child nodes.
	MenuNodeSubmenu MenuNodeKind = "submenu"
)

// MenuNode is a tagged-variant node in the site navigation tree: either a
// leaf link (URL, no children) or a submenu (children, no URL). The variant
// rules are enforced when decoding, so loosely-shaped menu definitions are
// rejected at the data-definition boundary.
type MenuNode struct {
	Kind        MenuNodeKind `json:"kind"`
	Label       string       `json:"label"`
	Description string       `json:"description,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	URL         string       `json:"url,omitempty"`
	Children    []MenuNode   `json:"items,omitempty"`
}

// NewMenuLink builds a leaf node.
func NewMenuLink(label, url string) MenuNode {
	return MenuNode{Kind: MenuNodeLink, Label: label, URL: url}
}

// NewSubmenu builds an inner node from its children.
func NewSubmenu(label string, children ...MenuNode) MenuNode {
	return MenuNode{Kind: MenuNodeSubmenu, Label: label, Children: children}
}

// WithDescription returns a copy of the node with a description attached.
func (n MenuNode) WithDescription(description string) MenuNode {
	n.Description = description

	return n
}

// WithIcon returns a copy of the node with an icon name attached.
func (n MenuNode) WithIcon(icon string) MenuNode {
	n.Icon = icon

	return n
}

// Validate checks the variant rules for the node and its subtree.
func (n *MenuNode) Validate() error {
	if n.Label == "" {
		return errors.New("menu node requires a label")
	}

	switch n.Kind {
	case MenuNodeLink:
		if n.URL == "" {
			return errors.Errorf("menu link %q requires a url", n.Label)
		}
		if len(n.Children) > 0 {
			return errors.Errorf("menu link %q must not have children", n.Label)
		}
	case MenuNodeSubmenu:
		if n.URL != "" {
			return errors.Errorf("submenu %q must not have a url", n.Label)
		}
		if len(n.Children) == 0 {
			return errors.Errorf("submenu %q requires at least one child", n.Label)
		}
		for i := range n.Children {
			if err := n.Children[i].Validate(); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("menu node %q has unknown kind %q", n.Label, n.Kind)
	}

	return nil
}

// UnmarshalJSON decodes a node and rejects shapes that violate the variant
// rules, so malformed menu data never reaches the renderer.
func (n *MenuNode) UnmarshalJSON(data []byte) error {
	type alias MenuNode
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "failed to decode menu node")
	}

	*n = MenuNode(raw)

	return n.Validate()
}
