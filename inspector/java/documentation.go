package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// javadoc returns the text of the /** */ comment directly preceding node, one line per non blank source line
func javadoc(node *sitter.Node, source []byte) string {
	prev := node.PrevSibling()
	if prev == nil || !isComment(prev.Type()) {
		return ""
	}
	text := strings.TrimSpace(prev.Content(source))
	if len(text) < len("/***/") || !strings.HasPrefix(text, "/**") || !strings.HasSuffix(text, "*/") {
		return ""
	}
	text = strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func isComment(nodeType string) bool {
	switch nodeType {
	case "comment", "block_comment", "line_comment":
		return true
	}
	return false
}
