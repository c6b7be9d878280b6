package aspect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entity identifies one side of the merge
type Entity struct {
	Package string
	Name    string
}

// Type returns the qualified type name
func (e Entity) Type() string {
	if e.Package == "" {
		return e.Name
	}
	return e.Package + "." + e.Name
}

// Ref returns a lower camel identifier unique for package and name, i.e. personnelResearch
func (e Entity) Ref() string {
	var parts []string
	for _, segment := range strings.Split(e.Package, ".") {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	parts = append(parts, e.Name)
	builder := &strings.Builder{}
	for i, part := range parts {
		if i == 0 {
			builder.WriteString(lowerFirst(part))
			continue
		}
		builder.WriteString(upperFirst(part))
	}
	return builder.String()
}

func (e Entity) pointcutName() string {
	return e.Ref() + "Construction"
}

func (e Entity) linkName() string {
	return "link" + upperFirst(e.Ref())
}

func upperFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

func lowerFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return string(unicode.ToLower(r)) + text[size:]
}
