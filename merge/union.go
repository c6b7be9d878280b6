package merge

import "github.com/viant/classmerge/inspector/graph"

// UnionFields returns fieldsA followed by fieldsB entries whose names fieldsA lacks.
// A shared name keeps fieldsA declaration.
func UnionFields(fieldsA, fieldsB []*graph.Field) []*graph.Field {
	seen := make(map[string]bool, len(fieldsA)+len(fieldsB))
	result := make([]*graph.Field, 0, len(fieldsA)+len(fieldsB))
	for _, fields := range [][]*graph.Field{fieldsA, fieldsB} {
		for _, field := range fields {
			if field == nil || seen[field.Name] {
				continue
			}
			seen[field.Name] = true
			result = append(result, field)
		}
	}
	return result
}
