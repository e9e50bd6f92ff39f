package ast

// Walk calls fn for decl and every declaration nested in it, parents before
// children, in field order. depth is 1 for decl. Walk stops descending into
// a declaration when fn returns false.
func Walk(decl *Declaration, fn func(decl *Declaration, depth int) bool) {
	walk(decl, 1, fn)
}

func walk(decl *Declaration, depth int, fn func(*Declaration, int) bool) {
	if !fn(decl, depth) {
		return
	}

	for _, field := range decl.Fields.Named {
		if field.Kind == FieldNested {
			walk(field.Decl, depth+1, fn)
		}
	}
}

// FieldCounts counts the fields of declarations and all declarations nested
// in them.
type FieldCounts struct {
	Plain  int
	Nested int
}

func CountFields(decls ...*Declaration) FieldCounts {
	var counts FieldCounts
	for _, decl := range decls {
		Walk(decl, func(d *Declaration, _ int) bool {
			for _, field := range d.Fields.Named {
				switch field.Kind {
				case FieldPlain:
					counts.Plain++
				case FieldNested:
					counts.Nested++
				}
			}

			return true
		})
	}

	return counts
}

// CountDeclarations counts declarations, nested ones included.
func CountDeclarations(decls ...*Declaration) int {
	count := 0
	for _, decl := range decls {
		Walk(decl, func(*Declaration, int) bool {
			count++
			return true
		})
	}

	return count
}

// MaxDepth is the deepest nesting level in decl, 1 when nothing is nested.
func MaxDepth(decl *Declaration) int {
	maxDepth := 0
	Walk(decl, func(_ *Declaration, depth int) bool {
		maxDepth = max(maxDepth, depth)
		return true
	})

	return maxDepth
}
