package ast

import "github.com/turbolent/prettier"

// Visibility is a visibility qualifier such as `pub` or `pub(crate)`. It is
// copied verbatim and is empty for private items.
type Visibility struct {
	Tokens Tokens
}

// VisibilityPublic is the plain `pub` qualifier.
var VisibilityPublic = Visibility{Tokens: NewTokens("pub")}

func (v Visibility) IsEmpty() bool {
	return v.Tokens.IsEmpty()
}

func (v Visibility) String() string {
	return v.Tokens.String()
}

// Doc renders the qualifier followed by a space, or nothing.
func (v Visibility) Doc() prettier.Doc {
	if v.IsEmpty() {
		return prettier.Concat{}
	}

	return prettier.Concat{
		v.Tokens.Doc(),
		prettier.Space,
	}
}
