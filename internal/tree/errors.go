package tree

import "errors"

// ErrEmptyPath is returned by [Tree.Insert] for an entry whose path has no
// segments; there is nowhere to attach it.
var ErrEmptyPath = errors.New("entry path is empty")
