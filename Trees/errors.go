package Trees

import "errors"

var (
	ErrKeyNotFound      = errors.New("key not found")
	ErrEmptyTree        = errors.New("tree is empty")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrInvalidLCAQuery  = errors.New("lca query on the root key")
	ErrNoCommonAncestor = errors.New("no common ancestor")
	ErrArenaFull        = errors.New("handle space exhausted")
)
