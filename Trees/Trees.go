package Trees

// Tree represents A tree like structure implemented using an arena of nodes.
// K is the key type, S is the handle type addressing the nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x K, false bool). In this
// case the value of x should be undefined.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[K any, S any] interface {
	//Insert k to the Tree, returning the handle of the new node.
	//Exact behavior on repeated keys depend on implementation.
	Insert(k K) (S, error)
	//Delete k from the Tree. Returning true if successful, false otherwise.
	Delete(k K) bool
	//Search the node holding k.
	Search(k K) (S, bool)
	//Has element k.
	Has(k K) bool
	//Minimum element of the tree.
	Minimum() (K, bool)
	//Maximum element of the tree.
	Maximum() (K, bool)
	//Size of the tree.
	Size() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives keys in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (K, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}
