package Console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/dslab/Trees"
	"github.com/rs/zerolog"
)

var ErrUnknownOp = errors.New("unknown command")

// Op is a command code of the tree console.
type Op int

const (
	OpInsert Op = iota + 1
	OpPrint
	OpSearch
	OpDepth
	OpNeighbors
	OpExtrema
	OpDelete
	OpLCA
	OpExit
)

var opNames = [...]string{"", "insert", "print", "search", "depth", "neighbors", "extrema", "delete", "lca", "exit"}

func (op Op) String() string {
	if op > 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// arity is the number of integer operands following the code.
func (op Op) arity() int {
	switch op {
	case OpInsert, OpSearch, OpDepth, OpNeighbors, OpExtrema, OpDelete:
		return 1
	case OpLCA:
		return 2
	}
	return 0
}

// Tree is the tree a Session drives.
type Tree = Trees.IndexedBST[int, uint32]

// Session runs tree commands read from a Reader and prints the results as
// plain text lines. Failed commands are reported and don't stop the session.
type Session struct {
	tree *Tree
	out  io.Writer
	log  zerolog.Logger
}

func NewSession(tree *Tree, out io.Writer, log zerolog.Logger) *Session {
	return &Session{tree: tree, out: out, log: log}
}

// Run steps until the exit command, the end of in, an input error or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	r := NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if cont, err := s.Step(r); err != nil {
			return err
		} else if !cont {
			return nil
		}
	}
}

// Step reads and runs one command. It returns false when the session
// should stop: on the exit command or at the end of the input.
// A non nil error means the input itself is unusable.
func (s *Session) Step(r *Reader) (bool, error) {
	code, err := r.Int()
	if err == io.EOF {
		s.log.Debug().Msg("end of input")
		return false, nil
	} else if err != nil {
		return false, err
	}
	op := Op(code)
	if op == OpExit {
		return false, nil
	}
	args := make([]int, op.arity())
	if err := r.Ints(args); err != nil {
		return false, fmt.Errorf("reading operands of %s: %w", op, err)
	}
	s.log.Debug().Stringer("op", op).Ints("args", args).Msg("command")
	if err := s.dispatch(op, args); err != nil {
		s.report(op, err)
	}
	return true, nil
}

func (s *Session) dispatch(op Op, args []int) error {
	switch op {
	case OpInsert:
		if _, err := s.tree.Insert(args[0]); err != nil {
			return err
		}
		s.printKeys()
	case OpPrint:
		s.printKeys()
	case OpSearch:
		if s.tree.Has(args[0]) {
			fmt.Fprintln(s.out, "Found")
		} else {
			fmt.Fprintln(s.out, "Not Found")
		}
	case OpDepth:
		d, err := s.tree.DepthOf(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, d)
	case OpNeighbors:
		n, err := s.tree.Neighbors(args[0])
		if err != nil {
			return err
		}
		if n.HasParent {
			fmt.Fprintf(s.out, "Parent: %d\n", n.Parent)
		}
		if n.HasLeft {
			fmt.Fprintf(s.out, "Left: %d\n", n.Left)
		}
		if n.HasRight {
			fmt.Fprintf(s.out, "Right: %d\n", n.Right)
		}
	case OpExtrema:
		lo, hi, err := s.tree.Extrema(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "MAX: %d MIN: %d\n", hi, lo)
	case OpDelete:
		if !s.tree.Delete(args[0]) {
			s.log.Debug().Int("key", args[0]).Msg("nothing to delete")
		}
	case OpLCA:
		k, err := s.tree.LCA(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, k)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownOp, int(op))
	}
	return nil
}

// report a failed command on the output and the log.
func (s *Session) report(op Op, err error) {
	s.log.Warn().Err(err).Stringer("op", op).Msg("command failed")
	var msg string
	switch {
	case errors.Is(err, Trees.ErrInvalidLCAQuery), errors.Is(err, Trees.ErrNoCommonAncestor):
		msg = "-1"
	case errors.Is(err, Trees.ErrKeyNotFound):
		msg = "Not Found"
	case errors.Is(err, Trees.ErrEmptyTree):
		msg = "Empty Tree"
	case errors.Is(err, Trees.ErrDuplicateKey):
		msg = "Duplicate Key"
	case errors.Is(err, ErrUnknownOp):
		msg = "Unknown Command"
	default:
		msg = "Error: " + err.Error()
	}
	fmt.Fprintln(s.out, msg)
}

func (s *Session) printKeys() {
	var sb strings.Builder
	s.tree.Walk(func(k int) bool {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(k))
		return true
	})
	fmt.Fprintln(s.out, sb.String())
}
