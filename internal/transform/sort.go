package transform

import (
	"fmt"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// Sort stably partitions the root's top-level statements into five
// buckets, in this order: structs; const declarations; other
// declarations and buffers; functions; everything else (techniques,
// pipelines, stages). Order within a bucket is preserved. A
// multi-variable declaration group occupies one slot and is bucketed as
// a whole, by its first variable's flags.
func Sort(tree *ast.Tree) error {
	if tree.Root == nil {
		return fmt.Errorf("transform: sort: tree has no root")
	}
	root := tree.Root

	var buckets [5][]ast.Statement
	for s := root.Statement; s != nil; s = s.Next() {
		b := bucketOf(s)
		buckets[b] = append(buckets[b], s)
	}

	var head, tail ast.Statement
	for _, bucket := range buckets {
		for _, s := range bucket {
			s.SetNext(nil)
			if head == nil {
				head = s
			} else {
				tail.SetNext(s)
			}
			tail = s
		}
	}
	root.Statement = head

	return nil
}

const (
	bucketStruct = iota
	bucketConst
	bucketDeclOrBuffer
	bucketFunction
	bucketOther
)

func bucketOf(s ast.Statement) int {
	switch n := s.(type) {
	case *ast.Struct:
		return bucketStruct
	case *ast.Declaration:
		if n.Type.Flags&types.FlagConst != 0 {
			return bucketConst
		}
		return bucketDeclOrBuffer
	case *ast.Buffer:
		return bucketDeclOrBuffer
	case *ast.Function:
		return bucketFunction
	default:
		return bucketOther
	}
}
