package transform

import (
	"fmt"
	"strings"

	"github.com/laurentdupin/hlslparser/internal/ast"
	"github.com/laurentdupin/hlslparser/internal/types"
)

const (
	perItemBufferName = "per_item"
	perItemRegister   = "b0"
	perPassBufferName = "per_pass"
	perPassRegister   = "b1"
)

// Group reorganizes uniform (non-const, non-static) global declarations
// into two synthetic cbuffers, per_item (register b0) and per_pass
// (register b1), bucketing each declaration by its semantic: PER_ITEM,
// PER_MATERIAL, or no semantic goes to per_item; anything else goes to
// per_pass. Samplers are left as plain top-level declarations but
// hoisted to precede the synthetic buffers. Declarations carrying the
// PER_INSTANCED_ITEM semantic are appended to per_item after every
// other field.
func Group(tree *ast.Tree) error {
	if tree.Root == nil {
		return fmt.Errorf("transform: group: tree has no root")
	}
	root := tree.Root

	var samplers, perItem, perPass, instanced []*ast.Declaration
	var newHead, newTail ast.Statement
	appendStmt := func(s ast.Statement) {
		if newHead == nil {
			newHead = s
		} else {
			newTail.SetNext(s)
		}
		newTail = s
	}

	for s := root.Statement; s != nil; {
		next := s.Next()
		s.SetNext(nil)

		decl, ok := s.(*ast.Declaration)
		if !ok || decl.Buffer != nil {
			appendStmt(s)
			s = next
			continue
		}

		var keep []*ast.Declaration
		for d := decl; d != nil; {
			dnext := d.NextDeclaration
			d.NextDeclaration = nil
			if isUniformGlobal(d) {
				switch classifyGlobal(tree, d) {
				case globalSampler:
					samplers = append(samplers, d)
				case globalPerItem:
					perItem = append(perItem, d)
				case globalPerPass:
					perPass = append(perPass, d)
				case globalInstanced:
					instanced = append(instanced, d)
				}
			} else {
				keep = append(keep, d)
			}
			d = dnext
		}
		if len(keep) > 0 {
			for i := 0; i < len(keep)-1; i++ {
				keep[i].NextDeclaration = keep[i+1]
			}
			appendStmt(keep[0])
		}
		s = next
	}

	for _, d := range samplers {
		appendStmt(d)
	}

	itemFields := append(perItem, instanced...)
	if len(itemFields) > 0 {
		buf, err := newSyntheticBuffer(tree, perItemBufferName, perItemRegister, itemFields)
		if err != nil {
			return err
		}
		appendStmt(buf)
	}
	if len(perPass) > 0 {
		buf, err := newSyntheticBuffer(tree, perPassBufferName, perPassRegister, perPass)
		if err != nil {
			return err
		}
		appendStmt(buf)
	}

	root.Statement = newHead
	return nil
}

func isUniformGlobal(d *ast.Declaration) bool {
	return d.Type.Flags&(types.FlagConst|types.FlagStatic) == 0
}

type globalBucket int

const (
	globalSampler globalBucket = iota
	globalPerItem
	globalPerPass
	globalInstanced
)

func classifyGlobal(tree *ast.Tree, d *ast.Declaration) globalBucket {
	if types.IsSampler(d.Type.Base) {
		return globalSampler
	}
	switch strings.ToUpper(tree.Interner.String(d.Semantic)) {
	case "", "PER_ITEM", "PER_MATERIAL":
		return globalPerItem
	case "PER_INSTANCED_ITEM":
		return globalInstanced
	default:
		return globalPerPass
	}
}

// newSyntheticBuffer builds a cbuffer named name bound to register,
// chaining fields (already detached from their original sibling links)
// in order and pointing each back at the new buffer.
func newSyntheticBuffer(tree *ast.Tree, name, register string, fields []*ast.Declaration) (*ast.Buffer, error) {
	file := fields[0].File()
	buf, err := tree.NewBuffer(file, fields[0].Line())
	if err != nil {
		return nil, err
	}
	buf.Name, err = tree.Interner.Add(name)
	if err != nil {
		return nil, err
	}
	buf.RegisterName, err = tree.Interner.Add(register)
	if err != nil {
		return nil, err
	}

	for i, f := range fields {
		f.Buffer = buf
		f.RegisterName = 0
		f.SpaceName = 0
		if i > 0 {
			fields[i-1].NextDeclaration = f
		}
	}
	fields[len(fields)-1].NextDeclaration = nil
	buf.Field = fields[0]

	return buf, nil
}
