package ast

import (
	"unsafe"

	"github.com/laurentdupin/hlslparser/internal/intern"
)

// NewRoot creates the tree root. Called once per Tree, before any parsing.
func (t *Tree) NewRoot(file intern.Symbol, line int) (*Root, error) {
	if err := t.charge(unsafe.Sizeof(Root{})); err != nil {
		return nil, err
	}
	n := &Root{BaseNode: t.base(KindRoot, file, line)}
	t.Root = n
	return n, nil
}

func (t *Tree) NewDeclaration(file intern.Symbol, line int) (*Declaration, error) {
	if err := t.charge(unsafe.Sizeof(Declaration{})); err != nil {
		return nil, err
	}
	return &Declaration{StmtHeader: StmtHeader{BaseNode: t.base(KindDeclaration, file, line)}}, nil
}

func (t *Tree) NewStruct(file intern.Symbol, line int) (*Struct, error) {
	if err := t.charge(unsafe.Sizeof(Struct{})); err != nil {
		return nil, err
	}
	return &Struct{StmtHeader: StmtHeader{BaseNode: t.base(KindStruct, file, line)}}, nil
}

func (t *Tree) NewStructField(file intern.Symbol, line int) (*StructField, error) {
	if err := t.charge(unsafe.Sizeof(StructField{})); err != nil {
		return nil, err
	}
	return &StructField{StmtHeader: StmtHeader{BaseNode: t.base(KindStructField, file, line)}}, nil
}

func (t *Tree) NewBuffer(file intern.Symbol, line int) (*Buffer, error) {
	if err := t.charge(unsafe.Sizeof(Buffer{})); err != nil {
		return nil, err
	}
	return &Buffer{StmtHeader: StmtHeader{BaseNode: t.base(KindBuffer, file, line)}}, nil
}

func (t *Tree) NewFunction(file intern.Symbol, line int) (*Function, error) {
	if err := t.charge(unsafe.Sizeof(Function{})); err != nil {
		return nil, err
	}
	return &Function{StmtHeader: StmtHeader{BaseNode: t.base(KindFunction, file, line)}}, nil
}

func (t *Tree) NewArgument(file intern.Symbol, line int) (*Argument, error) {
	if err := t.charge(unsafe.Sizeof(Argument{})); err != nil {
		return nil, err
	}
	return &Argument{StmtHeader: StmtHeader{BaseNode: t.base(KindArgument, file, line)}}, nil
}

func (t *Tree) NewExpressionStatement(file intern.Symbol, line int) (*ExpressionStatement, error) {
	if err := t.charge(unsafe.Sizeof(ExpressionStatement{})); err != nil {
		return nil, err
	}
	return &ExpressionStatement{StmtHeader: StmtHeader{BaseNode: t.base(KindExpressionStatement, file, line)}}, nil
}

func (t *Tree) NewReturn(file intern.Symbol, line int) (*Return, error) {
	if err := t.charge(unsafe.Sizeof(Return{})); err != nil {
		return nil, err
	}
	return &Return{StmtHeader: StmtHeader{BaseNode: t.base(KindReturn, file, line)}}, nil
}

func (t *Tree) NewDiscard(file intern.Symbol, line int) (*Discard, error) {
	if err := t.charge(unsafe.Sizeof(Discard{})); err != nil {
		return nil, err
	}
	return &Discard{StmtHeader: StmtHeader{BaseNode: t.base(KindDiscard, file, line)}}, nil
}

func (t *Tree) NewBreak(file intern.Symbol, line int) (*Break, error) {
	if err := t.charge(unsafe.Sizeof(Break{})); err != nil {
		return nil, err
	}
	return &Break{StmtHeader: StmtHeader{BaseNode: t.base(KindBreak, file, line)}}, nil
}

func (t *Tree) NewContinue(file intern.Symbol, line int) (*Continue, error) {
	if err := t.charge(unsafe.Sizeof(Continue{})); err != nil {
		return nil, err
	}
	return &Continue{StmtHeader: StmtHeader{BaseNode: t.base(KindContinue, file, line)}}, nil
}

func (t *Tree) NewIf(file intern.Symbol, line int) (*If, error) {
	if err := t.charge(unsafe.Sizeof(If{})); err != nil {
		return nil, err
	}
	return &If{StmtHeader: StmtHeader{BaseNode: t.base(KindIf, file, line)}}, nil
}

func (t *Tree) NewFor(file intern.Symbol, line int) (*For, error) {
	if err := t.charge(unsafe.Sizeof(For{})); err != nil {
		return nil, err
	}
	return &For{StmtHeader: StmtHeader{BaseNode: t.base(KindFor, file, line)}}, nil
}

func (t *Tree) NewBlock(file intern.Symbol, line int) (*Block, error) {
	if err := t.charge(unsafe.Sizeof(Block{})); err != nil {
		return nil, err
	}
	return &Block{StmtHeader: StmtHeader{BaseNode: t.base(KindBlock, file, line)}}, nil
}

func (t *Tree) NewTechnique(file intern.Symbol, line int) (*Technique, error) {
	if err := t.charge(unsafe.Sizeof(Technique{})); err != nil {
		return nil, err
	}
	return &Technique{StmtHeader: StmtHeader{BaseNode: t.base(KindTechnique, file, line)}}, nil
}

func (t *Tree) NewPass(file intern.Symbol, line int) (*Pass, error) {
	if err := t.charge(unsafe.Sizeof(Pass{})); err != nil {
		return nil, err
	}
	return &Pass{StmtHeader: StmtHeader{BaseNode: t.base(KindPass, file, line)}}, nil
}

func (t *Tree) NewPipeline(file intern.Symbol, line int) (*Pipeline, error) {
	if err := t.charge(unsafe.Sizeof(Pipeline{})); err != nil {
		return nil, err
	}
	return &Pipeline{StmtHeader: StmtHeader{BaseNode: t.base(KindPipeline, file, line)}}, nil
}

func (t *Tree) NewStage(file intern.Symbol, line int) (*Stage, error) {
	if err := t.charge(unsafe.Sizeof(Stage{})); err != nil {
		return nil, err
	}
	return &Stage{StmtHeader: StmtHeader{BaseNode: t.base(KindStage, file, line)}}, nil
}

func (t *Tree) NewAttribute(file intern.Symbol, line int) (*Attribute, error) {
	if err := t.charge(unsafe.Sizeof(Attribute{})); err != nil {
		return nil, err
	}
	return &Attribute{BaseNode: t.base(KindAttribute, file, line)}, nil
}

func (t *Tree) NewStateAssignment(file intern.Symbol, line int) (*StateAssignment, error) {
	if err := t.charge(unsafe.Sizeof(StateAssignment{})); err != nil {
		return nil, err
	}
	return &StateAssignment{BaseNode: t.base(KindStateAssignment, file, line)}, nil
}

func (t *Tree) NewUnary(file intern.Symbol, line int) (*Unary, error) {
	if err := t.charge(unsafe.Sizeof(Unary{})); err != nil {
		return nil, err
	}
	return &Unary{ExprHeader: ExprHeader{BaseNode: t.base(KindUnary, file, line)}}, nil
}

func (t *Tree) NewBinary(file intern.Symbol, line int) (*Binary, error) {
	if err := t.charge(unsafe.Sizeof(Binary{})); err != nil {
		return nil, err
	}
	return &Binary{ExprHeader: ExprHeader{BaseNode: t.base(KindBinary, file, line)}}, nil
}

func (t *Tree) NewConditional(file intern.Symbol, line int) (*Conditional, error) {
	if err := t.charge(unsafe.Sizeof(Conditional{})); err != nil {
		return nil, err
	}
	return &Conditional{ExprHeader: ExprHeader{BaseNode: t.base(KindConditional, file, line)}}, nil
}

func (t *Tree) NewCasting(file intern.Symbol, line int) (*Casting, error) {
	if err := t.charge(unsafe.Sizeof(Casting{})); err != nil {
		return nil, err
	}
	return &Casting{ExprHeader: ExprHeader{BaseNode: t.base(KindCasting, file, line)}}, nil
}

func (t *Tree) NewLiteral(file intern.Symbol, line int) (*Literal, error) {
	if err := t.charge(unsafe.Sizeof(Literal{})); err != nil {
		return nil, err
	}
	return &Literal{ExprHeader: ExprHeader{BaseNode: t.base(KindLiteral, file, line)}}, nil
}

func (t *Tree) NewIdentifier(file intern.Symbol, line int) (*Identifier, error) {
	if err := t.charge(unsafe.Sizeof(Identifier{})); err != nil {
		return nil, err
	}
	return &Identifier{ExprHeader: ExprHeader{BaseNode: t.base(KindIdentifier, file, line)}}, nil
}

func (t *Tree) NewConstructor(file intern.Symbol, line int) (*Constructor, error) {
	if err := t.charge(unsafe.Sizeof(Constructor{})); err != nil {
		return nil, err
	}
	return &Constructor{ExprHeader: ExprHeader{BaseNode: t.base(KindConstructor, file, line)}}, nil
}

func (t *Tree) NewMemberAccess(file intern.Symbol, line int) (*MemberAccess, error) {
	if err := t.charge(unsafe.Sizeof(MemberAccess{})); err != nil {
		return nil, err
	}
	return &MemberAccess{ExprHeader: ExprHeader{BaseNode: t.base(KindMemberAccess, file, line)}}, nil
}

func (t *Tree) NewArrayAccess(file intern.Symbol, line int) (*ArrayAccess, error) {
	if err := t.charge(unsafe.Sizeof(ArrayAccess{})); err != nil {
		return nil, err
	}
	return &ArrayAccess{ExprHeader: ExprHeader{BaseNode: t.base(KindArrayAccess, file, line)}}, nil
}

func (t *Tree) NewFunctionCall(file intern.Symbol, line int) (*FunctionCall, error) {
	if err := t.charge(unsafe.Sizeof(FunctionCall{})); err != nil {
		return nil, err
	}
	return &FunctionCall{ExprHeader: ExprHeader{BaseNode: t.base(KindFunctionCall, file, line)}}, nil
}

func (t *Tree) NewSamplerState(file intern.Symbol, line int) (*SamplerState, error) {
	if err := t.charge(unsafe.Sizeof(SamplerState{})); err != nil {
		return nil, err
	}
	return &SamplerState{ExprHeader: ExprHeader{BaseNode: t.base(KindSamplerState, file, line)}}, nil
}
