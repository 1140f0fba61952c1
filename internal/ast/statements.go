package ast

import "github.com/laurentdupin/hlslparser/internal/intern"

// ArgumentModifier tags how a function argument's value flows: plain,
// in/out reference, or uniform.
type ArgumentModifier int

const (
	ModifierNone ArgumentModifier = iota
	ModifierIn
	ModifierOut
	ModifierInOut
	ModifierUniform
)

// AttributeType names the closed set of attribute-block annotations that
// can precede an if/for statement or a function.
type AttributeType int

const (
	AttributeUnroll AttributeType = iota
	AttributeFlatten
	AttributeBranch
	AttributeNoFastMath
	AttributeUnknown
)

// Attribute is one `[name(arg)]` annotation; NextAttribute chains the rest
// of the block it appeared in.
type Attribute struct {
	BaseNode
	AttributeType AttributeType
	Argument      Expression
	NextAttribute *Attribute
}

func (a *Attribute) Kind() NodeKind { return KindAttribute }

// Declaration is a global or local variable declaration. Multiple
// comma-separated variables in one statement chain via NextDeclaration,
// all sharing Type.
type Declaration struct {
	StmtHeader
	Name         intern.Symbol
	Type         Type
	RegisterName intern.Symbol
	SpaceName    intern.Symbol
	Semantic     intern.Symbol
	Assignment   Expression
	Buffer       *Buffer // non-nil when this declares a cbuffer/tbuffer field
	NextDeclaration *Declaration
}

func (d *Declaration) Kind() NodeKind { return KindDeclaration }

// Struct is a struct type definition; Field is the head of its field list.
type Struct struct {
	StmtHeader
	Name  intern.Symbol
	Field *StructField
}

func (s *Struct) Kind() NodeKind { return KindStruct }

// StructField is one member of a Struct or Buffer; NextField chains
// siblings within the same struct/buffer body.
type StructField struct {
	StmtHeader
	Name       intern.Symbol
	Type       Type
	Semantic   intern.Symbol
	SVSemantic intern.Symbol
	NextField  *StructField
}

func (f *StructField) Kind() NodeKind { return KindStructField }

// Buffer is a cbuffer/tbuffer block; Field is the head of its declaration
// list, chained via NextDeclaration. The fields are not in the top-level
// statement chain; each one points back at its block through Buffer.
type Buffer struct {
	StmtHeader
	Name         intern.Symbol
	RegisterName intern.Symbol
	SpaceName    intern.Symbol
	IsTextureBuffer bool
	Field        *Declaration
}

func (b *Buffer) Kind() NodeKind { return KindBuffer }

// Argument is one function parameter; NextArgument chains the rest of the
// parameter list.
type Argument struct {
	StmtHeader
	Name         intern.Symbol
	Modifier     ArgumentModifier
	Type         Type
	Semantic     intern.Symbol
	SVSemantic   intern.Symbol
	DefaultValue Expression
	NextArgument *Argument
}

func (a *Argument) Kind() NodeKind { return KindArgument }

// Function is a function declaration or definition. A prototype
// (declaration without a body) has Statement == nil; Forward links a
// later definition back to its earlier forward declaration.
type Function struct {
	StmtHeader
	Name               intern.Symbol
	ReturnType         Type
	Semantic           intern.Symbol
	SVSemantic         intern.Symbol
	NumArguments       int
	NumOutputArguments int
	Argument           *Argument
	Statement          Statement
	Forward            *Function
}

func (f *Function) Kind() NodeKind { return KindFunction }

// ExpressionStatement wraps a bare expression used as a statement (e.g. a
// function call for its side effect, or an assignment).
type ExpressionStatement struct {
	StmtHeader
	Expression Expression
}

func (e *ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }

// Return is a `return [expr];` statement.
type Return struct {
	StmtHeader
	Expression Expression
}

func (r *Return) Kind() NodeKind { return KindReturn }

// Discard is a `discard;` statement (pixel-kill).
type Discard struct {
	StmtHeader
}

func (d *Discard) Kind() NodeKind { return KindDiscard }

// Break is a `break;` statement.
type Break struct {
	StmtHeader
}

func (b *Break) Kind() NodeKind { return KindBreak }

// Continue is a `continue;` statement.
type Continue struct {
	StmtHeader
}

func (c *Continue) Kind() NodeKind { return KindContinue }

// If is an `if (cond) stmt [else elseStmt]` statement. IsStatic marks a
// static-conditional form (evaluated at translation time rather than
// emitted); the current resolver never sets it (see DESIGN.md).
type If struct {
	StmtHeader
	Condition     Expression
	Statement     Statement
	ElseStatement Statement
	IsStatic      bool
}

func (i *If) Kind() NodeKind { return KindIf }

// For is a C-style `for (init; cond; inc) stmt` loop. Initialization is a
// declaration statement (HLSL's for-loops always declare their induction
// variable inline); Condition and Increment may be nil.
type For struct {
	StmtHeader
	Initialization *Declaration
	Condition      Expression
	Increment      Expression
	Statement      Statement
}

func (f *For) Kind() NodeKind { return KindFor }

// Block is a brace-delimited `{ ... }` statement group; Statement is the
// head of the contained statement list.
type Block struct {
	StmtHeader
	Statement Statement
}

func (b *Block) Kind() NodeKind { return KindBlock }

// StateAssignment is one `name = value;` line inside a SamplerState, Pass,
// or Pipeline body.
type StateAssignment struct {
	BaseNode
	StateName           intern.Symbol
	D3DRenderState      int
	IntValue            int64
	FloatValue          float64
	StringValue         intern.Symbol
	NextStateAssignment *StateAssignment
}

func (s *StateAssignment) Kind() NodeKind { return KindStateAssignment }

// Pass is one `pass { ... }` block inside a Technique; NextPass chains
// sibling passes.
type Pass struct {
	StmtHeader
	Name                 intern.Symbol
	NumStateAssignments  int
	StateAssignments     *StateAssignment
	NextPass             *Pass
}

func (p *Pass) Kind() NodeKind { return KindPass }

// Technique is a `technique name { pass ... }` block.
type Technique struct {
	StmtHeader
	Name      intern.Symbol
	NumPasses int
	Passes    *Pass
}

func (t *Technique) Kind() NodeKind { return KindTechnique }

// Pipeline is a `pipeline name { ... }` block binding stages together.
type Pipeline struct {
	StmtHeader
	Name                intern.Symbol
	NumStateAssignments int
	StateAssignments    *StateAssignment
}

func (p *Pipeline) Kind() NodeKind { return KindPipeline }

// Stage is a `stage name { ... }` shader-stage body (vertex/pixel/etc),
// holding its own statement list. The parser leaves Inputs and Outputs
// nil: a stage body has no separate input/output blocks.
type Stage struct {
	StmtHeader
	Name      intern.Symbol
	Statement Statement
	Inputs    *Declaration
	Outputs   *Declaration
}

func (s *Stage) Kind() NodeKind { return KindStage }
