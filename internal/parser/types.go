package parser

import (
	"github.com/laurentdupin/hlslparser/internal/intern"
	"github.com/laurentdupin/hlslparser/internal/token"
	"github.com/laurentdupin/hlslparser/internal/types"
)

// baseTypeKeywords maps every built-in type-name keyword to its BaseType.
var baseTypeKeywords = map[string]types.BaseType{
	"void": types.Void,

	"float": types.Float, "float2": types.Float2, "float3": types.Float3, "float4": types.Float4,
	"float2x2": types.Float2x2, "float3x3": types.Float3x3, "float4x4": types.Float4x4,
	"float4x3": types.Float4x3, "float4x2": types.Float4x2,

	"half": types.Half, "half2": types.Half2, "half3": types.Half3, "half4": types.Half4,
	"half2x2": types.Half2x2, "half3x3": types.Half3x3, "half4x4": types.Half4x4,
	"half4x3": types.Half4x3, "half4x2": types.Half4x2,

	"bool": types.Bool, "bool2": types.Bool2, "bool3": types.Bool3, "bool4": types.Bool4,
	"int": types.Int, "int2": types.Int2, "int3": types.Int3, "int4": types.Int4,
	"uint": types.Uint, "uint2": types.Uint2, "uint3": types.Uint3, "uint4": types.Uint4,

	"texture": types.Texture,
	"sampler": types.Sampler, "sampler2D": types.Sampler2D, "sampler3D": types.Sampler3D,
	"samplerCUBE": types.SamplerCube, "sampler2DShadow": types.Sampler2DShadow,
	"sampler2DMS": types.Sampler2DMS, "sampler2DArray": types.Sampler2DArray,

	"Texture1D": types.Texture1D, "Texture1DArray": types.Texture1DArray,
	"Texture2D": types.Texture2D, "Texture2DArray": types.Texture2DArray,
	"Texture2DMS": types.Texture2DMS, "Texture2DMSArray": types.Texture2DMSArray,
	"Texture3D": types.Texture3D, "TextureCube": types.TextureCube,
	"TextureCubeArray": types.TextureCubeArray,

	"SamplerState": types.SamplerStateType,
}

// modifierKeywords maps leading type-qualifier keywords to flag bits.
var modifierKeywords = map[string]types.Flags{
	"const":           types.FlagConst,
	"static":          types.FlagStatic,
	"in":              types.FlagInput,
	"out":             types.FlagOutput,
	"inout":           types.FlagInput | types.FlagOutput,
	"linear":          types.FlagLinear,
	"centroid":        types.FlagCentroid,
	"nointerpolation": types.FlagNoInterpolation,
	"noperspective":   types.FlagNoPerspective,
	"sample":          types.FlagSample,
	"uniform":         types.Flags(0),
	"inline":          types.Flags(0),
}

// isIdentifierLike reports whether k is a token whose text is available via
// Lexer.Identifier(): a plain identifier or one of the reserved keywords
// (which still scan through scanIdentifierOrKeyword and carry their
// spelling, just with a reserved Kind instead of token.Identifier).
func isIdentifierLike(k token.Kind) bool {
	return k == token.Identifier || k >= token.FirstReserved
}

// peekBaseType reports whether the current token names a built-in type,
// without consuming it.
func (p *Parser) peekBaseType() (types.BaseType, bool) {
	if !isIdentifierLike(p.lex.Kind()) {
		return types.Unknown, false
	}
	b, ok := baseTypeKeywords[p.lex.Identifier()]
	return b, ok
}

// peekUserType reports whether the current identifier names a previously
// declared struct.
func (p *Parser) peekUserType() (intern.Symbol, bool) {
	if p.lex.Kind() != token.Identifier {
		return intern.NoSymbol, false
	}
	name := p.intern(p.lex.Identifier())
	if p.tree.Root.FindGlobalStruct(name) != nil {
		return name, true
	}
	return intern.NoSymbol, false
}

// looksLikeTypeStart reports whether the current token could start a
// type-name (built-in keyword, known struct name, or a type qualifier).
func (p *Parser) looksLikeTypeStart() bool {
	if !isIdentifierLike(p.lex.Kind()) {
		return false
	}
	if _, ok := modifierKeywords[p.lex.Identifier()]; ok {
		return true
	}
	if _, ok := baseTypeKeywords[p.lex.Identifier()]; ok {
		return true
	}
	_, ok := p.peekUserType()
	return ok
}

// parseType parses an optional sequence of qualifiers followed by a base
// or struct type name, plus sampler element type for sampler bases.
func (p *Parser) parseType() (types.Type, bool) {
	var flags types.Flags
	for isIdentifierLike(p.lex.Kind()) {
		f, ok := modifierKeywords[p.lex.Identifier()]
		if !ok {
			break
		}
		flags |= f
		p.lex.Next()
	}

	if base, ok := p.peekBaseType(); ok {
		p.lex.Next()
		typ := types.Type{Base: base, Flags: flags}
		if types.IsSampler(base) && p.accept(token.Kind('<')) {
			if inner, ok := p.peekBaseType(); ok && (inner == types.Float || inner == types.Half) {
				typ.SamplerType = inner
				p.lex.Next()
			} else {
				typ.SamplerType = types.Float
			}
			p.expect(token.Kind('>'))
		} else if types.IsSampler(base) {
			typ.SamplerType = types.Float
		}
		return typ, true
	}

	if name, ok := p.peekUserType(); ok {
		p.lex.Next()
		return types.Type{Base: types.UserDefined, TypeName: name, Flags: flags}, true
	}

	return types.Type{}, false
}
