package types

// Signature describes one intrinsic or user function overload candidate: a
// name, a return type, and its parameter types. Every intrinsic parameter
// implicitly carries FlagConst.
type Signature struct {
	Name       string
	ReturnType Type
	ArgTypes   []Type
}

func t(b BaseType) Type { return Type{Base: b, Flags: FlagConst} }

// floatFamily lists the float/half scalar-through-vector4 shapes that most
// math intrinsics are overloaded across.
var floatFamily = []BaseType{Float, Float2, Float3, Float4, Half, Half2, Half3, Half4}

// Intrinsics is the fixed, immutable intrinsic signature table. It is
// generated here from a compact per-function description rather than
// hand-listing every overload: these generator loops run once at package
// init and populate it.
var Intrinsics []Signature

func init() {
	// One-argument math functions: same family in and out.
	unary := []string{
		"abs", "sin", "cos", "tan", "asin", "acos", "atan", "sqrt", "rsqrt",
		"floor", "ceil", "frac", "trunc", "round", "exp", "exp2", "log",
		"log2", "saturate", "normalize", "sign", "radians", "degrees", "ddx", "ddy",
	}
	for _, name := range unary {
		for _, b := range floatFamily {
			addIntrinsic(name, t(b), t(b))
		}
	}

	// length/distance/dot collapse a vector family to a scalar of the same
	// element type (or, for dot, take two operands of the same shape).
	for _, b := range floatFamily {
		scalar := scalarOf(b)
		addIntrinsic("length", t(scalar), t(b))
		addIntrinsic("distance", t(scalar), t(b), t(b))
		addIntrinsic("dot", t(scalar), t(b), t(b))
	}

	// cross is only defined on 3-component vectors.
	addIntrinsic("cross", t(Float3), t(Float3), t(Float3))
	addIntrinsic("cross", t(Half3), t(Half3), t(Half3))

	// Two-argument, same-shape-in-same-shape-out functions.
	binary := []string{"min", "max", "pow", "step", "fmod", "atan2", "reflect", "mul"}
	for _, name := range binary {
		for _, b := range floatFamily {
			addIntrinsic(name, t(b), t(b), t(b))
		}
	}

	// Three-argument blend/clamp functions.
	ternary := []string{"lerp", "clamp", "smoothstep", "mad"}
	for _, name := range ternary {
		for _, b := range floatFamily {
			addIntrinsic(name, t(b), t(b), t(b), t(b))
		}
	}

	// any/all reduce a vector to bool.
	for _, b := range floatFamily {
		addIntrinsic("any", t(Bool), t(b))
		addIntrinsic("all", t(Bool), t(b))
	}

	// Texture sampling intrinsics: sampler + coordinate, float4 result.
	addIntrinsic("tex1D", t(Float4), t(Sampler), t(Float))
	addIntrinsic("tex2D", t(Float4), t(Sampler2D), t(Float2))
	addIntrinsic("tex2Dlod", t(Float4), t(Sampler2D), t(Float4))
	addIntrinsic("tex2Dbias", t(Float4), t(Sampler2D), t(Float4))
	addIntrinsic("tex2Dproj", t(Float4), t(Sampler2D), t(Float4))
	addIntrinsic("tex2Dgrad", t(Float4), t(Sampler2D), t(Float2), t(Float2), t(Float2))
	addIntrinsic("tex3D", t(Float4), t(Sampler3D), t(Float3))
	addIntrinsic("texCUBE", t(Float4), t(SamplerCube), t(Float3))
	addIntrinsic("tex2Dshadow", t(Float), t(Sampler2DShadow), t(Float4))
	addIntrinsic("tex2DMSfetch", t(Float4), t(Sampler2DMS), t(Int2), t(Int))
	addIntrinsic("tex2Darray", t(Float4), t(Sampler2DArray), t(Float3))

	// Bit-manipulation intrinsics, integer family only.
	for _, b := range []BaseType{Int, Int2, Int3, Int4, Uint, Uint2, Uint3, Uint4} {
		addIntrinsic("countbits", t(b), t(b))
		addIntrinsic("reversebits", t(b), t(b))
		addIntrinsic("firstbithigh", t(b), t(b))
		addIntrinsic("firstbitlow", t(b), t(b))
	}

	// Type reinterpretation.
	addIntrinsic("asfloat", t(Float), t(Int))
	addIntrinsic("asfloat", t(Float), t(Uint))
	addIntrinsic("asint", t(Int), t(Float))
	addIntrinsic("asuint", t(Uint), t(Float))
}

func addIntrinsic(name string, ret Type, args ...Type) {
	Intrinsics = append(Intrinsics, Signature{Name: name, ReturnType: ret, ArgTypes: args})
}

func scalarOf(b BaseType) BaseType { return ScalarBaseType[b] }

// LookupIntrinsics returns every intrinsic signature with the given name,
// in table order. Callers scan these after user-defined overloads.
func LookupIntrinsics(name string) []Signature {
	var out []Signature
	for _, sig := range Intrinsics {
		if sig.Name == name {
			out = append(out, sig)
		}
	}
	return out
}
