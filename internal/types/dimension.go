package types

// BaseTypeDimension and ScalarBaseType are lookup tables with one entry
// per BaseType, sized to baseTypeCount so an out-of-range lookup panics
// loudly instead of silently returning a zero value for an unlisted type.
var BaseTypeDimension = [baseTypeCount]Dimension{
	Unknown: DimNone,
	Void:    DimNone,

	Float:    DimScalar,
	Float2:   DimVector2,
	Float3:   DimVector3,
	Float4:   DimVector4,
	Float2x2: DimMatrix2x2,
	Float3x3: DimMatrix3x3,
	Float4x4: DimMatrix4x4,
	Float4x3: DimMatrix4x3,
	Float4x2: DimMatrix4x2,

	Half:    DimScalar,
	Half2:   DimVector2,
	Half3:   DimVector3,
	Half4:   DimVector4,
	Half2x2: DimMatrix2x2,
	Half3x3: DimMatrix3x3,
	Half4x4: DimMatrix4x4,
	Half4x3: DimMatrix4x3,
	Half4x2: DimMatrix4x2,

	Bool:  DimScalar,
	Bool2: DimVector2,
	Bool3: DimVector3,
	Bool4: DimVector4,

	Int:  DimScalar,
	Int2: DimVector2,
	Int3: DimVector3,
	Int4: DimVector4,

	Uint:  DimScalar,
	Uint2: DimVector2,
	Uint3: DimVector3,
	Uint4: DimVector4,

	Texture:          DimNone,
	Sampler:          DimNone,
	Sampler2D:        DimNone,
	Sampler3D:        DimNone,
	SamplerCube:      DimNone,
	Sampler2DShadow:  DimNone,
	Sampler2DMS:      DimNone,
	Sampler2DArray:   DimNone,
	Texture1D:        DimNone,
	Texture1DArray:   DimNone,
	Texture2D:        DimNone,
	Texture2DArray:   DimNone,
	Texture2DMS:      DimNone,
	Texture2DMSArray: DimNone,
	Texture3D:        DimNone,
	TextureCube:      DimNone,
	TextureCubeArray: DimNone,
	SamplerStateType: DimNone,

	UserDefined: DimNone,
	Expression:  DimNone,
	Auto:        DimNone,
}

// ScalarBaseType maps every base type to the scalar it is built from (e.g.
// Float4x3 -> Float, Uint2 -> Uint); scalars map to themselves.
var ScalarBaseType = [baseTypeCount]BaseType{
	Float: Float, Float2: Float, Float3: Float, Float4: Float,
	Float2x2: Float, Float3x3: Float, Float4x4: Float, Float4x3: Float, Float4x2: Float,

	Half: Half, Half2: Half, Half3: Half, Half4: Half,
	Half2x2: Half, Half3x3: Half, Half4x4: Half, Half4x3: Half, Half4x2: Half,

	Bool: Bool, Bool2: Bool, Bool3: Bool, Bool4: Bool,
	Int: Int, Int2: Int, Int3: Int, Int4: Int,
	Uint: Uint, Uint2: Uint, Uint3: Uint, Uint4: Uint,
}

// rows returns the row count used to compare "components" for conversion
// ranking: vector width for vectors, row count for matrices, 1 for scalars.
func rows(d Dimension) int {
	switch d {
	case DimScalar:
		return 1
	case DimVector2:
		return 2
	case DimVector3:
		return 3
	case DimVector4:
		return 4
	case DimMatrix2x2:
		return 2
	case DimMatrix3x3:
		return 3
	case DimMatrix4x4, DimMatrix4x3, DimMatrix4x2:
		return 4
	}
	return 0
}
