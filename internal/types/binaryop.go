package types

// BinaryOpResult looks up the result type of a binary operator applied to
// two numeric base types in a precomputed result matrix (below). ok is
// false for a "hole" -- a combination the matrix marks Unknown, which must
// surface as a semantic error rather than be silently resolved to
// something plausible.
//
// Mismatched vector widths are a known oddity here: two vectors of
// different width combine to the *narrower* vector's width (e.g.
// float3 * float2 -> float2) instead of failing. Treat any such
// combination with suspicion in calling code; it is preserved as data, not
// endorsed as a good rule.
func BinaryOpResult(lhs, rhs BaseType) (BaseType, bool) {
	if !IsNumeric(lhs) || !IsNumeric(rhs) {
		return Unknown, false
	}
	li, ri := int(lhs-FirstNumeric), int(rhs-FirstNumeric)
	result := binaryOpResult[li][ri]
	return result, result != Unknown
}

var binaryOpResult [NumericCount][NumericCount]BaseType

func init() {
	for lhs := FirstNumeric; lhs <= LastNumeric; lhs++ {
		for rhs := FirstNumeric; rhs <= LastNumeric; rhs++ {
			binaryOpResult[lhs-FirstNumeric][rhs-FirstNumeric] = computeBinaryOpResult(lhs, rhs)
		}
	}
}

// classResult[a][b] is the scalar family a binary op between classes a and
// b promotes to: Float dominates everything, then Half, then Uint over
// Int over Bool.
var classResult = [numericClassCount][numericClassCount]NumericClass{
	ClassFloat: {ClassFloat: ClassFloat, ClassHalf: ClassFloat, ClassBool: ClassFloat, ClassInt: ClassFloat, ClassUint: ClassFloat},
	ClassHalf:  {ClassFloat: ClassFloat, ClassHalf: ClassHalf, ClassBool: ClassHalf, ClassInt: ClassHalf, ClassUint: ClassHalf},
	ClassBool:  {ClassFloat: ClassFloat, ClassHalf: ClassHalf, ClassBool: ClassBool, ClassInt: ClassInt, ClassUint: ClassUint},
	ClassInt:   {ClassFloat: ClassFloat, ClassHalf: ClassHalf, ClassBool: ClassInt, ClassInt: ClassInt, ClassUint: ClassUint},
	ClassUint:  {ClassFloat: ClassFloat, ClassHalf: ClassHalf, ClassBool: ClassUint, ClassInt: ClassUint, ClassUint: ClassUint},
}

func computeBinaryOpResult(lhs, rhs BaseType) BaseType {
	lhsClass, _ := classOf(lhs)
	rhsClass, _ := classOf(rhs)
	resultClass := classResult[lhsClass][rhsClass]

	lhsDim := BaseTypeDimension[lhs]
	rhsDim := BaseTypeDimension[rhs]

	var resultDim Dimension
	switch {
	case lhsDim == rhsDim:
		resultDim = lhsDim
	case lhsDim == DimScalar:
		resultDim = rhsDim
	case rhsDim == DimScalar:
		resultDim = lhsDim
	case isVectorDim(lhsDim) && isVectorDim(rhsDim):
		// Known anomaly: mismatched vector widths combine to the narrower
		// width instead of failing. See the doc comment on BinaryOpResult.
		if rows(lhsDim) < rows(rhsDim) {
			resultDim = lhsDim
		} else {
			resultDim = rhsDim
		}
	default:
		// Matrix/vector or matrix/matrix shape mismatch: a hole.
		return Unknown
	}

	return baseTypeFor(resultClass, resultDim)
}

func isVectorDim(d Dimension) bool {
	switch d {
	case DimVector2, DimVector3, DimVector4:
		return true
	}
	return false
}

// baseTypeFor reverses (NumericClass, Dimension) to a concrete BaseType,
// returning Unknown for combinations that don't exist (e.g. a Bool
// matrix -- Bool has no matrix forms).
func baseTypeFor(class NumericClass, dim Dimension) BaseType {
	switch class {
	case ClassFloat:
		switch dim {
		case DimScalar:
			return Float
		case DimVector2:
			return Float2
		case DimVector3:
			return Float3
		case DimVector4:
			return Float4
		case DimMatrix2x2:
			return Float2x2
		case DimMatrix3x3:
			return Float3x3
		case DimMatrix4x4:
			return Float4x4
		case DimMatrix4x3:
			return Float4x3
		case DimMatrix4x2:
			return Float4x2
		}
	case ClassHalf:
		switch dim {
		case DimScalar:
			return Half
		case DimVector2:
			return Half2
		case DimVector3:
			return Half3
		case DimVector4:
			return Half4
		case DimMatrix2x2:
			return Half2x2
		case DimMatrix3x3:
			return Half3x3
		case DimMatrix4x4:
			return Half4x4
		case DimMatrix4x3:
			return Half4x3
		case DimMatrix4x2:
			return Half4x2
		}
	case ClassBool:
		switch dim {
		case DimScalar:
			return Bool
		case DimVector2:
			return Bool2
		case DimVector3:
			return Bool3
		case DimVector4:
			return Bool4
		}
	case ClassInt:
		switch dim {
		case DimScalar:
			return Int
		case DimVector2:
			return Int2
		case DimVector3:
			return Int3
		case DimVector4:
			return Int4
		}
	case ClassUint:
		switch dim {
		case DimScalar:
			return Uint
		case DimVector2:
			return Uint2
		case DimVector3:
			return Uint3
		case DimVector4:
			return Uint4
		}
	}
	return Unknown
}

// VectorOfWidth returns the base type with the given scalar family and
// vector width (1 for scalar). Used by comparison/logical operators, whose
// result is a bool vector sized to the wider operand.
func VectorOfWidth(class NumericClass, width int) BaseType {
	switch width {
	case 1:
		return baseTypeFor(class, DimScalar)
	case 2:
		return baseTypeFor(class, DimVector2)
	case 3:
		return baseTypeFor(class, DimVector3)
	case 4:
		return baseTypeFor(class, DimVector4)
	}
	return Unknown
}

// Width returns a numeric base type's component count (1 for scalar, row
// count for matrices), or 0 if b is not numeric.
func Width(b BaseType) int {
	if !IsNumeric(b) {
		return 0
	}
	return rows(BaseTypeDimension[b])
}

// ClassOf exposes classOf for callers outside this file (the parser
// needs it to build bool-vector comparison results).
func ClassOf(b BaseType) (NumericClass, bool) { return classOf(b) }
