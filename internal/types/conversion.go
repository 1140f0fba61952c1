package types

// NumericClass is one of the five scalar families the conversion-rank and
// binary-op-result matrices are indexed by: Float, Half, Bool, Int, Uint.
type NumericClass int

const (
	ClassFloat NumericClass = iota
	ClassHalf
	ClassBool
	ClassInt
	ClassUint
	numericClassCount
)

func classOf(b BaseType) (NumericClass, bool) {
	switch ScalarBaseType[b] {
	case Float:
		return ClassFloat, true
	case Half:
		return ClassHalf, true
	case Bool:
		return ClassBool, true
	case Int:
		return ClassInt, true
	case Uint:
		return ClassUint, true
	}
	return 0, false
}

// numericRank[a][b] is the cost of converting class a to class b: 0 for no
// class change, larger for a more expensive implicit conversion. The
// diagonal is 0, Float<->Half is cheap, and Bool is the most expensive
// class to convert to or from.
var numericRank = [numericClassCount][numericClassCount]int{
	ClassFloat: {ClassFloat: 0, ClassHalf: 1, ClassBool: 4, ClassInt: 3, ClassUint: 3},
	ClassHalf:  {ClassFloat: 1, ClassHalf: 0, ClassBool: 4, ClassInt: 3, ClassUint: 3},
	ClassBool:  {ClassFloat: 4, ClassHalf: 4, ClassBool: 0, ClassInt: 2, ClassUint: 2},
	ClassInt:   {ClassFloat: 3, ClassHalf: 3, ClassBool: 2, ClassInt: 0, ClassUint: 1},
	ClassUint:  {ClassFloat: 3, ClassHalf: 3, ClassBool: 2, ClassInt: 1, ClassUint: 0},
}

// Rank bit layout: bit 0 is the promotion flag, bit 4 is the truncation
// flag, and bits 1-3 hold numericRank (which fits 0..7).
const (
	RankPromotionBit  = 1 << 0
	RankTruncationBit = 1 << 4
)

// ConversionRank computes the implicit-conversion rank from src to dst.
// ok is false when no conversion is possible.
//
// arraySizesEqual is consulted only when both src and dst are arrays; it
// should report whether their (constant-folded) array sizes are equal.
func ConversionRank(src, dst Type, arraySizesEqual func(src, dst Type) bool) (rank int, ok bool) {
	if src.Array != dst.Array {
		return 0, false
	}
	if src.Array && dst.Array {
		if arraySizesEqual == nil || !arraySizesEqual(src, dst) {
			return 0, false
		}
	}

	if src.Base == UserDefined || dst.Base == UserDefined {
		if src.Base != UserDefined || dst.Base != UserDefined {
			return 0, false
		}
		if src.TypeName != dst.TypeName {
			return 0, false
		}
		return 0, true
	}

	if src.Base == dst.Base {
		if IsSampler(src.Base) && src.SamplerType != dst.SamplerType {
			return 0, false
		}
		return 0, true
	}

	if !IsNumeric(src.Base) || !IsNumeric(dst.Base) {
		return 0, false
	}

	srcClass, _ := classOf(src.Base)
	dstClass, _ := classOf(dst.Base)
	rank = numericRank[srcClass][dstClass] << 1

	srcDim := BaseTypeDimension[src.Base]
	dstDim := BaseTypeDimension[dst.Base]
	srcRows, dstRows := rows(srcDim), rows(dstDim)

	switch {
	case srcDim == dstDim:
		// Same shape: rank stands as the class-conversion cost alone.
	case srcDim == DimScalar:
		rank |= RankPromotionBit
	case dstDim == DimScalar || dstRows < srcRows:
		rank |= RankTruncationBit
	default:
		return 0, false
	}

	return rank, true
}
