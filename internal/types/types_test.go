package types

import "testing"

func TestIsSampler(t *testing.T) {
	samplers := []BaseType{Sampler, Sampler2D, Sampler3D, SamplerCube, Sampler2DShadow, Sampler2DMS, Sampler2DArray}
	for _, b := range samplers {
		if !IsSampler(b) {
			t.Errorf("expected %v to be a sampler", b)
		}
	}

	notSamplers := []BaseType{Float, Float4, Texture2D, Bool, SamplerStateType}
	for _, b := range notSamplers {
		if IsSampler(b) {
			t.Errorf("expected %v to not be a sampler", b)
		}
	}
}

func TestIsTexture(t *testing.T) {
	if !IsTexture(Texture2D) {
		t.Errorf("expected Texture2D to be a texture")
	}
	if IsTexture(Sampler2D) {
		t.Errorf("expected Sampler2D to not be a texture")
	}
}

func TestScalarVectorMatrixClassification(t *testing.T) {
	if !IsScalar(Float) || IsVector(Float) || IsMatrix(Float) {
		t.Errorf("Float should classify as scalar only")
	}
	if !IsVector(Float3) || IsScalar(Float3) || IsMatrix(Float3) {
		t.Errorf("Float3 should classify as vector only")
	}
	if !IsMatrix(Float4x4) || IsScalar(Float4x4) || IsVector(Float4x4) {
		t.Errorf("Float4x4 should classify as matrix only")
	}
}

func TestTypeHas(t *testing.T) {
	ty := Type{Flags: FlagConst | FlagStatic}
	if !ty.Has(FlagConst) {
		t.Errorf("expected Has(FlagConst) to be true")
	}
	if ty.Has(FlagInput) {
		t.Errorf("expected Has(FlagInput) to be false")
	}
	if !ty.Has(FlagConst | FlagStatic) {
		t.Errorf("expected Has to accept a combined mask")
	}
}

func TestConversionRankIdentity(t *testing.T) {
	rank, ok := ConversionRank(Type{Base: Float}, Type{Base: Float}, nil)
	if !ok || rank != 0 {
		t.Fatalf("identity conversion should be rank 0 ok=true, got rank=%d ok=%v", rank, ok)
	}
}

func TestConversionRankPromotesScalarToVector(t *testing.T) {
	rank, ok := ConversionRank(Type{Base: Float}, Type{Base: Float3}, nil)
	if !ok {
		t.Fatalf("expected scalar-to-vector to be a valid conversion")
	}
	if rank&RankPromotionBit == 0 {
		t.Fatalf("expected the promotion bit to be set, got rank=%d", rank)
	}
}

func TestConversionRankTruncatesVectorToScalar(t *testing.T) {
	rank, ok := ConversionRank(Type{Base: Float4}, Type{Base: Float}, nil)
	if !ok {
		t.Fatalf("expected vector-to-scalar to be a valid conversion")
	}
	if rank&RankTruncationBit == 0 {
		t.Fatalf("expected the truncation bit to be set, got rank=%d", rank)
	}
}

func TestConversionRankRejectsMismatchedShapes(t *testing.T) {
	_, ok := ConversionRank(Type{Base: Float3}, Type{Base: Float4}, nil)
	if ok {
		t.Fatalf("expected differently-sized vectors to not be convertible")
	}
}

func TestConversionRankRejectsDifferentUserTypes(t *testing.T) {
	_, ok := ConversionRank(Type{Base: UserDefined, TypeName: 1}, Type{Base: UserDefined, TypeName: 2}, nil)
	if ok {
		t.Fatalf("expected distinct struct types to not be convertible")
	}
}

func TestConversionRankSameUserType(t *testing.T) {
	rank, ok := ConversionRank(Type{Base: UserDefined, TypeName: 7}, Type{Base: UserDefined, TypeName: 7}, nil)
	if !ok || rank != 0 {
		t.Fatalf("expected identical struct types to convert at rank 0, got rank=%d ok=%v", rank, ok)
	}
}

func TestConversionRankRejectsUnequalArraySizes(t *testing.T) {
	src := Type{Base: Float, Array: true}
	dst := Type{Base: Float, Array: true}
	_, ok := ConversionRank(src, dst, func(a, b Type) bool { return false })
	if ok {
		t.Fatalf("expected mismatched array sizes to be rejected")
	}
}

func TestConversionRankRejectsNonNumericMismatch(t *testing.T) {
	_, ok := ConversionRank(Type{Base: Texture2D}, Type{Base: Float}, nil)
	if ok {
		t.Fatalf("expected a texture to not implicitly convert to float")
	}
}
