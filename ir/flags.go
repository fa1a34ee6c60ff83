package ir

// FpRounding is the rounding mode threaded through floating-point
// instructions via FpControl.
type FpRounding byte

const (
	FpRoundingDontCare FpRounding = iota
	FpRoundingRoundEven
	FpRoundingZero
	FpRoundingUp
	FpRoundingDown
)

func (r FpRounding) String() string {
	switch r {
	case FpRoundingRoundEven:
		return "round_even"
	case FpRoundingZero:
		return "rz"
	case FpRoundingUp:
		return "ru"
	case FpRoundingDown:
		return "rd"
	default:
		return "rn"
	}
}

// FmzMode controls flush-to-zero/multiply-by-zero handling of denormals.
type FmzMode byte

const (
	FmzModeDontCare FmzMode = iota
	FmzModeNone
	FmzModeFTZ
	FmzModeFMZ
)

func (m FmzMode) String() string {
	switch m {
	case FmzModeNone:
		return "none"
	case FmzModeFTZ:
		return "ftz"
	case FmzModeFMZ:
		return "fmz"
	default:
		return "dontcare"
	}
}

// FpControl is the flags payload attached to every floating-point
// arithmetic opcode; comparisons and conversions carry no flags.
type FpControl struct {
	NoContraction bool
	Rounding      FpRounding
	FmzMode       FmzMode
}

// TextureType classifies the dimensionality of a texture/image operand.
type TextureType byte

const (
	TextureType1D TextureType = iota
	TextureType2D
	TextureType3D
	TextureTypeCube
	TextureTypeArray1D
	TextureTypeArray2D
	TextureTypeArrayCube
	TextureTypeBuffer
)

// TextureInstInfo is the flags payload attached to image/texture opcodes.
type TextureInstInfo struct {
	Type            TextureType
	IsDepth         bool
	HasBias         bool
	HasLodClamp     bool
	GatherComponent uint8
	DescriptorIndex uint32
}
