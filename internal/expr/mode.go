package expr

// RoundingMode enumerates the IEEE-754 rounding modes carried by FP ops,
// ported from the source's Mode::FP::Rounding.
type RoundingMode uint8

const (
	RoundNearestTiesEven RoundingMode = iota
	RoundNearestTiesAwayFromZero
	RoundTowardsZero
	RoundTowardsPositiveInf
	RoundTowardsNegativeInf
)

func (m RoundingMode) String() string {
	switch m {
	case RoundNearestTiesEven:
		return "NearestTiesEven"
	case RoundNearestTiesAwayFromZero:
		return "NearestTiesAwayFromZero"
	case RoundTowardsZero:
		return "TowardsZero"
	case RoundTowardsPositiveInf:
		return "TowardsPositiveInf"
	case RoundTowardsNegativeInf:
		return "TowardsNegativeInf"
	default:
		return "Unknown"
	}
}

// CharBit is the over-approximation unit used by String.FromInt's bit
// length contract (spec §4.3, open question #1: preserve source behavior).
const CharBit = 8
