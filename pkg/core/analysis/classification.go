package analysis

// Classification is the quality tier derived from the total score.
type Classification string

const (
	HighQuality Classification = "High-quality"
	Strong      Classification = "Strong"
	Average     Classification = "Average"
	Risky       Classification = "Risky"
)

// Score bounds for a valid record: 11 dimensions, each scored 1-10.
const (
	MinTotalScore = NumDimensions * 1
	MaxTotalScore = NumDimensions * 10
)

// Classify maps a total score onto its quality tier. This table is
// authoritative: whatever tier the model claims, the stored record
// carries the bucket computed here.
//
//	>= 85  High-quality
//	70-84  Strong
//	55-69  Average
//	<  55  Risky
func Classify(totalScore int) Classification {
	switch {
	case totalScore >= 85:
		return HighQuality
	case totalScore >= 70:
		return Strong
	case totalScore >= 55:
		return Average
	default:
		return Risky
	}
}
