package pathutils

// MatchPolicy determines how specifications which match no paths are handled.
type MatchPolicy int

//go:generate go run github.com/dmarkham/enumer -type=MatchPolicy -trimprefix MatchPolicy -transform snake -text
const (
	// Unmatched specifications abort the expansion with ErrNoMatch.
	MatchPolicyStrict MatchPolicy = iota
	// Unmatched specifications contribute no paths.
	MatchPolicyLenient
)
