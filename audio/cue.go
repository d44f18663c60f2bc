package audio

// Cue identifies a gameplay sound
type Cue uint8

const (
	CueSpotted Cue = iota // enemy newly visible
	CueCaught             // enemy reached the player
	CueBump               // player move rejected by a wall
)

func (c Cue) String() string {
	switch c {
	case CueSpotted:
		return "spotted"
	case CueCaught:
		return "caught"
	case CueBump:
		return "bump"
	default:
		return "unknown"
	}
}
