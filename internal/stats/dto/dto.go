package dto

type FramesRequest struct {
	Steps int `mapstructure:"steps"` // 0 uses the configured default
}

// StatView is a home page figure. Animated is false for values that are
// not magnitudes; they are shown as written.
type StatView struct {
	Label      string  `json:"label"`
	Value      string  `json:"value"`
	Animated   bool    `json:"animated"`
	Target     int64   `json:"target"`
	Exact      float64 `json:"exact"`
	Suffix     string  `json:"suffix"`
	Plus       bool    `json:"plus"`
	Fractional bool    `json:"fractional"`
	Display    string  `json:"display"`
}

type StatFrames struct {
	Label  string   `json:"label"`
	Frames []string `json:"frames"`
}

type StatsResponse struct {
	Stats []*StatView `json:"stats"`
}

type FramesResponse struct {
	Steps  int           `json:"steps"`
	Frames []*StatFrames `json:"frames"`
}
