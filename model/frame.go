package model

// Detection is one raw (frequency, magnitude) pair reported by the
// spectral tracker for a single analysis frame.
type Detection struct {
	Hz        float64 `json:"hz"`
	Magnitude float64 `json:"magnitude"`
}

// Frame is the input contract of the pipeline: everything detected at one
// timestamp. Frames arrive ordered by non-decreasing Time.
type Frame struct {
	Time       float64     `json:"time"`
	Detections []Detection `json:"detections"`
}
