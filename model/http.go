package model

type ConvertRequestBody struct {
	// Name is used to derive the output filename; optional.
	Name   string  `json:"name"`
	Frames []Frame `json:"frames"`

	// Optional per-request overrides; server defaults apply when nil.
	BPM      *float64 `json:"bpm"`
	Velocity *uint8   `json:"velocity"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
