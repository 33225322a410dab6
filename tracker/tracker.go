// Package tracker supplies the pipeline's input: per-frame pitch
// candidates extracted from a WAV file with a short-time Fourier
// transform and spectral peak picking.
package tracker

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/unixpickle/wav"

	"github.com/RickG2005/Audio-to-MIDI-Converter/constants"
	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
)

// Relative floor against the frame's strongest bin. Keeps window sidelobes
// from registering as independent peaks.
const peakFloor = 0.1

func ReadWavFrames(path string, opts model.Options) ([]model.Frame, error) {
	s, err := wav.ReadSoundFile(path)
	if err != nil {
		return nil, errors.New("Error reading wav file... " + err.Error())
	}
	return ExtractFrames(downmix(s), s.SampleRate(), opts), nil
}

// downmix averages interleaved channels into a mono signal.
func downmix(s wav.Sound) []float64 {
	raw := s.Samples()
	ch := s.Channels()
	if ch <= 1 {
		out := make([]float64, len(raw))
		for i, v := range raw {
			out[i] = float64(v)
		}
		return out
	}
	out := make([]float64, 0, len(raw)/ch)
	for i := 0; i+ch <= len(raw); i += ch {
		var sum float64
		for j := 0; j < ch; j++ {
			sum += float64(raw[i+j])
		}
		out = append(out, sum/float64(ch))
	}
	return out
}

// ExtractFrames runs a Hann-windowed STFT over the signal and picks local
// spectral-magnitude maxima as pitch candidates, with parabolic
// interpolation to refine each peak's frequency. Frame times are strictly
// increasing (hop/sampleRate apart), which the grouper depends on.
func ExtractFrames(samples []float64, sampleRate int, opts model.Options) []model.Frame {
	win := constants.WindowSize
	hop := constants.HopSize
	if len(samples) < win || sampleRate <= 0 {
		return nil
	}

	hann := make([]float64, win)
	for i := range hann {
		hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(win))
	}

	half := win / 2
	buf := make([]float64, win)
	mags := make([]float64, half+1)

	var frames []model.Frame
	for start := 0; start+win <= len(samples); start += hop {
		for i := range buf {
			buf[i] = samples[start+i] * hann[i]
		}
		spectrum := fft.FFTReal(buf)

		frameMax := 0.0
		for k := 0; k <= half; k++ {
			mags[k] = cmplx.Abs(spectrum[k])
			if mags[k] > frameMax {
				frameMax = mags[k]
			}
		}
		floor := frameMax * peakFloor

		frame := model.Frame{Time: float64(start) / float64(sampleRate)}
		for k := 1; k < half; k++ {
			m := mags[k]
			if m <= floor || m <= mags[k-1] || m < mags[k+1] {
				continue
			}
			shift := 0.0
			if denom := mags[k-1] - 2*m + mags[k+1]; denom != 0 {
				shift = 0.5 * (mags[k-1] - mags[k+1]) / denom
			}
			freq := (float64(k) + shift) * float64(sampleRate) / float64(win)
			if freq < opts.FMin || freq > opts.FMax {
				continue
			}
			frame.Detections = append(frame.Detections, model.Detection{Hz: freq, Magnitude: m})
		}
		frames = append(frames, frame)
	}
	return frames
}
