//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RickG2005/Audio-to-MIDI-Converter/cmd"
	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func createConvertReqBody(t *testing.T, body model.ConvertRequestBody) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func holdA4(from, to float64) []model.Frame {
	var frames []model.Frame
	for t := from; t <= to+1e-9; t += 0.01 {
		frames = append(frames, model.Frame{
			Time:       t,
			Detections: []model.Detection{{Hz: 440, Magnitude: 1.0}},
		})
	}
	return frames
}

func TestConvertE2E(t *testing.T) {
	body := createConvertReqBody(t, model.ConvertRequestBody{
		Name:   "a4",
		Frames: holdA4(0, 2.0),
	})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("1", resp.Header.Get("X-Note-Events"))
	assert.Contains(resp.Header.Get("Content-Disposition"), "a4.mid")

	s, err := smf.ReadFrom(bytes.NewReader(respBody))
	assert.NoError(err)
	assert.Len(s.Tracks, 1)

	var ons, offs int
	var absTicks uint64
	var lastOffTick uint64
	for _, ev := range s.Tracks[0] {
		absTicks += uint64(ev.Delta)
		var ch, key, vel uint8
		switch {
		case ev.Message.GetNoteOn(&ch, &key, &vel):
			ons++
			assert.Equal(uint8(69), key)
		case ev.Message.GetNoteOff(&ch, &key, &vel):
			offs++
			lastOffTick = absTicks
		}
	}
	assert.Equal(1, ons)
	assert.Equal(1, offs)
	assert.Equal(uint64(1920), lastOffTick)
}

func TestConvertE2EEmptyFrames(t *testing.T) {
	body := createConvertReqBody(t, model.ConvertRequestBody{})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Equal("0", resp.Header.Get("X-Note-Events"))

	// a valid file containing just the tempo message
	s, err := smf.ReadFrom(bytes.NewReader(respBody))
	assert.NoError(err)
	for _, ev := range s.Tracks[0] {
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) || ev.Message.GetNoteOff(&ch, &key, &vel) {
			t.Error("empty input should produce no note messages")
		}
	}
}

func TestConvertE2EBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", bytes.NewReader([]byte("{nope")))
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode)

	var errResp model.ErrorResponse
	respBody, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(respBody, &errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestConvertE2EOverrides(t *testing.T) {
	bpm := 60.0
	body := createConvertReqBody(t, model.ConvertRequestBody{
		Frames: holdA4(0, 1.0),
		BPM:    &bpm,
	})
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)

	s, err := smf.ReadFrom(bytes.NewReader(respBody))
	assert.NoError(t, err)

	var bpmOut float64
	for _, ev := range s.Tracks[0] {
		ev.Message.GetMetaTempo(&bpmOut)
	}
	assert.Equal(t, 60.0, bpmOut)
}
