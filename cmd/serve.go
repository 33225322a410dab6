package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/RickG2005/Audio-to-MIDI-Converter/midi"
	"github.com/RickG2005/Audio-to-MIDI-Converter/model"
	"github.com/RickG2005/Audio-to-MIDI-Converter/pipeline"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves an HTTP conversion endpoint",
	Long:  `Serves an HTTP conversion endpoint: POST pitch-tracker frames to /convert, get a midi file back`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body: "+err.Error())
		return
	}

	var input model.ConvertRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	opts := model.DefaultOptions()
	if input.BPM != nil {
		opts.BPM = *input.BPM
	}
	if input.Velocity != nil {
		opts.Velocity = *input.Velocity
	}

	events := pipeline.Run(input.Frames, opts)
	dat, err := midi.RenderBytes(events, opts)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}

	name := input.Name
	if name == "" {
		name = uuid.New().String()
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".mid"))
	w.Header().Set("X-Note-Events", strconv.Itoa(len(events)))
	w.Write(dat)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Printf("listening on :%d\n", servePort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", servePort), handler))
}
