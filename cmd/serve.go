package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/chordcraft/chordcraft/builder"
	"github.com/chordcraft/chordcraft/constants"
	"github.com/chordcraft/chordcraft/detect"
	"github.com/chordcraft/chordcraft/model"
	"github.com/chordcraft/chordcraft/progression"
	"github.com/chordcraft/chordcraft/resolve"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP",
	Long:  `Serves the chord API over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	var input model.ChordRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Could not unmarshal request body", 400)
		return
	}
	data := builder.BuildChordData(input.Root, input.Symbol)
	if data == nil {
		writeJSON(w, model.ErrorResponse{Error: "no chord for " + input.Root + input.Symbol})
		return
	}
	writeJSON(w, data)
}

func HandleDetect(w http.ResponseWriter, r *http.Request) {
	var input model.DetectRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Could not unmarshal request body", 400)
		return
	}
	writeJSON(w, detect.Detect(input.Notes))
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Could not unmarshal request body", 400)
		return
	}
	writeJSON(w, model.ResolveResponse{Candidates: resolve.Resolve(input.Root, input.Symbol)})
}

func HandleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Could not unmarshal request body", 400)
		return
	}
	chords := progression.Realize(input.Key, input.Numerals)
	writeJSON(w, model.ProgressionResponse{
		Chords:   chords,
		Voicings: builder.GetProgressionVoicings(chords),
	})
}

func HandleFeatured(w http.ResponseWriter, r *http.Request) {
	var res []model.ChordData
	for _, f := range builtinFeatured {
		if data := builder.BuildFeaturedChordData(f); data != nil {
			res = append(res, *data)
		}
	}
	writeJSON(w, res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chord", HandleChord).Methods("POST")
	router.HandleFunc("/detect", HandleDetect).Methods("POST")
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	router.HandleFunc("/progression", HandleProgression).Methods("POST")
	router.HandleFunc("/featured", HandleFeatured).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := constants.GetServeAddr()
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
