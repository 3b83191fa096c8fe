package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/korpuslab/patmin/corpus"
	"github.com/korpuslab/patmin/pipeline"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// ---- JSON request/response types ----------------------------------------

type analyzeRequest struct {
	Source    string   `json:"source"`
	Sentences []string `json:"sentences"`
}

type errorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "expose the analysis pipeline as a JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "listen address",
			},
			&cli.StringFlag{
				Name:  "annotations",
				Usage: "pre-annotated corpus JSON; skips the annotation service",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}

	p, closeCache, err := buildProvider(c.Context, conf, c.String("annotations"))
	if err != nil {
		return err
	}
	defer closeCache()

	log := newLogger(c)
	analyzer := pipeline.NewAnalyzer(p, analyzerOptions(conf, log, nil))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/analyze", handleAnalyze(analyzer, log))

	addr := c.String("addr")
	log.Info().Str("addr", addr).Msg("listening")

	return http.ListenAndServe(addr, cors.Default().Handler(mux))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleAnalyze(analyzer *pipeline.Analyzer, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required", "")
			return
		}

		req, err := decodeAnalyzeRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}

		rep, err := analyzer.Run(r.Context(), req.Source, req.Sentences)
		if err != nil {
			log.Error().Err(err).Msg("analysis failed")

			stage := ""
			var aerr *pipeline.AnalysisError
			if errors.As(err, &aerr) {
				stage = aerr.Stage
			}
			writeError(w, http.StatusInternalServerError, err.Error(), stage)
			return
		}

		writeJSON(w, http.StatusOK, rep)
	}
}

// decodeAnalyzeRequest accepts either a JSON body with a 'sentences'
// array or a raw CSV upload (Content-Type text/csv; 'column' and 'source'
// query parameters).
func decodeAnalyzeRequest(r *http.Request) (analyzeRequest, error) {
	req := analyzeRequest{Source: r.URL.Query().Get("source")}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/csv") {
		sentences, err := corpus.FromCSV(r.Body, r.URL.Query().Get("column"), ',')
		if err != nil {
			return req, err
		}
		req.Sentences = sentences
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errors.New("body must be JSON with a non-empty 'sentences' array, or CSV with Content-Type text/csv")
	}

	if len(req.Sentences) == 0 {
		return req, errors.New("no sentences in request")
	}
	if req.Source == "" {
		req.Source = "api"
	}

	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, stage string) {
	writeJSON(w, status, errorResponse{Error: msg, Stage: stage})
}
