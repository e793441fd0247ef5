// Package server exposes the splitter over HTTP, mirroring a small
// upload/split/download workflow: a multipart POST with a GeoJSON file and a
// split request, persisted results, and download endpoints for the result and
// a WGS84 preview.
package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/supardi98/ngesplit/geoio"
	"github.com/supardi98/ngesplit/split"
)

const (
	// Split modes accepted by the upload form.
	ModeCount = 0
	ModeArea  = 1

	inputFile   = "input.geojson"
	resultFile  = "hasil_split.geojson"
	previewFile = "preview.geojson"

	maxUploadBytes = 32 << 20
)

type Server struct {
	dir string
	opt split.Options
	mux *http.ServeMux
}

// New creates a server persisting uploads and results under dir, creating it
// if needed.
func New(dir string, opt split.Options) (*Server, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create processed dir")
	}
	s := &Server{dir: dir, opt: opt}
	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/upload", s.handleUpload)
	s.mux.HandleFunc("/download/", s.handleDownload)
	return s, nil
}

// Handler returns the server's routes wrapped in permissive CORS, since the
// usual client is a browser map view on another origin.
func (s *Server) Handler() http.Handler {
	return cors(s.mux)
}

func (s *Server) ListenAndServe(addr string) error {
	log.Printf("ngesplit listening on %s, writing results to %s", addr, s.dir)
	return http.ListenAndServe(addr, s.Handler())
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "ngesplit",
		"upload":  "POST /upload (multipart: file, mode, val)",
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file, mode, and val are required")
		return
	}
	defer file.Close()
	mode, modeErr := strconv.Atoi(r.FormValue("mode"))
	val, valErr := strconv.ParseFloat(r.FormValue("val"), 64)
	if modeErr != nil || valErr != nil {
		writeError(w, http.StatusBadRequest, "file, mode, and val are required")
		return
	}

	job := newJobName()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, inputFile), data, 0o644); err != nil {
		log.Printf("[%s] persist input: %v", job, err)
		writeError(w, http.StatusInternalServerError, "could not persist upload")
		return
	}

	rings, err := geoio.DecodeRings(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := s.splitRings(rings, mode, val)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := geoio.EncodeResults(results)
	if err != nil {
		log.Printf("[%s] encode result: %v", job, err)
		writeError(w, http.StatusInternalServerError, "could not encode result")
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, resultFile), out, 0o644); err != nil {
		log.Printf("[%s] persist result: %v", job, err)
		writeError(w, http.StatusInternalServerError, "could not persist result")
		return
	}
	// WGS84 copy for map previews. The result is already WGS84, so the
	// preview is the same document under the name clients poll for.
	if err := os.WriteFile(filepath.Join(s.dir, previewFile), out, 0o644); err != nil {
		log.Printf("[%s] persist preview: %v", job, err)
		writeError(w, http.StatusInternalServerError, "could not persist preview")
		return
	}

	total := 0
	for _, res := range results {
		total += len(res)
	}
	log.Printf("[%s] split %d polygon(s) into %d slice(s), mode=%d val=%g", job, len(rings), total, mode, val)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "File processed",
		"download":       "/download/" + resultFile,
		"preview":        "/download/" + previewFile,
		"result_geojson": json.RawMessage(out),
	})
}

// splitRings runs the engine on each uploaded exterior ring, reprojecting
// through web mercator so areas are measured in meters, not degrees.
func (s *Server) splitRings(rings []split.Ring, mode int, val float64) ([]split.Result, error) {
	results := make([]split.Result, 0, len(rings))
	for _, ring := range rings {
		projected := geoio.ToMercator(ring)
		var res split.Result
		switch mode {
		case ModeCount:
			n := int(val)
			if n < 1 {
				return nil, errors.New("val must be a positive count for mode 0")
			}
			res = split.SplitByCountOpt(projected, n, s.opt)
		case ModeArea:
			if val <= 0 {
				return nil, errors.New("val must be a positive area for mode 1")
			}
			res = split.SplitByAreaOpt(projected, val, s.opt)
		default:
			return nil, errors.Errorf("unknown mode %d", mode)
		}
		results = append(results, geoio.FromMercator(res))
	}
	return results, nil
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.URL.Path)
	if name == "." || name == "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.dir, name))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
