package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/imageio"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	AverageBounces float64 `json:"averageBounces"`
	Bands          int     `json:"bands"`
	Escaped        int     `json:"escaped"`
	Absorbed       int     `json:"absorbed"`
	Emitted        int     `json:"emitted"`
	DepthLimited   int     `json:"depthLimited"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		TotalSamples:   stats.TotalSamples,
		AverageSamples: stats.AverageSamples(),
		AverageBounces: stats.AverageBounces(),
		Bands:          stats.Bands,
		Escaped:        stats.Escaped,
		Absorbed:       stats.Absorbed,
		Emitted:        stats.Emitted,
		DepthLimited:   stats.DepthLimited,
		ElapsedMs:      stats.Duration.Milliseconds(),
	}
}

// CompleteEvent is sent when a streamed render finishes
type CompleteEvent struct {
	ImageData string `json:"imageData"` // Base64 encoded image
	Format    string `json:"format"`
	Stats     Stats  `json:"stats"`
}

// renderOutput is the result of a finished render
type renderOutput struct {
	image *image.RGBA
	stats renderer.RenderStats
	err   error
}

// render builds the scene, renders it and applies thumbnail and caption
func (s *Server) render(req *RenderRequest, logger core.Logger) renderOutput {
	sceneObj, err := s.createScene(req)
	if err != nil {
		return renderOutput{err: err}
	}

	raytracer, err := renderer.NewRaytracer(sceneObj, s.renderConfig(req, sceneObj), logger)
	if err != nil {
		return renderOutput{err: err}
	}

	img, stats := raytracer.Render()
	if req.Thumb > 0 {
		img = imageio.Thumbnail(img, req.Thumb)
	}
	if req.Caption {
		if err := imageio.Caption(img, captionText(sceneObj, raytracer.Config(), stats)); err != nil {
			return renderOutput{err: err}
		}
	}
	return renderOutput{image: img, stats: stats}
}

// captionText summarizes a render in one line
func captionText(sceneObj *scene.Scene, config renderer.RenderConfig, stats renderer.RenderStats) string {
	return fmt.Sprintf("%s  %dx%d  %d spp  depth %d  %v",
		sceneObj.Name, config.Sampling.Width, config.Sampling.Height,
		config.Sampling.SamplesPerPixel, config.Sampling.MaxDepth, stats.Duration.Round(time.Millisecond))
}

// handleRender renders synchronously and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	output := s.render(req, renderer.NewDefaultLogger())
	if output.err != nil {
		writeError(w, renderErrorStatus(output.err), output.err.Error())
		return
	}

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, output.image, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", fmt.Sprint(output.stats.Duration.Milliseconds()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleRenderStream renders in the background and streams console output
// as server-sent events, ending with a "complete" or "error" event. Renders
// are not cancellable: a disconnected client only stops the stream.
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	done := make(chan renderOutput, 1)
	go func() {
		done <- s.render(req, webLogger)
	}()

	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleEvent(w, msg)

		case output := <-done:
			// Flush console messages posted before completion
			for drained := false; !drained; {
				select {
				case msg := <-consoleChan:
					s.sendConsoleEvent(w, msg)
				default:
					drained = true
				}
			}

			if output.err != nil {
				s.sendSSEEvent(w, "error", output.err.Error())
				return
			}
			s.sendComplete(w, req, output)
			return

		case <-ctx.Done():
			return
		}
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

func (s *Server) sendConsoleEvent(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

func (s *Server) sendComplete(w http.ResponseWriter, req *RenderRequest, output renderOutput) {
	var buf bytes.Buffer
	if err := imageio.Encode(&buf, output.image, req.Format); err != nil {
		s.sendSSEEvent(w, "error", err.Error())
		return
	}

	data, err := json.Marshal(CompleteEvent{
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Format:    string(req.Format),
		Stats:     newStats(output.stats),
	})
	if err != nil {
		s.sendSSEEvent(w, "error", err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// sendSSEEvent writes a single event and flushes it to the client
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// renderErrorStatus maps render failures to HTTP status codes
func renderErrorStatus(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene), errors.Is(err, renderer.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
