package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/df07/go-path-tracer/pkg/renderer"
)

// CompleteUpdate is the final SSE event of a render
type CompleteUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Stats     Stats  `json:"stats"`
}

type renderOutcome struct {
	frame *renderer.Frame
	stats renderer.RenderStats
	err   error
}

// handleRender renders a scene and streams console output followed by the
// finished image via SSE. Only this goroutine writes to the response.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	setSSEHeaders(w)

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		sendSSEEvent(w, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := req.createScene()
	if err != nil {
		sendSSEEvent(w, "error", err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 64)
	logger := NewWebLogger(renderID, consoleChan)

	if req.isLarge() {
		logger.Printf("Warning: large image with high samples may render slowly\n")
	}
	raytracer := renderer.NewPathTracer(sceneObj, renderer.RenderOptions{NumWorkers: req.Workers}, logger)

	done := make(chan renderOutcome, 1)
	go func() {
		frame, stats, err := raytracer.Render()
		done <- renderOutcome{frame: frame, stats: stats, err: err}
	}()

	ctx := r.Context()
	for {
		select {
		case msg := <-consoleChan:
			sendConsoleEvent(w, msg)
		case outcome := <-done:
			drainConsole(w, consoleChan)
			if outcome.err != nil {
				sendSSEEvent(w, "error", fmt.Sprintf("Render error: %v", outcome.err))
				return
			}
			if err := sendComplete(w, outcome); err != nil {
				sendSSEEvent(w, "error", err.Error())
			}
			return
		case <-ctx.Done():
			// Client went away; the render finishes in the background
			return
		}
	}
}

func drainConsole(w http.ResponseWriter, consoleChan <-chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			sendConsoleEvent(w, msg)
		default:
			return
		}
	}
}

func sendConsoleEvent(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	sendSSEEvent(w, "console", string(data))
}

func sendComplete(w http.ResponseWriter, outcome renderOutcome) error {
	imageData, err := imageToBase64PNG(outcome.frame.Image())
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	data, err := json.Marshal(CompleteUpdate{
		ImageData: imageData,
		Width:     outcome.frame.Width,
		Height:    outcome.frame.Height,
		Stats: Stats{
			TotalPixels:    outcome.stats.TotalPixels,
			TotalSamples:   outcome.stats.TotalSamples,
			AverageSamples: outcome.stats.AverageSamples,
			Tiles:          outcome.stats.Tiles,
			Workers:        outcome.stats.Workers,
			ElapsedMs:      outcome.stats.Duration.Milliseconds(),
		},
	})
	if err != nil {
		return err
	}
	return sendSSEEvent(w, "complete", string(data))
}

func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEEvent sends a generic SSE event
func sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
