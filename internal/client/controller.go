package client

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"doc-text-extractor/internal/domain"
	"doc-text-extractor/internal/service"
)

// State is the controller's position in the extraction lifecycle.
type State int

const (
	StateIdle State = iota
	StateFileSelected
	StateProcessing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file_selected"
	case StateProcessing:
		return "processing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Controller orchestrates selection, validation, encoding, the gateway call
// and the result lifecycle. It holds at most one of {result, error} at any
// time, and at most one extraction may be in flight.
type Controller struct {
	mu         sync.Mutex
	state      State
	candidate  *domain.UploadCandidate
	result     *domain.ExtractionResult
	lastError  *domain.ExtractionError
	cancel     context.CancelFunc
	generation int

	validator *service.Validator
	gateway   Gateway
}

// NewController creates a new pipeline controller
func NewController(validator *service.Validator, gateway Gateway) *Controller {
	return &Controller{
		state:     StateIdle,
		validator: validator,
		gateway:   gateway,
	}
}

// SelectPath reads a file from disk and selects it for extraction.
// Read failures propagate; they are not swallowed.
func (c *Controller) SelectPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.SelectFile(filepath.Base(path), data)
}

// SelectFile validates the file and stores it as the upload candidate.
// A valid selection clears any previously displayed result or error so
// stale output is never shown next to a new file. A rejected file leaves
// the controller with no candidate.
func (c *Controller) SelectFile(fileName string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateProcessing {
		return domain.ErrExtractionInProgress
	}

	candidate, err := c.validator.ValidateFile(fileName, data)
	if err != nil {
		c.candidate = nil
		c.result = nil
		c.lastError = &domain.ExtractionError{Message: err.Error()}
		c.state = StateIdle
		return err
	}

	c.candidate = candidate
	c.result = nil
	c.lastError = nil
	c.state = StateFileSelected
	return nil
}

// Extract runs the encode-submit leg of the pipeline for the current
// candidate. It is only callable with a file selected and no extraction in
// flight; the Processing state acts as a mutex. The outbound call carries a
// cancellation token so a response arriving after Reset is provably
// discarded rather than racing a later extraction's state.
func (c *Controller) Extract(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateProcessing {
		c.mu.Unlock()
		return domain.ErrExtractionInProgress
	}
	if c.candidate == nil {
		c.mu.Unlock()
		return domain.ErrNoFileSelected
	}

	candidate := c.candidate
	c.state = StateProcessing
	c.result = nil
	c.lastError = nil
	c.generation++
	gen := c.generation

	callCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	payload, err := service.EncodePayload(candidate)
	if err != nil {
		c.finishFailed(gen, err.Error())
		return err
	}

	text, err := c.gateway.Extract(callCtx, payload, candidate.FileName)
	if err != nil {
		c.finishFailed(gen, err.Error())
		return err
	}

	c.finishSucceeded(gen, &domain.ExtractionResult{
		Text:      text,
		FileName:  candidate.FileName,
		Timestamp: time.Now(),
	})
	return nil
}

// Reset abandons any in-flight request and returns the controller to Idle.
// Calling it twice yields the same cleared state as calling it once.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	c.candidate = nil
	c.result = nil
	c.lastError = nil
	c.state = StateIdle
}

// finishSucceeded records the result unless the attempt was abandoned.
func (c *Controller) finishSucceeded(gen int, result *domain.ExtractionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.result = result
	c.lastError = nil
	c.state = StateSucceeded
	c.cancel = nil
}

// finishFailed records the error unless the attempt was abandoned.
func (c *Controller) finishFailed(gen int, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	if message == "" {
		message = genericExtractionFailure
	}
	c.result = nil
	c.lastError = &domain.ExtractionError{Message: message}
	c.state = StateFailed
	c.cancel = nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Candidate returns the current upload candidate, if any.
func (c *Controller) Candidate() *domain.UploadCandidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.candidate
}

// Result returns the current extraction result, if any.
func (c *Controller) Result() *domain.ExtractionResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Err returns the current extraction error, if any.
func (c *Controller) Err() *domain.ExtractionError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}
