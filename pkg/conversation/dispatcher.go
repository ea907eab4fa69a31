package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	errUtils "github.com/aaronfloresserna/assistantUACH/errors"
	"github.com/aaronfloresserna/assistantUACH/pkg/api"
	log "github.com/aaronfloresserna/assistantUACH/pkg/logger"
)

// User-facing fallback texts, in the interface's working language. The
// underlying error never reaches the student.
const (
	// FallbackApology replaces the answer when a request fails for any reason.
	FallbackApology = "Lo siento, ocurrió un error al procesar tu pregunta. Por favor, intenta de nuevo."
	// TimeoutApology replaces the answer when a request exceeds its deadline.
	TimeoutApology = "Lo siento, tu pregunta tardó demasiado en procesarse. Por favor, intenta de nuevo."
)

// Asker is the slice of the assistant service the dispatcher depends on.
type Asker interface {
	Ask(ctx context.Context, request api.AskRequest) (*api.AskResponse, error)
}

// Request is an accepted submission waiting to be resolved. The caller must
// pass every accepted request to Resolve exactly once.
type Request struct {
	id       string
	question string
	filters  FilterSnapshot
}

// ID returns the correlation ID used in diagnostics.
func (r *Request) ID() string {
	return r.id
}

// Dispatcher orchestrates submissions: it guards against concurrent requests,
// appends the question to the store, invokes the assistant service, and maps
// the result (or its failure) into exactly one assistant message. It is the
// only writer of the store.
type Dispatcher struct {
	mu      sync.Mutex
	busy    bool
	store   *Store
	service Asker
	topK    int
	timeout time.Duration
}

// NewDispatcher creates a dispatcher over the given store and service. A zero
// topK or timeout falls back to the defaults.
func NewDispatcher(store *Store, service Asker, topK int, timeout time.Duration) (*Dispatcher, error) {
	if store == nil {
		return nil, errUtils.ErrStoreNil
	}
	if service == nil {
		return nil, errUtils.ErrServiceNil
	}
	if topK <= 0 {
		topK = api.DefaultTopK
	}
	if timeout <= 0 {
		timeout = api.DefaultTimeoutSeconds * time.Second
	}

	return &Dispatcher{
		store:   store,
		service: service,
		topK:    topK,
		timeout: timeout,
	}, nil
}

// Busy reports whether a request is currently in flight.
func (d *Dispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

// Submit validates and registers a submission. Empty questions (after
// trimming) and submissions made while a request is in flight are silently
// dropped: no state changes and no request is issued. On acceptance the user
// message is appended immediately, before the remote call resolves, and the
// dispatcher becomes busy until Resolve completes.
func (d *Dispatcher) Submit(question string, filters FilterSnapshot) (*Request, bool) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, false
	}

	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		log.Debug("submission dropped, a request is already in flight")
		return nil, false
	}
	d.busy = true
	d.mu.Unlock()

	d.store.Append(NewUserMessage(question))

	request := &Request{
		id:       uuid.NewString(),
		question: question,
		filters:  filters,
	}
	log.Debug("question submitted",
		"request_id", request.ID(),
		"materia", filters.Materia,
		"semester_level", filters.SemesterLevel)
	return request, true
}

// Resolve executes an accepted request against the assistant service and
// appends exactly one assistant message: the mapped answer on success, a fixed
// apology on failure, a distinct apology when the deadline expires. The busy
// flag is released on every exit path, including a panic in the service call,
// so the conversation is always submittable again afterwards.
func (d *Dispatcher) Resolve(ctx context.Context, request *Request) Message {
	defer d.release()

	askCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	response, err := d.service.Ask(askCtx, api.AskRequest{
		Question:      request.question,
		Materia:       request.filters.Materia,
		SemesterLevel: request.filters.SemesterLevel,
		TopK:          d.topK,
	})
	if err != nil {
		// Unreachable service, error status and malformed payload all collapse
		// into the same user-visible fallback; the detail goes to the log only.
		log.Error("assistant request failed", "request_id", request.ID(), "error", err)
		apology := FallbackApology
		if errors.Is(err, context.DeadlineExceeded) {
			apology = TimeoutApology
		}
		return d.store.Append(NewFallbackMessage(apology))
	}

	log.Debug("assistant request answered",
		"request_id", request.ID(),
		"sources", len(response.Sources),
		"processing_ms", response.Metadata.ProcessingTimeMs)
	return d.store.Append(MapResponse(response))
}

func (d *Dispatcher) release() {
	d.mu.Lock()
	d.busy = false
	d.mu.Unlock()
}
