package store

import (
	"sync"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/models"
)

// Status is the fetch lifecycle of a resource slice. Transitions are
// idle → pending → (fulfilled | rejected), re-entrant: a new request from
// fulfilled or rejected returns to pending.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
)

// Pagination is the metadata retained from the last fulfilled page.
type Pagination struct {
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
}

// ListState holds the latest page of a remote listing plus its fetch
// lifecycle. A fulfilled list replaces content and pagination wholesale;
// a rejection keeps prior data and records the error message. Responses
// apply in arrival order: when requests overlap, the last response wins.
type ListState[T any] struct {
	mu         sync.Mutex
	status     Status
	content    []T
	pagination Pagination
	err        string
}

func (l *ListState[T]) begin() {
	l.mu.Lock()
	l.status = StatusPending
	l.err = ""
	l.mu.Unlock()
}

func (l *ListState[T]) fulfill(page *models.Page[T]) {
	l.mu.Lock()
	l.status = StatusFulfilled
	l.content = page.Content
	l.pagination = Pagination{
		Page:          page.Number,
		Size:          page.Size,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
	}
	l.err = ""
	l.mu.Unlock()
}

func (l *ListState[T]) reject(err error, fallback string) {
	l.mu.Lock()
	l.status = StatusRejected
	l.err = errMessage(err, fallback)
	l.mu.Unlock()
}

// settle finishes a single-entity mutation without touching content;
// the caller patches the list itself.
func (l *ListState[T]) settle() {
	l.mu.Lock()
	l.status = StatusFulfilled
	l.err = ""
	l.mu.Unlock()
}

func (l *ListState[T]) prepend(item T) {
	l.mu.Lock()
	l.content = append([]T{item}, l.content...)
	l.status = StatusFulfilled
	l.err = ""
	l.mu.Unlock()
}

func (l *ListState[T]) replace(match func(T) bool, item T) {
	l.mu.Lock()
	for i := range l.content {
		if match(l.content[i]) {
			l.content[i] = item
		}
	}
	l.status = StatusFulfilled
	l.err = ""
	l.mu.Unlock()
}

func (l *ListState[T]) removeIf(match func(T) bool) {
	l.mu.Lock()
	kept := l.content[:0]
	for _, item := range l.content {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	l.content = kept
	l.status = StatusFulfilled
	l.err = ""
	l.mu.Unlock()
}

func (l *ListState[T]) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.status == "" {
		return StatusIdle
	}
	return l.status
}

func (l *ListState[T]) Loading() bool {
	return l.Status() == StatusPending
}

func (l *ListState[T]) Content() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.content))
	copy(out, l.content)
	return out
}

func (l *ListState[T]) Pagination() Pagination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pagination
}

func (l *ListState[T]) Error() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *ListState[T]) ClearError() {
	l.mu.Lock()
	l.err = ""
	l.mu.Unlock()
}

// errMessage prefers the backend's message when the response carried one,
// otherwise the generic per-action fallback.
func errMessage(err error, fallback string) string {
	if apiErr, ok := err.(*api.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
