package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Task represents one user-entered actionable item with completion status.
// ID and Text are immutable after creation; Completed is flipped only by the
// store's toggle operation. CreatedAt is milliseconds since epoch and is kept
// for display only - the collection's insertion order is authoritative.
type Task struct {
	ID        string `json:"id" yaml:"id" validate:"required,uuid4"`
	Text      string `json:"text" yaml:"text" validate:"required"`
	Completed bool   `json:"completed" yaml:"completed"`
	CreatedAt int64  `json:"createdAt" yaml:"createdAt" validate:"required"`
}

// NewTask constructs a pending task with a fresh ID and creation timestamp.
// The text is stored as given; callers are responsible for trimming.
func NewTask(text string) Task {
	return Task{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// Filter selects which slice of the collection a view shows. It is ephemeral
// UI state and is never persisted.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// ParseFilter converts user input into a Filter, defaulting to FilterAll for
// the empty string.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q (expected all, pending or completed)", s)
	}
}

// Matches reports whether the task belongs to the filtered view.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Stats is the aggregate over the collection. Pending+Completed == Total for
// any collection by construction.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		// Safeguard for tests running in isolation.
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
