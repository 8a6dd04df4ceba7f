package contactform

import (
	"recon-landing/pkg/models"
	"recon-landing/pkg/services"
)

// State of the contact form. Submission is synchronous so the form never
// leaves StateEditing.
type State int

const (
	StateEditing State = iota
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	}
	return "unknown"
}

// Event is the host event that triggered a submit
type Event interface {
	PreventDefault()
}

// Controller owns the contact form record. It is driven from a single
// event loop and is not safe for concurrent use.
type Controller struct {
	record models.ContactFormRecord
	sink   services.SubmissionSink
}

// NewController creates a controller holding the all-empty record
func NewController(sink services.SubmissionSink) *Controller {
	return &Controller{
		sink: sink,
	}
}

// Record returns a copy of the current record
func (c *Controller) Record() models.ContactFormRecord {
	return c.record
}

// State always reports StateEditing
func (c *Controller) State() State {
	return StateEditing
}

// UpdateField replaces one field and leaves the others untouched
func (c *Controller) UpdateField(field models.Field, value string) error {
	next, err := c.record.With(field, value)
	if err != nil {
		return err
	}
	c.record = next
	return nil
}

// Submit stops the host's default form navigation, hands a snapshot of the
// record to the sink and resets the form.
func (c *Controller) Submit(ev Event) {
	if ev != nil {
		ev.PreventDefault()
	}

	snapshot := c.record
	if c.sink != nil {
		c.sink.Deliver(snapshot)
	}

	c.Reset()
}

// Reset restores the all-empty record
func (c *Controller) Reset() {
	c.record = models.ContactFormRecord{}
}
