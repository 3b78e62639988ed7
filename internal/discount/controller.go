package discount

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Store is the discounts API port the controller delegates its I/O to.
// Implementations own transport, auth and retry concerns.
type Store interface {
	Fetch(ctx context.Context, id string) (*Record, error)
	Create(ctx context.Context, payload Payload) (*Record, error)
	Update(ctx context.Context, id string, payload Payload) (*Record, error)
}

// ProductSearcher resolves free-text product search into multiselect
// options. Debouncing belongs to the caller, not this port.
type ProductSearcher interface {
	Search(ctx context.Context, text string) ([]ProductOption, error)
}

// ScreenState tracks one discount screen instance through its lifecycle.
type ScreenState int

const (
	StateIdle ScreenState = iota
	StateLoading
	StateLoaded
	StateLoadFailed
	StateEditing
	StateSubmitting
	StateSubmitSucceeded
	StateSubmitFailed
)

// RequestKind distinguishes create from update at submit time.
type RequestKind int

const (
	RequestCreate RequestKind = iota
	RequestUpdate
)

// Submit statuses carried in the payload for the two submit buttons.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
)

const defaultSubmitErrMsg = "Something went wrong, please try again"

// Controller orchestrates the resolver, payload builder and summarizer for
// one discount variant and one screen instance. It issues at most one
// outstanding store call per operation and keeps no state shared across
// screens.
type Controller struct {
	variant    Variant
	store      Store
	products   ProductSearcher
	summarizer *Summarizer

	state    ScreenState
	recordID string
	isEdit   bool

	// The two submit buttons track their pending state independently; the
	// UI is responsible for disabling both while either is in flight.
	savingDraft    bool
	savingDiscount bool

	lastError string
}

// NewController builds a controller for one variant screen. The variant must
// be one of the four known tags.
func NewController(v Variant, store Store, products ProductSearcher, summarizer *Summarizer) (*Controller, error) {
	if !v.Valid() {
		return nil, errors.Wrapf(ErrUnknownVariant, "variant %q", string(v))
	}
	if summarizer == nil {
		summarizer = NewSummarizer("")
	}
	return &Controller{
		variant:    v,
		store:      store,
		products:   products,
		summarizer: summarizer,
		state:      StateIdle,
	}, nil
}

func (c *Controller) Variant() Variant   { return c.variant }
func (c *Controller) State() ScreenState { return c.state }
func (c *Controller) IsEdit() bool       { return c.isEdit }

// SavingDraft and SavingDiscount mirror the two-button loader flags.
func (c *Controller) SavingDraft() bool    { return c.savingDraft }
func (c *Controller) SavingDiscount() bool { return c.savingDiscount }

// NewForm starts the "add" flow with an empty form.
func (c *Controller) NewForm() *FormState {
	c.isEdit = false
	c.recordID = ""
	c.state = StateEditing
	return NewFormState()
}

// Load starts the "edit" flow: fetch the record and hydrate the form.
// A failed load is terminal for the screen; the caller is expected to
// navigate away.
func (c *Controller) Load(ctx context.Context, id string) (*FormState, error) {
	c.state = StateLoading
	c.isEdit = true
	c.recordID = id

	record, err := c.store.Fetch(ctx, id)
	if err != nil {
		c.state = StateLoadFailed
		return nil, errors.Wrapf(err, "load discount %s", id)
	}
	if record.Variant() != c.variant {
		c.state = StateLoadFailed
		return nil, errors.Newf("discount %s is a %s discount, not %s", id, record.CouponType, c.variant)
	}

	form := HydrateForm(c.variant, record)
	c.state = StateEditing
	return form, nil
}

// ApplyFieldChange re-runs the field rules after one field changed and
// applies the resulting clears to the form.
func (c *Controller) ApplyFieldChange(f *FormState, changed Field) (Effect, error) {
	return Apply(c.variant, f, changed)
}

// Summary projects the form into the preview panel lines.
func (c *Controller) Summary(f *FormState) []string {
	return c.summarizer.Summarize(f)
}

// SearchProducts resolves product multiselect input through the injected
// search port.
func (c *Controller) SearchProducts(ctx context.Context, text string) ([]ProductOption, error) {
	if c.products == nil {
		return nil, nil
	}
	return c.products.Search(ctx, text)
}

// BuildPayload derives the wire payload for the current form without
// submitting it.
func (c *Controller) BuildPayload(f *FormState, asDraft bool) (Payload, RequestKind, error) {
	payload, err := BuildPayload(c.variant, f)
	if err != nil {
		return nil, RequestCreate, err
	}
	if asDraft {
		payload[StatusKey] = StatusDraft
	} else {
		payload[StatusKey] = StatusActive
	}
	if c.isEdit {
		return payload, RequestUpdate, nil
	}
	return payload, RequestCreate, nil
}

// Submit builds the payload and sends it through the store, creating or
// updating according to how the screen was entered. A failed submit returns
// the screen to editing with the form intact; the returned message follows
// the named-field error precedence.
func (c *Controller) Submit(ctx context.Context, f *FormState, asDraft bool) (*Record, error) {
	payload, kind, err := c.BuildPayload(f, asDraft)
	if err != nil {
		return nil, err
	}

	c.state = StateSubmitting
	if asDraft {
		c.savingDraft = true
	} else {
		c.savingDiscount = true
	}
	defer func() {
		c.savingDraft = false
		c.savingDiscount = false
	}()

	var record *Record
	if kind == RequestUpdate {
		record, err = c.store.Update(ctx, c.recordID, payload)
	} else {
		record, err = c.store.Create(ctx, payload)
	}
	if err != nil {
		// Failed submits drop back to editing with the form intact.
		c.state = StateEditing
		c.lastError = ErrorMessage(err, defaultSubmitErrMsg)
		return nil, errors.Wrap(err, c.lastError)
	}

	c.state = StateSubmitSucceeded
	c.lastError = ""
	return record, nil
}

// LastError is the user-facing message of the most recent failed submit.
func (c *Controller) LastError() string { return c.lastError }
