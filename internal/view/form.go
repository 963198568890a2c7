package view

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"github.com/pjoly/hr-console/internal/client"
	"github.com/pjoly/hr-console/internal/form"
)

// FormView is the dual-purpose create/edit workflow. With no identifier it
// starts from an empty draft (new mode); with one it loads the existing
// record into the draft (edit mode). The draft never carries an id: in edit
// mode the identifier travels separately and the submit performs a
// full-record replace.
type FormView[T Record] struct {
	res    Resource[T]
	fields []form.Field
	text   Text

	IsEdit bool
	ID     int
	Draft  T
	Err    string
	Busy   bool
}

func NewFormView[T Record](res Resource[T], fields []form.Field, text Text) *FormView[T] {
	return &FormView[T]{res: res, fields: fields, text: text}
}

// LoadForEdit switches the form to edit mode and populates the draft from
// the fetched record. Absent optional fields arrive as zero values, which is
// exactly the substitution the form wants ("" for text, 0 for numbers). A
// failed fetch sets an inline error but leaves the defaults editable.
func (v *FormView[T]) LoadForEdit(ctx context.Context, rawID string) {
	v.BeginEdit(rawID)
	if v.ID == 0 {
		v.Err = v.text.LoadOneError
		return
	}
	rec, err := v.res.GetByID(ctx, v.ID)
	if err != nil {
		log.Printf("form load failed: %v", err)
		v.Err = v.text.LoadOneError
		return
	}
	v.Draft = *rec
	form.ClearID(&v.Draft)
}

// BeginEdit switches to edit mode without fetching; submits done from a
// fully bound draft (the posted form carries every field) use this.
func (v *FormView[T]) BeginEdit(rawID string) {
	v.IsEdit = true
	if id, err := strconv.Atoi(rawID); err == nil {
		v.ID = id
	}
}

// Bind applies posted form values onto the draft, one field per posted key.
func (v *FormView[T]) Bind(values url.Values) {
	form.Bind(values, v.fields, &v.Draft)
}

// Submit validates and sends the draft. Validation failure sets an inline
// error without touching the network. On a passed submission the create or
// update runs; true means success and the caller navigates to the list,
// discarding the draft. On failure the server's message is shown when it
// sent one, otherwise the localized fallback, and the draft stays intact for
// a retry. Busy guards against a second submit while one is outstanding.
func (v *FormView[T]) Submit(ctx context.Context) bool {
	if v.Busy {
		return false
	}
	if ferr := form.Validate(v.Draft, v.fields); ferr != nil {
		v.Err = v.text.RequiredError
		return false
	}

	v.Busy = true
	defer func() { v.Busy = false }()

	var err error
	if v.IsEdit {
		_, err = v.res.Update(ctx, v.ID, v.Draft)
	} else {
		_, err = v.res.Create(ctx, v.Draft)
	}
	if err != nil {
		log.Printf("form submit failed: %v", err)
		msg := client.MessageFrom(err)
		if msg == "" {
			if v.IsEdit {
				msg = v.text.UpdateError
			} else {
				msg = v.text.CreateError
			}
		}
		v.Err = msg
		return false
	}
	v.Err = ""
	return true
}
