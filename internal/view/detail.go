package view

import (
	"context"
	"log"
	"strconv"
)

// DetailView fetches one record by its route identifier and renders it
// read-only. A missing identifier, an unparsable one and a failed fetch all
// collapse into the same NotFound state.
type DetailView[T Record] struct {
	res     Resource[T]
	text    Text
	confirm ConfirmFunc
	alert   AlertFunc

	Record   *T
	NotFound bool
}

func NewDetailView[T Record](res Resource[T], text Text, confirm ConfirmFunc, alert AlertFunc) *DetailView[T] {
	return &DetailView[T]{res: res, text: text, confirm: confirm, alert: alert}
}

func (v *DetailView[T]) Load(ctx context.Context, rawID string) {
	id, err := strconv.Atoi(rawID)
	if rawID == "" || err != nil {
		v.NotFound = true
		return
	}
	rec, err := v.res.GetByID(ctx, id)
	if err != nil {
		log.Printf("detail load failed: %v", err)
		v.NotFound = true
		return
	}
	v.Record = rec
}

// Delete removes the loaded record after confirmation. There is no local
// list to prune here; a true return tells the caller to navigate back to the
// list screen.
func (v *DetailView[T]) Delete(ctx context.Context) bool {
	if v.Record == nil {
		return false
	}
	if !v.confirm(v.text.DeleteConfirm) {
		return false
	}
	if err := v.res.Delete(ctx, (*v.Record).RecordID()); err != nil {
		log.Printf("delete failed: %v", err)
		v.alert(v.text.DeleteError)
		return false
	}
	return true
}
