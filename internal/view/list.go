package view

import (
	"context"
	"log"
)

// ListView fetches and holds every record of one kind. Err is the banner
// message when the load failed; Rows is then empty rather than nil so the
// screen still renders.
type ListView[T Record] struct {
	res     Resource[T]
	text    Text
	confirm ConfirmFunc
	alert   AlertFunc

	Rows []T
	Err  string
}

func NewListView[T Record](res Resource[T], text Text, confirm ConfirmFunc, alert AlertFunc) *ListView[T] {
	return &ListView[T]{res: res, text: text, confirm: confirm, alert: alert}
}

// Load fetches the collection. A fetch failure never escapes: the view keeps
// an empty row set plus a user-visible error.
func (v *ListView[T]) Load(ctx context.Context) {
	rows, err := v.res.ListAll(ctx)
	if err != nil {
		log.Printf("list load failed: %v", err)
		v.Rows = []T{}
		v.Err = v.text.LoadManyError
		return
	}
	v.Rows = rows
	v.Err = ""
}

// Delete removes one record after interactive confirmation. On success the
// matching row disappears from the held rows without a re-fetch; on failure
// an alert fires and the rows stay as they were, even though the server-side
// outcome is unknown. Returns true only when the record was deleted.
func (v *ListView[T]) Delete(ctx context.Context, id int) bool {
	if !v.confirm(v.text.DeleteConfirm) {
		return false
	}
	if err := v.res.Delete(ctx, id); err != nil {
		log.Printf("delete failed: %v", err)
		v.alert(v.text.DeleteError)
		return false
	}
	rows := make([]T, 0, len(v.Rows))
	for _, r := range v.Rows {
		if r.RecordID() != id {
			rows = append(rows, r)
		}
	}
	v.Rows = rows
	return true
}
