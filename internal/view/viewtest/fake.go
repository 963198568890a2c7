// Package viewtest provides an in-memory Resource implementation that
// records every call, for exercising the view workflows without a backend.
package viewtest

import (
	"context"
	"reflect"

	"github.com/pjoly/hr-console/internal/client"
	"github.com/pjoly/hr-console/internal/view"
)

type Fake[T view.Record] struct {
	Records []T
	NextID  int

	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error

	ListCalls   int
	GetCalls    int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	Created []T
	Updated map[int]T
	Deleted []int
}

func (f *Fake[T]) ListAll(_ context.Context) ([]T, error) {
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]T(nil), f.Records...), nil
}

func (f *Fake[T]) GetByID(_ context.Context, id int) (*T, error) {
	f.GetCalls++
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, r := range f.Records {
		if r.RecordID() == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *Fake[T]) Create(_ context.Context, rec T) (*T, error) {
	f.CreateCalls++
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.Created = append(f.Created, rec)
	out := rec
	id := f.NextID
	if id == 0 {
		id = 1
	}
	setID(&out, id)
	f.Records = append(f.Records, out)
	return &out, nil
}

func (f *Fake[T]) Update(_ context.Context, id int, rec T) (*T, error) {
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	if f.Updated == nil {
		f.Updated = make(map[int]T)
	}
	f.Updated[id] = rec
	out := rec
	setID(&out, id)
	return &out, nil
}

func (f *Fake[T]) Delete(_ context.Context, id int) error {
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	kept := f.Records[:0]
	for _, r := range f.Records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	f.Records = kept
	f.Deleted = append(f.Deleted, id)
	return nil
}

func setID(rec any, id int) {
	v := reflect.ValueOf(rec).Elem()
	if fld := v.FieldByName("ID"); fld.IsValid() && fld.CanSet() && fld.Kind() == reflect.Int {
		fld.SetInt(int64(id))
	}
}
