// Package form drives record forms from declarative field descriptors: the
// same table renders inputs, binds posted values onto a record and validates
// the required fields, so applicant and employee forms share one code path.
package form

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type Kind string

const (
	Text     Kind = "text"
	Email    Kind = "email"
	Tel      Kind = "tel"
	Date     Kind = "date"
	Number   Kind = "number"
	TextArea Kind = "textarea"
)

// Field describes one form input. Name matches the record's json tag, which
// is also the posted form key.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Required    bool
	Placeholder string
	Min, Max    int  // bounds for number inputs
	Summary     bool // shown as a column in list tables
}

// Error carries a user-facing message plus per-field details, in the shape
// the form banner and inputs render from.
type Error struct {
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind copies posted values onto dst (a pointer to a record struct), matching
// form keys against json tags. Numeric fields are parsed eagerly: empty or
// invalid input becomes zero, mirroring how the forms have always behaved.
func Bind(values url.Values, fields []Field, dst any) {
	v := reflect.ValueOf(dst).Elem()
	byTag := tagIndex(v.Type())

	for _, f := range fields {
		idx, ok := byTag[f.Name]
		if !ok {
			continue
		}
		raw := values.Get(f.Name)
		fv := v.Field(idx)
		switch fv.Kind() {
		case reflect.Int:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				n = 0
			}
			fv.SetInt(int64(n))
		case reflect.Float64:
			x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				x = 0
			}
			fv.SetFloat(x)
		default:
			fv.SetString(raw)
		}
	}
}

// Validate runs the record's validation tags (notblank on the required
// fields). It returns nil when the record may be submitted.
func Validate(rec any, fields []Field) *Error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Message: err.Error()}
	}

	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		labels[f.Name] = f.Label
	}
	fieldErrs := make(map[string]string, len(verrs))
	var missing []string
	for _, fe := range verrs {
		label := labels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		fieldErrs[fe.Field()] = label + " est requis"
		missing = append(missing, label)
	}
	return &Error{
		Message: strings.Join(missing, ", ") + " : champ(s) requis",
		Fields:  fieldErrs,
	}
}

// Value renders one record field as the string a form input or table cell
// displays. Numbers come out bare (no exponent, no trailing zeros).
func Value(rec any, name string) string {
	v := reflect.ValueOf(rec)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	idx, ok := tagIndex(v.Type())[name]
	if !ok {
		return ""
	}
	fv := v.Field(idx)
	switch fv.Kind() {
	case reflect.Int:
		return strconv.FormatInt(fv.Int(), 10)
	case reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 64)
	default:
		return fv.String()
	}
}

// ClearID zeroes the record's server-assigned identifier so drafts and
// create/update payloads never carry one.
func ClearID(rec any) {
	v := reflect.ValueOf(rec).Elem()
	if f := v.FieldByName("ID"); f.IsValid() && f.Kind() == reflect.Int {
		f.SetInt(0)
	}
}

func tagIndex(t reflect.Type) map[string]int {
	byTag := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if tag != "" && tag != "-" {
			byTag[tag] = i
		}
	}
	return byTag
}
