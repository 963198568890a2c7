package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pjoly/hr-console/internal/dto"
	"github.com/pjoly/hr-console/internal/form"
	"github.com/pjoly/hr-console/internal/view"
)

// ResourceHandler serves every screen of one record collection: list, detail,
// create/edit form and delete. It is generic over the entity kind; the field
// descriptors and localized text carry everything entity-specific.
type ResourceHandler[T view.Record] struct {
	res    view.Resource[T]
	fields []form.Field
	text   view.Text
	base   string
}

func NewResourceHandler[T view.Record](res view.Resource[T], fields []form.Field, text view.Text, base string) *ResourceHandler[T] {
	return &ResourceHandler[T]{res: res, fields: fields, text: text, base: base}
}

func (h *ResourceHandler[T]) RegisterRoutes(app *fiber.App) {
	g := app.Group(h.base)
	g.Get("/", h.List)
	g.Get("/new", h.NewForm)
	g.Post("/new", h.Create)
	g.Get("/edit/:id", h.EditForm)
	g.Post("/edit/:id", h.Update)
	g.Post("/delete/:id", h.Delete)
	// registered last so the static segments above win
	g.Get("/:id", h.Detail)
}

func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	v := view.NewListView(h.res, h.text, neverConfirm, noAlert)
	v.Load(c.UserContext())

	page := dto.ListPage{
		Title:         h.text.Title,
		AddLabel:      h.text.AddLabel,
		BasePath:      h.base,
		Err:           v.Err,
		Empty:         h.text.Empty,
		EmptyHint:     h.text.EmptyHint,
		DeleteConfirm: h.text.DeleteConfirm,
	}
	for _, f := range h.fields {
		if f.Summary {
			page.Columns = append(page.Columns, f.Label)
		}
	}
	for _, rec := range v.Rows {
		row := dto.ListRow{ID: rec.RecordID()}
		for _, f := range h.fields {
			if f.Summary {
				row.Cells = append(row.Cells, form.Value(rec, f.Name))
			}
		}
		page.Rows = append(page.Rows, row)
	}
	if c.Query("alert") == "1" {
		page.Alert = h.text.DeleteError
	}
	return c.Render("list", page)
}

func (h *ResourceHandler[T]) Detail(c *fiber.Ctx) error {
	v := view.NewDetailView(h.res, h.text, neverConfirm, noAlert)
	v.Load(c.UserContext(), c.Params("id"))
	if v.NotFound {
		return c.Status(fiber.StatusNotFound).Render("notfound", dto.NotFoundPage{
			Title:    h.text.Title,
			BasePath: h.base,
		})
	}

	page := dto.DetailPage{
		Title:         h.text.Title,
		BasePath:      h.base,
		ID:            (*v.Record).RecordID(),
		DeleteConfirm: h.text.DeleteConfirm,
	}
	for _, f := range h.fields {
		page.Fields = append(page.Fields, dto.DetailField{
			Label: f.Label,
			Value: form.Value(*v.Record, f.Name),
		})
	}
	return c.Render("detail", page)
}

func (h *ResourceHandler[T]) NewForm(c *fiber.Ctx) error {
	v := view.NewFormView(h.res, h.fields, h.text)
	return c.Render("form", h.formPage(v))
}

func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	v := view.NewFormView(h.res, h.fields, h.text)
	v.Bind(postedValues(c))
	if v.Submit(c.UserContext()) {
		return c.Redirect(h.base, fiber.StatusSeeOther)
	}
	return c.Render("form", h.formPage(v))
}

func (h *ResourceHandler[T]) EditForm(c *fiber.Ctx) error {
	v := view.NewFormView(h.res, h.fields, h.text)
	v.LoadForEdit(c.UserContext(), c.Params("id"))
	return c.Render("form", h.formPage(v))
}

func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	v := view.NewFormView(h.res, h.fields, h.text)
	v.BeginEdit(c.Params("id"))
	v.Bind(postedValues(c))
	if v.Submit(c.UserContext()) {
		return c.Redirect(h.base, fiber.StatusSeeOther)
	}
	return c.Render("form", h.formPage(v))
}

// Delete handles the confirmed delete posted from the list or detail screen.
// The browser's confirm dialog already ran; the posted "confirmed" field is
// what the confirmation gate checks server-side.
func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	alerted := false
	v := view.NewListView(h.res, h.text,
		func(string) bool { return c.FormValue("confirmed") == "1" },
		func(string) { alerted = true },
	)
	id, _ := strconv.Atoi(c.Params("id"))
	if !v.Delete(c.UserContext(), id) && alerted {
		return c.Redirect(h.base+"?alert=1", fiber.StatusSeeOther)
	}
	return c.Redirect(h.base, fiber.StatusSeeOther)
}

func (h *ResourceHandler[T]) formPage(v *view.FormView[T]) dto.FormPage {
	page := dto.FormPage{
		Action:   h.base + "/new",
		BasePath: h.base,
		Title:    h.text.NewTitle,
		Err:      v.Err,
	}
	if v.IsEdit {
		page.Title = h.text.EditTitle
		page.Action = h.base + "/edit/" + strconv.Itoa(v.ID)
	}
	for _, f := range h.fields {
		page.Fields = append(page.Fields, dto.FormField{
			Name:        f.Name,
			Label:       f.Label,
			InputType:   string(f.Kind),
			TextArea:    f.Kind == form.TextArea,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			HasRange:    f.Kind == form.Number && f.Max > 0,
			Min:         f.Min,
			Max:         f.Max,
			Value:       form.Value(v.Draft, f.Name),
		})
	}
	return page
}

func postedValues(c *fiber.Ctx) url.Values {
	vals := url.Values{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		vals.Add(string(k), string(v))
	})
	return vals
}

func neverConfirm(string) bool { return false }
func noAlert(string)           {}
