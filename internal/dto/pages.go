// Package dto holds the page models the HTML templates render from. Handlers
// flatten view state into these; templates never touch records directly.
package dto

type ListRow struct {
	ID    int
	Cells []string
}

type ListPage struct {
	Title         string
	AddLabel      string
	BasePath      string
	Columns       []string
	Rows          []ListRow
	Err           string
	Alert         string
	Empty         string
	EmptyHint     string
	DeleteConfirm string
}

type DetailField struct {
	Label string
	Value string
}

type DetailPage struct {
	Title         string
	BasePath      string
	ID            int
	Fields        []DetailField
	DeleteConfirm string
}

type FormField struct {
	Name        string
	Label       string
	InputType   string
	TextArea    bool
	Required    bool
	Placeholder string
	HasRange    bool
	Min, Max    int
	Value       string
}

type FormPage struct {
	Title    string
	Action   string
	BasePath string
	Err      string
	Fields   []FormField
}

type DashboardPage struct {
	Applicants int
	Employees  int
	Interviews int
}

type NotFoundPage struct {
	Title    string
	BasePath string
}
