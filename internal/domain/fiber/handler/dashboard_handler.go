package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pjoly/hr-console/internal/dto"
	"github.com/pjoly/hr-console/internal/model"
	"github.com/pjoly/hr-console/internal/view"
)

type DashboardHandler struct {
	applicants view.Resource[model.Applicant]
	employees  view.Resource[model.Employee]
}

func NewDashboardHandler(applicants view.Resource[model.Applicant], employees view.Resource[model.Employee]) *DashboardHandler {
	return &DashboardHandler{applicants: applicants, employees: employees}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Dashboard)
}

func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	d := view.NewDashboard(h.applicants, h.employees)
	d.Load(c.UserContext())
	return c.Render("dashboard", dto.DashboardPage{
		Applicants: d.Applicants,
		Employees:  d.Employees,
		Interviews: d.Interviews,
	})
}
