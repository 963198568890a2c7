package view

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/pjoly/hr-console/internal/model"
)

// Dashboard aggregates counts across both collections. Both list calls run
// concurrently and both always settle: a failed fetch counts as an empty
// collection, so a fully broken backend reads as all zeros rather than an
// error screen.
type Dashboard struct {
	applicants Resource[model.Applicant]
	employees  Resource[model.Employee]

	Applicants int
	Employees  int
	Interviews int
}

func NewDashboard(applicants Resource[model.Applicant], employees Resource[model.Employee]) *Dashboard {
	return &Dashboard{applicants: applicants, employees: employees}
}

func (d *Dashboard) Load(ctx context.Context) {
	var apps []model.Applicant
	var emps []model.Employee

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := d.applicants.ListAll(ctx)
		if err != nil {
			log.Printf("dashboard applicants load failed: %v", err)
			return nil
		}
		apps = rows
		return nil
	})
	g.Go(func() error {
		rows, err := d.employees.ListAll(ctx)
		if err != nil {
			log.Printf("dashboard employees load failed: %v", err)
			return nil
		}
		emps = rows
		return nil
	})
	_ = g.Wait()

	d.Applicants = len(apps)
	d.Employees = len(emps)
	d.Interviews = 0
	for _, a := range apps {
		if a.DateInterview != "" {
			d.Interviews++
		}
	}
}
