package view_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pjoly/hr-console/internal/model"
	"github.com/pjoly/hr-console/internal/view"
	"github.com/pjoly/hr-console/internal/view/viewtest"
)

func fiveEmployees() []model.Employee {
	out := make([]model.Employee, 5)
	for i := range out {
		out[i] = model.Employee{ID: i + 1, Name: "E", Email: "e@x.com"}
	}
	return out
}

func TestDashboardCounts(t *testing.T) {
	apps := &viewtest.Fake[model.Applicant]{Records: threeApplicants()}
	emps := &viewtest.Fake[model.Employee]{Records: fiveEmployees()}

	d := view.NewDashboard(apps, emps)
	d.Load(context.Background())

	assert.Equal(t, 3, d.Applicants)
	assert.Equal(t, 5, d.Employees)
	assert.Equal(t, 2, d.Interviews)
}

func TestDashboardBothFailuresReadAsZero(t *testing.T) {
	apps := &viewtest.Fake[model.Applicant]{ListErr: errors.New("down")}
	emps := &viewtest.Fake[model.Employee]{ListErr: errors.New("down")}

	d := view.NewDashboard(apps, emps)
	d.Load(context.Background())

	assert.Zero(t, d.Applicants)
	assert.Zero(t, d.Employees)
	assert.Zero(t, d.Interviews)
}

func TestDashboardOneFailureStillCountsTheOther(t *testing.T) {
	apps := &viewtest.Fake[model.Applicant]{ListErr: errors.New("down")}
	emps := &viewtest.Fake[model.Employee]{Records: fiveEmployees()}

	d := view.NewDashboard(apps, emps)
	d.Load(context.Background())

	assert.Zero(t, d.Applicants)
	assert.Equal(t, 5, d.Employees)
}

func TestDashboardBothCallsIssued(t *testing.T) {
	apps := &viewtest.Fake[model.Applicant]{}
	emps := &viewtest.Fake[model.Employee]{}

	d := view.NewDashboard(apps, emps)
	d.Load(context.Background())

	assert.Equal(t, 1, apps.ListCalls)
	assert.Equal(t, 1, emps.ListCalls)
}
