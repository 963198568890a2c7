package model

import "github.com/pjoly/hr-console/internal/form"

// Applicant is a candidate record as exchanged with the HR backend. ID is
// server-assigned; client-built records leave it zero and it is omitted from
// create/update payloads.
type Applicant struct {
	ID                 int    `json:"id,omitempty"`
	Name               string `json:"name" validate:"notblank"`
	Email              string `json:"email" validate:"notblank"`
	NumberCardIdentity string `json:"numberCardIdentity"`
	BirthDate          string `json:"birthDate"`
	Address            string `json:"address"`
	PhoneNumber        string `json:"phoneNumber"`
	Note               int    `json:"note"`
	TechnicalDomain    string `json:"technicalDomain"`
	DateInterview      string `json:"dateInterview"`
	Comments           string `json:"comments"`
}

func (a Applicant) RecordID() int { return a.ID }

// ApplicantFields drives the applicant form, its validation and the list
// columns. The evaluation score is on a 0-10 scale everywhere.
var ApplicantFields = []form.Field{
	{Name: "name", Label: "Nom", Kind: form.Text, Required: true, Placeholder: "Nom complet", Summary: true},
	{Name: "email", Label: "Email", Kind: form.Email, Required: true, Placeholder: "email@exemple.com", Summary: true},
	{Name: "numberCardIdentity", Label: "Numéro de carte d'identité", Kind: form.Text},
	{Name: "birthDate", Label: "Date de naissance", Kind: form.Date},
	{Name: "address", Label: "Adresse", Kind: form.Text},
	{Name: "phoneNumber", Label: "Téléphone", Kind: form.Tel, Summary: true},
	{Name: "technicalDomain", Label: "Domaine technique", Kind: form.Text, Placeholder: "Développement web, DevOps, etc.", Summary: true},
	{Name: "note", Label: "Evaluation (0 - 10)", Kind: form.Number, Min: 0, Max: 10},
	{Name: "dateInterview", Label: "Date d'entretien", Kind: form.Date, Summary: true},
	{Name: "comments", Label: "Commentaires", Kind: form.TextArea},
}
