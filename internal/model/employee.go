package model

import "github.com/pjoly/hr-console/internal/form"

// Employee is a staff record as exchanged with the HR backend.
type Employee struct {
	ID                   int     `json:"id,omitempty"`
	Name                 string  `json:"name" validate:"notblank"`
	Email                string  `json:"email" validate:"notblank"`
	Poste                string  `json:"poste"`
	Salary               float64 `json:"salary"`
	StartContract        string  `json:"startContract"`
	EndContract          string  `json:"endContract"`
	NumberIdentification string  `json:"numberIdentification"`
	BirthDate            string  `json:"birthDate"`
	Address              string  `json:"address"`
	PhoneNumber          string  `json:"phoneNumber"`
	Comments             string  `json:"comments"`
}

func (e Employee) RecordID() int { return e.ID }

var EmployeeFields = []form.Field{
	{Name: "name", Label: "Nom", Kind: form.Text, Required: true, Placeholder: "Nom complet", Summary: true},
	{Name: "email", Label: "Email", Kind: form.Email, Required: true, Placeholder: "email@exemple.com", Summary: true},
	{Name: "poste", Label: "Poste", Kind: form.Text, Placeholder: "Intitulé du poste", Summary: true},
	{Name: "salary", Label: "Salaire", Kind: form.Number},
	{Name: "startContract", Label: "Début de contrat", Kind: form.Date, Summary: true},
	{Name: "endContract", Label: "Fin de contrat", Kind: form.Date},
	{Name: "numberIdentification", Label: "Numéro d'identification", Kind: form.Text},
	{Name: "birthDate", Label: "Date de naissance", Kind: form.Date},
	{Name: "address", Label: "Adresse", Kind: form.Text},
	{Name: "phoneNumber", Label: "Téléphone", Kind: form.Tel, Summary: true},
	{Name: "comments", Label: "Commentaires", Kind: form.TextArea},
}
