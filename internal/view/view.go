// Package view holds the record-management workflows behind each screen:
// list, detail, form and dashboard. A view owns the records it fetched and
// nothing else; navigating to a screen always builds a fresh view, so no
// stale data survives across screens. Views never panic on backend failures,
// they convert every error into display state.
package view

import "context"

// Resource is the slice of the record client a view operates on.
type Resource[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, rec T) (*T, error)
	Update(ctx context.Context, id int, rec T) (*T, error)
	Delete(ctx context.Context, id int) error
}

// Record is anything carrying a server-assigned identifier.
type Record interface {
	RecordID() int
}

// ConfirmFunc asks the user to confirm a destructive action. The web layer
// backs it with the browser's confirm dialog; tests inject their own.
type ConfirmFunc func(prompt string) bool

// AlertFunc surfaces a blocking failure notice for a delete that went wrong.
type AlertFunc func(msg string)

// Text is the localized wording one entity kind uses across its screens.
type Text struct {
	Title         string
	AddLabel      string
	Empty         string
	EmptyHint     string
	LoadManyError string
	LoadOneError  string
	DeleteConfirm string
	DeleteError   string
	CreateError   string
	UpdateError   string
	RequiredError string
	NewTitle      string
	EditTitle     string
}

var ApplicantText = Text{
	Title:         "Candidats",
	AddLabel:      "Nouveau candidat",
	Empty:         "Aucun candidat trouvé",
	EmptyHint:     "Commencez par ajouter votre premier candidat",
	LoadManyError: "Erreur lors du chargement des candidats",
	LoadOneError:  "Erreur lors du chargement du candidat",
	DeleteConfirm: "Êtes-vous sûr de vouloir supprimer ce candidat ?",
	DeleteError:   "Erreur lors de la suppression du candidat",
	CreateError:   "Erreur lors de la création du candidat",
	UpdateError:   "Erreur lors de la modification du candidat",
	RequiredError: "Le nom et l'email sont requis",
	NewTitle:      "Nouveau candidat",
	EditTitle:     "Modifier le candidat",
}

var EmployeeText = Text{
	Title:         "Employés",
	AddLabel:      "Nouvel employé",
	Empty:         "Aucun employé trouvé",
	EmptyHint:     "Commencez par ajouter votre premier employé",
	LoadManyError: "Erreur lors du chargement des employés",
	LoadOneError:  "Erreur lors du chargement de l'employé",
	DeleteConfirm: "Êtes-vous sûr de vouloir supprimer cet employé ?",
	DeleteError:   "Erreur lors de la suppression de l'employé",
	CreateError:   "Erreur lors de la création de l'employé",
	UpdateError:   "Erreur lors de la modification de l'employé",
	RequiredError: "Le nom et l'email sont requis",
	NewTitle:      "Nouvel employé",
	EditTitle:     "Modifier l'employé",
}
