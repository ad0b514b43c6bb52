package api

import (
	"context"

	"pdm-api/domain"
)

// Handler factories declare the narrow slice of persistence they need; the
// Storage interface at the bottom is what Register wires in.

type TaskStore interface {
	CreateTask(ctx context.Context, in domain.NewTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasksByDomain(ctx context.Context, slugOrID string) ([]domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, p domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type NextActionStore interface {
	ListPendingNextActions(ctx context.Context) ([]domain.NextAction, error)
}

type DomainStore interface {
	ListDomains(ctx context.Context) ([]domain.Domain, error)
}

type PropertyStore interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	GetProperty(ctx context.Context, id int64) (*domain.Property, error)
	CreateProperty(ctx context.Context, in domain.NewPropertyInput) (*domain.Property, error)
	UpdateProperty(ctx context.Context, id int64, p domain.PropertyPatch) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id int64) error
}

type JobOptionStore interface {
	ListJobOptions(ctx context.Context) ([]domain.JobOption, error)
	GetJobOption(ctx context.Context, id int64) (*domain.JobOption, error)
	CreateJobOption(ctx context.Context, in domain.NewJobOptionInput) (*domain.JobOption, error)
	UpdateJobOption(ctx context.Context, id int64, p domain.JobOptionPatch) (*domain.JobOption, error)
	DeleteJobOption(ctx context.Context, id int64) error
}

type ChildcareStore interface {
	ListChildcareOptions(ctx context.Context) ([]domain.ChildcareOption, error)
	GetChildcareOption(ctx context.Context, id int64) (*domain.ChildcareOption, error)
	CreateChildcareOption(ctx context.Context, in domain.NewChildcareOptionInput) (*domain.ChildcareOption, error)
	UpdateChildcareOption(ctx context.Context, id int64, p domain.ChildcareOptionPatch) (*domain.ChildcareOption, error)
	DeleteChildcareOption(ctx context.Context, id int64) error
}

type ProviderStore interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id int64) (*domain.Provider, error)
	CreateProvider(ctx context.Context, in domain.NewProviderInput) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, id int64, p domain.ProviderPatch) (*domain.Provider, error)
	DeleteProvider(ctx context.Context, id int64) error
}

type AppointmentStore interface {
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error)
	CreateAppointment(ctx context.Context, in domain.NewAppointmentInput) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, p domain.AppointmentPatch) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type TripStore interface {
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	GetTrip(ctx context.Context, id int64) (*domain.Trip, error)
	CreateTrip(ctx context.Context, in domain.NewTripInput) (*domain.Trip, error)
	UpdateTrip(ctx context.Context, id int64, p domain.TripPatch) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
	ListTripAssignments(ctx context.Context, tripID int64) ([]domain.TripAssignment, error)
	CreateTripAssignment(ctx context.Context, in domain.NewTripAssignmentInput) (*domain.TripAssignment, error)
	UpdateTripAssignment(ctx context.Context, id int64, p domain.TripAssignmentPatch) (*domain.TripAssignment, error)
	DeleteTripAssignment(ctx context.Context, id int64) error
}

type WorkLinkStore interface {
	ListWorkLinks(ctx context.Context, userID int64) ([]domain.WorkLink, error)
	GetWorkLink(ctx context.Context, id int64) (*domain.WorkLink, error)
	CreateWorkLink(ctx context.Context, in domain.NewWorkLinkInput) (*domain.WorkLink, error)
	UpdateWorkLink(ctx context.Context, id int64, p domain.WorkLinkPatch) (*domain.WorkLink, error)
	DeleteWorkLink(ctx context.Context, id int64) error
}

type ComplianceStore interface {
	ListComplianceItems(ctx context.Context, userID int64) ([]domain.ComplianceItem, error)
	GetComplianceItem(ctx context.Context, id int64) (*domain.ComplianceItem, error)
	CreateComplianceItem(ctx context.Context, in domain.NewComplianceItemInput) (*domain.ComplianceItem, error)
	UpdateComplianceItem(ctx context.Context, id int64, p domain.ComplianceItemPatch) (*domain.ComplianceItem, error)
	DeleteComplianceItem(ctx context.Context, id int64) error
}

type PackingStore interface {
	ListPackingAreas(ctx context.Context) ([]domain.PackingArea, error)
	GetPackingArea(ctx context.Context, id int64) (*domain.PackingArea, error)
	CreatePackingArea(ctx context.Context, in domain.NewPackingAreaInput) (*domain.PackingArea, error)
	UpdatePackingArea(ctx context.Context, id int64, p domain.PackingAreaPatch) (*domain.PackingArea, error)
	DeletePackingArea(ctx context.Context, id int64) error
	ListPackingBoxes(ctx context.Context, areaID int64) ([]domain.PackingBox, error)
	GetPackingBox(ctx context.Context, id int64) (*domain.PackingBox, error)
	CreatePackingBox(ctx context.Context, in domain.NewPackingBoxInput) (*domain.PackingBox, error)
	UpdatePackingBox(ctx context.Context, id int64, p domain.PackingBoxPatch) (*domain.PackingBox, error)
	DeletePackingBox(ctx context.Context, id int64) error
	ListPackingItems(ctx context.Context, boxID int64) ([]domain.PackingItem, error)
	GetPackingItem(ctx context.Context, id int64) (*domain.PackingItem, error)
	CreatePackingItem(ctx context.Context, in domain.NewPackingItemInput) (*domain.PackingItem, error)
	UpdatePackingItem(ctx context.Context, id int64, p domain.PackingItemPatch) (*domain.PackingItem, error)
	DeletePackingItem(ctx context.Context, id int64) error
}

type CommunityStore interface {
	ListCommunityPlaces(ctx context.Context) ([]domain.CommunityPlace, error)
	GetCommunityPlace(ctx context.Context, id int64) (*domain.CommunityPlace, error)
	CreateCommunityPlace(ctx context.Context, in domain.NewCommunityPlaceInput) (*domain.CommunityPlace, error)
	UpdateCommunityPlace(ctx context.Context, id int64, p domain.CommunityPlacePatch) (*domain.CommunityPlace, error)
	DeleteCommunityPlace(ctx context.Context, id int64) error
	ListCommunityVisits(ctx context.Context, placeID int64) ([]domain.CommunityVisit, error)
	CreateCommunityVisit(ctx context.Context, in domain.NewCommunityVisitInput) (*domain.CommunityVisit, error)
	DeleteCommunityVisit(ctx context.Context, id int64) error
}

type DocumentStore interface {
	CreateDocument(ctx context.Context, in domain.NewDocumentInput) (*domain.Document, error)
	GetDocument(ctx context.Context, id int64) (*domain.Document, error)
	ListDocuments(ctx context.Context, search string) ([]domain.Document, error)
	FindDocumentByStoredName(ctx context.Context, filename string) (*domain.Document, error)
}

// Storage is everything Register needs from the persistence layer.
type Storage interface {
	TaskStore
	NextActionStore
	DomainStore
	PropertyStore
	JobOptionStore
	ChildcareStore
	ProviderStore
	AppointmentStore
	TripStore
	WorkLinkStore
	ComplianceStore
	PackingStore
	CommunityStore
	DocumentStore
}

// Deduper prevents reprocessing of duplicate create requests.
type Deduper interface {
	// Add records the idempotency key and returns true if it was newly added.
	Add(ctx context.Context, key string) (bool, error)
	// Remove deletes a previously added key, used when downstream processing fails.
	Remove(ctx context.Context, key string) error
}
