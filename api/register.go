package api

import (
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// defaultUserID is the single seeded user. Multi-tenancy is out of scope;
// create bodies may still name a user_id explicitly.
const defaultUserID = 1

// Register wires up all API routes on the provided Echo instance. The
// idempotency middleware guards the create endpoints only; deduper may be nil.
func Register(e *echo.Echo, store Storage, deduper Deduper, uploadDir string, logger *log.Logger) {
	idem := Idempotency(deduper, logger)

	e.GET("/", landing())
	e.GET("/api/health", health())
	e.GET("/api/domains", getDomains(store, logger))

	e.GET("/api/tasks/:id", getTask(store, logger))
	e.GET("/api/tasks/domain/:domain", getTasksByDomain(store, logger))
	e.POST("/api/tasks", postTask(store, logger), idem)
	e.PATCH("/api/tasks/:id/status", patchTaskStatus(store, logger))
	e.PATCH("/api/tasks/:id", patchTask(store, logger))
	e.DELETE("/api/tasks/:id", deleteTask(store, logger))

	e.GET("/api/next-actions", getNextActions(store, logger))

	e.GET("/api/properties", getProperties(store, logger))
	e.GET("/api/properties/:id", getProperty(store, logger))
	e.POST("/api/properties", postProperty(store, logger), idem)
	e.PATCH("/api/properties/:id", patchProperty(store, logger))
	e.DELETE("/api/properties/:id", deleteProperty(store, logger))

	e.GET("/api/job-options", getJobOptions(store, logger))
	e.GET("/api/job-options/:id", getJobOption(store, logger))
	e.POST("/api/job-options", postJobOption(store, logger), idem)
	e.PATCH("/api/job-options/:id", patchJobOption(store, logger))
	e.DELETE("/api/job-options/:id", deleteJobOption(store, logger))

	e.GET("/api/childcare-options", getChildcareOptions(store, logger))
	e.GET("/api/childcare-options/:id", getChildcareOption(store, logger))
	e.POST("/api/childcare-options", postChildcareOption(store, logger), idem)
	e.PATCH("/api/childcare-options/:id", patchChildcareOption(store, logger))
	e.DELETE("/api/childcare-options/:id", deleteChildcareOption(store, logger))

	e.GET("/api/providers", getProviders(store, logger))
	e.GET("/api/providers/:id", getProvider(store, logger))
	e.POST("/api/providers", postProvider(store, logger), idem)
	e.PATCH("/api/providers/:id", patchProvider(store, logger))
	e.DELETE("/api/providers/:id", deleteProvider(store, logger))

	e.GET("/api/appointments", getAppointments(store, logger))
	e.GET("/api/appointments/:id", getAppointment(store, logger))
	e.POST("/api/appointments", postAppointment(store, logger), idem)
	e.PATCH("/api/appointments/:id", patchAppointment(store, logger))
	e.DELETE("/api/appointments/:id", deleteAppointment(store, logger))

	e.GET("/api/trips", getTrips(store, logger))
	e.GET("/api/trips/:id", getTrip(store, logger))
	e.POST("/api/trips", postTrip(store, logger), idem)
	e.PATCH("/api/trips/:id", patchTrip(store, logger))
	e.DELETE("/api/trips/:id", deleteTrip(store, logger))
	e.GET("/api/trips/:id/assignments", getTripAssignments(store, logger))
	e.POST("/api/trips/:id/assignments", postTripAssignment(store, logger), idem)
	e.PUT("/api/trips/assignments/:id", putTripAssignment(store, logger))
	e.DELETE("/api/trips/assignments/:id", deleteTripAssignment(store, logger))

	e.GET("/api/work-links", getWorkLinks(store, logger))
	e.GET("/api/work-links/:id", getWorkLink(store, logger))
	e.POST("/api/work-links", postWorkLink(store, logger), idem)
	e.PATCH("/api/work-links/:id", patchWorkLink(store, logger))
	e.DELETE("/api/work-links/:id", deleteWorkLink(store, logger))

	e.GET("/api/compliance", getComplianceItems(store, logger))
	e.GET("/api/compliance/:id", getComplianceItem(store, logger))
	e.POST("/api/compliance", postComplianceItem(store, logger), idem)
	e.PATCH("/api/compliance/:id", patchComplianceItem(store, logger))
	e.DELETE("/api/compliance/:id", deleteComplianceItem(store, logger))

	e.GET("/api/packing/areas", getPackingAreas(store, logger))
	e.GET("/api/packing/areas/:id", getPackingArea(store, logger))
	e.POST("/api/packing/areas", postPackingArea(store, logger), idem)
	e.PATCH("/api/packing/areas/:id", patchPackingArea(store, logger))
	e.DELETE("/api/packing/areas/:id", deletePackingArea(store, logger))
	e.GET("/api/packing/areas/:id/boxes", getPackingBoxes(store, logger))
	e.POST("/api/packing/areas/:id/boxes", postPackingBox(store, logger), idem)
	e.PATCH("/api/packing/boxes/:id", patchPackingBox(store, logger))
	e.DELETE("/api/packing/boxes/:id", deletePackingBox(store, logger))
	e.GET("/api/packing/boxes/:id/items", getPackingItems(store, logger))
	e.POST("/api/packing/boxes/:id/items", postPackingItem(store, logger), idem)
	e.PATCH("/api/packing/items/:id", patchPackingItem(store, logger))
	e.DELETE("/api/packing/items/:id", deletePackingItem(store, logger))

	e.GET("/api/community/places", getCommunityPlaces(store, logger))
	e.GET("/api/community/places/:id", getCommunityPlace(store, logger))
	e.POST("/api/community/places", postCommunityPlace(store, logger), idem)
	e.PATCH("/api/community/places/:id", patchCommunityPlace(store, logger))
	e.DELETE("/api/community/places/:id", deleteCommunityPlace(store, logger))
	e.GET("/api/community/places/:id/visits", getCommunityVisits(store, logger))
	e.POST("/api/community/places/:id/visits", postCommunityVisit(store, logger), idem)
	e.DELETE("/api/community/visits/:id", deleteCommunityVisit(store, logger))

	e.POST("/api/documents/upload", postDocument(store, uploadDir, logger), idem)
	e.GET("/api/documents", getDocuments(store, logger))
	e.GET("/api/documents/:id", getDocument(store, logger))
	e.GET("/api/documents/download/:filename", downloadDocument(store, uploadDir, logger))
}
