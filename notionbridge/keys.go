package notionbridge

import (
	"time"

	"github.com/kinesia-app/kinesia/config"
)

// Reserved resource keys. Cache keys are always owner-prefixed as
// <ownerID>:<resourceKey>; single-tenant call sites use the default owner.
const (
	KeyAllReferenceData   = "all-reference-data"
	KeyAllClients         = "all-clients"
	KeyAllModes           = "all-modes"
	KeyAllMuscles         = "all-muscles"
	KeyAllChakras         = "all-chakras"
	KeyAllChannels        = "all-channels"
	KeyAllAcupoints       = "all-acupoints"
	KeyAppointmentsAll    = "appointments:all"
	KeyClientsList        = "clients:list"
	KeyTodaysAppointments = "todays-appointments"

	pagePrefix = "page:"
)

// TTLs by call site.
const (
	TTLList                = 5 * time.Minute
	TTLAppointmentLogs     = 5 * time.Minute
	TTLAppointmentMeta     = 60 * time.Minute
	TTLReferenceCollection = 2 * time.Hour
	TTLReferenceSnapshot   = 12 * time.Hour
)

// ReferenceKeys is the fixed set of resource keys the sync coordinator
// probes on start.
var ReferenceKeys = []string{
	KeyAllReferenceData,
	KeyAllModes,
	KeyAllMuscles,
	KeyAllChakras,
	KeyAllChannels,
	KeyAllAcupoints,
}

// DependentKeys are caches that embed denormalized reference-data fields
// and must be invalidated after a resync. Page-content entries are handled
// separately via PagePrefix.
var DependentKeys = []string{
	KeyAllClients,
	KeyClientsList,
	KeyAppointmentsAll,
	KeyTodaysAppointments,
}

// Key builds the owner-prefixed cache key for a resource.
func Key(ownerID, resourceKey string) string {
	if ownerID == "" {
		ownerID = config.DefaultOwnerID
	}
	return ownerID + ":" + resourceKey
}

// PageKey is the cache key for one external-document content entry.
func PageKey(ownerID, pageID string) string {
	return Key(ownerID, pagePrefix+pageID)
}

// PagePrefix is the common prefix of every page-content key for an owner,
// used for bulk invalidation.
func PagePrefix(ownerID string) string {
	return Key(ownerID, pagePrefix)
}

// AppointmentKey is the cache key for one appointment's metadata.
func AppointmentKey(ownerID, appointmentID string) string {
	return Key(ownerID, appointmentID+":appt")
}

// AppointmentLogsKey is the cache key for one appointment's session logs.
func AppointmentLogsKey(ownerID, appointmentID string) string {
	return Key(ownerID, appointmentID+":logs")
}
