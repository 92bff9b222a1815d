// Package registry declares every request type the parish office handles.
// Adding a sacrament means adding one entry here; routing, persistence,
// lifecycle and reporting all derive from it.
package registry

import (
	"github.com/sjmp-dev/parish-admin-api/internal/fees"
	"github.com/sjmp-dev/parish-admin-api/internal/lifecycle"
)

// RequestType describes one family of sacrament requests: its route prefix,
// fee schedule, lifecycle profile and how to read the type-specific intake
// payload.
type RequestType struct {
	// Name is the discriminator stored with each record ("baptism").
	Name string
	// Path is the route segment under /api ("baptism", "holy-orders").
	Path string
	// Sacrament is the display label ("Funeral Service").
	Sacrament string
	// NumberPrefix seeds the human-readable request number.
	NumberPrefix string
	// Fees is the fee schedule applied at creation.
	Fees fees.Table
	// Profile configures the lifecycle engine for this type.
	Profile lifecycle.Profile
	// SubjectKeys name the intake fields identifying the subject. Multiple
	// keys are joined with " & " (marriage); an array value contributes its
	// first element (pamisa names).
	SubjectKeys []string
	// DateKey/TimeKey name the intake fields carrying the schedule.
	DateKey string
	TimeKey string
	// SubTypeKey names the intake field feeding the fee lookup, when any.
	SubTypeKey string
	// RequiredKeys must be present and non-empty at creation.
	RequiredKeys []string
	// ActorKey names the intake field used as the activity-log actor label.
	ActorKey string
	// SupportsPayment gates the /:id/payment endpoint.
	SupportsPayment bool
	// CertificateSerial assigns an additional certificate number at intake.
	CertificateSerial bool
}

// CertificatePrefixes maps certificate sub-types to their serial prefixes.
var CertificatePrefixes = map[string]string{
	"Baptismal Certificate":    "BAP",
	"Confirmation Certificate": "CON",
	"Marriage Certificate":     "MAR",
	"Death Certificate":        "DTH",
	"Good Moral Certificate":   "GMC",
}

var requestTypes = []RequestType{
	{
		Name:            "baptism",
		Path:            "baptism",
		Sacrament:       "Baptism",
		NumberPrefix:    "BAPT",
		Fees:            fees.Baptism,
		SubjectKeys:     []string{"name"},
		DateKey:         "baptismDate",
		TimeKey:         "baptismTime",
		SubTypeKey:      "baptismType",
		RequiredKeys:    []string{"name", "baptismDate"},
		ActorKey:        "contact",
		SupportsPayment: true,
	},
	{
		Name:            "confirmation",
		Path:            "confirmation",
		Sacrament:       "Kumpil",
		NumberPrefix:    "KUMPIL",
		Fees:            fees.Confirmation,
		SubjectKeys:     []string{"confirmandName"},
		DateKey:         "kumpilDate",
		TimeKey:         "kumpilTime",
		SubTypeKey:      "confirmationType",
		RequiredKeys:    []string{"confirmandName", "kumpilDate"},
		ActorKey:        "contactNo",
		SupportsPayment: true,
	},
	{
		Name:            "marriage",
		Path:            "marriage",
		Sacrament:       "Marriage",
		NumberPrefix:    "MARRIAGE",
		Fees:            fees.Marriage,
		SubjectKeys:     []string{"groomName", "brideName"},
		DateKey:         "dateOfWedding",
		TimeKey:         "timeOfWedding",
		RequiredKeys:    []string{"groomName", "brideName", "dateOfWedding"},
		ActorKey:        "submittedByEmail",
		SupportsPayment: true,
	},
	{
		Name:            "funeral",
		Path:            "funeral",
		Sacrament:       "Funeral Service",
		NumberPrefix:    "FUNERAL",
		Fees:            fees.Funeral,
		SubjectKeys:     []string{"nameOfDeceased"},
		DateKey:         "scheduleDate",
		TimeKey:         "scheduleTime",
		RequiredKeys:    []string{"nameOfDeceased", "scheduleDate", "scheduleTime"},
		ActorKey:        "submittedByEmail",
		SupportsPayment: true,
	},
	{
		Name:            "blessing",
		Path:            "blessing",
		Sacrament:       "Blessing",
		NumberPrefix:    "BLESS",
		Fees:            fees.Blessing,
		SubjectKeys:     []string{"name"},
		DateKey:         "date",
		TimeKey:         "time",
		SubTypeKey:      "blessingType",
		RequiredKeys:    []string{"name", "blessingType", "address", "contactNumber", "date", "time"},
		ActorKey:        "contactNumber",
		SupportsPayment: true,
	},
	{
		Name:            "pamisa",
		Path:            "pamisa",
		Sacrament:       "Pamisa",
		NumberPrefix:    "MASS",
		Fees:            fees.Pamisa,
		SubjectKeys:     []string{"names"},
		DateKey:         "date",
		TimeKey:         "time",
		RequiredKeys:    []string{"intention", "date", "time"},
		ActorKey:        "submittedByEmail",
		SupportsPayment: true,
	},
	{
		Name:         "holy-orders",
		Path:         "holy-orders",
		Sacrament:    "Holy Orders",
		NumberPrefix: "HOLY",
		Fees:         fees.Free,
		SubjectKeys:  []string{"name"},
		DateKey:      "ordinationDate",
		TimeKey:      "ordinationTime",
		SubTypeKey:   "ordinationType",
		RequiredKeys: []string{"name", "email", "contactNumber"},
		ActorKey:     "email",
	},
	{
		Name:         "sickcall",
		Path:         "sickcall",
		Sacrament:    "Sick Call",
		NumberPrefix: "SICK",
		Fees:         fees.Free,
		SubjectKeys:  []string{"fullName"},
		DateKey:      "dateOfVisit",
		TimeKey:      "timeOfVisit",
		RequiredKeys: []string{"fullName", "email", "contactNumber", "dateOfVisit", "timeOfVisit", "sickness"},
		ActorKey:     "email",
	},
	{
		Name:              "certificates",
		Path:              "certificates",
		Sacrament:         "Certificate",
		NumberPrefix:      "CERT",
		Fees:              fees.Free,
		Profile:           lifecycle.Profile{AllowReady: true},
		SubjectKeys:       []string{"fullName"},
		DateKey:           "requestDate",
		SubTypeKey:        "certificateType",
		RequiredKeys:      []string{"certificateType", "fullName", "purpose", "contactNumber", "address", "requestDate", "submittedByEmail"},
		ActorKey:          "submittedByEmail",
		CertificateSerial: true,
	},
	{
		Name:         "volunteer",
		Path:         "volunteer",
		Sacrament:    "Volunteer",
		NumberPrefix: "VOL",
		Fees:         fees.Free,
		SubjectKeys:  []string{"fullName"},
		DateKey:      "applicationDate",
		RequiredKeys: []string{"ministry", "fullName", "email", "contactNumber"},
		ActorKey:     "email",
	},
}

// All returns every registered request type.
func All() []RequestType {
	return requestTypes
}

// ByName returns the request type with the given discriminator.
func ByName(name string) (RequestType, bool) {
	for _, rt := range requestTypes {
		if rt.Name == name {
			return rt, true
		}
	}
	return RequestType{}, false
}
