package domain

// Core domain models shared by the backend and the client. JSON tags follow
// the wire format the dashboard has always used (camelCase entities,
// snake_case foreign keys on write payloads).

// Category is any enumerable classification: threat type, work type, age
// range, work-experience range, industry type.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewCategory(id int, name string) Category {
	return Category{ID: id, Name: name}
}

func (c Category) String() string { return c.Name }

// RangeCategory is the {id, range} shape served for age and
// work-experience ranges.
type RangeCategory struct {
	ID    *int    `json:"id"`
	Range *string `json:"range"`
}

// CategoryFromRange remaps range to name. Missing fields become 0 and "".
func CategoryFromRange(r RangeCategory) Category {
	var c Category
	if r.ID != nil {
		c.ID = *r.ID
	}
	if r.Range != nil {
		c.Name = *r.Range
	}
	return c
}

// NoFactoryID marks a factory that is not loaded yet or does not exist.
const NoFactoryID = -1

type Factory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (f Factory) String() string { return f.Name }

func PlaceholderFactory() Factory {
	return Factory{ID: NoFactoryID, Name: "Placeholder"}
}

func NoFactoriesAvailable() Factory {
	return Factory{ID: NoFactoryID, Name: "No available factories"}
}

type Worker struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	AgeRange            Category `json:"ageRange"`
	Sex                 string   `json:"sex"`
	WorkExperienceRange Category `json:"workExperienceRange"`
}

func EmptyWorker() Worker {
	return Worker{AgeRange: Category{}, WorkExperienceRange: Category{}}
}

// CheckQuestion is one server-defined checklist entry.
type CheckQuestion struct {
	ID       int    `json:"id,omitempty"`
	Question string `json:"question"`
}

type IndustrySize string

const (
	IndustryLarge  IndustrySize = "large"
	IndustryMedium IndustrySize = "medium"
)

// NewWorker is the POST /workers body.
type NewWorker struct {
	Name                  string `json:"name" validate:"required,max=100"`
	AgeRangeID            int    `json:"ageRange_id" validate:"gt=0"`
	Sex                   string `json:"sex" validate:"required,oneof=male female other 남 여 남성 여성"`
	WorkExperienceRangeID int    `json:"workExperienceRange_id" validate:"gt=0"`
}

// NewIncident is the POST /incidents body.
type NewIncident struct {
	WorkerID             int        `json:"worker_id" validate:"gt=0"`
	IndustryTypeLargeID  *int       `json:"industryTypeLarge_id,omitempty" validate:"omitempty,gt=0"`
	IndustryTypeMediumID *int       `json:"industryTypeMedium_id,omitempty" validate:"omitempty,gt=0"`
	ThreatTypeID         int        `json:"threatType_id" validate:"gt=0"`
	ThreatLevel          int        `json:"threatLevel" validate:"min=1,max=5"`
	WorkTypeID           int        `json:"workType_id" validate:"gt=0"`
	Checks               CheckPairs `json:"checks" validate:"min=1,dive"`
	Description          string     `json:"description" validate:"max=4000"`
	Date                 ISODate    `json:"date"`
	FactoryID            int        `json:"factory_id" validate:"gt=0"`
	ImageURL             string     `json:"image_url,omitempty" validate:"omitempty,url"`
}

// IncidentFilter narrows incident listings and dashboard aggregates.
type IncidentFilter struct {
	FactoryID *int
	From      *Date
	To        *Date
}

// User is a dashboard account.
type User struct {
	Username       string
	HashedPassword string
}

// UploadTicket is the response of POST /image/uploadURL.
type UploadTicket struct {
	PresignedURL string `json:"presignedUrl"`
	FileURL      string `json:"fileUrl"`
}
