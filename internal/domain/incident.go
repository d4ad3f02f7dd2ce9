package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
)

const (
	MinThreatLevel = 1
	MaxThreatLevel = 5
)

// Incident is a reported micro-incident with its denormalized worker,
// factory and classifications.
type Incident struct {
	ID          int      `json:"id"`
	Worker      Worker   `json:"worker"`
	ThreatType  Category `json:"threatType"`
	ThreatLevel int      `json:"threatLevel"`
	WorkType    Category `json:"workType"`
	Checks      Checks   `json:"checks"`
	Description string   `json:"description"`
	Date        Date     `json:"date"`
	Factory     Factory  `json:"factory"`

	// AdditionalData holds every payload field outside the known set,
	// verbatim.
	AdditionalData map[string]json.RawMessage `json:"-"`
}

var knownIncidentFields = map[string]struct{}{
	"id":          {},
	"worker":      {},
	"threatType":  {},
	"threatLevel": {},
	"workType":    {},
	"checks":      {},
	"description": {},
	"date":        {},
	"factory":     {},
}

// MarshalJSON writes the known fields followed by AdditionalData. Extra
// keys never override known ones.
func (i Incident) MarshalJSON() ([]byte, error) {
	type plain Incident
	known, err := json.Marshal(plain(i))
	if err != nil {
		return nil, err
	}
	if len(i.AdditionalData) == 0 {
		return known, nil
	}
	merged := make(map[string]json.RawMessage, len(knownIncidentFields)+len(i.AdditionalData))
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range i.AdditionalData {
		if _, ok := merged[k]; ok {
			continue
		}
		merged[k] = v
	}
	return json.Marshal(merged)
}

var ErrNotJSONObject = errors.New("incident payload is not a JSON object")

// DecodeIncident parses raw into an Incident. It only fails when raw is not
// a JSON object; every field problem degrades to that field's default.
func DecodeIncident(raw []byte, clock clockwork.Clock) (Incident, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return Incident{}, ErrNotJSONObject
	}
	return IncidentFromPayload(payload, clock), nil
}

// IncidentFromPayload builds an Incident from a loosely typed payload.
// Absent or mistyped fields take their zero default, except date: a missing
// date becomes today's date on clock, so it cannot be told apart from an
// incident reported today. A missing factory is defaulted like every other
// entity rather than left unset.
func IncidentFromPayload(payload map[string]json.RawMessage, clock clockwork.Clock) Incident {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	inc := Incident{
		Worker:         EmptyWorker(),
		Checks:         Checks{},
		Factory:        Factory{},
		AdditionalData: map[string]json.RawMessage{},
	}

	decodeField(payload, "id", &inc.ID)
	decodeField(payload, "worker", &inc.Worker)
	decodeField(payload, "threatType", &inc.ThreatType)
	decodeField(payload, "threatLevel", &inc.ThreatLevel)
	decodeField(payload, "workType", &inc.WorkType)
	decodeField(payload, "checks", &inc.Checks)
	decodeField(payload, "description", &inc.Description)
	decodeField(payload, "factory", &inc.Factory)

	inc.Date = NewDate(clock.Now())
	decodeField(payload, "date", &inc.Date)

	for k, v := range payload {
		if _, ok := knownIncidentFields[k]; ok {
			continue
		}
		inc.AdditionalData[k] = v
	}
	return inc
}

func decodeField[T any](payload map[string]json.RawMessage, key string, dst *T) {
	raw, ok := payload[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// InfoPair is one (label, value) row of the incident detail view.
type InfoPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const (
	LabelWorker      = "작업자"
	LabelThreatType  = "위험 유형"
	LabelThreatLevel = "위험 수준"
	LabelWorkType    = "작업 유형"
	LabelChecks      = "체크리스트"
	LabelDescription = "상세 설명"
	LabelFactory     = "발생 공장"
	LabelDate        = "발생 일자"
)

// RelatedInfo projects the incident into display rows. The row order is
// fixed. Checklist answers are not shown, only the questions.
func (i Incident) RelatedInfo() []InfoPair {
	return []InfoPair{
		{LabelWorker, i.Worker.Name},
		{LabelThreatType, i.ThreatType.String()},
		{LabelThreatLevel, strconv.Itoa(i.ThreatLevel)},
		{LabelWorkType, i.WorkType.String()},
		{LabelChecks, strings.Join(i.Checks.Questions(), ", ")},
		{LabelDescription, i.Description},
		{LabelFactory, i.Factory.String()},
		{LabelDate, i.Date.Korean()},
	}
}

func (i Incident) RiskTier() RiskTier { return RiskTierForLevel(i.ThreatLevel) }
