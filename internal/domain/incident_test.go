package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCategoryFromRange(t *testing.T) {
	assert.Equal(t, NewCategory(5, "20-29"), CategoryFromRange(RangeCategory{ID: intPtr(5), Range: strPtr("20-29")}))
	assert.Equal(t, NewCategory(0, ""), CategoryFromRange(RangeCategory{}))

	var r RangeCategory
	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	assert.Equal(t, Category{}, CategoryFromRange(r))
	assert.Equal(t, "20-29", NewCategory(5, "20-29").String())
}

func TestDecodeIncidentDefaults(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 7, 15, 30, 0, 0, time.UTC))

	inc, err := DecodeIncident([]byte(`{}`), clock)
	require.NoError(t, err)

	assert.Equal(t, 0, inc.ID)
	assert.Equal(t, EmptyWorker(), inc.Worker)
	assert.Equal(t, Category{}, inc.ThreatType)
	assert.Equal(t, Category{}, inc.WorkType)
	assert.Equal(t, 0, inc.ThreatLevel)
	assert.Equal(t, 0, inc.Checks.Len())
	assert.Equal(t, "", inc.Description)
	assert.Equal(t, Factory{}, inc.Factory)
	assert.Empty(t, inc.AdditionalData)
}

func TestDecodeIncidentMissingDateIsToday(t *testing.T) {
	now := time.Now()
	inc, err := DecodeIncident([]byte(`{"id": 3}`), clockwork.NewRealClock())
	require.NoError(t, err)

	assert.WithinDuration(t, NewDate(now).Time, inc.Date.Time, 24*time.Hour)

	fake := clockwork.NewFakeClockAt(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	inc, err = DecodeIncident([]byte(`{"date": null}`), fake)
	require.NoError(t, err)
	assert.Equal(t, DateOf(2024, time.December, 31), inc.Date)
}

func TestDecodeIncidentFullPayload(t *testing.T) {
	raw := `{
		"id": 42,
		"worker": {"id": 7, "name": "김철수", "ageRange": {"id": 2, "name": "30-39"}, "sex": "남", "workExperienceRange": {"id": 1, "name": "1-3"}},
		"threatType": {"id": 2, "name": "추락"},
		"threatLevel": 4,
		"workType": {"id": 3, "name": "용접"},
		"checks": {"안전모 착용": true, "안전대 체결": false},
		"description": "작업 중 추락",
		"date": "2024-03-01T00:00:00.000Z",
		"factory": {"id": 1, "name": "평택 공장"},
		"imageUrl": "http://localhost/image/a.png",
		"industryTypeLarge": {"id": 1, "name": "제조업"}
	}`
	inc, err := DecodeIncident([]byte(raw), clockwork.NewFakeClock())
	require.NoError(t, err)

	assert.Equal(t, 42, inc.ID)
	assert.Equal(t, "김철수", inc.Worker.Name)
	assert.Equal(t, NewCategory(2, "30-39"), inc.Worker.AgeRange)
	assert.Equal(t, NewCategory(2, "추락"), inc.ThreatType)
	assert.Equal(t, 4, inc.ThreatLevel)
	assert.Equal(t, []string{"안전모 착용", "안전대 체결"}, inc.Checks.Questions())
	answer, ok := inc.Checks.Get("안전대 체결")
	assert.True(t, ok)
	assert.False(t, answer)
	assert.Equal(t, DateOf(2024, time.March, 1), inc.Date)
	assert.Equal(t, Factory{ID: 1, Name: "평택 공장"}, inc.Factory)

	require.Len(t, inc.AdditionalData, 2)
	assert.JSONEq(t, `"http://localhost/image/a.png"`, string(inc.AdditionalData["imageUrl"]))
	assert.JSONEq(t, `{"id": 1, "name": "제조업"}`, string(inc.AdditionalData["industryTypeLarge"]))
}

func TestDecodeIncidentMistypedFieldsDegrade(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	raw := `{"id": "x", "threatLevel": "high", "worker": [], "checks": 5, "date": "not a date", "factory": null}`

	inc, err := DecodeIncident([]byte(raw), clock)
	require.NoError(t, err)
	assert.Equal(t, 0, inc.ID)
	assert.Equal(t, 0, inc.ThreatLevel)
	assert.Equal(t, EmptyWorker(), inc.Worker)
	assert.Equal(t, 0, inc.Checks.Len())
	assert.Equal(t, DateOf(2025, time.January, 2), inc.Date)
	assert.Equal(t, Factory{}, inc.Factory)
}

func TestDecodeIncidentRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `null`, `"x"`, `{`} {
		_, err := DecodeIncident([]byte(raw), clockwork.NewFakeClock())
		assert.ErrorIs(t, err, ErrNotJSONObject, raw)
	}
}

func TestIncidentMarshalKeepsAdditionalData(t *testing.T) {
	inc := Incident{
		ID:          1,
		Checks:      Checks{{Question: "b", Answer: true}, {Question: "a", Answer: false}},
		Date:        DateOf(2024, time.March, 1),
		Description: "d",
		AdditionalData: map[string]json.RawMessage{
			"imageUrl": json.RawMessage(`"x.png"`),
			"id":       json.RawMessage(`99`),
		},
	}
	out, err := json.Marshal(inc)
	require.NoError(t, err)

	back, err := DecodeIncident(out, clockwork.NewFakeClock())
	require.NoError(t, err)
	assert.Equal(t, 1, back.ID)
	assert.Equal(t, []string{"b", "a"}, back.Checks.Questions())
	assert.Equal(t, inc.Date, back.Date)
	assert.JSONEq(t, `"x.png"`, string(back.AdditionalData["imageUrl"]))
}

func TestRelatedInfoOrder(t *testing.T) {
	inc := Incident{
		Worker:      Worker{Name: "김철수"},
		ThreatType:  NewCategory(2, "추락"),
		ThreatLevel: 4,
		WorkType:    NewCategory(3, "용접"),
		Checks:      Checks{{Question: "안전모 착용", Answer: true}, {Question: "안전대 체결", Answer: false}},
		Description: "작업 중 추락",
		Date:        DateOf(2024, time.March, 1),
		Factory:     Factory{ID: 1, Name: "평택 공장"},
	}

	info := inc.RelatedInfo()
	labels := make([]string, 0, len(info))
	for _, p := range info {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{
		LabelWorker, LabelThreatType, LabelThreatLevel, LabelWorkType,
		LabelChecks, LabelDescription, LabelFactory, LabelDate,
	}, labels)

	assert.Equal(t, []InfoPair{
		{LabelWorker, "김철수"},
		{LabelThreatType, "추락"},
		{LabelThreatLevel, "4"},
		{LabelWorkType, "용접"},
		{LabelChecks, "안전모 착용, 안전대 체결"},
		{LabelDescription, "작업 중 추락"},
		{LabelFactory, "평택 공장"},
		{LabelDate, "2024. 3. 1."},
	}, info)

	emptyLabels := make([]string, 0, 8)
	for _, p := range (Incident{}).RelatedInfo() {
		emptyLabels = append(emptyLabels, p.Label)
	}
	assert.Equal(t, labels, emptyLabels)
}

func TestRiskTierForLevel(t *testing.T) {
	cases := map[int]RiskTier{
		0: RiskTierHigh,
		1: RiskTierLow,
		2: RiskTierMedium,
		3: RiskTierHigh,
		4: RiskTierHigh,
		5: RiskTierHigh,
	}
	for level, want := range cases {
		assert.Equal(t, want, RiskTierForLevel(level), "level %d", level)
	}
	assert.Equal(t, RiskTierHigh.Color(), ThreatLevelColor(5))
	assert.NotEqual(t, ThreatLevelColor(1), ThreatLevelColor(2))
}
