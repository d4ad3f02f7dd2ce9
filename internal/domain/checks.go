package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// CheckAnswer is one answered checklist question.
type CheckAnswer struct {
	Question string `json:"question" validate:"required"`
	Answer   bool   `json:"answer"`
}

// Checks maps checklist questions to answers. Order is the order the
// questions were asked in, so it is kept as a slice.
type Checks []CheckAnswer

func (c Checks) Len() int { return len(c) }

func (c Checks) Get(question string) (answer, ok bool) {
	for _, a := range c {
		if a.Question == question {
			return a.Answer, true
		}
	}
	return false, false
}

func (c Checks) Questions() []string {
	out := make([]string, 0, len(c))
	for _, a := range c {
		out = append(out, a.Question)
	}
	return out
}

// MarshalJSON writes an object keyed by question, in order.
func (c Checks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Question)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if a.Answer {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts {"question": bool, ...} keeping key order, or
// [["question", bool], ...].
func (c *Checks) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*c = Checks{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return c.unmarshalPairs(trimmed)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("checks: expected object or array")
	}
	out := Checks{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("checks: unexpected key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("checks: answer for %q: %w", key, err)
		}
		answer, err := decodeAnswer(key, raw)
		if err != nil {
			return err
		}
		out = append(out, CheckAnswer{Question: key, Answer: answer})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

func (c *Checks) unmarshalPairs(data []byte) error {
	var pairs [][]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	out := make(Checks, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return fmt.Errorf("checks: pair %d has %d elements", i, len(p))
		}
		var a CheckAnswer
		if err := json.Unmarshal(p[0], &a.Question); err != nil {
			return fmt.Errorf("checks: pair %d question: %w", i, err)
		}
		answer, err := decodeAnswer(a.Question, p[1])
		if err != nil {
			return err
		}
		a.Answer = answer
		out = append(out, a)
	}
	*c = out
	return nil
}

// ErrUnanswered marks a checklist question sent without a true/false answer.
var ErrUnanswered = errors.New("unanswered checklist question")

func decodeAnswer(question string, raw json.RawMessage) (bool, error) {
	var answer *bool
	if err := json.Unmarshal(raw, &answer); err != nil {
		return false, fmt.Errorf("checks: answer for %q: %w", question, err)
	}
	if answer == nil {
		return false, fmt.Errorf("checks: %q: %w", question, ErrUnanswered)
	}
	return *answer, nil
}

// CheckPairs is Checks in the [[question, answer], ...] write format.
type CheckPairs []CheckAnswer

func (p CheckPairs) MarshalJSON() ([]byte, error) {
	out := make([][2]any, 0, len(p))
	for _, a := range p {
		out = append(out, [2]any{a.Question, a.Answer})
	}
	return json.Marshal(out)
}

func (p *CheckPairs) UnmarshalJSON(data []byte) error {
	var c Checks
	if err := c.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = CheckPairs(c)
	return nil
}
