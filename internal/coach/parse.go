package coach

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("```json\\n?|```\\n?")

// ChallengePayload is the shape expected back for an individual challenge.
type ChallengePayload struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Difficulty    string          `json:"difficulty"`
	DurationDays  *float64        `json:"duration_days"`
	ChallengeData json.RawMessage `json:"challenge_data"`
}

// GroupTemplate is a group challenge suggestion, returned to the caller for review and never stored.
type GroupTemplate struct {
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	ChallengeType      string      `json:"challenge_type"`
	Difficulty         string      `json:"difficulty"`
	LocationSuggestion string      `json:"location_suggestion,omitempty"`
	DurationMinutes    json.Number `json:"duration_minutes,omitempty"`
	MaxParticipants    json.Number `json:"max_participants,omitempty"`
	EquipmentNeeded    string      `json:"equipment_needed,omitempty"`
	WhyJoin            string      `json:"why_join,omitempty"`
}

// StripCodeFences removes markdown code fence markers wherever they appear.
func StripCodeFences(s string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(s, ""))
}

func ParseChallenge(raw string) (*ChallengePayload, error) {
	var p ChallengePayload
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedCompletion, err)
	}
	if missing := missingFields(map[string]string{
		"title":       p.Title,
		"description": p.Description,
		"difficulty":  p.Difficulty,
	}); missing != "" {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedCompletion, missing)
	}
	if string(p.ChallengeData) == "null" {
		p.ChallengeData = nil
	}
	return &p, nil
}

func ParseGroupTemplate(raw string) (*GroupTemplate, error) {
	var t GroupTemplate
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &t); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedCompletion, err)
	}
	if missing := missingFields(map[string]string{
		"title":          t.Title,
		"description":    t.Description,
		"challenge_type": t.ChallengeType,
		"difficulty":     t.Difficulty,
	}); missing != "" {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedCompletion, missing)
	}
	return &t, nil
}

// MaxChallengeDays caps the declared duration of a generated challenge.
const MaxChallengeDays = 365

// Days returns the declared duration, or 7 when absent or not positive.
func (p *ChallengePayload) Days() int {
	if p.DurationDays == nil || *p.DurationDays < 1 {
		return 7
	}
	if *p.DurationDays > MaxChallengeDays {
		return MaxChallengeDays
	}
	return int(*p.DurationDays)
}

func missingFields(fields map[string]string) string {
	var missing []string
	for _, name := range []string{"title", "description", "challenge_type", "difficulty"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	return strings.Join(missing, ", ")
}
