package coach

import (
	"encoding/json"
	"strings"
)

const (
	ChallengeMaxTokens     = 500
	GroupTemplateMaxTokens = 800
)

const challengeSystemPrompt = "You are a Personal Fitness Coach AI that designs individual wellness challenges. " +
	"Study the user's fitness level, recent activity and goals, then design a creative, achievable challenge " +
	"that pushes them slightly past their current performance. Use concrete numbers and timelines. " +
	"Return ONLY valid JSON, without markdown formatting."

const challengeUserPrompt = `Create a personalized 7-day fitness challenge for this user:

PROFILE:
- Fitness Level: {{fitness_level}}
- Age: {{age}}
- Weight: {{weight}}kg
- Preferred Activities: {{preferred_activities}}

RECENT WORKOUTS (last 10):
{{workouts}}

CURRENT GOALS:
{{goals}}

Based on this data, create a challenge that:
1. Matches their fitness level and goals
2. Builds on their recent workout patterns
3. Adds slight progressive overload
4. Is specific and measurable
5. Lasts 7 days starting today

Return JSON in this format:
{
  "title": "Challenge name",
  "description": "Detailed description (2-3 sentences)",
  "difficulty": "easy|medium|hard",
  "duration_days": 7,
  "challenge_data": {
    "workout_count": number,
    "total_distance": number (km, if applicable),
    "total_duration": number (minutes)
  }
}`

const groupSystemPrompt = "You are the FitAdapt Group Challenge Coordinator, an energetic event planner and inclusive " +
	"community builder who turns individual fitness journeys into shared group workout events. " +
	"Design group challenges where people of every fitness level feel challenged, included and inspired. " +
	"Keep every invitation upbeat and welcoming, with emojis and community-focused language!"

// groupTemplateExample is the worked example sent with the group prompt. Field order is significant.
type groupTemplateExample struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	ChallengeType      string `json:"challenge_type"`
	Difficulty         string `json:"difficulty"`
	LocationSuggestion string `json:"location_suggestion"`
	DurationMinutes    int    `json:"duration_minutes"`
	MaxParticipants    int    `json:"max_participants"`
	EquipmentNeeded    string `json:"equipment_needed"`
	WhyJoin            string `json:"why_join"`
}

var groupExample = groupTemplateExample{
	Title: "Saturday Sunrise 5K Social Run & Coffee",
	Description: "🌅 Kick off the weekend together! We run a scenic 5K loop through the park and grab coffee afterwards. " +
		"👟 Every pace is welcome, with three pace groups: Relaxed (7:30-8:30 min/km) to chat and enjoy the views, " +
		"Moderate (6:30-7:30 min/km) for a steady effort, Spirited (5:30-6:30 min/km) to push the pace. " +
		"✨ Come for the accountability, new routes and fitness friends!",
	ChallengeType:      "running",
	Difficulty:         "all-levels",
	LocationSuggestion: "Riverside Park or a similar scenic park with a 5K loop",
	DurationMinutes:    75,
	MaxParticipants:    15,
	EquipmentNeeded:    "Water bottle, running shoes, positive vibes!",
	WhyJoin:            "Accountability keeps you showing up, you discover new routes with local runners, make fitness friends and start the weekend feeling accomplished",
}

// ChallengePrompt composes the system and user prompts for an individual challenge.
func ChallengePrompt(c ChallengeContext) (system, user string) {
	r := strings.NewReplacer(
		"{{fitness_level}}", c.FitnessLevel,
		"{{age}}", c.Age,
		"{{weight}}", c.Weight,
		"{{preferred_activities}}", c.PreferredActivities,
		"{{workouts}}", c.Workouts,
		"{{goals}}", c.Goals,
	)
	return challengeSystemPrompt, r.Replace(challengeUserPrompt)
}

// GroupTemplatePrompt composes the prompts for a group challenge template.
func GroupTemplatePrompt(c GroupContext) (system, user string) {
	example, err := json.Marshal(groupExample)
	if err != nil {
		// static value, cannot fail
		panic(err)
	}

	var b strings.Builder
	b.WriteString("Create an exciting, inclusive group fitness challenge invitation for a ")
	b.WriteString(c.FitnessLevel)
	b.WriteString(" level fitness enthusiast. Their recent activities: ")
	b.WriteString(c.RecentActivity)
	b.WriteString(". Their goals: ")
	b.WriteString(c.Goals)
	b.WriteString(". Generate a group challenge that attracts mixed fitness levels and builds community. " +
		"The challenge should have: " +
		"1) A catchy, motivating title (5-8 words), " +
		"2) An inclusive description that welcomes all fitness levels (250-400 words, upbeat tone, emojis, explain pace groups), " +
		"3) Suggested challenge type (running, cycling, hiking, yoga, circuit training), " +
		"4) Difficulty level (beginner-friendly, all-levels, intermediate, or advanced), " +
		"5) Suggested location type (park, trail, gym, outdoor space), " +
		"6) Duration in minutes (60-90), " +
		"7) Max participants (10-20), " +
		"8) What to bring, " +
		"9) Why join (community, accountability, fun). " +
		"Return ONLY valid JSON with this structure: ")
	b.Write(example)
	b.WriteString(". Make it enthusiastic, welcoming, and community-focused!")

	return groupSystemPrompt, b.String()
}
