package cue

// Cue pairs a stage description with a micro-practice to try today.
type Cue struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Practice    string `json:"practice"`
	Action      string `json:"action"`
	Quote       string `json:"quote"`
}

// Catalog is the fixed, ordered set of cues. Order matters: the date based
// selection indexes into it.
var Catalog = []Cue{
	{
		ID:          "ground",
		Title:       "Find your footing",
		Description: "When everything feels urgent, start from what is solid right now.",
		Practice:    "5-4-3-2-1 grounding",
		Action:      "Name five things you can see and one thing you can do in the next hour.",
		Quote:       "You can't calm the storm, so stop trying. Calm yourself; the storm will pass.",
	},
	{
		ID:          "breathe",
		Title:       "Slow the body first",
		Description: "Pressure before a performance lives in the body before it reaches the mind.",
		Practice:    "Box breathing",
		Action:      "Breathe in four, hold four, out four, hold four. Repeat four rounds.",
		Quote:       "Breath is the bridge which connects life to consciousness.",
	},
	{
		ID:          "reframe",
		Title:       "Question the prediction",
		Description: "Worry is a forecast. Forecasts can be checked.",
		Practice:    "Evidence check",
		Action:      "Write the worst case, the best case and the most likely case side by side.",
		Quote:       "We suffer more often in imagination than in reality.",
	},
	{
		ID:          "boundary",
		Title:       "Draw the line",
		Description: "Other people's opinions are information, not instructions.",
		Practice:    "Circle of control",
		Action:      "List what is yours to decide and what is not. Let the second list go.",
		Quote:       "No is a complete sentence.",
	},
	{
		ID:          "small-step",
		Title:       "Shrink the next step",
		Description: "A big load becomes movable when the next step is small enough.",
		Practice:    "Two-minute start",
		Action:      "Pick one piece you can start in two minutes and start it.",
		Quote:       "The secret of getting ahead is getting started.",
	},
	{
		ID:          "self-kindness",
		Title:       "Talk to yourself like a friend",
		Description: "Self-doubt speaks louder than it deserves to.",
		Practice:    "Compassionate letter",
		Action:      "Write three lines to yourself the way you would to a friend in the same spot.",
		Quote:       "Be gentle with yourself, you're doing the best you can.",
	},
	{
		ID:          "connect",
		Title:       "Reach out",
		Description: "Loneliness shrinks when it is shared, even a little.",
		Practice:    "One message",
		Action:      "Send one honest message to someone you trust.",
		Quote:       "A burden shared is a burden halved.",
	},
	{
		ID:          "rest",
		Title:       "Refill before you pour",
		Description: "Exhaustion makes every problem look bigger.",
		Practice:    "Deliberate pause",
		Action:      "Take a twenty minute break with no screen before deciding anything.",
		Quote:       "Almost everything will work again if you unplug it for a few minutes, including you.",
	},
	{
		ID:          "accept",
		Title:       "Make room for not knowing",
		Description: "Uncertainty is uncomfortable, not dangerous.",
		Practice:    "Name it to tame it",
		Action:      "Say out loud: I don't know yet, and that is allowed.",
		Quote:       "Grant me the serenity to accept the things I cannot change.",
	},
	{
		ID:          "celebrate",
		Title:       "Notice what went right",
		Description: "Good moments fade faster than bad ones unless you hold them.",
		Practice:    "Savoring",
		Action:      "Replay one good moment from today for thirty seconds.",
		Quote:       "Enjoy the little things, for one day you may look back and realize they were the big things.",
	},
}

// ByID returns the catalog entry with the given id.
func ByID(id string) (Cue, bool) {
	for _, c := range Catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Cue{}, false
}

// CategoryCues maps category labels to the cue they point at.
var CategoryCues = map[string]string{
	"工作壓力": "small-step",
	"面試壓力": "breathe",
	"學業考試": "small-step",
	"人際關係": "boundary",
	"家庭":   "connect",
	"感情":   "self-kindness",
	"健康":   "rest",
	"財務":   "ground",
	"未來方向": "accept",
}

// WorryCues maps worry labels to cues. The polarity dependent worry is handled
// by worryCue.
var WorryCues = map[string]string{
	"擔心表現":   "reframe",
	"害怕被拒絕":  "self-kindness",
	"擔心別人看法": "boundary",
	"不確定未來":  "accept",
	"失去控制感":  "ground",
	"自我懷疑":   "self-kindness",
	"感到孤單":   "connect",
	"覺得疲憊":   "rest",
}

// ChangeWorry is the one worry whose cue depends on polarity.
const ChangeWorry = "意外的變化"
