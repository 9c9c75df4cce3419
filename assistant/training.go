package assistant

// Intent labels the classifier can produce.
const (
	IntentGreeting    = "greeting"
	IntentEyeCareTips = "eye_care_tips"
	IntentExercises   = "eye_exercises"
	IntentVisionCheck = "vision_check"
	IntentFood        = "food"
	IntentSetReminder = "set_reminder"
	IntentDislike     = "dislike"
)

type trainingExample struct {
	text   string
	intent string
}

// trainingData is the fixed corpus the classifier is fitted on at startup.
// Never mutated after that.
var trainingData = []trainingExample{
	// Greeting
	{"hi", IntentGreeting},
	{"hello", IntentGreeting},
	{"hlo", IntentGreeting},
	{"hey", IntentGreeting},
	{"good morning", IntentGreeting},
	{"good evening", IntentGreeting},

	// Eye care tips
	{"give eye care tips", IntentEyeCareTips},
	{"eye care tips", IntentEyeCareTips},
	{"how to take care of eyes", IntentEyeCareTips},
	{"tips for eye health", IntentEyeCareTips},

	// Eye exercises
	{"eye exercises", IntentExercises},
	{"give me eye exercise", IntentExercises},
	{"how to improve vision", IntentExercises},
	{"eye workout", IntentExercises},

	// Vision check
	{"vision check", IntentVisionCheck},
	{"how to check vision", IntentVisionCheck},
	{"my child cannot see properly", IntentVisionCheck},

	// Food (dislike phrasing is handled by the extractor, not here)
	{"food for eye health", IntentFood},
	{"what food is good for eyes", IntentFood},
	{"best diet for eyes", IntentFood},
	{"show me foods", IntentFood},

	// Reminder
	{"set reminder", IntentSetReminder},
	{"remind me", IntentSetReminder},
	{"i want reminder", IntentSetReminder},
	{"medicine reminder", IntentSetReminder},

	// Dislike detection
	{"i don't like", IntentDislike},
	{"i dislike", IntentDislike},
	{"don't like", IntentDislike},
	{"hate", IntentDislike},
	{"remove from list", IntentDislike},
}
