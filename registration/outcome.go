package registration

// Outcome is the closed set of results a submission can produce. The
// numeric values are part of the public API; clients branch on them.
type Outcome int

const (
	CorrectAdding Outcome = iota
	InvalidTeamName
	InvalidCaptain
	InvalidParticipant
	InvalidRobot
	MissingConsent
	DatabaseFail
)

var outcomeNames = map[Outcome]string{
	CorrectAdding:      "CorrectAdding",
	InvalidTeamName:    "InvalidTeamName",
	InvalidCaptain:     "InvalidCaptain",
	InvalidParticipant: "InvalidParticipant",
	InvalidRobot:       "InvalidRobot",
	MissingConsent:     "MissingConsent",
	DatabaseFail:       "DatabaseFail",
}

var outcomeMessages = map[Outcome]string{
	CorrectAdding:      "Team registered successfully.",
	InvalidTeamName:    "Team name must be between 1 and 50 characters.",
	InvalidCaptain:     "Captain details are missing or invalid.",
	InvalidParticipant: "Team members must have valid names and shirt sizes, 9 members at most.",
	InvalidRobot:       "Between 1 and 5 robots with valid names and categories are required.",
	MissingConsent:     "Both the terms and privacy consents are required.",
	DatabaseFail:       "Registration could not be saved. Please try again.",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Message returns the human-readable message for the outcome. The mapping
// is total: every outcome has one.
func (o Outcome) Message() string {
	if msg, ok := outcomeMessages[o]; ok {
		return msg
	}
	return outcomeMessages[DatabaseFail]
}
