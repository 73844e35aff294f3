package registration

// Captain is the team leader. The only participant with an address record.
type Captain struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	ShirtSize  string `json:"shirtSize"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// Member is an additional team member beyond the captain.
type Member struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	ShirtSize string `json:"shirtSize"`
}

// Robot is one machine entered with the submission.
type Robot struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Submission is the full registration payload submitted by a registrant.
type Submission struct {
	TeamName     string   `json:"teamName"`
	Captain      Captain  `json:"captain"`
	Participants []Member `json:"participants"`
	Robots       []Robot  `json:"robots"`
	AgreePrivacy bool     `json:"agreePrivacy"`
	AgreeTerms   bool     `json:"agreeTerms"`
}
