package types

// Derived dashboard payloads. Everything here is computed from the local
// profile copy; the upstream backend is never consulted for stats.

type DonorStats struct {
	TotalDonated        int64      `json:"totalDonated"`
	DonationsCount      int        `json:"donationsCount"`
	BeneficiariesHelped int64      `json:"beneficiariesHelped"`
	ImpactScore         int64      `json:"impactScore"`
	LastUpdated         string     `json:"lastUpdated"`
	RecentDonations     []Donation `json:"recentDonations"`
}

type Donation struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Cause  string `json:"cause"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

type VolunteerStats struct {
	TasksCompleted   int    `json:"tasksCompleted"`
	EventsAttended   int    `json:"eventsAttended"`
	HoursVolunteered int    `json:"hoursVolunteered"`
	LastUpdated      string `json:"lastUpdated"`
}
