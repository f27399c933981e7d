package domain

// Citizen is the identity a submission is filed under. Phone is the
// natural dedup key: resolution always looks up by phone before
// registering.
type Citizen struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	District string `json:"district,omitempty"`
}

// User is the authenticated operator record persisted alongside the
// session token at login.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DistrictName string `json:"district_name,omitempty"`
}
