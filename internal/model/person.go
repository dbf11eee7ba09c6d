package model

// PersonResponse represents the getPerson response
type PersonResponse struct {
	Status *string `json:"status"`
	Person *Person `json:"person"`
}

// Person represents a legislator record
type Person struct {
	PeopleID         *uint32 `json:"people_id"`
	PersonHash       *string `json:"person_hash"`
	PartyID          *string `json:"party_id"`
	StateID          *uint32 `json:"state_id"`
	Party            *string `json:"party"`
	RoleID           *uint32 `json:"role_id"`
	Role             *string `json:"role"`
	Name             *string `json:"name"`
	FirstName        *string `json:"first_name"`
	MiddleName       *string `json:"middle_name"`
	LastName         *string `json:"last_name"`
	Suffix           *string `json:"suffix"`
	Nickname         *string `json:"nickname"`
	District         *string `json:"district"`
	FTMEID           *uint32 `json:"ftm_eid"`
	VotesmartID      *uint32 `json:"votesmart_id"`
	OpensecretsID    *string `json:"opensecrets_id"`
	KnowwhoPID       *uint32 `json:"knowwho_pid"`
	Ballotpedia      *string `json:"ballotpedia"`
	BioguideID       *string `json:"bioguide_id"`
	CommitteeSponsor *uint32 `json:"committee_sponsor"`
	CommitteeID      *uint32 `json:"committee_id"`
	StateFederal     *uint32 `json:"state_federal"`
}
