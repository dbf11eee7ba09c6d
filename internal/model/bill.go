package model

// Bill represents the getBill response
type Bill struct {
	Status             *string        `json:"status"`
	Bill               *BillIdentity  `json:"bill"`
	URL                *string        `json:"url"`
	StateLink          *string        `json:"state_link"`
	Completed          *uint32        `json:"completed"`
	StatusCode         *uint32        `json:"status_code"`
	StatusDate         *string        `json:"status_date"`
	Progress           List[Progress] `json:"progress"`
	State              *string        `json:"state"`
	StateID            *uint32        `json:"state_id"`
	BillNumber         *string        `json:"bill_number"`
	BillType           *string        `json:"bill_type"`
	BillTypeID         *uint32        `json:"bill_type_id"`
	Body               *string        `json:"body"`
	BodyID             *uint32        `json:"body_id"`
	CurrentBody        *string        `json:"current_body"`
	CurrentBodyID      *uint32        `json:"current_body_id"`
	Title              *string        `json:"title"`
	Description        *string        `json:"description"`
	PendingCommitteeID *uint32        `json:"pending_committee_id"`
	Committee          List[string]   `json:"committee"`
	Referrals          List[string]   `json:"referrals"`
	History            List[History]  `json:"history"`
	Sponsors           List[Sponsor]  `json:"sponsors"`
	Sasts              List[string]   `json:"sasts"`
	Subjects           List[string]   `json:"subjects"`
	Texts              List[Text]     `json:"texts"`
	Votes              List[string]   `json:"votes"`
	Amendments         List[string]   `json:"amendments"`
	Supplements        List[string]   `json:"supplements"`
	Calendar           List[string]   `json:"calendar"`
}

// BillIdentity identifies the bill and the session it belongs to
type BillIdentity struct {
	BillID     *uint32  `json:"bill_id"`
	ChangeHash *string  `json:"change_hash"`
	SessionID  *uint32  `json:"session_id"`
	Session    *Session `json:"session"`
}

// Progress is one dated progress event
type Progress struct {
	Date  *string `json:"date"`
	Event *string `json:"event"`
}

// History is one action in the bill's history
type History struct {
	Date       *string `json:"date"`
	Action     *string `json:"action"`
	Chamber    *string `json:"chamber"`
	ChamberID  *uint32 `json:"chamber_id"`
	Importance *uint32 `json:"importance"`
}

// Sponsor is a legislator or committee sponsoring a bill
type Sponsor struct {
	PeopleID         *uint32 `json:"people_id"`
	PeopleHash       *string `json:"people_hash"`
	PartyID          *uint32 `json:"party_id"`
	Party            *string `json:"party"`
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
	SponsorTypeID    *uint32 `json:"sponsor_type_id"`
	SponsorOrder     *uint32 `json:"sponsor_order"`
	CommitteeSponsor *uint32 `json:"committee_sponsor"`
	CommitteeID      *uint32 `json:"committee_id"`
	StateFederal     *uint32 `json:"state_federal"`
}

// Text is one bill text document
type Text struct {
	DocID        *uint32 `json:"doc_id"`
	Date         *string `json:"date"`
	Type         *string `json:"type"`
	TypeID       *uint32 `json:"type_id"`
	Mime         *string `json:"mime"`
	MimeID       *uint32 `json:"mime_id"`
	URL          *string `json:"url"`
	StateLink    *string `json:"state_link"`
	TextSize     *uint32 `json:"text_size"`
	TextHash     *string `json:"text_hash"`
	AltBillText  *string `json:"alt_bill_text"`
	AltMime      *string `json:"alt_mime"`
	AltMimeID    *uint32 `json:"alt_mime_id"`
	AltStateLink *string `json:"alt_state_link"`
	AltTextSize  *uint32 `json:"alt_text_size"`
	AltTextHash  *string `json:"alt_text_hash"`
}
