package model

// MasterList represents the getMasterList / getMasterListRaw response
type MasterList struct {
	Status     *string              `json:"status"`
	MasterList *Session             `json:"masterlist"`
	Bills      List[MasterListBill] `json:"id"`
}

// MasterListBill is a bill stub inside a master list
type MasterListBill struct {
	BillID     *uint32 `json:"bill_id"`
	Number     *string `json:"number"`
	ChangeDate *string `json:"change_date"`
}
