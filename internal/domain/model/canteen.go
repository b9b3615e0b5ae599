package model

type Canteen struct {
	CanteenID   int64  `json:"canteenId"`
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	ContactInfo string `json:"contactInfo,omitempty"`
}
