package models

// RecyclingCategory groups recyclable items with handling tips.
type RecyclingCategory struct {
	ID    string   `bson:"id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Items []string `bson:"items" json:"items"`
	Tips  string   `bson:"tips" json:"tips"`
}

// WasteSegregation is one entry of the segregation guide.
type WasteSegregation struct {
	ID           string   `bson:"id" json:"id"`
	Type         string   `bson:"type" json:"type"`
	HowToDispose string   `bson:"howToDispose" json:"howToDispose"`
	Examples     []string `bson:"examples" json:"examples"`
	Tips         string   `bson:"tips" json:"tips"`
}

// RecyclingMotivation is a single motivational tip.
type RecyclingMotivation struct {
	ID  string `bson:"id" json:"id"`
	Tip string `bson:"tip" json:"tip"`
}

// RecyclingCenter is a drop-off location.
type RecyclingCenter struct {
	ID                string   `bson:"id" json:"id"`
	Name              string   `bson:"name" json:"name"`
	Address           string   `bson:"address" json:"address"`
	OpenHours         string   `bson:"openHours" json:"openHours"`
	AcceptedMaterials []string `bson:"acceptedMaterials" json:"acceptedMaterials"`
	Directions        string   `bson:"directions,omitempty" json:"directions,omitempty"`
}

// RecyclingInfo is the aggregate the recycling view renders.
type RecyclingInfo struct {
	Categories       []RecyclingCategory  `json:"categories"`
	WasteSegregation []WasteSegregation   `json:"wasteSegregation"`
	Motivations      []RecyclingMotivation `json:"motivations"`
	RecyclingCenters []RecyclingCenter    `json:"recyclingCenters"`
}
