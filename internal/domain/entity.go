package domain

// Entity - данные сущности Wikidata, полученные через SPARQL
type Entity struct {
	QID             string       `json:"qid"`
	Label           string       `json:"label"`
	Description     *string      `json:"description,omitempty"`
	Image           *string      `json:"image,omitempty"`
	InstanceOf      *string      `json:"instance_of,omitempty"`
	InstanceOfLabel *string      `json:"instance_of_label,omitempty"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	Admin           *string      `json:"admin,omitempty"`
	AdminLabel      *string      `json:"admin_label,omitempty"`
	Website         *string      `json:"website,omitempty"`
	Inception       *string      `json:"inception,omitempty"`
}
