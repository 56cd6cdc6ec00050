package entity

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameBn      string `json:"nameBn,omitempty"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Location struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameBn string `json:"nameBn,omitempty"`
	Slug   string `json:"slug"`
}
