package models

// Permission is a single named capability grouped under a title
// (e.g. "News" → "news.create"). Immutable from the auth core's
// perspective.
type Permission struct {
	// ID is the internal unique identifier of the permission.
	ID int64 `json:"id"`

	// GroupTitle groups related permissions under one heading in
	// admin UIs.
	GroupTitle string `json:"group_title,omitempty"`

	// NameEn is the permission's display name in English.
	NameEn string `json:"name_en"`

	// NameBn is the permission's display name in Bengali.
	NameBn string `json:"name_bn,omitempty"`
}

// TableName returns the name of the database table
// associated with the Permission model.
func (p Permission) TableName() string {
	return "permissions"
}
