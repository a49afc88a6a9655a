package models

import "time"

// Menu is a navigation entry. Menus form a self-referential tree via
// ParentID; the tree is not enforced by a foreign key in the flat list
// and is reconstructed in memory on every login.
//
// A nil PermissionID means the entry is visible to every authenticated
// user. A non-nil PermissionID makes the entry (and, because the tree is
// built from the filtered set, its entire subtree) visible only to users
// holding that permission.
type Menu struct {
	// ID is the internal unique identifier of the menu entry.
	ID int64 `json:"id"`

	// PermissionID references the permission required to see this entry.
	// Nil = no permission required.
	PermissionID *int64 `json:"permission_id,omitempty"`

	// ParentID references the parent menu entry. Nil = root entry.
	ParentID *int64 `json:"parent_id,omitempty"`

	// NameEn is the entry's label in English.
	NameEn string `json:"name_en"`

	// NameBn is the entry's label in Bengali.
	NameBn string `json:"name_bn,omitempty"`

	// URL is the client-side route the entry links to.
	URL string `json:"url,omitempty"`

	// Icon is the icon identifier rendered next to the label.
	Icon string `json:"icon,omitempty"`

	// Placement flags. The three are independent: one entry may appear
	// in several surfaces at once.
	HeaderMenu   bool `json:"header_menu"`
	SidebarMenu  bool `json:"sidebar_menu"`
	DropdownMenu bool `json:"dropdown_menu"`

	// Status marks the entry as enabled for rendering.
	Status bool `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Children holds the nested entries attached during tree assembly.
	// Always non-nil in assembled trees so clients can iterate without
	// a null check.
	Children []Menu `json:"children"`
}

// TableName returns the name of the database table
// associated with the Menu model.
func (m Menu) TableName() string {
	return "menus"
}
