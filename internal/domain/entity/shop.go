package entity

import (
	"time"
)

// Shop is a merchant listing owned by exactly one user.
type Shop struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Floor     string    `json:"floor"`
	Contact   string    `json:"contact"`
	OwnerID   string    `json:"ownerId"`
	CreatedOn time.Time `json:"createdOn"`
}

// ShopUpdate is a partial update; nil fields are left unchanged.
type ShopUpdate struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Floor    *string `json:"floor,omitempty"`
	Contact  *string `json:"contact,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ShopUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Floor == nil && u.Contact == nil
}

// Apply copies the set fields onto shop.
func (u ShopUpdate) Apply(shop *Shop) {
	if u.Name != nil {
		shop.Name = *u.Name
	}
	if u.Category != nil {
		shop.Category = *u.Category
	}
	if u.Floor != nil {
		shop.Floor = *u.Floor
	}
	if u.Contact != nil {
		shop.Contact = *u.Contact
	}
}

// Shop fields that can be listed with ListUniqueShopFields.
const (
	ShopFieldName     = "name"
	ShopFieldCategory = "category"
	ShopFieldFloor    = "floor"
	ShopFieldContact  = "contact"
)

// FieldValue returns the value of one of the listable shop fields.
func (s *Shop) FieldValue(field string) (string, bool) {
	switch field {
	case ShopFieldName:
		return s.Name, true
	case ShopFieldCategory:
		return s.Category, true
	case ShopFieldFloor:
		return s.Floor, true
	case ShopFieldContact:
		return s.Contact, true
	default:
		return "", false
	}
}
