package entity

import (
	"time"
)

// AnonymousUserID marks audit records written without a signed-in user.
const AnonymousUserID = "anon"

// AuditTimestampLayout is the ISO-8601 layout with millisecond precision used for stored timestamps.
const AuditTimestampLayout = "2006-01-02T15:04:05.000Z"

// AuditRecord is one append-only entry of the audit log.
type AuditRecord struct {
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"userId"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
}

// Audit actions
const (
	ActionSignup      = "signup"
	ActionSignupError = "signup_error"
	ActionLogin       = "login"
	ActionLoginError  = "login_error"
	ActionLogout      = "logout"
	ActionLogoutError = "logout_error"

	ActionCreateShop      = "create_shop"
	ActionCreateShopError = "create_shop_error"
	ActionUpdateShop      = "update_shop"
	ActionUpdateShopError = "update_shop_error"
	ActionDeleteShop      = "delete_shop"
	ActionDeleteShopError = "delete_shop_error"

	ActionCreateProduct      = "create_product"
	ActionCreateProductError = "create_product_error"
	ActionUpdateProduct      = "update_product"
	ActionUpdateProductError = "update_product_error"
	ActionDeleteProduct      = "delete_product"
	ActionDeleteProductError = "delete_product_error"

	ActionCreateOffer              = "create_offer"
	ActionCreateOfferError         = "create_offer_error"
	ActionLinkProductsToOffer      = "link_products_to_offer"
	ActionLinkProductsToOfferError = "link_products_to_offer_error"
	ActionDeleteOffer              = "delete_offer"
	ActionDeleteOfferError         = "delete_offer_error"
)
