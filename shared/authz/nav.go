package authz

import "github.com/stockwise/console-gateway/shared/models"

// NavLink is one entry of the role-scoped navigation bar.
type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// navTable maps every canonical role to its ordered navigation entries.
// Adding a role means adding a row here; there is no other nav logic.
var navTable = map[models.UserRole][]NavLink{
	models.RoleSuperAdmin: {
		{Href: "/super-admin/dashboard", Label: "Dashboard"},
		{Href: "/super-admin/tenants", Label: "Tenants"},
		{Href: "/super-admin/users", Label: "Users"},
		{Href: "/super-admin/system", Label: "System Overview"},
	},
	models.RoleStoreAdmin: {
		{Href: "/store-admin/dashboard", Label: "Dashboard"},
		{Href: "/store-admin/branches", Label: "Branches"},
		{Href: "/store-admin/products", Label: "Products"},
		{Href: "/store-admin/inventory", Label: "Inventory"},
		{Href: "/store-admin/users", Label: "Users"},
		{Href: "/store-admin/reports", Label: "Reports"},
	},
	models.RoleLocationUser: {
		{Href: "/location/dashboard", Label: "Dashboard"},
		{Href: "/location/pos", Label: "Point of Sale"},
		{Href: "/location/inventory", Label: "Inventory"},
		{Href: "/location/invoices", Label: "Invoices"},
	},
}

// NavLinks returns the navigation entries for a role. Unknown or absent roles
// get an empty list, never an error.
func NavLinks(role models.UserRole) []NavLink {
	links := navTable[role.Canonical()]
	out := make([]NavLink, len(links))
	copy(out, links)
	return out
}
