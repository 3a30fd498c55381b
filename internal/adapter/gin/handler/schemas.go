package handler

import (
	"estate-service/internal/domain/principal"
	"estate-service/internal/domain/property"
	"estate-service/internal/schema"
)

// Declared payload schemas, one per write route. Field order matters: it
// decides which violation is reported when several fields fail at once.

// RegisterSchema validates account registration.
var RegisterSchema = schema.New(
	schema.Field{Name: "name", Label: "Name", Kind: schema.String, Required: true, MinLen: 3, MaxLen: 100},
	schema.Field{Name: "email", Label: "Email", Kind: schema.Email, Required: true},
	schema.Field{Name: "password", Label: "Password", Kind: schema.String, Required: true, MinLen: 8, MaxLen: 72},
	schema.Field{Name: "confirm_password", Label: "Confirm password", Kind: schema.String, Required: true, MatchField: "password"},
	schema.Field{Name: "role", Label: "Role", Kind: schema.String,
		Enum:    []string{string(principal.RoleUser), string(principal.RoleVendor)},
		Default: string(principal.RoleUser)},
)

// LoginSchema validates login credentials.
var LoginSchema = schema.New(
	schema.Field{Name: "email", Label: "Email", Kind: schema.Email, Required: true},
	schema.Field{Name: "password", Label: "Password", Kind: schema.String, Required: true},
)

// CreatePropertySchema validates new property listings.
var CreatePropertySchema = schema.New(
	schema.Field{Name: "title", Label: "Title", Kind: schema.String, Required: true, MinLen: 3, MaxLen: 150},
	schema.Field{Name: "description", Label: "Description", Kind: schema.String, MaxLen: 2000},
	schema.Field{Name: "category", Label: "Category", Kind: schema.String, Required: true,
		Enum: []string{string(property.CategorySale), string(property.CategoryRent)}},
	schema.Field{Name: "price", Label: "Price", Kind: schema.Number, Required: true, Min: schema.Float(1)},
	schema.Field{Name: "city", Label: "City", Kind: schema.String, Required: true, MinLen: 2, MaxLen: 100},
)

// UpdatePropertySchema validates listing updates; every field is optional.
var UpdatePropertySchema = schema.New(
	schema.Field{Name: "title", Label: "Title", Kind: schema.String, MinLen: 3, MaxLen: 150},
	schema.Field{Name: "description", Label: "Description", Kind: schema.String, MaxLen: 2000},
	schema.Field{Name: "status", Label: "Status", Kind: schema.String,
		Enum: []string{string(property.StatusAvailable), string(property.StatusPending), string(property.StatusSold)}},
	schema.Field{Name: "price", Label: "Price", Kind: schema.Number, Min: schema.Float(1)},
	schema.Field{Name: "city", Label: "City", Kind: schema.String, MinLen: 2, MaxLen: 100},
)

// CreateEnquirySchema validates new enquiries.
var CreateEnquirySchema = schema.New(
	schema.Field{Name: "property_id", Label: "Property id", Kind: schema.String, Required: true, MinLen: 24, MaxLen: 24},
	schema.Field{Name: "message", Label: "Message", Kind: schema.String, Required: true, MinLen: 5, MaxLen: 1000},
)
