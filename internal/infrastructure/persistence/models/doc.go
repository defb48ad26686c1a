// Package models contains the GORM schema models, one per hbnb table.
//
// The models only describe table layout (columns, sizes, indexes) for migrations
// and for scoping queries; entity data itself moves through flat records.
package models
