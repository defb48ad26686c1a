// Package entities defines the hbnb domain records (users, states, cities, places,
// reviews and amenities) and the flat record contract the storage engine uses to
// move them in and out of the backing store.
//
// Entities are plain data. They carry no session or connection state, so any
// entity can be copied, serialized and handed to another engine instance.
package entities
