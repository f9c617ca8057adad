// Package firefox reads history and bookmarks from a Firefox profile.
//
// The profile's places.sqlite is opened read-only and immutable, so the
// database can be queried while Firefox holds its lock. Entries written
// after the open are not visible until the source is reopened.
package firefox
