// Package oldestnewest implements the Oldest And Newest Book query use case.
//
// It orders the inventory by publication year and returns the first and the last book.
// Books with the same year keep their inventory order, so among equal years the
// earliest listed book counts as the oldest and the latest listed book as the newest.
package oldestnewest
