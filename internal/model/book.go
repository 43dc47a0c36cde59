package model

import "time"

// Book represents a row in the `books` table. Price is the unit price in
// dollars; cart and checkout math always recompute totals from it rather
// than storing derived values.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – book title.
//  Author      – author display name.
//  Price       – unit price.
//  Genre       – free-form genre label used by the catalog filter.
//  Description – long-form description shown on the detail page.
//  ImageURL    – cover image location.
//  Rating      – average rating, 0 when unrated.
//  Stock       – units available.
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last update.
type Book struct {
	ID          uint64    // books.id
	Title       string    // books.title
	Author      string    // books.author
	Price       float64   // books.price
	Genre       string    // books.genre
	Description string    // books.description
	ImageURL    string    // books.image_url
	Rating      float64   // books.rating
	Stock       int       // books.stock
	CreatedAt   time.Time // books.created_at
	UpdatedAt   time.Time // books.updated_at
}
