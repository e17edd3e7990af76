// Package category holds the fixed extension-to-category table and the
// classifier that resolves a file extension to its destination bucket.
//
// The table is immutable once constructed. Classification is a total
// function: any extension not claimed by a category, including the empty
// string, falls back to Misc.
package category
