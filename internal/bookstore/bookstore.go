// Package bookstore is a small in-memory book catalog with add, list and
// title search. Search is a linear scan over insertion order.
package bookstore

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Book struct {
	Title    string
	Author   string
	Price    float64
	Quantity int
}

// Display writes the four-line description of b to w.
func (b Book) Display(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Title: %s\nAuthor: %s\nPrice: $%s\nQuantity: %d\n",
		b.Title, b.Author, formatPrice(b.Price), b.Quantity)
	return err
}

// formatPrice prints the shortest exact decimal, always with a fractional
// part: 1 → "1.0", 12.5 → "12.5".
func formatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

type Store struct {
	books []Book
}

func NewStore() *Store {
	return &Store{}
}

// Books returns a copy of the catalog in insertion order.
func (s *Store) Books() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Store) Len() int {
	return len(s.books)
}

// Add appends b and reports it to w.
func (s *Store) Add(w io.Writer, b Book) error {
	s.books = append(s.books, b)
	_, err := fmt.Fprintf(w, "Book '%s' added to the store.\n", b.Title)
	return err
}

// DisplayAll writes every book to w in insertion order.
func (s *Store) DisplayAll(w io.Writer) error {
	if len(s.books) == 0 {
		_, err := fmt.Fprintln(w, "The store is empty.")
		return err
	}
	for _, b := range s.books {
		if err := b.Display(w); err != nil {
			return err
		}
	}
	return nil
}

// Search displays every book whose title equals title and returns them.
// When nothing matches a notice is written instead.
func (s *Store) Search(w io.Writer, title string) ([]Book, error) {
	var found []Book
	for _, b := range s.books {
		if b.Title == title {
			found = append(found, b)
		}
	}

	if len(found) == 0 {
		_, err := fmt.Fprintf(w, "No book found with title '%s'.\n", title)
		return nil, err
	}

	for _, b := range found {
		if err := b.Display(w); err != nil {
			return found, err
		}
	}
	return found, nil
}
