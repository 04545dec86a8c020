package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userkeep/internal/bookstore"
	"github.com/dmitrijs2005/userkeep/internal/common"
)

// AddBook prompts for the book fields and adds the book to the catalog.
func (a *App) AddBook(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	author, err := getSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		return err
	}

	priceText, err := getSimpleText(a.reader, "Enter price", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price < 0 {
		return fmt.Errorf("%w: invalid price %q", common.ErrValidation, priceText)
	}

	quantityText, err := getSimpleText(a.reader, "Enter quantity", a.out)
	if err != nil {
		return err
	}
	quantity, err := strconv.Atoi(quantityText)
	if err != nil || quantity < 0 {
		return fmt.Errorf("%w: invalid quantity %q", common.ErrValidation, quantityText)
	}

	book := bookstore.Book{Title: title, Author: author, Price: price, Quantity: quantity}
	a.logger.Debug(ctx, "book added", "title", title)
	return a.books.Add(a.out, book)
}

// ListBooks prints the whole catalog.
func (a *App) ListBooks(ctx context.Context) error {
	return a.books.DisplayAll(a.out)
}

// FindBook prompts for a title and prints the matching books.
func (a *App) FindBook(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	_, err = a.books.Search(a.out, title)
	return err
}
