package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const msgAddBookDBError = "Database error occurred while adding the book."

func (s *Service) AddBookToCatalog(ctx context.Context, req model.AddBookRequest) (msg string, err error) {
	defer func() { metrics.Operation("add_book", err) }()

	title := strings.TrimSpace(req.Title)
	author := strings.TrimSpace(req.Author)
	switch {
	case title == "":
		return "", errs.Validation("Title is required.")
	case utf8.RuneCountInString(title) > model.MaxTitleLength:
		return "", errs.Validation("Title must be less than 200 characters.")
	case author == "":
		return "", errs.Validation("Author is required.")
	case utf8.RuneCountInString(author) > model.MaxAuthorLen:
		return "", errs.Validation("Author must be less than 100 characters.")
	case !model.ValidISBN(req.ISBN):
		return "", errs.Validation("ISBN must be exactly 13 digits.")
	case req.TotalCopies <= 0:
		return "", errs.Validation("Total copies must be a positive integer.")
	}

	errDuplicate := errs.New(errs.ErrConflict, "A book with this ISBN already exists.")
	if _, err := s.repo.GetBookByISBN(ctx, req.ISBN); err == nil {
		return "", errDuplicate
	} else if !errors.Is(err, errs.ErrNotFound) {
		return "", s.internalErr("GetBookByISBN", err, msgAddBookDBError)
	}

	book, err := s.repo.InsertBook(ctx, model.Book{
		Title:           title,
		Author:          author,
		ISBN:            req.ISBN,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return "", errDuplicate
		}
		return "", s.internalErr("InsertBook", err, msgAddBookDBError)
	}

	s.log.Info("book added", zap.Int("id", book.ID), zap.String("isbn", book.ISBN))
	return fmt.Sprintf(`Book "%s" has been successfully added to the catalog.`, title), nil
}

// SearchBooksInCatalog matches title and author partially, ignoring case,
// and isbn exactly. A blank term yields no results.
func (s *Service) SearchBooksInCatalog(ctx context.Context, term string, searchType model.SearchType) ([]model.Book, error) {
	if !searchType.Valid() {
		return nil, errs.Validation("Invalid search type.")
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.Book{}, nil
	}
	books, err := s.repo.SearchBooks(ctx, searchType, term)
	if err != nil {
		return nil, s.internalErr("SearchBooks", err, "Database error occurred while searching the catalog.")
	}
	return books, nil
}

func (s *Service) ListCatalog(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, s.internalErr("ListBooks", err, "Database error occurred while loading the catalog.")
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, bookID int) (model.Book, error) {
	return s.getBook(ctx, bookID)
}

func (s *Service) getBook(ctx context.Context, bookID int) (model.Book, error) {
	book, err := s.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errs.NotFound(msgBookNotFound)
		}
		return model.Book{}, s.internalErr("GetBookByID", err, "Database error occurred while loading the book.")
	}
	return book, nil
}
