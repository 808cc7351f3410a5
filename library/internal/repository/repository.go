package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetBookByID(ctx context.Context, id int) (model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	InsertBook(ctx context.Context, book model.Book) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, searchType model.SearchType, term string) ([]model.Book, error)
	UpdateBookAvailability(ctx context.Context, bookID, delta int) error

	InsertBorrowRecord(ctx context.Context, rec model.BorrowRecord) (model.BorrowRecord, error)
	GetPatronBorrowCount(ctx context.Context, patronID string) (int, error)
	GetActiveBorrowRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error)
	MarkBorrowReturned(ctx context.Context, recordID int, returnedAt time.Time) error
	ListPatronBorrowRecords(ctx context.Context, patronID string) ([]model.BorrowRecord, error)
	ListOverdueBorrowRecords(ctx context.Context, now time.Time) ([]model.BorrowRecord, error)

	// WithTx runs fn against a repository bound to one transaction.
	// The transaction is rolled back when fn returns an error.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
}

type repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		ext: db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName         = `books`
	borrowRecordsTableName = `borrow_records`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bookColumns   = []string{"id", "title", "author", "isbn", "total_copies", "available_copies"}
	recordColumns = []string{"id", "patron_id", "book_id", "borrow_date", "due_date", "return_date"}
)

func (r *repository) WithTx(ctx context.Context, fn func(repo Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "BeginTxx")
	}
	if err := fn(&repository{ext: tx, log: r.log}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx.Rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "tx.Commit")
}

func (r *repository) GetBookByID(ctx context.Context, id int) (model.Book, error) {
	return r.getBook(ctx, sq.Eq{"id": id})
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	return r.getBook(ctx, sq.Eq{"isbn": isbn})
}

func (r *repository) getBook(ctx context.Context, where sq.Eq) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := sqlx.GetContext(ctx, r.ext, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		r.log.Error("getBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Book{}, errors.Wrap(err, "getBook")
	}
	return book, nil
}

func (r *repository) InsertBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_copies", "available_copies").
		Values(book.Title, book.Author, book.ISBN, book.TotalCopies, book.AvailableCopies).
		Suffix("RETURNING id, title, author, isbn, total_copies, available_copies").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var created model.Book
	if err := sqlx.GetContext(ctx, r.ext, &created, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Book{}, errs.ErrConflict
		}
		r.log.Error("InsertBook", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Book{}, errors.Wrap(err, "InsertBook")
	}
	return created, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	return books, nil
}

func (r *repository) SearchBooks(ctx context.Context, searchType model.SearchType, term string) ([]model.Book, error) {
	q := qb.Select(bookColumns...).From(booksTableName)
	switch searchType {
	case model.SearchByTitle:
		q = q.Where(sq.ILike{"title": containsPattern(term)})
	case model.SearchByAuthor:
		q = q.Where(sq.ILike{"author": containsPattern(term)})
	case model.SearchByISBN:
		q = q.Where(sq.Eq{"isbn": term})
	default:
		return nil, errors.Errorf("unknown search type %q", searchType)
	}

	query, args, err := q.OrderBy("title").ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "SearchBooks")
	}
	return books, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches term literally anywhere in the column. Backslash is
// the default LIKE escape character in postgres.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// UpdateBookAvailability adds delta to available_copies. The update only
// applies while 0 <= available_copies <= total_copies stays true, otherwise
// errs.ErrConflict is returned.
func (r *repository) UpdateBookAvailability(ctx context.Context, bookID, delta int) error {
	query, args, err := qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies + ?", delta)).
		Where(sq.Eq{"id": bookID}).
		Where(sq.Expr("available_copies + ? BETWEEN 0 AND total_copies", delta)).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "UpdateBookAvailability")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "RowsAffected")
	}
	if n == 0 {
		return errs.ErrConflict
	}
	return nil
}

func (r *repository) InsertBorrowRecord(ctx context.Context, rec model.BorrowRecord) (model.BorrowRecord, error) {
	query, args, err := qb.Insert(borrowRecordsTableName).
		Columns("patron_id", "book_id", "borrow_date", "due_date").
		Values(rec.PatronID, rec.BookID, rec.BorrowDate, rec.DueDate).
		Suffix("RETURNING id, patron_id, book_id, borrow_date, due_date, return_date").
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var created model.BorrowRecord
	if err := sqlx.GetContext(ctx, r.ext, &created, query, args...); err != nil {
		r.log.Error("InsertBorrowRecord", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.BorrowRecord{}, errors.Wrap(err, "InsertBorrowRecord")
	}
	return created, nil
}

func (r *repository) GetPatronBorrowCount(ctx context.Context, patronID string) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID, "return_date": nil}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, r.ext, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "GetPatronBorrowCount")
	}
	return count, nil
}

func (r *repository) GetActiveBorrowRecord(ctx context.Context, patronID string, bookID int) (model.BorrowRecord, error) {
	query, args, err := qb.Select(recordColumns...).
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID, "book_id": bookID, "return_date": nil}).
		OrderBy("borrow_date").
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var rec model.BorrowRecord
	if err := sqlx.GetContext(ctx, r.ext, &rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, errors.Wrap(err, "GetActiveBorrowRecord")
	}
	return rec, nil
}

func (r *repository) MarkBorrowReturned(ctx context.Context, recordID int, returnedAt time.Time) error {
	query, args, err := qb.Update(borrowRecordsTableName).
		Set("return_date", returnedAt).
		Where(sq.Eq{"id": recordID, "return_date": nil}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "MarkBorrowReturned")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "RowsAffected")
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListPatronBorrowRecords(ctx context.Context, patronID string) ([]model.BorrowRecord, error) {
	query, args, err := qb.Select(recordColumns...).
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID}).
		OrderBy("borrow_date DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.BorrowRecord, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &items, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListPatronBorrowRecords")
	}
	return items, nil
}

func (r *repository) ListOverdueBorrowRecords(ctx context.Context, now time.Time) ([]model.BorrowRecord, error) {
	query, args, err := qb.Select(recordColumns...).
		From(borrowRecordsTableName).
		Where(sq.Eq{"return_date": nil}).
		Where(sq.Lt{"due_date": now}).
		OrderBy("due_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.BorrowRecord, 0)
	if err := sqlx.SelectContext(ctx, r.ext, &items, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListOverdueBorrowRecords")
	}
	return items, nil
}
