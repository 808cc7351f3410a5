package model

import (
	"regexp"
	"time"
)

const (
	MaxBorrowLimit = 5
	LoanPeriod     = 14 * 24 * time.Hour
	LateFeePerDay  = 0.50
	MaxLateFee     = 15.00
	MaxTitleLength = 200
	MaxAuthorLen   = 100
	ISBNLength     = 13
)

var (
	patronIDRe = regexp.MustCompile(`^[0-9]{6}$`)
	isbnRe     = regexp.MustCompile(`^[0-9]{13}$`)
)

// ValidPatronID reports whether id is exactly six digits.
func ValidPatronID(id string) bool {
	return patronIDRe.MatchString(id)
}

func ValidISBN(isbn string) bool {
	return isbnRe.MatchString(isbn)
}

type Book struct {
	ID              int    `json:"id" db:"id"`
	Title           string `json:"title" db:"title"`
	Author          string `json:"author" db:"author"`
	ISBN            string `json:"isbn" db:"isbn"`
	TotalCopies     int    `json:"totalCopies" db:"total_copies"`
	AvailableCopies int    `json:"availableCopies" db:"available_copies"`
}

type BorrowRecord struct {
	ID         int        `json:"id" db:"id"`
	PatronID   string     `json:"patronId" db:"patron_id"`
	BookID     int        `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate,omitempty" db:"return_date"`
}

func (r BorrowRecord) Returned() bool {
	return r.ReturnDate != nil
}

type SearchType string

const (
	SearchByTitle  SearchType = "title"
	SearchByAuthor SearchType = "author"
	SearchByISBN   SearchType = "isbn"
)

func (t SearchType) Valid() bool {
	switch t {
	case SearchByTitle, SearchByAuthor, SearchByISBN:
		return true
	}
	return false
}

type FeeStatus string

const (
	FeeStatusOnTime  FeeStatus = "on_time"
	FeeStatusOverdue FeeStatus = "overdue"
)

type FeeCalculation struct {
	FeeAmount   float64   `json:"feeAmount"`
	DaysOverdue int       `json:"daysOverdue"`
	Status      FeeStatus `json:"status"`
}

type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	Message       string `json:"message"`
}

type RefundResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionNotFound  TransactionStatus = "not_found"
)

type PaymentStatus struct {
	Status        TransactionStatus `json:"status"`
	Message       string            `json:"message"`
	TransactionID string            `json:"transactionId,omitempty"`
	Amount        float64           `json:"amount"`
	Timestamp     *time.Time        `json:"timestamp,omitempty"`
}

type PaymentReceipt struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message"`
}

type BorrowedBook struct {
	BookID     int       `json:"bookId"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	BorrowDate time.Time `json:"borrowDate"`
	DueDate    time.Time `json:"dueDate"`
	IsOverdue  bool      `json:"isOverdue"`
	LateFee    float64   `json:"lateFee"`
}

type PatronStatusReport struct {
	PatronID          string         `json:"patronId"`
	CurrentlyBorrowed []BorrowedBook `json:"currentlyBorrowed"`
	BorrowCount       int            `json:"borrowCount"`
	TotalLateFees     float64        `json:"totalLateFees"`
	History           []BorrowRecord `json:"history"`
}

// PatronActivity aggregates the library events recorded for one patron.
type PatronActivity struct {
	PatronID       string    `json:"patronId" db:"patron_id"`
	LastActivity   time.Time `json:"lastActivity" db:"last_activity"`
	Borrowed       int       `json:"borrowed" db:"borrowed"`
	Returned       int       `json:"returned" db:"returned"`
	OverdueNotices int       `json:"overdueNotices" db:"overdue_notices"`
	FeesPaid       float64   `json:"feesPaid" db:"fees_paid"`
	FeesRefunded   float64   `json:"feesRefunded" db:"fees_refunded"`
}

type ActivityStats struct {
	Data []PatronActivity `json:"data"`
}

type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int    `json:"totalCopies"`
}

type PatronRequest struct {
	PatronID string `json:"patronId" validate:"required"`
}

type RefundRequest struct {
	Amount float64 `json:"amount"`
}

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
