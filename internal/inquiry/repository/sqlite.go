package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/common/db"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

type SQLiteRepository struct {
	db  *sql.DB
	log *logger.Logger
}

func NewSQLiteRepository(conn *sql.DB, log *logger.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: conn, log: log}
}

func (r *SQLiteRepository) Create(ctx context.Context, inquiry domain.RentalInquiry) error {
	start := time.Now()
	var message sql.NullString
	if inquiry.Message != nil {
		message = sql.NullString{String: *inquiry.Message, Valid: true}
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO rental_inquiries (
			id, first_name, last_name, email, phone, service_address,
			package_interest, preferred_install_date, dryer_hookup_type,
			six_month_agreement, autopay_agreement, message, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(inquiry.ID),
		inquiry.FirstName,
		inquiry.LastName,
		inquiry.Email,
		inquiry.Phone,
		inquiry.ServiceAddress,
		string(inquiry.PackageInterest),
		inquiry.PreferredInstallDate,
		string(inquiry.DryerHookupType),
		domain.FormatAgreement(inquiry.SixMonthAgreement),
		domain.FormatAgreement(inquiry.AutopayAgreement),
		message,
		inquiry.CreatedAt.UnixNano(),
	)
	return db.HandleExecError(db.BackendSQLite, err, "create inquiry", start)
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id domain.ID) (domain.RentalInquiry, error) {
	var inquiry domain.RentalInquiry
	err := db.RetryWithBackoff(ctx, r.log, db.DefaultRetryConfig, func() error {
		start := time.Now()
		row := r.db.QueryRowContext(ctx, selectInquiryColumns+` WHERE id = ?`, string(id))
		var err error
		inquiry, err = scanSQLiteInquiry(row)
		return db.HandleQueryError(db.BackendSQLite, err, commonerrors.ErrInquiryNotFound, "find inquiry by id", start)
	})
	if err != nil {
		return domain.RentalInquiry{}, err
	}
	return inquiry, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.RentalInquiry, error) {
	var inquiries []domain.RentalInquiry
	err := db.RetryWithBackoff(ctx, r.log, db.DefaultRetryConfig, func() error {
		start := time.Now()
		rows, err := r.db.QueryContext(ctx, selectInquiryColumns+` ORDER BY created_at DESC, rowid DESC`)
		if err != nil {
			return db.HandleQueryError(db.BackendSQLite, err, nil, "list inquiries", start)
		}
		defer rows.Close()

		inquiries = inquiries[:0]
		for rows.Next() {
			inquiry, err := scanSQLiteInquiry(rows)
			if err != nil {
				return db.HandleQueryError(db.BackendSQLite, err, nil, "scan inquiry", start)
			}
			inquiries = append(inquiries, inquiry)
		}
		return db.HandleQueryError(db.BackendSQLite, rows.Err(), nil, "list inquiries", start)
	})
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []domain.RentalInquiry{}
	}
	return inquiries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteInquiry(row rowScanner) (domain.RentalInquiry, error) {
	var (
		inquiry           domain.RentalInquiry
		sixMonth, autopay string
		message           sql.NullString
		createdAt         int64
	)
	err := row.Scan(
		&inquiry.ID,
		&inquiry.FirstName,
		&inquiry.LastName,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.ServiceAddress,
		&inquiry.PackageInterest,
		&inquiry.PreferredInstallDate,
		&inquiry.DryerHookupType,
		&sixMonth,
		&autopay,
		&message,
		&createdAt,
	)
	if err != nil {
		return domain.RentalInquiry{}, err
	}
	inquiry.SixMonthAgreement = domain.ParseAgreement(sixMonth)
	inquiry.AutopayAgreement = domain.ParseAgreement(autopay)
	if message.Valid {
		msg := message.String
		inquiry.Message = &msg
	}
	inquiry.CreatedAt = time.Unix(0, createdAt).UTC()
	return inquiry, nil
}
