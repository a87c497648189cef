package repository

import (
	"context"
	"time"

	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/flannelman48/whirly-rentals-website/internal/common/db"
	commonerrors "github.com/flannelman48/whirly-rentals-website/internal/common/errors"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

const selectInquiryColumns = `SELECT id, first_name, last_name, email, phone, service_address,
	package_interest, preferred_install_date, dryer_hookup_type,
	six_month_agreement, autopay_agreement, message, created_at
	FROM rental_inquiries`

type PgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewPgRepository(pool *pgxpool.Pool, log *logger.Logger) *PgRepository {
	return &PgRepository{pool: pool, log: log}
}

func (r *PgRepository) Create(ctx context.Context, inquiry domain.RentalInquiry) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO rental_inquiries (
			id, first_name, last_name, email, phone, service_address,
			package_interest, preferred_install_date, dryer_hookup_type,
			six_month_agreement, autopay_agreement, message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
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
		inquiry.Message,
		inquiry.CreatedAt,
	)
	return db.HandleExecError(db.BackendPostgres, err, "create inquiry", start)
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.RentalInquiry, error) {
	var inquiry domain.RentalInquiry
	err := db.RetryWithBackoff(ctx, r.log, db.DefaultRetryConfig, func() error {
		start := time.Now()
		row := r.pool.QueryRow(ctx, selectInquiryColumns+` WHERE id = $1`, string(id))
		var err error
		inquiry, err = scanInquiry(row)
		return db.HandleQueryError(db.BackendPostgres, err, commonerrors.ErrInquiryNotFound, "find inquiry by id", start)
	})
	if err != nil {
		return domain.RentalInquiry{}, err
	}
	return inquiry, nil
}

func (r *PgRepository) List(ctx context.Context) ([]domain.RentalInquiry, error) {
	var inquiries []domain.RentalInquiry
	err := db.RetryWithBackoff(ctx, r.log, db.DefaultRetryConfig, func() error {
		start := time.Now()
		rows, err := r.pool.Query(ctx, selectInquiryColumns+` ORDER BY created_at DESC, id DESC`)
		if err != nil {
			return db.HandleQueryError(db.BackendPostgres, err, nil, "list inquiries", start)
		}
		defer rows.Close()

		inquiries = inquiries[:0]
		for rows.Next() {
			inquiry, err := scanInquiry(rows)
			if err != nil {
				return db.HandleQueryError(db.BackendPostgres, err, nil, "scan inquiry", start)
			}
			inquiries = append(inquiries, inquiry)
		}
		return db.HandleQueryError(db.BackendPostgres, rows.Err(), nil, "list inquiries", start)
	})
	if err != nil {
		return nil, err
	}
	if inquiries == nil {
		inquiries = []domain.RentalInquiry{}
	}
	return inquiries, nil
}

func scanInquiry(row pgx.Row) (domain.RentalInquiry, error) {
	var (
		inquiry           domain.RentalInquiry
		sixMonth, autopay string
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
		&inquiry.Message,
		&inquiry.CreatedAt,
	)
	if err != nil {
		return domain.RentalInquiry{}, err
	}
	inquiry.SixMonthAgreement = domain.ParseAgreement(sixMonth)
	inquiry.AutopayAgreement = domain.ParseAgreement(autopay)
	return inquiry, nil
}
