package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"murima/internal/registry/models"
	"murima/pkg/platform/sentinel"
	"murima/pkg/requestcontext"
)

// Postgres persists business records in PostgreSQL. Production items live in
// a child table and are rewritten as a unit on every update.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed registry store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema creates the registry tables if they do not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS businesses (
			id                   BIGSERIAL PRIMARY KEY,
			name                 TEXT NOT NULL,
			tin                  TEXT NOT NULL DEFAULT '',
			status               TEXT NOT NULL,
			phone                TEXT NOT NULL DEFAULT '',
			owner_name           TEXT NOT NULL,
			national_id          TEXT NOT NULL DEFAULT '',
			ownership            TEXT NOT NULL,
			gender               TEXT NOT NULL DEFAULT '',
			age                  INT NOT NULL DEFAULT 0,
			education_level      TEXT NOT NULL DEFAULT '',
			disability_status    TEXT NOT NULL DEFAULT '',
			nationality          TEXT NOT NULL DEFAULT '',
			province             TEXT NOT NULL DEFAULT '',
			district             TEXT NOT NULL DEFAULT '',
			sector               TEXT NOT NULL DEFAULT '',
			cell                 TEXT NOT NULL DEFAULT '',
			village              TEXT NOT NULL DEFAULT '',
			business_type        TEXT NOT NULL DEFAULT '',
			business_size        TEXT NOT NULL DEFAULT '',
			revenue_bracket      TEXT NOT NULL DEFAULT '',
			annual_income        TEXT NOT NULL DEFAULT '',
			employee_count       INT NOT NULL DEFAULT 0,
			female_employees     INT NOT NULL DEFAULT 0,
			youth_employees      INT NOT NULL DEFAULT 0,
			permanent_employment BOOLEAN NOT NULL DEFAULT FALSE,
			support_received     TEXT NOT NULL DEFAULT '',
			commencement         TEXT NOT NULL DEFAULT '',
			created_at           TIMESTAMPTZ NOT NULL,
			updated_at           TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS production_items (
			business_id BIGINT NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
			item_id     BIGINT NOT NULL,
			name        TEXT NOT NULL,
			quantity    DOUBLE PRECISION NOT NULL,
			unit        TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (business_id, item_id)
		);

		CREATE INDEX IF NOT EXISTS idx_businesses_province ON businesses(province);
		CREATE INDEX IF NOT EXISTS idx_businesses_district ON businesses(district);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure registry schema: %w", err)
	}
	return nil
}

func (s *Postgres) Create(ctx context.Context, b *models.Business) error {
	if err := b.Validate(); err != nil {
		return err
	}

	now := requestcontext.Now(ctx)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO businesses (
			name, tin, status, phone, owner_name, national_id, ownership,
			gender, age, education_level, disability_status, nationality,
			province, district, sector, cell, village,
			business_type, business_size, revenue_bracket, annual_income,
			employee_count, female_employees, youth_employees, permanent_employment,
			support_received, commencement, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21,
			$22, $23, $24, $25,
			$26, $27, $28, $29
		) RETURNING id
	`,
		b.Name, b.TIN, string(b.Status), b.Phone, b.OwnerName, b.NationalID, string(b.Ownership),
		b.Gender, b.Age, b.EducationLevel, b.DisabilityStatus, b.Nationality,
		b.Province, b.District, b.Sector, b.Cell, b.Village,
		b.BusinessType, b.BusinessSize, b.RevenueBracket, b.AnnualIncome,
		b.EmployeeCount, b.FemaleEmployees, b.YouthEmployees, b.PermanentEmployment,
		b.SupportReceived, b.Commencement, now, now,
	)
	if err := row.Scan(&b.ID); err != nil {
		return fmt.Errorf("insert business: %w", err)
	}

	if err := insertProductionItems(ctx, tx, b.ID, b.Production); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create: %w", err)
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (s *Postgres) Update(ctx context.Context, b *models.Business) error {
	if err := b.Validate(); err != nil {
		return err
	}

	now := requestcontext.Now(ctx)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// created_at is intentionally not in the SET list
	res, err := tx.ExecContext(ctx, `
		UPDATE businesses SET
			name = $1, tin = $2, status = $3, phone = $4, owner_name = $5,
			national_id = $6, ownership = $7, gender = $8, age = $9,
			education_level = $10, disability_status = $11, nationality = $12,
			province = $13, district = $14, sector = $15, cell = $16, village = $17,
			business_type = $18, business_size = $19, revenue_bracket = $20,
			annual_income = $21, employee_count = $22, female_employees = $23,
			youth_employees = $24, permanent_employment = $25,
			support_received = $26, commencement = $27, updated_at = $28
		WHERE id = $29
	`,
		b.Name, b.TIN, string(b.Status), b.Phone, b.OwnerName,
		b.NationalID, string(b.Ownership), b.Gender, b.Age,
		b.EducationLevel, b.DisabilityStatus, b.Nationality,
		b.Province, b.District, b.Sector, b.Cell, b.Village,
		b.BusinessType, b.BusinessSize, b.RevenueBracket,
		b.AnnualIncome, b.EmployeeCount, b.FemaleEmployees,
		b.YouthEmployees, b.PermanentEmployment,
		b.SupportReceived, b.Commencement, now,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update business rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM production_items WHERE business_id = $1`, b.ID); err != nil {
		return fmt.Errorf("clear production items: %w", err)
	}
	if err := insertProductionItems(ctx, tx, b.ID, b.Production); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	b.UpdatedAt = now
	return nil
}

func (s *Postgres) GetByID(ctx context.Context, id int64) (*models.Business, error) {
	row := s.db.QueryRowContext(ctx, selectBusinesses+` WHERE id = $1`, id)
	b, err := scanBusiness(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get business: %w", err)
	}

	items, err := s.productionFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	b.Production = items[id]
	return b, nil
}

func (s *Postgres) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete business rows affected: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) All(ctx context.Context) ([]models.Business, error) {
	rows, err := s.db.QueryContext(ctx, selectBusinesses+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var out []models.Business
	var ids []int64
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		out = append(out, *b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate businesses: %w", err)
	}

	items, err := s.productionFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Production = items[out[i].ID]
	}
	return out, nil
}

const selectBusinesses = `
	SELECT id, name, tin, status, phone, owner_name, national_id, ownership,
		gender, age, education_level, disability_status, nationality,
		province, district, sector, cell, village,
		business_type, business_size, revenue_bracket, annual_income,
		employee_count, female_employees, youth_employees, permanent_employment,
		support_received, commencement, created_at, updated_at
	FROM businesses`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner) (*models.Business, error) {
	var b models.Business
	var status, ownership string
	err := row.Scan(
		&b.ID, &b.Name, &b.TIN, &status, &b.Phone, &b.OwnerName, &b.NationalID, &ownership,
		&b.Gender, &b.Age, &b.EducationLevel, &b.DisabilityStatus, &b.Nationality,
		&b.Province, &b.District, &b.Sector, &b.Cell, &b.Village,
		&b.BusinessType, &b.BusinessSize, &b.RevenueBracket, &b.AnnualIncome,
		&b.EmployeeCount, &b.FemaleEmployees, &b.YouthEmployees, &b.PermanentEmployment,
		&b.SupportReceived, &b.Commencement, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Status = models.Status(status)
	b.Ownership = models.Ownership(ownership)
	return &b, nil
}

func (s *Postgres) productionFor(ctx context.Context, ids []int64) (map[int64][]models.ProductionItem, error) {
	out := make(map[int64][]models.ProductionItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT business_id, item_id, name, quantity, unit
		FROM production_items
		WHERE business_id = ANY($1)
		ORDER BY business_id, item_id
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list production items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var businessID int64
		var item models.ProductionItem
		if err := rows.Scan(&businessID, &item.ID, &item.Name, &item.Quantity, &item.Unit); err != nil {
			return nil, fmt.Errorf("scan production item: %w", err)
		}
		out[businessID] = append(out[businessID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate production items: %w", err)
	}
	return out, nil
}

func insertProductionItems(ctx context.Context, tx *sql.Tx, businessID int64, items []models.ProductionItem) error {
	for _, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO production_items (business_id, item_id, name, quantity, unit)
			VALUES ($1, $2, $3, $4, $5)
		`, businessID, item.ID, item.Name, item.Quantity, item.Unit)
		if err != nil {
			return fmt.Errorf("insert production item %q: %w", item.Name, err)
		}
	}
	return nil
}
