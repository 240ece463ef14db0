package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calebws/biztime/internal/domain"
	"github.com/calebws/biztime/internal/platform/logger"
	"github.com/calebws/biztime/internal/store"
)

// PostgresIndustryStore implements the store.IndustryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresIndustryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresIndustryStore creates a new PostgreSQL implementation of the
// IndustryStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresIndustryStore(db store.DBTX, logger *slog.Logger) *PostgresIndustryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresIndustryStore{
		db:     db,
		logger: logger.With(slog.String("component", "industry_store")),
	}
}

// Ensure PostgresIndustryStore implements store.IndustryStore interface
var _ store.IndustryStore = (*PostgresIndustryStore)(nil)

// ListWithCompanies implements store.IndustryStore.ListWithCompanies
func (s *PostgresIndustryStore) ListWithCompanies(
	ctx context.Context,
) ([]*domain.IndustryCompany, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT i.code, i.industry, c.code AS company_code
		FROM industries AS i
		LEFT JOIN companies_industries AS ci ON ci.industry_code = i.code
		LEFT JOIN companies AS c ON ci.company_code = c.code
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query industries", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var industries []*domain.IndustryCompany
	for rows.Next() {
		var row domain.IndustryCompany
		if err := rows.Scan(&row.Code, &row.Industry, &row.CompanyCode); err != nil {
			log.Error("failed to scan industry row", slog.String("error", err.Error()))
			return nil, err
		}
		industries = append(industries, &row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if industries == nil {
		industries = []*domain.IndustryCompany{}
	}

	log.Debug("listed industries", slog.Int("count", len(industries)))
	return industries, nil
}

// Create implements store.IndustryStore.Create
// Returns store.ErrDuplicate if the industry code already exists.
func (s *PostgresIndustryStore) Create(ctx context.Context, industry *domain.Industry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := industry.Validate(); err != nil {
		log.Warn("industry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("code", industry.Code))
		return err
	}

	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
	`

	_, err := s.db.ExecContext(ctx, query, industry.Code, industry.Industry)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate industry code during create",
				slog.String("code", industry.Code))
			return fmt.Errorf("%w: industry code %s already exists",
				store.ErrDuplicate, industry.Code)
		}

		log.Error("failed to create industry",
			slog.String("error", err.Error()),
			slog.String("code", industry.Code))
		return MapError(err)
	}

	log.Info("industry created successfully", slog.String("code", industry.Code))
	return nil
}

// Associate implements store.IndustryStore.Associate
// Referential integrity is enforced by the association table's foreign
// keys; a bad code surfaces as store.ErrInvalidEntity.
func (s *PostgresIndustryStore) Associate(
	ctx context.Context,
	companyCode, industryCode string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO companies_industries (company_code, industry_code)
		VALUES ($1, $2)
	`

	_, err := s.db.ExecContext(ctx, query, companyCode, industryCode)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during association",
				slog.String("company_code", companyCode),
				slog.String("industry_code", industryCode))
			return fmt.Errorf("%w: company %s or industry %s not found",
				store.ErrInvalidEntity, companyCode, industryCode)
		}

		log.Error("failed to associate company with industry",
			slog.String("error", err.Error()),
			slog.String("company_code", companyCode),
			slog.String("industry_code", industryCode))
		return MapError(err)
	}

	log.Info("company associated with industry",
		slog.String("company_code", companyCode),
		slog.String("industry_code", industryCode))
	return nil
}
