package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/crypto"
	"github.com/vfg2006/traffic-sync-engine/pkg/utils"
)

const (
	clientAccountsTable = "client_accounts ca"

	// Código de unique_violation do Postgres
	pqUniqueViolation = "23505"
)

// ErrDuplicateAccount indica tentativa de criar conta com external_id já registrado
var ErrDuplicateAccount = errors.New("conta com este external_id já existe")

// ErrAccountNotFound indica que a conta não existe no registro
var ErrAccountNotFound = errors.New("conta não encontrada")

// AccountRepository é o registro de contas de anunciante. Credenciais são
// encriptadas na escrita e decriptadas na leitura via o vault; o plaintext
// nunca toca o banco nem os logs.
// UpdateSyncStatus é o único caminho sancionado para mudar
// sync_status/sync_error/last_sync_at
type AccountRepository interface {
	ListActive() ([]*domain.AccountSummary, error)
	GetByID(accountID string) (*domain.ClientAccount, error)
	Create(req *domain.CreateAccountRequest) (*domain.ClientAccount, error)
	Update(req *domain.UpdateAccountRequest) error
	UpdateUpstreamInfo(accountID, name, currency, timezone string) error
	UpdateSyncStatus(accountID string, status domain.SyncStatus, syncError *string) error
}

type accountRepository struct {
	conn  *postgres.Connection
	vault *crypto.Vault
}

func NewAccountRepository(conn *postgres.Connection, vault *crypto.Vault) AccountRepository {
	return &accountRepository{
		conn:  conn,
		vault: vault,
	}
}

func (r *accountRepository) ListActive() ([]*domain.AccountSummary, error) {
	query, args, err := squirrel.
		Select("ca.id, ca.name, ca.external_id, ca.timezone, ca.currency, ca.sync_status, ca.last_sync_at").
		From(clientAccountsTable).
		Where(squirrel.Eq{"ca.active": true}).
		OrderBy("ca.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AccountSummary, 0)

	for rows.Next() {
		summary := &domain.AccountSummary{}
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.ExternalID,
			&summary.Timezone,
			&summary.Currency,
			&summary.SyncStatus,
			&summary.LastSyncAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}

		accounts = append(accounts, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

// GetByID busca a conta completa e decripta a credencial para uso imediato
// em memória. O retorno nunca deve ser persistido de volta
func (r *accountRepository) GetByID(accountID string) (*domain.ClientAccount, error) {
	query, args, err := squirrel.
		Select(`ca.id, ca.name, ca.external_id, ca.access_token, ca.refresh_token,
			ca.token_expires_at, ca.timezone, ca.currency, ca.active,
			ca.sync_status, ca.sync_error, ca.last_sync_at, ca.created_at, ca.updated_at`).
		From(clientAccountsTable).
		Where(squirrel.Eq{"ca.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account, err := r.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) deserializeAccount(row *sql.Row) (*domain.ClientAccount, error) {
	account := &domain.ClientAccount{}
	var encryptedToken string
	var encryptedRefresh *string

	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.ExternalID,
		&encryptedToken,
		&encryptedRefresh,
		&account.TokenExpiresAt,
		&account.Timezone,
		&account.Currency,
		&account.Active,
		&account.SyncStatus,
		&account.SyncError,
		&account.LastSyncAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	token, err := r.vault.Decrypt(encryptedToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao decriptar credencial da conta %s: %w", account.ID, err)
	}
	account.AccessToken = token

	if encryptedRefresh != nil {
		refresh, err := r.vault.Decrypt(*encryptedRefresh)
		if err != nil {
			return nil, fmt.Errorf("erro ao decriptar refresh token da conta %s: %w", account.ID, err)
		}
		account.RefreshToken = &refresh
	}

	return account, nil
}

func (r *accountRepository) Create(req *domain.CreateAccountRequest) (*domain.ClientAccount, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da conta: %w", err)
	}

	encryptedToken, err := r.vault.Encrypt(req.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao encriptar credencial: %w", err)
	}

	var encryptedRefresh *string
	if req.RefreshToken != nil {
		encrypted, err := r.vault.Encrypt(*req.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("erro ao encriptar refresh token: %w", err)
		}
		encryptedRefresh = &encrypted
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("client_accounts").
		Columns("id", "name", "external_id", "access_token", "refresh_token", "timezone", "currency", "active", "sync_status").
		Values(id, req.Name, req.ExternalID, encryptedToken, encryptedRefresh, req.Timezone, req.Currency, true, domain.SyncStatusPending).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, req.ExternalID)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return &domain.ClientAccount{
		ID:         id,
		Name:       req.Name,
		ExternalID: req.ExternalID,
		Timezone:   req.Timezone,
		Currency:   req.Currency,
		Active:     true,
		SyncStatus: domain.SyncStatusPending,
	}, nil
}

func (r *accountRepository) Update(req *domain.UpdateAccountRequest) error {
	if req.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("client_accounts").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.AccessToken != nil {
		// Rotação de credencial: encriptar antes de persistir
		encrypted, err := r.vault.Encrypt(*req.AccessToken)
		if err != nil {
			return fmt.Errorf("erro ao encriptar credencial: %w", err)
		}
		queryBuilder = queryBuilder.Set("access_token", encrypted)
	}

	if req.Timezone != nil {
		queryBuilder = queryBuilder.Set("timezone", *req.Timezone)
	}

	if req.Currency != nil {
		queryBuilder = queryBuilder.Set("currency", *req.Currency)
	}

	if req.Active != nil {
		queryBuilder = queryBuilder.Set("active", *req.Active)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// UpdateUpstreamInfo espelha os metadados retornados pela API upstream
// (estágio 1 da pipeline) na linha da conta
func (r *accountRepository) UpdateUpstreamInfo(accountID, name, currency, timezone string) error {
	query, args, err := squirrel.
		Update("client_accounts").
		Set("name", name).
		Set("currency", currency).
		Set("timezone", timezone).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateSyncStatus registra a transição de estado de sincronização da conta.
// last_sync_at só avança quando a transição é para success
func (r *accountRepository) UpdateSyncStatus(accountID string, status domain.SyncStatus, syncError *string) error {
	queryBuilder := squirrel.
		Update("client_accounts").
		Set("sync_status", status).
		Set("sync_error", syncError).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	if status == domain.SyncStatusSuccess {
		queryBuilder = queryBuilder.Set("last_sync_at", time.Now())
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
