package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

const contractFields = `id, created_at, updated_at, client_id, contractor_id, terms, status, paid`

type ContractRepository struct {
	conn uow.DBTX
}

func NewContractRepository(conn uow.DBTX) *ContractRepository {
	return &ContractRepository{conn: conn}
}

// Find ищет контракт по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (r *ContractRepository) Find(ctx context.Context, id int64) (*domain.Contract, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+contractFields+` FROM contracts WHERE id = $1`, id)

	contract, err := scanContract(row)
	if err != nil {
		return nil, convertErr(err, "finding contract by id %d", id)
	}
	return contract, nil
}

// GetByParty возвращает контракты, в которых профиль выступает клиентом или исполнителем,
// без контрактов со статусами из args.ExcludeStatuses. Порядок стабильный - по id.
func (r *ContractRepository) GetByParty(
	ctx context.Context,
	args repoargs.ContractsByParty,
) ([]domain.Contract, error) {
	excluded := statusesToStrings(args.ExcludeStatuses)

	rows, err := r.conn.Query(ctx,
		`SELECT `+contractFields+`
		FROM contracts
		WHERE (client_id = $1 OR contractor_id = $1) AND status::text <> ALL($2)
		ORDER BY id`, args.ProfileID, excluded)
	if err != nil {
		return nil, convertErr(err, "getting contracts by party %d", args.ProfileID)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		contract, scanErr := scanContract(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning contract of party %d", args.ProfileID)
		}
		contracts = append(contracts, *contract)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting contracts by party %d", args.ProfileID)
	}
	return contracts, nil
}

// MarkPaid помечает контракт полностью рассчитанным. Вызывается внутри платежной транзакции,
// когда оплачена последняя работа контракта.
func (r *ContractRepository) MarkPaid(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE contracts SET paid = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "marking contract %d as paid", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/marking contract %d as paid] %w", id, domain.ErrRecordNotFound)
	}
	return nil
}

func statusesToStrings(statuses []domain.ContractStatusType) []string {
	res := make([]string, len(statuses))
	for i, status := range statuses {
		res[i] = string(status)
	}
	return res
}

func scanContract(row rowScanner) (*domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(
		&c.ID,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.ClientID,
		&c.ContractorID,
		&c.Terms,
		&c.Status,
		&c.Paid,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
