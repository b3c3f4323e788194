package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

const jobFields = `id, created_at, updated_at, contract_id, description, price, paid, payment_date`

type JobRepository struct {
	conn uow.DBTX
}

func NewJobRepository(conn uow.DBTX) *JobRepository {
	return &JobRepository{conn: conn}
}

// Find ищет работу по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (r *JobRepository) Find(ctx context.Context, id int64) (*domain.Job, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+jobFields+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		return nil, convertErr(err, "finding job by id %d", id)
	}
	return job, nil
}

// FindWithContractForUpdate возвращает работу вместе с данными её контракта, блокируя обе
// строки до конца текущей транзакции. На этой выборке принимается решение о платеже.
func (r *JobRepository) FindWithContractForUpdate(
	ctx context.Context,
	id int64,
) (*repoargs.JobWithContract, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT j.id, j.created_at, j.updated_at, j.contract_id, j.description, j.price, j.paid,
			j.payment_date, c.client_id, c.contractor_id, c.status
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = $1
		FOR UPDATE`, id)

	var jwc repoargs.JobWithContract
	err := row.Scan(
		&jwc.Job.ID,
		&jwc.Job.CreatedAt,
		&jwc.Job.UpdatedAt,
		&jwc.Job.ContractID,
		&jwc.Job.Description,
		&jwc.Job.Price,
		&jwc.Job.Paid,
		&jwc.Job.PaymentDate,
		&jwc.ClientID,
		&jwc.ContractorID,
		&jwc.ContractStatus,
	)
	if err != nil {
		return nil, convertErr(err, "locking job %d with contract", id)
	}
	return &jwc, nil
}

// GetUnpaidByParty возвращает неоплаченные работы стороны сделки без работ по контрактам
// со статусами из args.ExcludeStatuses. Порядок стабильный - по id работы.
func (r *JobRepository) GetUnpaidByParty(
	ctx context.Context,
	args repoargs.UnpaidJobsByParty,
) ([]domain.Job, error) {
	excluded := statusesToStrings(args.ExcludeStatuses)

	rows, err := r.conn.Query(ctx,
		`SELECT j.id, j.created_at, j.updated_at, j.contract_id, j.description, j.price, j.paid,
			j.payment_date
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE NOT j.paid
			AND (c.client_id = $1 OR c.contractor_id = $1)
			AND c.status::text <> ALL($2)
		ORDER BY j.id`, args.ProfileID, excluded)
	if err != nil {
		return nil, convertErr(err, "getting unpaid jobs of party %d", args.ProfileID)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning unpaid job of party %d", args.ProfileID)
		}
		jobs = append(jobs, *job)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting unpaid jobs of party %d", args.ProfileID)
	}
	return jobs, nil
}

// SumUnpaidPrice возвращает сумму цен неоплаченных работ клиента по контрактам, статус
// которых не равен args.ExcludeStatus. При отсутствии работ возвращает ноль.
func (r *JobRepository) SumUnpaidPrice(
	ctx context.Context,
	args repoargs.UnpaidPriceSum,
) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE NOT j.paid AND c.client_id = $1 AND c.status <> $2`,
		args.ClientID, args.ExcludeStatus).Scan(&sum)
	if err != nil {
		return decimal.Zero, convertErr(err, "summing unpaid price of client %d", args.ClientID)
	}
	return sum, nil
}

// MarkPaid одноразовый переход unpaid -> paid: условие NOT paid играет роль compare-and-set,
// из двух конкурентных платежей по одной работе пройдет только первый. Возвращает
// domain.ErrAlreadyPaid если работа уже оплачена и domain.ErrRecordNotFound для неизвестного id.
func (r *JobRepository) MarkPaid(ctx context.Context, id int64, at time.Time) (*domain.Job, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE jobs
		SET paid = TRUE, payment_date = $2, updated_at = now()
		WHERE id = $1 AND NOT paid
		RETURNING `+jobFields, id, at)

	job, err := scanJob(row)
	if err == nil {
		return job, nil
	}

	if _, findErr := r.Find(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("[repository/marking job %d as paid] %w", id, domain.ErrAlreadyPaid)
}

// CountUnpaidByContract возвращает количество неоплаченных работ контракта.
func (r *JobRepository) CountUnpaidByContract(ctx context.Context, contractID int64) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE contract_id = $1 AND NOT paid`, contractID).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting unpaid jobs of contract %d", contractID)
	}
	return count, nil
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(
		&j.ID,
		&j.CreatedAt,
		&j.UpdatedAt,
		&j.ContractID,
		&j.Description,
		&j.Price,
		&j.Paid,
		&j.PaymentDate,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
