package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

// ReportRepository только читает. Каждый отчет - один SQL запрос, поэтому отчет видит
// согласованный снимок данных и не может наблюдать половину перевода.
type ReportRepository struct {
	conn uow.DBTX
}

func NewReportRepository(conn uow.DBTX) *ReportRepository {
	return &ReportRepository{conn: conn}
}

// BestProfession возвращает профессию исполнителей, заработавшую больше всех за период
// [rng.From, rng.To] (обе границы включительно). При равных суммах выигрывает профессия,
// меньшая лексикографически - порядок детерминирован. Если оплаченных работ за период нет,
// возвращает domain.ErrRecordNotFound.
func (r *ReportRepository) BestProfession(
	ctx context.Context,
	rng repoargs.PaidJobsRange,
) (*repoargs.ProfessionTotal, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT p.profession, SUM(j.price) AS total
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid AND j.payment_date >= $1 AND j.payment_date <= $2
		GROUP BY p.profession
		ORDER BY total DESC, p.profession
		LIMIT 1`, rng.From, rng.To)

	var total repoargs.ProfessionTotal
	if err := row.Scan(&total.Profession, &total.TotalPaid); err != nil {
		return nil, convertErr(err, "getting best profession for %s - %s", rng.From, rng.To)
	}
	return &total, nil
}

// BestClients возвращает не более limit клиентов, заплативших больше всех за период
// [rng.From, rng.To], по убыванию суммы. При равных суммах выигрывает меньший id клиента.
func (r *ReportRepository) BestClients(
	ctx context.Context,
	rng repoargs.PaidJobsRange,
	limit uint,
) ([]repoargs.ClientTotal, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT p.id, p.first_name || ' ' || p.last_name AS full_name, COALESCE(SUM(j.price), 0) AS total
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid AND j.payment_date >= $1 AND j.payment_date <= $2
		GROUP BY p.id, full_name
		ORDER BY total DESC, p.id
		LIMIT $3`, rng.From, rng.To, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting best clients for %s - %s", rng.From, rng.To)
	}
	defer rows.Close()

	var totals []repoargs.ClientTotal
	for rows.Next() {
		var total repoargs.ClientTotal
		if scanErr := rows.Scan(&total.ClientID, &total.FullName, &total.TotalPaid); scanErr != nil {
			return nil, convertErr(scanErr, "scanning best client row")
		}
		totals = append(totals, total)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting best clients for %s - %s", rng.From, rng.To)
	}
	return totals, nil
}
