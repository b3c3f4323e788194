package pgrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

const profileFields = `id, created_at, updated_at, first_name, last_name, profession, type, balance`

type ProfileRepository struct {
	conn uow.DBTX
}

func NewProfileRepository(conn uow.DBTX) *ProfileRepository {
	return &ProfileRepository{conn: conn}
}

// Find ищет профиль по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (r *ProfileRepository) Find(ctx context.Context, id int64) (*domain.Profile, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+profileFields+` FROM profiles WHERE id = $1`, id)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "finding profile by id %d", id)
	}
	return profile, nil
}

// FindForUpdate то же что и Find, но блокирует строку профиля до конца текущей транзакции.
// Используется для сериализации конкурентных операций над одним балансом.
func (r *ProfileRepository) FindForUpdate(ctx context.Context, id int64) (*domain.Profile, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+profileFields+` FROM profiles WHERE id = $1 FOR UPDATE`, id)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "locking profile by id %d", id)
	}
	return profile, nil
}

// AdjustBalance применяет дельту к балансу профиля одним условным UPDATE. Если итоговый
// баланс оказался бы отрицательным, запись не меняется и возвращается
// domain.ErrNotEnoughBalance; для неизвестного id - domain.ErrRecordNotFound.
func (r *ProfileRepository) AdjustBalance(
	ctx context.Context,
	id int64,
	delta decimal.Decimal,
) (*domain.Profile, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE profiles
		SET balance = balance + $2, updated_at = now()
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING `+profileFields, id, delta)

	profile, err := scanProfile(row)
	if err == nil {
		return profile, nil
	}

	// Условный UPDATE не отличает отсутствующую запись от недостатка средств,
	// поэтому уточняем отдельной выборкой.
	if _, findErr := r.Find(ctx, id); findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("[repository/adjusting balance of profile %d by %s] %w", id, delta, domain.ErrNotEnoughBalance)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.FirstName,
		&p.LastName,
		&p.Profession,
		&p.Type,
		&p.Balance,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
