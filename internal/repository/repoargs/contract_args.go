package repoargs

import "github.com/fsdevblog/groph-deals/internal/domain"

// ContractsByParty типизированная спецификация выборки контрактов стороны сделки:
// профиль может выступать как клиентом, так и исполнителем. Статусы из ExcludeStatuses
// исключаются из выборки (используется для отсечения разорванных контрактов).
type ContractsByParty struct {
	ProfileID       int64
	ExcludeStatuses []domain.ContractStatusType
}
