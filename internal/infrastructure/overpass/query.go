package overpass

import (
	"fmt"
	"strings"

	"github.com/flight-poi-service/internal/domain"
	"github.com/flight-poi-service/internal/pkg/errors"
)

// Фиксированная обёртка запроса: JSON-вывод, дизъюнктивная группа, полные тела
const (
	queryHeader = "[out:json];\n(\n"
	queryFooter = "\n);\nout body;"
)

// BuildPOIQuery транслирует условия фильтрации в запрос Overpass QL:
// по одному node-клаузу на условие, ограниченному полигоном поиска,
// объединённых через OR. Пустой список фильтров - ошибка вызывающей стороны.
func BuildPOIQuery(filters []domain.FilterCondition, poly string) (string, error) {
	if len(filters) == 0 {
		return "", errors.ErrEmptyFilters
	}

	clauses := make([]string, 0, len(filters))
	for _, cond := range filters {
		tag, err := tagClause(cond)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, fmt.Sprintf(`node%s(poly:"%s");`, tag, poly))
	}

	return queryHeader + strings.Join(clauses, "\n") + queryFooter, nil
}

// tagClause переводит одно условие в тег-фильтр Overpass.
// Без значения - проверка наличия тега. Overpass QL поддерживает только
// =, != и ~ для тег-фильтров; операторы сравнения отклоняются.
func tagClause(cond domain.FilterCondition) (string, error) {
	if cond.Key == "" {
		return "", errors.ErrInvalidRequest
	}

	if cond.Value == nil {
		return fmt.Sprintf(`["%s"]`, cond.Key), nil
	}

	op := cond.Operator
	if op == "" {
		op = domain.OperatorEq
	}

	switch op {
	case domain.OperatorEq, domain.OperatorNeq, domain.OperatorRegex:
		return fmt.Sprintf(`["%s"%s"%s"]`, cond.Key, op, cond.Value.String()), nil
	default:
		return "", errors.ErrUnsupportedOperator
	}
}

// BuildDetailsQuery строит запрос существования узлов по списку идентификаторов
func BuildDetailsQuery(ids []int64) (string, error) {
	if len(ids) == 0 {
		return "", errors.ErrEmptyPOIIDs
	}

	clauses := make([]string, 0, len(ids))
	for _, id := range ids {
		clauses = append(clauses, fmt.Sprintf("node(%d);", id))
	}

	return queryHeader + strings.Join(clauses, "\n") + queryFooter, nil
}
