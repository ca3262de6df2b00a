package domain

import "encoding/json"

// Operator - оператор условия фильтрации тегов
type Operator string

const (
	OperatorEq    Operator = "="
	OperatorNeq   Operator = "!="
	OperatorRegex Operator = "~"
	OperatorLt    Operator = "<"
	OperatorGt    Operator = ">"
	OperatorLte   Operator = "<="
	OperatorGte   Operator = ">="
)

// FilterValue принимает строку или число из JSON и хранит строковое представление
type FilterValue string

func (v *FilterValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FilterValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FilterValue(n.String())
	return nil
}

func (v FilterValue) String() string {
	return string(v)
}

// FilterCondition - условие фильтрации, например:
//   - "place"="city"
//   - "historic" (без значения, просто наличие тега)
type FilterCondition struct {
	Key      string       `json:"key" validate:"required"`
	Operator Operator     `json:"operator,omitempty"`
	Value    *FilterValue `json:"value,omitempty"`
}

// Element - элемент ответа Overpass API
type Element struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  *float64          `json:"lat,omitempty"`
	Lon  *float64          `json:"lon,omitempty"`
	Tags map[string]string `json:"tags"`
}

// POI - минимальное представление точки интереса
type POI struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Coordinates - географические координаты точки
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PoiDetail - подробное представление точки интереса
type PoiDetail struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Tags        map[string]string `json:"tags"`
	Details     map[string]string `json:"details"`
	Coordinates *Coordinates      `json:"coordinates,omitempty"`
}

// UnknownName подставляется вместо отсутствующего тега name
const UnknownName = "Unknown"

// typeTagPriority - порядок тегов, определяющих тип POI: первый найденный побеждает
var typeTagPriority = []string{"place", "historic", "natural", "tourism"}

// ResolveType выбирает тип POI по приоритету тегов.
// Возвращает false, если ни один из тегов не присутствует.
func ResolveType(tags map[string]string) (string, bool) {
	for _, key := range typeTagPriority {
		if v, ok := tags[key]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// Name возвращает имя элемента или UnknownName
func (e Element) Name() string {
	if name, ok := e.Tags["name"]; ok && name != "" {
		return name
	}
	return UnknownName
}

// Человекочитаемые подписи для карточки POI
const (
	labelDescription  = "Описание"
	labelFullAddress  = "Полный адрес"
	labelAddress      = "Адрес"
	labelWebsite      = "Веб-сайт"
	labelPhone        = "Телефон"
	labelOpeningHours = "Часы работы"
)

// detailFields - упорядоченный список полей карточки после адресного блока
var detailFields = []struct {
	tag   string
	label string
}{
	{"website", labelWebsite},
	{"phone", labelPhone},
	{"opening_hours", labelOpeningHours},
}

// BuildDetails собирает человекочитаемую карточку POI из тегов элемента.
// Адрес: addr:full вытесняет сборку из addr:street + addr:housenumber.
func BuildDetails(tags map[string]string) map[string]string {
	details := make(map[string]string)

	if v, ok := tags["description"]; ok {
		details[labelDescription] = v
	}

	if full, ok := tags["addr:full"]; ok {
		details[labelFullAddress] = full
	} else {
		addr := ""
		if street, ok := tags["addr:street"]; ok {
			addr = street
		}
		if house, ok := tags["addr:housenumber"]; ok {
			if addr != "" {
				addr += " "
			}
			addr += house
		}
		if addr != "" {
			details[labelAddress] = addr
		}
	}

	for _, f := range detailFields {
		if v, ok := tags[f.tag]; ok {
			details[f.label] = v
		}
	}

	return details
}

// Detail проецирует элемент Overpass в подробное представление POI
func (e Element) Detail() PoiDetail {
	detail := PoiDetail{
		ID:      e.ID,
		Name:    e.Name(),
		Tags:    e.Tags,
		Details: BuildDetails(e.Tags),
	}

	// Координаты включаются только при наличии обеих составляющих
	if e.Lat != nil && e.Lon != nil {
		detail.Coordinates = &Coordinates{
			Latitude:  *e.Lat,
			Longitude: *e.Lon,
		}
	}

	return detail
}
