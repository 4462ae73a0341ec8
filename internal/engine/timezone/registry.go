package timezone

import (
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // зоны не зависят от tzdata контейнера
)

// Registry набор поддерживаемых часовых поясов (канонические IANA идентификаторы)
// и таблица алиасов для нормализации клиентских значений.
// Все локации загружаются при создании; после этого Registry только читается
// и безопасен для конкурентного использования.
type Registry struct {
	locations map[string]*time.Location
	aliases   map[string]string
}

// NewRegistry загружает поддерживаемые зоны. Каждый алиас должен указывать на поддерживаемую зону.
func NewRegistry(supported []string, aliases map[string]string) (*Registry, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("%w: supported timezone list is empty", ErrInvalidTimezone)
	}

	r := &Registry{
		locations: make(map[string]*time.Location, len(supported)),
		aliases:   make(map[string]string, len(aliases)),
	}

	for _, name := range supported {
		name = strings.TrimSpace(name)
		if name == "" || strings.EqualFold(name, "local") {
			return nil, fmt.Errorf("%w: %q is not an IANA identifier", ErrInvalidTimezone, name)
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, name, err)
		}
		r.locations[name] = loc
	}

	for alias, canonical := range aliases {
		if _, ok := r.locations[canonical]; !ok {
			return nil, fmt.Errorf("%w: alias %q points to unsupported zone %q", ErrInvalidTimezone, alias, canonical)
		}
		r.aliases[alias] = canonical
	}

	return r, nil
}

// Location возвращает локацию поддерживаемой зоны. Алиасы здесь не принимаются:
// нормализация выполняется до обращения к движку (см. Normalize).
func (r *Registry) Location(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: timezone is required", ErrInvalidTimezone)
	}
	loc, ok := r.locations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not supported", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// Normalize приводит клиентское значение к каноническому идентификатору.
// Пустая строка остается пустой (означает "не задано").
func (r *Registry) Normalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	if _, ok := r.locations[name]; ok {
		return name, nil
	}
	if canonical, ok := r.aliases[name]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%w: %q is not supported", ErrInvalidTimezone, name)
}

// Supported возвращает отсортированный список поддерживаемых зон
func (r *Registry) Supported() []string {
	names := make([]string, 0, len(r.locations))
	for name := range r.locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
