package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// PathInt64 читает положительный int64 из переменной пути
func PathInt64(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// QueryDate читает дату YYYY-MM-DD из query параметра. Пустой параметр дает нулевую дату.
func QueryDate(r *http.Request, name string) (types.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return types.Date{}, nil
	}
	return types.ParseDate(raw)
}

// QueryInt читает неотрицательное целое из query параметра. Пустой параметр дает 0.
func QueryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
