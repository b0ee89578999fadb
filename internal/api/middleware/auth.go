package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
)

// AccountIDHeader заголовок, который проставляет API gateway после аутентификации
const AccountIDHeader = "X-Account-ID"

const msgMissingAccountID = "отсутствует или некорректен заголовок X-Account-ID"

type accountIDKey struct{}

// Auth извлекает ID аккаунта из заголовка X-Account-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := strconv.ParseInt(r.Header.Get(AccountIDHeader), 10, 64)
		if err != nil || accountID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingAccountID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), accountID)))
	})
}

// WithAccountID кладет ID аккаунта в контекст
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID)
}

// GetAccountID возвращает ID аккаунта из контекста
func GetAccountID(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(accountIDKey{}).(int64)
	return accountID, ok
}
