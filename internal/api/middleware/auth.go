package middleware

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"github.com/urbandepot/parking-service/internal/api/handlers"
	"github.com/urbandepot/parking-service/internal/domain"
)

// UserEmailHeader заголовок с email пользователя, проставляемый шлюзом аутентификации
const UserEmailHeader = "X-User-Email"

const (
	msgUnauthorized = "требуется аутентификация"
	msgForbidden    = "доступ запрещен"
)

type ctxKey int

const (
	ctxKeyActor ctxKey = iota
	ctxKeyRequestID
)

// AdminChecker определяет, является ли email администратором
type AdminChecker interface {
	IsAdmin(email string) bool
}

// Auth извлекает пользователя из заголовка X-User-Email и кладет его в контекст
// Запросы без валидного email отклоняются с 401
func Auth(admins AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.TrimSpace(r.Header.Get(UserEmailHeader))
			if email == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			if _, err := mail.ParseAddress(email); err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			actor := domain.Actor{Email: email, Admin: admins.IsAdmin(email)}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// AdminOnly пропускает только администраторов; применяется после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		if !actor.Admin {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithActor кладет пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, actor)
}

// ActorFromContext возвращает пользователя запроса
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(ctxKeyActor).(domain.Actor)
	return actor, ok
}
