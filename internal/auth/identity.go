package auth

import "context"

// Identity описывает аутентифицированного пользователя запроса.
// Ядро работает только с этим значением и не знает про cookies и сессии.
type Identity struct {
	AccountID int64
	Username  string
	Role      string
}

type contextKey struct{}

// WithIdentity кладёт identity в контекст запроса
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext извлекает identity из контекста; nil означает анонимный запрос
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(contextKey{}).(*Identity)
	return id
}
