package profile

import (
	"context"
)

type contextKey string

const profileIDKey contextKey = "profile_id"

// SetProfileIDContext define o ID do perfil no contexto
func SetProfileIDContext(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileIDKey, profileID)
}

// GetProfileIDFromContext obtém o ID do perfil do contexto
func GetProfileIDFromContext(ctx context.Context) string {
	if profileID, ok := ctx.Value(profileIDKey).(string); ok {
		return profileID
	}
	return ""
}
