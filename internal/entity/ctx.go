package entity

import (
	"context"
	"errors"
)

type (
	CtxKeyIP       struct{}
	CtxKeyIdentity struct{}
	CtxKeySession  struct{}
)

func IPFromCtx(ctx context.Context) string {
	ip, ok := ctx.Value(CtxKeyIP{}).(string)
	if !ok {
		return ""
	}

	return ip
}

func SetIdentityToContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(CtxKeyIdentity{}).(Identity)
	if !ok {
		return Identity{}, errors.New("data type casting")
	}

	return identity, nil
}

func SetSessionIDToContext(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, CtxKeySession{}, sid)
}

func SessionIDFromContext(ctx context.Context) (string, error) {
	sid, ok := ctx.Value(CtxKeySession{}).(string)
	if !ok {
		return "", errors.New("data type casting")
	}

	return sid, nil
}
