package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/washdesk/washdesk-backend/api/middleware"
	"github.com/washdesk/washdesk-backend/pkg/enums"
	pkgerrors "github.com/washdesk/washdesk-backend/pkg/errors"
)

const masterPinHeader = "X-Master-Pin"

func actorID(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid actor id")
	}
	return id, nil
}

func actorRole(ctx context.Context) enums.Role {
	role, err := enums.ParseRole(middleware.RoleFromContext(ctx))
	if err != nil {
		return ""
	}
	return role
}

func masterPin(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(masterPinHeader))
}
