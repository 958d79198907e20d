package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/shiftbridge/swapboard/internal/config"
	"github.com/shiftbridge/swapboard/pkg/clients/apiclient"
	"github.com/shiftbridge/swapboard/pkg/session"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	API      *apiclient.Client
	Sessions *session.Store
	Logger   *zap.Logger
	Ctx      context.Context
}

// RequireSession loads the stored session and returns it together with an
// API client that carries its bearer token
func (a *AppContext) RequireSession() (*session.Session, *apiclient.Client, error) {
	sess, err := a.Sessions.Load()
	if err != nil {
		return nil, nil, err
	}
	return sess, a.API.WithToken(a.Ctx, sess.Token), nil
}
